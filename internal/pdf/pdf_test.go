package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordslurp/internal/pdf/pdftest"
)

func writeMinimal(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minimal.pdf")
	require.NoError(t, os.WriteFile(path, pdftest.Minimal(text), 0o644))
	return path
}

func TestExtractAllPages(t *testing.T) {
	path := writeMinimal(t, "dragon dragon castle")

	text, err := Extract(path, AllPages)
	require.NoError(t, err)
	assert.Contains(t, text, "dragon dragon castle")
}

func TestExtractPageRange(t *testing.T) {
	path := writeMinimal(t, "hello")

	text, err := Extract(path, PageRange{Start: 1, End: 1})
	require.NoError(t, err)
	assert.Contains(t, text, "hello")
}

func TestExtractRangeOutsideDocument(t *testing.T) {
	path := writeMinimal(t, "hello")

	_, err := Extract(path, PageRange{Start: 2, End: 3})
	assert.Error(t, err)

	_, err = Extract(path, PageRange{Start: 1, End: 9})
	assert.Error(t, err)
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope.pdf"), AllPages)
	assert.Error(t, err)
}

func TestPageCount(t *testing.T) {
	path := writeMinimal(t, "hello")

	n, err := PageCount(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
