package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passage = "The lighthouse keeper climbed the stairs every evening. " +
	"From the top he could see the whole harbor and the boats coming home. " +
	"Storms made the climb dangerous, but he never missed a night. " +
	"The sailors trusted the light more than their own charts."

func TestSummarizeTextRankQty(t *testing.T) {
	got, err := Summarize(passage, TextRankQty, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, s := range got {
		assert.NotEmpty(t, s)
	}
}

func TestSummarizeTextRankRel(t *testing.T) {
	got, err := Summarize(passage, TextRankRel, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0])
}

func TestSummarizeLexRank(t *testing.T) {
	got, err := Summarize(passage, LexRank, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 2)
}

func TestSummarizeRejectsBadArgs(t *testing.T) {
	_, err := Summarize(passage, TextRankQty, 0)
	assert.Error(t, err)

	_, err = Summarize(passage, Method("pagerank"), 1)
	assert.Error(t, err)
}
