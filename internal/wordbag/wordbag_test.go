package wordbag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyTopOrdersByCountThenWord(t *testing.T) {
	tally := NewTally()
	for _, w := range []string{"dog", "cat", "cat", "cat", "dog", "bird"} {
		tally.Observe(w)
	}
	assert.Equal(t, 3, tally.Len())
	assert.Equal(t, 3, tally.Count("cat"))
	assert.Equal(t, 0, tally.Count("ferret"))
	assert.Equal(t, []WordCount{
		{Word: "cat", Count: 3},
		{Word: "dog", Count: 2},
		{Word: "bird", Count: 1},
	}, tally.Top(10))

	// ties sort alphabetically
	tally.Observe("bird")
	top := tally.Top(3)
	assert.Equal(t, "bird", top[1].Word)
	assert.Equal(t, "dog", top[2].Word)
}

func TestTallyTopClamps(t *testing.T) {
	tally := NewTally()
	tally.Observe("cat")
	assert.Nil(t, tally.Top(0))
	assert.Nil(t, tally.Top(-1))
	assert.Len(t, tally.Top(5), 1)
}

func TestProcessEmptyText(t *testing.T) {
	bag, err := New(Defaults())
	require.NoError(t, err)

	words, err := bag.Process("")
	require.NoError(t, err)
	assert.Empty(t, words)

	words, err = bag.Process("   \n\t ")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestProcessStopWordsOnly(t *testing.T) {
	bag, err := New(Options{TopN: 10, MinLen: 2, Mode: ModeRaw})
	require.NoError(t, err)

	words, err := bag.Process("the and of a to in it is was")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestProcessRanksByFrequency(t *testing.T) {
	bag, err := New(Options{TopN: 2, MinLen: 2, Mode: ModeRaw})
	require.NoError(t, err)

	words, err := bag.Process("Cat cat CAT dog dog bird")
	require.NoError(t, err)
	assert.Equal(t, []WordCount{
		{Word: "cat", Count: 3},
		{Word: "dog", Count: 2},
	}, words)
}

func TestProcessStripsURLsAndDigits(t *testing.T) {
	bag, err := New(Options{TopN: 10, MinLen: 2, Mode: ModeRaw})
	require.NoError(t, err)

	words, err := bag.Process("visit https://example.com or www.example.org, chapter 42 covers dragons dragons")
	require.NoError(t, err)
	require.Len(t, words, 4)
	assert.Equal(t, WordCount{Word: "dragons", Count: 2}, words[0])
	for _, w := range words {
		assert.NotContains(t, w.Word, "example")
		assert.NotEqual(t, "42", w.Word)
	}
}

func TestProcessKeepDigits(t *testing.T) {
	bag, err := New(Options{TopN: 10, MinLen: 2, KeepDigits: true, Mode: ModeRaw})
	require.NoError(t, err)

	words, err := bag.Process("route 66 route 66")
	require.NoError(t, err)
	assert.Contains(t, words, WordCount{Word: "66", Count: 2})
}

func TestProcessLemmatizes(t *testing.T) {
	bag, err := New(Options{TopN: 10, MinLen: 2, Mode: ModeLemma})
	require.NoError(t, err)

	words, err := bag.Process("cats cat running runs")
	require.NoError(t, err)
	assert.Equal(t, []WordCount{
		{Word: "cat", Count: 2},
		{Word: "run", Count: 2},
	}, words)
}

func TestProcessStems(t *testing.T) {
	bag, err := New(Options{TopN: 10, MinLen: 2, Mode: ModeStem})
	require.NoError(t, err)

	words, err := bag.Process("running running jumping")
	require.NoError(t, err)
	assert.Equal(t, WordCount{Word: "run", Count: 2}, words[0])
	assert.Equal(t, WordCount{Word: "jump", Count: 1}, words[1])
}

func TestProcessRejoinsHyphenation(t *testing.T) {
	bag, err := New(Options{TopN: 10, MinLen: 2, Mode: ModeRaw})
	require.NoError(t, err)

	words, err := bag.Process("a hyphen-\nated word")
	require.NoError(t, err)
	assert.Contains(t, words, WordCount{Word: "hyphenated", Count: 1})
	for _, w := range words {
		assert.NotEqual(t, "hyphen", w.Word)
		assert.NotEqual(t, "ated", w.Word)
	}
}

func TestProcessMinLen(t *testing.T) {
	bag, err := New(Options{TopN: 10, MinLen: 5, Mode: ModeRaw})
	require.NoError(t, err)

	words, err := bag.Process("tiny words survive, big ones do not")
	require.NoError(t, err)
	assert.Equal(t, []WordCount{
		{Word: "survive", Count: 1},
		{Word: "words", Count: 1},
	}, words)
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{TopN: -1})
	assert.Error(t, err)

	_, err = New(Options{TopN: 10, Mode: Mode("porter")})
	assert.Error(t, err)
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "and", "page", "figure", "x"} {
		assert.True(t, IsStopWord(w), w)
	}
	assert.False(t, IsStopWord("dragon"))
}
