package wordbag

import "sort"

// Tally counts word occurrences and ranks them.
type Tally struct {
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int, 1000)}
}

// Observe adds one occurrence of word to the tally.
func (t *Tally) Observe(word string) {
	t.counts[word]++
}

// Count returns the occurrences observed for word.
func (t *Tally) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words observed.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Top returns the n most frequent words, most frequent first. Words
// with equal counts sort alphabetically so results are deterministic.
// n larger than the tally returns everything; n <= 0 returns nothing.
func (t *Tally) Top(n int) []WordCount {
	if n <= 0 || len(t.counts) == 0 {
		return nil
	}

	ranked := make([]WordCount, 0, len(t.counts))
	for word, count := range t.counts {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
