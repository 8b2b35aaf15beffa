package wordbag

import "github.com/kljensen/snowball/english"

// IsStopWord reports whether word should be excluded from the ranking.
// The snowball list covers common English function words; the extras
// below add contraction fragments, PDF layout words, and the single
// letters that fall out of punctuation stripping.
func IsStopWord(word string) bool {
	if english.IsStopWord(word) {
		return true
	}
	return stopWords[word]
}

var stopWords = map[string]bool{}

func init() {
	words := []string{
		"also", "just", "very", "shall", "may", "might", "must",
		"would", "could", "us", "since", "whom", "using", "used", "use",
		"per", "thus", "one", "once", "upon", "via",
		// contraction fragments left by the tokenizer ("n't" -> "nt")
		"nt", "ll", "ve", "re", "im", "dont", "cant", "wont", "isnt",
		"didnt", "doesnt", "wasnt", "werent",
		// words the PDF layout itself contributes
		"page", "figure", "table", "fig", "et", "al",
		// single letters appear constantly after cleaning
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
		"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	}
	for _, w := range words {
		stopWords[w] = true
	}
}
