// Package summary produces extractive summaries of document text.
package summary

import (
	"fmt"

	textrank "github.com/DavidBelicza/TextRank"
	"github.com/DavidBelicza/TextRank/rank"
	"github.com/JesusIslam/tldr"
)

// Method selects the summarization algorithm.
type Method string

const (
	// LexRank summarizes with the tldr LexRank implementation.
	LexRank Method = "lexrank"
	// TextRankQty weights sentences by word quantity.
	TextRankQty Method = "qty"
	// TextRankRel weights sentences by word relations.
	TextRankRel Method = "rel"
)

// Summarize returns up to n summary sentences of text.
func Summarize(text string, method Method, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("summary length must be at least 1, got %d", n)
	}
	switch method {
	case LexRank:
		return lex(text, n)
	case TextRankQty:
		return ranked(text, n, textrank.FindSentencesByWordQtyWeight)
	case TextRankRel:
		return ranked(text, n, textrank.FindSentencesByRelationWeight)
	default:
		return nil, fmt.Errorf("unknown summary method %q", method)
	}
}

func lex(text string, n int) ([]string, error) {
	bag := tldr.New()
	return bag.Summarize(text, n)
}

func ranked(text string, n int, weigh func(*textrank.TextRank, int) []rank.Sentence) ([]string, error) {
	tr := textrank.NewTextRank()
	tr.Populate(text, textrank.NewDefaultLanguage(), textrank.NewDefaultRule())
	tr.Ranking(textrank.NewDefaultAlgorithm())

	sentences := weigh(tr, n)
	if len(sentences) < n {
		n = len(sentences)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, sentences[i].Value)
	}
	return out, nil
}
