// Package wordbag turns raw document text into a ranked bag of words:
// lowercase, strip URLs and digits, tokenize, reduce each token to a
// base form, drop stop words, count what's left.
package wordbag

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v3"
	"github.com/kljensen/snowball/english"
	"github.com/sirupsen/logrus"
)

// Mode selects how tokens are reduced to a base form.
type Mode string

const (
	// ModeLemma reduces tokens to their dictionary form ("running" -> "run").
	ModeLemma Mode = "lemma"
	// ModeStem applies the snowball stemmer instead.
	ModeStem Mode = "stem"
	// ModeRaw keeps tokens as-is.
	ModeRaw Mode = "raw"
)

// WordCount is one entry of the frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Options configure a Bag. The zero value is not useful; see Defaults.
type Options struct {
	// TopN is the number of ranked words to return.
	TopN int
	// MinLen drops words shorter than this after cleaning.
	MinLen int
	// KeepDigits keeps digit runs instead of stripping them.
	KeepDigits bool
	Mode       Mode
}

// Defaults mirror the CLI defaults: top 100 words of length >= 2,
// digits stripped, lemmatized.
func Defaults() Options {
	return Options{TopN: 100, MinLen: 2, Mode: ModeLemma}
}

var (
	urlRE   = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)
	digitRE = regexp.MustCompile(`\d+`)
	// rejoin words hyphenated across PDF line breaks before tokenizing
	hyphenFix = strings.NewReplacer("-\n", "")
)

// Bag runs the normalization pipeline. It is safe to reuse for many
// documents; the lemmatizer dictionary loads once.
type Bag struct {
	opts Options
	lem  *golem.Lemmatizer
}

func New(opts Options) (*Bag, error) {
	if opts.TopN < 0 {
		return nil, fmt.Errorf("top n must not be negative, got %d", opts.TopN)
	}
	switch opts.Mode {
	case ModeLemma, ModeStem, ModeRaw:
	case "":
		opts.Mode = ModeLemma
	default:
		return nil, fmt.Errorf("unknown mode %q", opts.Mode)
	}

	b := &Bag{opts: opts}
	if opts.Mode == ModeLemma {
		lem, err := golem.New(en.New())
		if err != nil {
			return nil, fmt.Errorf("load lemmatizer: %w", err)
		}
		b.lem = lem
	}
	return b, nil
}

// Process runs the pipeline over raw text and returns the top N words
// by frequency, ties broken alphabetically. Empty or all-stop-word
// input yields an empty result and no error.
func (b *Bag) Process(raw string) ([]WordCount, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	text := strings.ToLower(raw)
	text = urlRE.ReplaceAllString(text, " ")
	if !b.opts.KeepDigits {
		text = digitRE.ReplaceAllString(text, "")
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.UsingTokenizer(prose.NewIterTokenizer(prose.UsingSanitizer(hyphenFix))),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	tally := NewTally()
	for _, tok := range doc.Tokens() {
		word := b.clean(tok.Text)
		if word == "" {
			continue
		}
		tally.Observe(word)
	}
	logrus.Debugf("tallied %d distinct words", tally.Len())

	return tally.Top(b.opts.TopN), nil
}

// clean normalizes a single token, returning "" when it should be
// dropped from the ranking.
func (b *Bag) clean(tok string) string {
	word := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, tok)
	if word == "" || IsStopWord(word) {
		return ""
	}

	switch b.opts.Mode {
	case ModeLemma:
		word = b.lem.Lemma(word)
	case ModeStem:
		word = english.Stem(word, false)
	}

	if len([]rune(word)) < b.opts.MinLen || IsStopWord(word) {
		return ""
	}
	return word
}
