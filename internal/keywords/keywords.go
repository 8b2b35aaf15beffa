// Package keywords extracts scored keyword phrases with RAKE.
package keywords

import (
	rake "github.com/afjoseph/RAKE.Go"
	"github.com/sirupsen/logrus"
)

// Keyword is a candidate phrase and its RAKE score. Single-word
// candidates bottom out at a score of 1.0.
type Keyword struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Extract returns candidate phrases scoring above floor, best first, at
// most n of them. n <= 0 means no limit.
func Extract(text string, n int, floor float64) []Keyword {
	candidates := rake.RunRake(text)
	logrus.Debugf("rake produced %d candidates", len(candidates))

	var out []Keyword
	for _, c := range candidates {
		if c.Value < floor {
			break
		}
		out = append(out, Keyword{Phrase: c.Key, Score: c.Value})
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}
