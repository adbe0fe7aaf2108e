// Package segment provides the display-unit segmenter used to spread
// phoneme counts over the characters of a word.
package segment

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

// Segmenter splits one word surface into its minimal display units. The
// concatenation of the units must reproduce the input.
type Segmenter interface {
	Units(word string) ([]string, error)
}

// Graphemes segments words into user-perceived characters per UAX#29.
type Graphemes struct{}

var setupOnce sync.Once

// Units returns the grapheme clusters of word, in order.
func (Graphemes) Units(word string) ([]string, error) {
	setupOnce.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(word)
	units := make([]string, gstr.Len())
	for i := range units {
		units[i] = gstr.Nth(i)
	}
	return units, nil
}
