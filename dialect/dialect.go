// Package dialect re-derives readings and accents through an alternate
// dictionary and applies configurable dialect transforms to them.
package dialect

// Token is one sub-word unit from the alternate analyzer: its surface, kana
// reading, raw accent code and coarse part-of-speech tag.
//
// Accent codes are mora indices of the accent nucleus as decimal strings;
// "0" means flat (low then high). The sentinels AccentAllHigh and
// AccentAllLow force a uniform tone over the whole token.
type Token struct {
	Surface string
	Kana    string
	Accent  string
	POS     string
}

// Accent sentinels and the POS tag for tokens nothing could classify.
const (
	AccentAllHigh = "ALL_H"
	AccentAllLow  = "ALL_L"
	POSUnknown    = "未分類"
)

// Tagger is the alternate analyzer/dictionary collaborator.
type Tagger interface {
	Tag(text string) ([]Token, error)
}
