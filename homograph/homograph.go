// Package homograph overrides dictionary readings for surfaces whose
// pronunciation depends on context (同音異義語).
package homograph

import "japaneseg2p/mora"

// Proposal is one contextual reading suggestion: the surface form it covers
// and the reading (kana, either script) to use for it.
type Proposal struct {
	Surface string
	Reading string
}

// Corrector produces reading proposals for a whole sentence. Implementations
// typically wrap an external disambiguation model.
type Corrector interface {
	Propose(text string) ([]Proposal, error)
}

// Apply rewrites kanas in place of dictionary readings wherever a proposal's
// surface exactly matches a word surface. Proposal readings are normalized
// to katakana. Words without a matching proposal keep their reading.
func Apply(surfaces, kanas []string, proposals []Proposal) []string {
	if len(proposals) == 0 {
		return kanas
	}
	byScope := make(map[string]string, len(proposals))
	for _, p := range proposals {
		byScope[p.Surface] = mora.HiraToKata(p.Reading)
	}
	out := make([]string, len(kanas))
	copy(out, kanas)
	for i, s := range surfaces {
		if i >= len(out) {
			break
		}
		if r, ok := byScope[s]; ok {
			out[i] = r
		}
	}
	return out
}
