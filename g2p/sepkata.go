package g2p

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"japaneseg2p/frontend"
	"japaneseg2p/model"
	"japaneseg2p/mora"
)

// sepKata resolves the parser's word list into per-word katakana readings.
// The parser marks anything it cannot read with frontend.Unreadable; for a
// punctuation-only surface that marker just means "use the surface itself",
// otherwise the word is genuinely unreadable and either fails (strict) or
// becomes filler apostrophes, one per rune, with a diagnostic.
func sepKata(words []frontend.Word, strict bool) (surfaces, kanas []string, diags []model.Diagnostic, err error) {
	for _, w := range words {
		yomi := w.Reading
		if yomi == "" {
			return nil, nil, nil, fmt.Errorf("%w: empty reading for %q", model.ErrInvalidFormat, w.Surface)
		}
		switch yomi {
		case frontend.Unreadable:
			if isPunctOnly(w.Surface) {
				yomi = w.Surface
			} else {
				if strict {
					return nil, nil, nil, fmt.Errorf("%w: %q", model.ErrUnreadableText, w.Surface)
				}
				log.Warnf("g2p: cannot read %q, using filler", w.Surface)
				diags = append(diags, model.Diagnostic{
					Word:    w.Surface,
					Message: "unreadable, replaced with filler",
				})
				yomi = strings.Repeat("'", len([]rune(w.Surface)))
			}
		case "？":
			if w.Surface != "?" {
				return nil, nil, nil, fmt.Errorf("%w: reading ？ for surface %q", model.ErrInvalidFormat, w.Surface)
			}
			yomi = "?"
		}
		surfaces = append(surfaces, w.Surface)
		kanas = append(kanas, yomi)
	}
	return surfaces, kanas, diags, nil
}

// isPunctOnly reports whether every rune of s is in the punctuation set.
func isPunctOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !mora.IsPunct(string(r)) {
			return false
		}
	}
	return true
}
