package dialect

import (
	"fmt"
	"strconv"

	"japaneseg2p/model"
	"japaneseg2p/mora"
)

// AccentToTones expands one token's accent code into a per-phoneme binary
// tone run for its kana reading. Nucleus-position semantics: flat ("0") is
// low then high from the second mora; nucleus at mora k is high through k
// and low after; a small glide glyph counts with its base kana as one unit.
// The ALL_H/ALL_L sentinels force a uniform tone.
//
// The glide handling is deliberately case-by-case, including the dedicated
// nucleus-at-2-with-leading-glide branch (フェニックス型).
func AccentToTones(kana, accent string) ([]int, error) {
	switch accent {
	case AccentAllHigh:
		return uniformTones(kana, 1)
	case AccentAllLow:
		return uniformTones(kana, 0)
	}

	acc, err := strconv.Atoi(accent)
	if err != nil {
		return nil, fmt.Errorf("%w: accent code %q", model.ErrInvalidFormat, accent)
	}

	runes := []rune(kana)
	morae := len(runes)

	if morae == 1 || (morae == 2 && youon[runes[1]]) {
		if acc == 1 {
			return uniformTones(kana, 1)
		}
		return uniformTones(kana, 0)
	}

	switch {
	case acc < 0:
		return nil, fmt.Errorf("%w: accent code %q", model.ErrInvalidFormat, accent)

	case acc == 0:
		head := 1
		if youon[runes[1]] {
			head = 2
		}
		return spanTones(runes, span{0, head, 0}, span{head, morae, 1})

	case acc == 1:
		head := 1
		if youon[runes[1]] {
			head = 2
		}
		return spanTones(runes, span{0, head, 1}, span{head, morae, 0})

	case acc < morae:
		nucleus := acc - 1
		if youon[runes[1]] && acc == 2 {
			return spanTones(runes, span{0, 2, 0}, span{2, 3, 1}, span{3, morae, 0})
		}
		if youon[runes[nucleus+1]] {
			return spanTones(runes, span{0, nucleus, 0}, span{nucleus, acc + 1, 1}, span{acc + 1, morae, 0})
		}
		return spanTones(runes, span{0, nucleus, 0}, span{nucleus, acc, 1}, span{acc, morae, 0})

	case acc == morae:
		nucleus := acc - 1
		return spanTones(runes, span{0, nucleus, 0}, span{nucleus, acc, 1})

	default:
		// nucleus beyond the reading; the caller's phoneme/tone length
		// check reports the inconsistency
		return nil, nil
	}
}

type span struct {
	from, to int
	tone     int
}

// spanTones converts each kana span to phonemes and assigns its tone.
func spanTones(runes []rune, spans ...span) ([]int, error) {
	var out []int
	for _, sp := range spans {
		if sp.from >= sp.to {
			continue
		}
		phones, err := mora.KataToPhonemes(string(runes[sp.from:sp.to]))
		if err != nil {
			return nil, err
		}
		for range phones {
			out = append(out, sp.tone)
		}
	}
	return out, nil
}

func uniformTones(kana string, tone int) ([]int, error) {
	phones, err := mora.KataToPhonemes(kana)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(phones))
	for i := range out {
		out[i] = tone
	}
	return out, nil
}
