package prosody

import (
	"fmt"

	"japaneseg2p/model"
)

// PhoneTones runs the accent-phrase state machine over a symbol stream and
// returns punctuation-free (phoneme, tone) pairs with every tone in {0,1}.
// The running tone starts at 0, rises on "[" and falls on "]"; each phrase
// is normalized when its boundary symbol arrives. The geminate label "cl"
// is renamed to its phoneme code "q" on the way in.
func PhoneTones(symbols []string) ([]model.PhoneTone, error) {
	var result []model.PhoneTone
	var phrase []model.PhoneTone
	tone := 0

	for i, sym := range symbols {
		switch sym {
		case BeginUtterance:
			if i != 0 {
				return nil, fmt.Errorf("%w: %q not at stream start", model.ErrAlignment, sym)
			}
		case EndStatement, EndQuestion, Pause, PhraseBreak:
			fixed, err := fixPhraseTones(phrase)
			if err != nil {
				return nil, err
			}
			result = append(result, fixed...)
			if (sym == EndStatement || sym == EndQuestion) && i != len(symbols)-1 {
				return nil, fmt.Errorf("%w: %q before stream end", model.ErrAlignment, sym)
			}
			phrase = phrase[:0]
			tone = 0
		case PitchRise:
			tone++
		case PitchFall:
			tone--
		default:
			p := sym
			if p == "cl" {
				p = "q"
			}
			phrase = append(phrase, model.PhoneTone{Phone: p, Tone: tone})
		}
	}
	return result, nil
}

// fixPhraseTones normalizes one accent phrase's accumulated tones to {0,1}.
// Legal raw sets are {0} and {0,1} (kept as-is) and {-1,0} (shifted up by
// one). Anything else means the rise/fall markers were inconsistent.
func fixPhraseTones(phrase []model.PhoneTone) ([]model.PhoneTone, error) {
	seen := map[int]bool{}
	for _, pt := range phrase {
		seen[pt.Tone] = true
	}
	switch {
	case len(seen) == 1 && seen[0]:
		return append([]model.PhoneTone(nil), phrase...), nil
	case len(seen) == 2 && seen[0] && seen[1]:
		return append([]model.PhoneTone(nil), phrase...), nil
	case len(seen) == 2 && seen[-1] && seen[0]:
		fixed := make([]model.PhoneTone, len(phrase))
		for i, pt := range phrase {
			t := 1
			if pt.Tone == -1 {
				t = 0
			}
			fixed[i] = model.PhoneTone{Phone: pt.Phone, Tone: t}
		}
		return fixed, nil
	default:
		return nil, fmt.Errorf("%w: raw tone set %v", model.ErrTone, keys(seen))
	}
}

func keys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
