package prosody

import (
	"fmt"

	"japaneseg2p/model"
	"japaneseg2p/mora"
)

// AlignTones merges the punctuation-preserving phoneme stream with the
// punctuation-free (phoneme, tone) pairs. A cursor walks the tone list;
// matching phonemes consume a pair, punctuation takes tone 0 without
// advancing, and any other mismatch means the two analyses disagree on
// actual speech content.
func AlignTones(phonesWithPunct []string, tones []model.PhoneTone) ([]model.PhoneTone, error) {
	result := make([]model.PhoneTone, 0, len(phonesWithPunct))
	ti := 0
	for _, phone := range phonesWithPunct {
		switch {
		case ti >= len(tones):
			// trailing punctuation after the last voiced phoneme
			result = append(result, model.PhoneTone{Phone: phone, Tone: 0})
		case phone == tones[ti].Phone:
			result = append(result, model.PhoneTone{Phone: phone, Tone: tones[ti].Tone})
			ti++
		case mora.IsPunct(phone):
			result = append(result, model.PhoneTone{Phone: phone, Tone: 0})
		default:
			return nil, fmt.Errorf("%w: phoneme %q vs %q at tone index %d",
				model.ErrAlignment, phone, tones[ti].Phone, ti)
		}
	}
	return result, nil
}
