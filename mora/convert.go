package mora

import (
	"fmt"

	"japaneseg2p/model"
)

const elongation = 'ー'

// KataToPhonemes converts a single reading to a phoneme list.
//
// A pure punctuation reading is returned one character per slot, unchanged.
// Anything else must be katakana (elongation marks included); a leading run
// of "ー" is kept verbatim and resolved later by HandleLong, while a "ー"
// after a mora is replaced by one copy of that mora's final phoneme per
// consecutive mark:
//
//	ーーソーナノカーー → ー ー s o o n a n o k a a a
func KataToPhonemes(text string) ([]string, error) {
	if IsPunct(text) {
		runes := []rune(text)
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out, nil
	}
	runes := []rune(text)
	for _, r := range runes {
		if !isKatakana(r) {
			return nil, fmt.Errorf("%w: not katakana: %q", model.ErrInvalidFormat, text)
		}
	}

	var out []string
	for i := 0; i < len(runes); {
		if runes[i] == elongation {
			if len(out) == 0 || out[len(out)-1] == string(elongation) {
				// leading run, resolved against the previous word later
				out = append(out, string(elongation))
			} else {
				last := []rune(out[len(out)-1])
				out = append(out, string(last[len(last)-1]))
			}
			i++
			continue
		}
		if i+1 < len(runes) {
			if e, ok := mora2[string(runes[i:i+2])]; ok {
				if e.consonant != "" {
					out = append(out, e.consonant)
				}
				out = append(out, e.vowel)
				i += 2
				continue
			}
		}
		if e, ok := mora1[string(runes[i])]; ok {
			if e.consonant != "" {
				out = append(out, e.consonant)
			}
			out = append(out, e.vowel)
			i++
			continue
		}
		return nil, fmt.Errorf("%w: unknown mora at %q", model.ErrInvalidFormat, string(runes[i]))
	}
	return out, nil
}

// HandleLong resolves elongation marks left at word starts. A word-initial
// "ー" extends the previous word's final phoneme when that phoneme is
// longable; at the start of the text, or after a consonant or punctuation,
// it is reinterpreted as the dash phoneme "-". Remaining marks inside the
// word then copy their left neighbour. Mutates sep in place and returns it.
func HandleLong(sep [][]string) [][]string {
	for i := range sep {
		if len(sep[i]) == 0 {
			// empty reading, e.g. whitespace-only word
			continue
		}
		if sep[i][0] == string(elongation) {
			prev := ""
			for j := i - 1; j >= 0; j-- {
				if len(sep[j]) > 0 {
					prev = sep[j][len(sep[j])-1]
					break
				}
			}
			if Longable(prev) {
				sep[i][0] = prev
			} else {
				sep[i][0] = "-"
			}
		}
		for j := 1; j < len(sep[i]); j++ {
			if sep[i][j] == string(elongation) {
				last := []rune(sep[i][j-1])
				sep[i][j] = string(last[len(last)-1])
			}
		}
	}
	return sep
}
