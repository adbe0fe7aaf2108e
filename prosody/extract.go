// Package prosody turns full-context phonetic labels into a linear
// phoneme+prosody symbol stream and assigns binary tones per accent phrase.
package prosody

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"japaneseg2p/model"
)

// Prosody symbols interleaved with phonemes in the extracted stream.
const (
	BeginUtterance = "^" // first label (silence)
	EndStatement   = "$" // last label, declarative
	EndQuestion    = "?" // last label, interrogative
	Pause          = "_" // interior silence
	PhraseBreak    = "#" // accent phrase border
	PitchRise      = "[" // tone goes up after this point
	PitchFall      = "]" // tone goes down after this point
)

// Feature extraction over OpenJTalk-compatible full-context labels.
var (
	reA1 = regexp.MustCompile(`/A:([0-9\-]+)\+`)
	reA2 = regexp.MustCompile(`\+(\d+)\+`)
	reA3 = regexp.MustCompile(`\+(\d+)/`)
	reE3 = regexp.MustCompile(`!(\d+)_`)
	reF1 = regexp.MustCompile(`/F:(\d+)_`)
	reP3 = regexp.MustCompile(`\-(.*?)\+`)
)

// missing is the sentinel for a feature absent from a label.
const missing = -50

func numericFeature(re *regexp.Regexp, label string) int {
	m := re.FindStringSubmatch(label)
	if m == nil {
		return missing
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return missing
	}
	return n
}

// ExtractSymbols converts per-unit full-context labels into the phoneme and
// prosody symbol stream. The first and last labels must be silence; the last
// one decides statement vs question via e3. A voiced unit emits its phoneme,
// optionally followed by exactly one of #, ] or [ chosen against the next
// unit's forward mora position. Devoiced vowels (A/I/U/E/O) are lowered to
// their voiced counterparts when dropUnvoiced is set.
func ExtractSymbols(labels []string, dropUnvoiced bool) ([]string, error) {
	n := len(labels)
	var phones []string

	for i := 0; i < n; i++ {
		cur := labels[i]
		m := reP3.FindStringSubmatch(cur)
		if m == nil {
			return nil, fmt.Errorf("%w: no phoneme in label %q", model.ErrInvalidFormat, cur)
		}
		p3 := m[1]
		if dropUnvoiced && len(p3) == 1 && strings.Contains("AEIOU", p3) {
			p3 = strings.ToLower(p3)
		}

		switch p3 {
		case "sil":
			switch i {
			case 0:
				phones = append(phones, BeginUtterance)
			case n - 1:
				if numericFeature(reE3, cur) == 1 {
					phones = append(phones, EndQuestion)
				} else {
					phones = append(phones, EndStatement)
				}
			default:
				return nil, fmt.Errorf("%w: interior silence at label %d", model.ErrInvalidFormat, i)
			}
			continue
		case "pau":
			phones = append(phones, Pause)
			continue
		}
		phones = append(phones, p3)

		a1 := numericFeature(reA1, cur)
		a2 := numericFeature(reA2, cur)
		a3 := numericFeature(reA3, cur)
		f1 := numericFeature(reF1, cur)
		a2Next := missing
		if i+1 < n {
			a2Next = numericFeature(reA2, labels[i+1])
		}

		switch {
		case a3 == 1 && a2Next == 1 && strings.Contains("aeiouAEIOUNcl", p3):
			phones = append(phones, PhraseBreak)
		case a1 == 0 && a2Next == a2+1 && a2 != f1:
			phones = append(phones, PitchFall)
		case a2 == 1 && a2Next == 2:
			phones = append(phones, PitchRise)
		}
	}
	return phones, nil
}
