package g2p

import (
	"fmt"
	"slices"
	"strings"

	"japaneseg2p/dialect"
	"japaneseg2p/homograph"
	"japaneseg2p/model"
)

// dialectPass re-derives readings and accents word by word through the
// alternate dictionary, applies the homograph and dialect patches, and
// rebuilds the phone/tone list from the resulting accent codes.
//
// With no rules selected the pass models standard speech: when the
// alternate reading agrees with the label-derived phonemes and the word
// split is unchanged, the label-derived tones win, since the accent
// dictionary behind the labels is the richer source for Tokyo pitch.
// Any disagreement means the older dictionary misread the text, so the
// alternate result replaces it.
func (c *Converter) dialectPass(
	surfaces []string,
	sepPhonemes [][]string,
	phoneTones []model.PhoneTone,
	opts Options,
) ([]string, [][]string, []model.PhoneTone, error) {
	if c.Tagger == nil {
		return nil, nil, nil, fmt.Errorf("%w: no dialect tagger configured", model.ErrInvalidFormat)
	}

	var tokens []dialect.Token
	for _, surface := range surfaces {
		ts, err := c.Tagger.Tag(surface)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("tag %q: %w", surface, err)
		}
		tokens = append(tokens, ts...)
	}

	if opts.UseHomograph && c.Homograph != nil {
		newSurfaces := make([]string, len(tokens))
		kanas := make([]string, len(tokens))
		for i, t := range tokens {
			newSurfaces[i] = t.Surface
			kanas[i] = t.Kana
		}
		proposals, err := c.Homograph.Propose(strings.Join(newSurfaces, ""))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("homograph: %w", err)
		}
		for i, kana := range homograph.Apply(newSurfaces, kanas, proposals) {
			tokens[i].Kana = kana
		}
	}

	tokens = dialect.Apply(tokens, opts.Rules)
	if slices.Contains(opts.Rules, dialect.RuleKinki) {
		tokens = dialect.ApplyKeihan(tokens)
	}

	newSurfaces := make([]string, len(tokens))
	kanas := make([]string, len(tokens))
	var accentHL []int
	for i, t := range tokens {
		newSurfaces[i] = t.Surface
		kanas[i] = t.Kana
		hl, err := dialect.AccentToTones(t.Kana, t.Accent)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("accent for %q: %w", t.Surface, err)
		}
		accentHL = append(accentHL, hl...)
	}

	newSepPhonemes, err := wordPhonemes(kanas)
	if err != nil {
		return nil, nil, nil, err
	}
	newPhoneWPunct := flatten(newSepPhonemes)

	if len(accentHL) != len(newPhoneWPunct) {
		return nil, nil, nil, fmt.Errorf("%w: %d accents for %d phonemes",
			model.ErrAlignment, len(accentHL), len(newPhoneWPunct))
	}

	if len(opts.Rules) == 0 &&
		len(tokens) == len(surfaces) &&
		slices.Equal(newPhoneWPunct, flatten(sepPhonemes)) {
		return surfaces, sepPhonemes, phoneTones, nil
	}

	newPhoneTones := make([]model.PhoneTone, len(newPhoneWPunct))
	for i := range newPhoneWPunct {
		newPhoneTones[i] = model.PhoneTone{Phone: newPhoneWPunct[i], Tone: accentHL[i]}
	}
	return newSurfaces, newSepPhonemes, newPhoneTones, nil
}
