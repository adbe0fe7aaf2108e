// Package g2p converts normalized Japanese text into phonemes, binary pitch
// tones and a per-character phoneme allotment.
package g2p

import (
	"fmt"

	"japaneseg2p/dialect"
	"japaneseg2p/frontend"
	"japaneseg2p/homograph"
	"japaneseg2p/model"
	"japaneseg2p/mora"
	"japaneseg2p/prosody"
	"japaneseg2p/segment"
)

// Options select per-call conversion behavior.
type Options struct {
	// Strict makes unreadable words an error instead of filler apostrophes.
	Strict bool

	// KeepUnvoiced keeps devoiced vowels upper-case in the phoneme output.
	KeepUnvoiced bool

	// PlainNasal renders the moraic nasal as "n" instead of "N".
	PlainNasal bool

	// UseDialect re-derives readings and accents through the alternate
	// dictionary pass. Rules names the dialect transforms to apply there;
	// an empty list means standard speech, which keeps the label-derived
	// result whenever the alternate pass agrees with it.
	UseDialect bool
	Rules      []dialect.Rule

	// UseHomograph applies contextual reading proposals inside the
	// alternate pass. Needs UseDialect and a configured Corrector.
	UseHomograph bool
}

// Converter holds the analyzer collaborators. Words and Units have kagome
// and grapheme defaults; Labels must be supplied since full-context label
// generation lives outside this module.
type Converter struct {
	Words     frontend.WordParser
	Labels    frontend.Labeler
	Units     segment.Segmenter
	Tagger    dialect.Tagger
	Homograph homograph.Corrector
}

// New returns a Converter with the default word parser, segmenter and
// alternate tagger wired up, reading labels from lab.
func New(lab frontend.Labeler) *Converter {
	c := &Converter{
		Words:  &frontend.Kagome{},
		Labels: lab,
		Units:  segment.Graphemes{},
	}
	c.Tagger = &dialect.KagomeTagger{Resolve: c.resolveReadings}
	return c
}

// Convert turns norm-text into the phones/tones/word2ph triple. Phones may
// contain punctuation symbols; tones are 0 or 1 and match phones in length;
// word2ph sums to len(phones). The result is framed by a silent "_" phone
// on each side.
//
// Accent comes from full-context labels, which lose punctuation positions,
// so tones are computed punctuation-free first and then re-aligned against
// the punctuation-preserving word readings.
func (c *Converter) Convert(text string, opts Options) (model.Result, error) {
	if text == "" {
		return model.Result{
			Phones:  []string{"_", "_"},
			Tones:   []int{0, 0},
			Word2Ph: []int{1, 1},
		}, nil
	}

	labels, err := c.Labels.Labels(text)
	if err != nil {
		return model.Result{}, fmt.Errorf("labels: %w", err)
	}
	symbols, err := prosody.ExtractSymbols(labels, !opts.KeepUnvoiced)
	if err != nil {
		return model.Result{}, err
	}
	tonesWoPunct, err := prosody.PhoneTones(symbols)
	if err != nil {
		return model.Result{}, err
	}

	words, err := c.Words.ParseWords(text)
	if err != nil {
		return model.Result{}, fmt.Errorf("parse words: %w", err)
	}
	surfaces, kanas, diags, err := sepKata(words, opts.Strict)
	if err != nil {
		return model.Result{}, err
	}

	sepPhonemes, err := wordPhonemes(kanas)
	if err != nil {
		return model.Result{}, err
	}
	phoneWPunct := flatten(sepPhonemes)

	phoneTones, err := prosody.AlignTones(phoneWPunct, tonesWoPunct)
	if err != nil {
		return model.Result{}, err
	}

	if opts.UseDialect {
		surfaces, sepPhonemes, phoneTones, err = c.dialectPass(
			surfaces, sepPhonemes, phoneTones, opts)
		if err != nil {
			return model.Result{}, err
		}
	}

	word2ph, err := c.wordAllotment(surfaces, sepPhonemes)
	if err != nil {
		return model.Result{}, err
	}

	phones := make([]string, 0, len(phoneTones)+2)
	tones := make([]int, 0, len(phoneTones)+2)
	phones = append(phones, "_")
	tones = append(tones, 0)
	for _, pt := range phoneTones {
		phones = append(phones, pt.Phone)
		tones = append(tones, pt.Tone)
	}
	phones = append(phones, "_")
	tones = append(tones, 0)
	word2ph = append(append([]int{1}, word2ph...), 1)

	if sum(word2ph) != len(phones) {
		return model.Result{}, fmt.Errorf("%w: word2ph sums to %d for %d phones",
			model.ErrAlignment, sum(word2ph), len(phones))
	}

	if opts.PlainNasal {
		for i, p := range phones {
			if p == "N" {
				phones[i] = "n"
			}
		}
	}

	return model.Result{
		Phones:      phones,
		Tones:       tones,
		Word2Ph:     word2ph,
		Diagnostics: diags,
	}, nil
}

// SepKata splits text into words and their katakana readings. Punctuation
// words read as themselves; unreadable words follow the strict policy.
func (c *Converter) SepKata(text string, strict bool) (surfaces, kanas []string, err error) {
	words, err := c.Words.ParseWords(text)
	if err != nil {
		return nil, nil, fmt.Errorf("parse words: %w", err)
	}
	surfaces, kanas, _, err = sepKata(words, strict)
	return surfaces, kanas, err
}

// resolveReadings is the Resolver hook handed to the alternate tagger for
// surfaces its dictionary cannot read.
func (c *Converter) resolveReadings(text string) ([]string, []string, error) {
	return c.SepKata(text, false)
}

// wordPhonemes converts each reading to phonemes, then resolves elongation
// marks across word boundaries.
func wordPhonemes(kanas []string) ([][]string, error) {
	sep := make([][]string, len(kanas))
	for i, k := range kanas {
		phones, err := mora.KataToPhonemes(k)
		if err != nil {
			return nil, err
		}
		sep[i] = phones
	}
	return mora.HandleLong(sep), nil
}

// wordAllotment distributes each word's phoneme count over its display
// units. A punctuation word counts as one unit.
func (c *Converter) wordAllotment(surfaces []string, sepPhonemes [][]string) ([]int, error) {
	if len(surfaces) != len(sepPhonemes) {
		return nil, fmt.Errorf("%w: %d surfaces for %d phoneme groups",
			model.ErrAlignment, len(surfaces), len(sepPhonemes))
	}
	var word2ph []int
	for i, surface := range surfaces {
		nUnits := 1
		if !mora.IsPunct(surface) {
			units, err := c.Units.Units(surface)
			if err != nil {
				return nil, fmt.Errorf("segment %q: %w", surface, err)
			}
			nUnits = len(units)
		}
		word2ph = append(word2ph, distributePhones(len(sepPhonemes[i]), nUnits)...)
	}
	return word2ph, nil
}

func flatten(sep [][]string) []string {
	var out []string
	for _, s := range sep {
		out = append(out, s...)
	}
	return out
}

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}
