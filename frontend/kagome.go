package frontend

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/width"

	"japaneseg2p/mora"
)

// devoiceSign marks a devoiced mora in analyzer pronunciations and carries
// no phonemic content of its own.
const devoiceSign = "’"

// Kagome is a WordParser over the kagome morphological analyzer with the
// bundled IPA dictionary. The tokenizer is built once on first use and is
// safe for concurrent reads afterwards.
type Kagome struct {
	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

// NewKagome returns an uninitialized parser; the dictionary loads lazily.
func NewKagome() *Kagome {
	return &Kagome{}
}

func (k *Kagome) init() {
	k.tok, k.err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if k.err != nil {
		logrus.Warnf("frontend: kagome init failed: %v", k.err)
	}
}

// ParseWords tokenizes text and pairs each surface with its pronunciation.
// Tokens without a pronunciation get the Unreadable sentinel; the caller's
// segmentation policy decides what to do with them. Devoice signs are
// stripped, and full-width readings of punctuation surfaces are narrowed.
func (k *Kagome) ParseWords(text string) ([]Word, error) {
	k.once.Do(k.init)
	if k.err != nil {
		return nil, fmt.Errorf("frontend: %w", k.err)
	}
	if text == "" {
		return nil, nil
	}

	toks := k.tok.Tokenize(text)
	words := make([]Word, 0, len(toks))
	for _, t := range toks {
		reading, ok := t.Pronunciation()
		if !ok || reading == "" {
			reading, ok = t.Reading()
		}
		if !ok || reading == "" {
			reading = Unreadable
		}
		reading = strings.ReplaceAll(reading, devoiceSign, "")
		if reading != Unreadable && mora.IsPunct(t.Surface) {
			reading = width.Narrow.String(reading)
		}
		words = append(words, Word{Surface: t.Surface, Reading: reading})
	}
	return words, nil
}
