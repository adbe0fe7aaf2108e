package dialect

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
	log "github.com/sirupsen/logrus"

	"japaneseg2p/model"
)

// foreignPattern matches surfaces the alternate dictionary missed but the
// primary analyzer can still read: kana runs and latin letters (full or
// half width).
var foreignPattern = regexp.MustCompile(`^[ァ-ロワ-ヴぁ-ろわ-ん－a-zA-Zａ-ｚＡ-Ｚ]+`)

var exclaimPattern = regexp.MustCompile(`^[!?！？]+$`)

// KagomeTagger tags text with the UniDic-layout kagome dictionary.
//
// Resolve, when set, re-reads out-of-dictionary kana/latin surfaces through
// the primary analyzer; such words may split, and each split part gets a
// flat accent and the unknown POS tag. A compound like Xbox resolves to two
// words that way.
type KagomeTagger struct {
	Resolve func(text string) (surfaces, readings []string, err error)

	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

func (kt *KagomeTagger) init() {
	kt.tok, kt.err = tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
	if kt.err != nil {
		log.WithError(kt.err).Warn("dialect: uni tokenizer init failed")
	}
}

// Tag analyzes text into dialect tokens. Dictionary hits carry the POS and
// accent columns; accent normalization collapses "*" to flat and keeps only
// the first nucleus of a dual-nucleus code.
func (kt *KagomeTagger) Tag(text string) ([]Token, error) {
	kt.once.Do(kt.init)
	if kt.err != nil {
		return nil, fmt.Errorf("uni tokenizer: %w", kt.err)
	}

	var out []Token
	for _, t := range kt.tok.Tokenize(text) {
		surface := t.Surface
		features := t.Features()

		switch {
		case t.Class == tokenizer.KNOWN || t.Class == tokenizer.USER:
			kana, ok := t.Pronunciation()
			if !ok || kana == "*" {
				kana, ok = t.Reading()
			}
			if !ok || kana == "*" || kana == "" {
				kana = "'"
			}
			if exclaimPattern.MatchString(surface) {
				kana = surface
			}
			accent := "*"
			if len(features) > 24 {
				accent = features[24]
			}
			out = append(out, Token{
				Surface: surface,
				Kana:    kana,
				Accent:  accent,
				POS:     features[0],
			})

		case foreignPattern.MatchString(surface) && kt.Resolve != nil:
			surfaces, readings, err := kt.Resolve(surface)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", surface, err)
			}
			if len(surfaces) != len(readings) {
				return nil, fmt.Errorf("%w: resolver returned %d surfaces for %d readings", model.ErrAlignment, len(surfaces), len(readings))
			}
			for i := range surfaces {
				out = append(out, Token{
					Surface: surfaces[i],
					Kana:    readings[i],
					Accent:  "0",
					POS:     POSUnknown,
				})
			}

		default:
			out = append(out, Token{
				Surface: surface,
				Kana:    "'",
				Accent:  "*",
				POS:     POSUnknown,
			})
		}
	}

	for i := range out {
		switch {
		case out[i].Accent == "*" || out[i].Accent == "":
			out[i].Accent = "0"
		case strings.ContainsAny(out[i].Accent, "/,"):
			out[i].Accent = strings.FieldsFunc(out[i].Accent, func(r rune) bool {
				return r == '/' || r == ','
			})[0]
		}
	}
	return out, nil
}
