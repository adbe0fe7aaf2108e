package dialect

import (
	"strconv"
	"strings"
)

// Rule names one dialect transform. Rules compose by sequential application
// in the order the caller lists them; order changes the outcome.
type Rule string

const (
	// Regional systems (NHKアクセント辞典の区分に基づく).
	RuleKinki  Rule = "kinki"
	RuleKyusyu Rule = "kyusyu"

	// Consonant mutations.
	RuleB2V     Rule = "convert2b2v"
	RuleT2Ts    Rule = "convert2t2ts"
	RuleD2R     Rule = "convert2d2r"
	RuleR2D     Rule = "convert2r2d"
	RuleS2ZSh2J Rule = "convert2s2z_sh2j"

	// First-token mora effects.
	RuleFirstMoraLong      Rule = "1st_mora_tyouon"
	RuleFirstMoraGeminate  Rule = "1st_mora_sokuon"
	RuleFirstMoraRemove    Rule = "1st_mora_remove"
	RuleFirstMoraDiphthong Rule = "1st_mora_renboin"

	// Last-token accent effects.
	RuleLastMoraAccH Rule = "last_mora_acc_h"
	RuleLastWordAcc1 Rule = "last_word_acc_1"

	// Glide-vowel insertions per vowel row.
	RuleAddYouonA Rule = "add_youon_a"
	RuleAddYouonI Rule = "add_youon_i"
	RuleAddYouonE Rule = "add_youon_e"
	RuleAddYouonO Rule = "add_youon_o"

	// Other manners of speech.
	RuleHatsuonbin Rule = "hatuonbin"
	RuleYoujigo    Rule = "youjigo_like"
)

// subst is one ordered glyph substitution.
type subst struct{ old, new string }

// Substitution tables. Order within a table matters: earlier entries may
// feed later ones (シャ→ジャ must run before シ→ジ).
var (
	b2vTable = []subst{
		{"バ", "ヴァ"}, {"ビ", "ヴィ"}, {"ブ", "ヴ"}, {"ベ", "ヴェ"}, {"ボ", "ヴォ"},
	}
	t2tsTable = []subst{
		{"タ", "ツァ"}, {"チ", "ツィ"}, {"テ", "ツェ"}, {"ト", "ツォ"},
	}
	d2rTable = []subst{
		{"ダ", "ラ"}, {"デ", "レ"}, {"ド", "ロ"},
	}
	r2dTable = []subst{
		{"ラ", "ダ"}, {"レ", "デ"}, {"ロ", "ド"},
	}
	s2zTable = []subst{
		{"サ", "ザ"}, {"スィ", "ズィ"}, {"ス", "ズ"}, {"セ", "ゼ"}, {"ソ", "ゾ"},
		{"シャ", "ジャ"}, {"シ", "ジ"}, {"シュ", "ジュ"}, {"シェ", "ジェ"}, {"ショ", "ジョ"},
	}
	youjigoTable = []subst{
		{"サ", "チャ"}, {"シ", "チ"}, {"ス", "チュ"}, {"セ", "チェ"}, {"ソ", "チョ"},
	}
	kyusyuTable = []subst{
		// 九州のほぼ全域で e→ye, se→she, ze→je と発音する
		{"エ", "イェ"}, {"セ", "シェ"}, {"ゼ", "ジェ"},
	}
)

func applySubst(kana string, table []subst) string {
	for _, s := range table {
		kana = strings.ReplaceAll(kana, s.old, s.new)
	}
	return kana
}

// Vowel-row rune sets for insertion rules, with the small-glide runes that
// extend a match rightwards.
var (
	aDan = runeSet("アカサタナハマヤラワガダバパ")
	iDan = runeSet("イキシチニヒミリギジビピ")
	eDan = runeSet("エケセテネヘメレゲデベペ")
	oDan = runeSet("オコソトノホモヨロゴゾドボポ")

	aGlides = runeSet("ャヮ")
	iGlides = runeSet("ィ")
	eGlides = runeSet("ェ")
	oGlides = runeSet("ョォ")

	youon = runeSet("ァィゥェォャュョヮ")

	kyusyuNasalFinals = runeSet("ヌニムモミ")
)

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

// findRow locates the first rune in row (or the first run of glide runes)
// and returns the rune range [start, end) of the match, or (-1, -1).
func findRow(kana []rune, row, glides map[rune]bool) (int, int) {
	for i, r := range kana {
		if row[r] {
			return i, i + 1
		}
		if glides[r] {
			j := i + 1
			for j < len(kana) && glides[kana[j]] {
				j++
			}
			return i, j
		}
	}
	return -1, -1
}

func insertAt(kana []rune, pos int, glyph rune) string {
	out := make([]rune, 0, len(kana)+1)
	out = append(out, kana[:pos]...)
	out = append(out, glyph)
	out = append(out, kana[pos:]...)
	return string(out)
}

// Apply runs the named rules over the token list in the given order,
// mutating readings and accent codes. The Keihan accent remap that belongs
// to the kinki system is applied separately by ApplyKeihan so that callers
// can order it after all reading changes.
func Apply(tokens []Token, rules []Rule) []Token {
	for _, rule := range rules {
		if fn, ok := ruleFuncs[rule]; ok {
			fn(tokens)
		}
	}
	return tokens
}

var ruleFuncs = map[Rule]func([]Token){
	RuleKyusyu: func(ts []Token) {
		for i := range ts {
			ts[i].Kana = applySubst(ts[i].Kana, kyusyuTable)
			// 撥音化: 語末のヌニムモミは ン で発音される
			runes := []rune(ts[i].Kana)
			if len(runes) > 0 && kyusyuNasalFinals[runes[len(runes)-1]] {
				ts[i].Kana = string(runes[:len(runes)-1]) + "ン"
			}
		}
	},
	RuleKinki: func(ts []Token) {
		for i := range ts {
			// 1拍の名詞は長音化して2拍で発音する
			if ts[i].POS == "名詞" && len([]rune(ts[i].Kana)) == 1 {
				ts[i].Kana += "ー"
			}
		}
	},
	RuleB2V: func(ts []Token) {
		for i := range ts {
			ts[i].Kana = applySubst(ts[i].Kana, b2vTable)
		}
	},
	RuleT2Ts: func(ts []Token) {
		for i := range ts {
			ts[i].Kana = applySubst(ts[i].Kana, t2tsTable)
		}
	},
	RuleD2R: func(ts []Token) {
		for i := range ts {
			ts[i].Kana = applySubst(ts[i].Kana, d2rTable)
		}
		if len(ts) > 0 {
			ts[0].Accent = "0"
		}
	},
	RuleR2D: func(ts []Token) {
		for i := range ts {
			ts[i].Kana = applySubst(ts[i].Kana, r2dTable)
		}
		if len(ts) > 0 {
			ts[0].Accent = "1"
		}
	},
	RuleS2ZSh2J: func(ts []Token) {
		for i := range ts {
			ts[i].Kana = applySubst(ts[i].Kana, s2zTable)
		}
		if len(ts) > 0 {
			ts[0].Accent = "1"
		}
	},
	RuleHatsuonbin: func(ts []Token) {
		for i := range ts {
			runes := []rune(ts[i].Kana)
			if len(runes) == 1 {
				continue
			}
			// 語頭と語末は置き換えず、1種類ずつしか撥音化しない
			inner := string(runes[1 : len(runes)-1])
			for _, glyph := range []string{"ナ", "ノ", "ル", "ラ"} {
				if strings.Contains(inner, glyph) {
					ts[i].Kana = strings.ReplaceAll(ts[i].Kana, glyph, "ン")
					break
				}
			}
		}
	},
	RuleYoujigo: func(ts []Token) {
		for i := range ts {
			ts[i].Kana = applySubst(ts[i].Kana, youjigoTable)
		}
	},
	RuleAddYouonA: func(ts []Token) {
		for i := range ts {
			runes := []rune(ts[i].Kana)
			if _, end := findRow(runes, aDan, aGlides); end >= 0 {
				ts[i].Kana = insertAt(runes, end, 'ァ')
				// 挿入した ァ がアクセント核になる
				ts[i].Accent = strconv.Itoa(end)
			}
		}
	},
	RuleAddYouonI: func(ts []Token) {
		for i := range ts {
			runes := []rune(ts[i].Kana)
			_, end := findRow(runes, iDan, iGlides)
			if end < 0 {
				continue
			}
			if end < len(runes) && runes[end] != 'ャ' {
				ts[i].Kana = insertAt(runes, end, 'ィ')
				ts[i].Accent = "1"
			} else if !strings.ContainsRune(ts[i].Kana, 'ャ') {
				ts[i].Kana = insertAt(runes, end, 'ィ')
				ts[i].Accent = "1"
			}
		}
	},
	RuleAddYouonE: func(ts []Token) {
		for i := range ts {
			runes := []rune(ts[i].Kana)
			if _, end := findRow(runes, eDan, eGlides); end >= 0 {
				ts[i].Kana = insertAt(runes, end, 'ェ')
				ts[i].Accent = strconv.Itoa(end)
			}
		}
	},
	RuleAddYouonO: func(ts []Token) {
		for i := range ts {
			runes := []rune(ts[i].Kana)
			if _, end := findRow(runes, oDan, oGlides); end >= 0 {
				ts[i].Kana = insertAt(runes, end, 'ォ')
				ts[i].Accent = "1"
			}
		}
	},
	RuleFirstMoraLong: func(ts []Token) {
		firstMoraInsert(ts, 'ー')
		if len(ts) > 0 {
			ts[0].Accent = "1"
		}
	},
	RuleFirstMoraGeminate: func(ts []Token) {
		firstMoraInsert(ts, 'ッ')
		if len(ts) > 0 {
			ts[0].Accent = "1"
		}
	},
	RuleFirstMoraRemove: func(ts []Token) {
		if len(ts) == 0 {
			return
		}
		runes := []rune(ts[0].Kana)
		start, end := findYouonRun(runes)
		if start >= 0 {
			if start == 1 {
				ts[0].Kana = "ッ" + string(runes[end:])
			}
		} else if len(runes) > 0 {
			ts[0].Kana = "ッ" + string(runes[1:])
		}
	},
	RuleFirstMoraDiphthong: func(ts []Token) {
		if len(ts) == 0 {
			return
		}
		runes := []rune(ts[0].Kana)
		if _, end := findRow(runes, oDan, oGlides); end >= 0 {
			ts[0].Kana = insertAt(runes, end, 'ゥ')
			ts[0].Accent = "1"
		} else if _, end := findRow(runes, eDan, eGlides); end >= 0 {
			ts[0].Kana = insertAt(runes, end, 'ィ')
			ts[0].Accent = "1"
		}
	},
	RuleLastMoraAccH: func(ts []Token) {
		if len(ts) == 0 {
			return
		}
		last := len(ts) - 1
		ts[last].Accent = strconv.Itoa(len([]rune(ts[last].Kana)))
	},
	RuleLastWordAcc1: func(ts []Token) {
		if len(ts) > 0 {
			ts[len(ts)-1].Accent = "1"
		}
	},
}

// firstMoraInsert puts glyph after the first mora of the first token,
// keeping a leading glide run attached to its base kana.
func firstMoraInsert(ts []Token, glyph rune) {
	if len(ts) == 0 {
		return
	}
	runes := []rune(ts[0].Kana)
	start, end := findYouonRun(runes)
	if start >= 0 {
		if start == 1 {
			ts[0].Kana = insertAt(runes, end, glyph)
		}
	} else if len(runes) > 0 {
		ts[0].Kana = insertAt(runes, 1, glyph)
	}
}

func findYouonRun(runes []rune) (int, int) {
	for i, r := range runes {
		if youon[r] {
			j := i + 1
			for j < len(runes) && youon[runes[j]] {
				j++
			}
			return i, j
		}
	}
	return -1, -1
}
