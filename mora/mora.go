// Package mora holds the static kana-to-phoneme tables and the reading
// conversion used by the G2P pipeline. The phoneme inventory follows the
// OpenJTalk conventions (moraic nasal "N", geminate "q", dash "-").
package mora

import "strings"

// Punctuations is the fixed set of punctuation characters that may appear
// in normalized text and survive into the phoneme stream.
var Punctuations = []string{"!", "?", "…", ",", ".", "'", "-"}

var punctSet = func() map[rune]bool {
	m := make(map[rune]bool, len(Punctuations))
	for _, p := range Punctuations {
		m[[]rune(p)[0]] = true
	}
	return m
}()

// IsPunct reports whether every rune of s is in the punctuation set.
// The empty string is not punctuation.
func IsPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !punctSet[r] {
			return false
		}
	}
	return true
}

// longable are the phonemes the elongation mark may copy: the five vowels
// and the moraic nasal.
var longable = map[string]bool{
	"a": true, "i": true, "u": true, "e": true, "o": true, "N": true,
}

// Longable reports whether the elongation mark after phoneme p denotes true
// lengthening (as opposed to a quotation dash).
func Longable(p string) bool { return longable[p] }

// entry maps one kana mora glyph to its consonant+vowel phonemes.
// Consonant may be empty for bare vowels and the special morae.
type entry struct {
	kana      string
	consonant string
	vowel     string
}

// moraTable lists every known mora. Digraphs (yōon and foreign morae) are
// kept separate from single kana; the converter always tries a two-rune
// match first.
var moraTable = []entry{
	// 拗音・外来語 (2文字)
	{"イェ", "y", "e"},
	{"ウィ", "w", "i"},
	{"ウェ", "w", "e"},
	{"ウォ", "w", "o"},
	{"キャ", "ky", "a"},
	{"キュ", "ky", "u"},
	{"キェ", "ky", "e"},
	{"キョ", "ky", "o"},
	{"ギャ", "gy", "a"},
	{"ギュ", "gy", "u"},
	{"ギェ", "gy", "e"},
	{"ギョ", "gy", "o"},
	{"クヮ", "kw", "a"},
	{"グヮ", "gw", "a"},
	{"シャ", "sh", "a"},
	{"シュ", "sh", "u"},
	{"シェ", "sh", "e"},
	{"ショ", "sh", "o"},
	{"ジャ", "j", "a"},
	{"ジュ", "j", "u"},
	{"ジェ", "j", "e"},
	{"ジョ", "j", "o"},
	{"スィ", "s", "i"},
	{"ズィ", "z", "i"},
	{"チャ", "ch", "a"},
	{"チュ", "ch", "u"},
	{"チェ", "ch", "e"},
	{"チョ", "ch", "o"},
	{"ツァ", "ts", "a"},
	{"ツィ", "ts", "i"},
	{"ツェ", "ts", "e"},
	{"ツォ", "ts", "o"},
	{"ティ", "t", "i"},
	{"トゥ", "t", "u"},
	{"テュ", "ty", "u"},
	{"ディ", "d", "i"},
	{"ドゥ", "d", "u"},
	{"デュ", "dy", "u"},
	{"ニャ", "ny", "a"},
	{"ニュ", "ny", "u"},
	{"ニェ", "ny", "e"},
	{"ニョ", "ny", "o"},
	{"ヒャ", "hy", "a"},
	{"ヒュ", "hy", "u"},
	{"ヒェ", "hy", "e"},
	{"ヒョ", "hy", "o"},
	{"ビャ", "by", "a"},
	{"ビュ", "by", "u"},
	{"ビェ", "by", "e"},
	{"ビョ", "by", "o"},
	{"ピャ", "py", "a"},
	{"ピュ", "py", "u"},
	{"ピェ", "py", "e"},
	{"ピョ", "py", "o"},
	{"ファ", "f", "a"},
	{"フィ", "f", "i"},
	{"フェ", "f", "e"},
	{"フォ", "f", "o"},
	{"フュ", "hy", "u"},
	{"ミャ", "my", "a"},
	{"ミュ", "my", "u"},
	{"ミェ", "my", "e"},
	{"ミョ", "my", "o"},
	{"リャ", "ry", "a"},
	{"リュ", "ry", "u"},
	{"リェ", "ry", "e"},
	{"リョ", "ry", "o"},
	{"ヴァ", "v", "a"},
	{"ヴィ", "v", "i"},
	{"ヴェ", "v", "e"},
	{"ヴォ", "v", "o"},

	// 単独カナ
	{"ア", "", "a"},
	{"イ", "", "i"},
	{"ウ", "", "u"},
	{"エ", "", "e"},
	{"オ", "", "o"},
	{"カ", "k", "a"},
	{"キ", "k", "i"},
	{"ク", "k", "u"},
	{"ケ", "k", "e"},
	{"コ", "k", "o"},
	{"ガ", "g", "a"},
	{"ギ", "g", "i"},
	{"グ", "g", "u"},
	{"ゲ", "g", "e"},
	{"ゴ", "g", "o"},
	{"サ", "s", "a"},
	{"シ", "sh", "i"},
	{"ス", "s", "u"},
	{"セ", "s", "e"},
	{"ソ", "s", "o"},
	{"ザ", "z", "a"},
	{"ジ", "j", "i"},
	{"ズ", "z", "u"},
	{"ゼ", "z", "e"},
	{"ゾ", "z", "o"},
	{"タ", "t", "a"},
	{"チ", "ch", "i"},
	{"ツ", "ts", "u"},
	{"テ", "t", "e"},
	{"ト", "t", "o"},
	{"ダ", "d", "a"},
	{"ヂ", "j", "i"},
	{"ヅ", "z", "u"},
	{"デ", "d", "e"},
	{"ド", "d", "o"},
	{"ナ", "n", "a"},
	{"ニ", "n", "i"},
	{"ヌ", "n", "u"},
	{"ネ", "n", "e"},
	{"ノ", "n", "o"},
	{"ハ", "h", "a"},
	{"ヒ", "h", "i"},
	{"フ", "f", "u"},
	{"ヘ", "h", "e"},
	{"ホ", "h", "o"},
	{"バ", "b", "a"},
	{"ビ", "b", "i"},
	{"ブ", "b", "u"},
	{"ベ", "b", "e"},
	{"ボ", "b", "o"},
	{"パ", "p", "a"},
	{"ピ", "p", "i"},
	{"プ", "p", "u"},
	{"ペ", "p", "e"},
	{"ポ", "p", "o"},
	{"マ", "m", "a"},
	{"ミ", "m", "i"},
	{"ム", "m", "u"},
	{"メ", "m", "e"},
	{"モ", "m", "o"},
	{"ヤ", "y", "a"},
	{"ユ", "y", "u"},
	{"ヨ", "y", "o"},
	{"ラ", "r", "a"},
	{"リ", "r", "i"},
	{"ル", "r", "u"},
	{"レ", "r", "e"},
	{"ロ", "r", "o"},
	{"ワ", "w", "a"},
	{"ヰ", "", "i"},
	{"ヱ", "", "e"},
	{"ヲ", "", "o"},
	{"ヴ", "v", "u"},
	// 小書きの母音は単独では並の母音扱い
	{"ァ", "", "a"},
	{"ィ", "", "i"},
	{"ゥ", "", "u"},
	{"ェ", "", "e"},
	{"ォ", "", "o"},
	{"ヮ", "w", "a"},
	// 特殊モーラ
	{"ン", "", "N"},
	{"ッ", "", "q"},
}

// mora2 / mora1 index the table by glyph rune count for greedy matching.
var mora2 map[string]entry
var mora1 map[string]entry

func init() {
	mora2 = make(map[string]entry)
	mora1 = make(map[string]entry)
	for _, e := range moraTable {
		if len([]rune(e.kana)) == 2 {
			mora2[e.kana] = e
		} else {
			mora1[e.kana] = e
		}
	}
}

// HiraToKata converts hiragana runes to their katakana counterparts,
// leaving everything else alone.
func HiraToKata(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'ぁ' && r <= 'ゖ' {
			r += 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

// KataToHira is the inverse conversion, used for display-side helpers.
func KataToHira(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}
