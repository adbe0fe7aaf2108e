package mora

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japaneseg2p/model"
)

func TestKataToPhonemes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"greeting", "コンニチワ", []string{"k", "o", "N", "n", "i", "ch", "i", "w", "a"}},
		{"digraph", "キャット", []string{"ky", "a", "q", "t", "o"}},
		{"elongation", "ソーナノカ", []string{"s", "o", "o", "n", "a", "n", "o", "k", "a"}},
		{"leading elongation run", "ーーソーナノカーー", []string{"ー", "ー", "s", "o", "o", "n", "a", "n", "o", "k", "a", "a", "a"}},
		{"foreign mora", "フェニックス", []string{"f", "e", "n", "i", "q", "k", "u", "s", "u"}},
		{"single punctuation", "…", []string{"…"}},
		{"punctuation run", "!?", []string{"!", "?"}},
		{"filler", "'", []string{"'"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KataToPhonemes(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKataToPhonemesRejectsNonKatakana(t *testing.T) {
	for _, in := range []string{"あいう", "ハシa", "漢字"} {
		_, err := KataToPhonemes(in)
		assert.ErrorIs(t, err, model.ErrInvalidFormat, "input %q", in)
	}
}

func TestHandleLong(t *testing.T) {
	tests := []struct {
		name string
		in   [][]string
		want [][]string
	}{
		{
			"extends previous word vowel",
			[][]string{{"w", "a"}, {"ー", "s", "u"}},
			[][]string{{"w", "a"}, {"a", "s", "u"}},
		},
		{
			"extends previous word nasal",
			[][]string{{"h", "o", "N"}, {"ー"}},
			[][]string{{"h", "o", "N"}, {"N"}},
		},
		{
			"dash at text start",
			[][]string{{"ー", "ー"}, {"k", "a"}},
			[][]string{{"-", "-"}, {"k", "a"}},
		},
		{
			"dash after punctuation",
			[][]string{{"!"}, {"ー", "k", "a"}},
			[][]string{{"!"}, {"-", "k", "a"}},
		},
		{
			"skips empty readings",
			[][]string{{"k", "a"}, {}, {"ー"}},
			[][]string{{"k", "a"}, {}, {"a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandleLong(tt.in))
		})
	}
}

func TestIsPunct(t *testing.T) {
	assert.True(t, IsPunct("!"))
	assert.True(t, IsPunct("..."))
	assert.True(t, IsPunct("-"))
	assert.False(t, IsPunct(""))
	assert.False(t, IsPunct("か"))
	assert.False(t, IsPunct("!か"))
}

func TestKanaScriptConversion(t *testing.T) {
	assert.Equal(t, "コンニチハ", HiraToKata("こんにちは"))
	assert.Equal(t, "こんにちは", KataToHira("コンニチハ"))
	// punctuation and elongation marks pass through
	assert.Equal(t, "ナニ?ー", HiraToKata("なに?ー"))
}
