package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japaneseg2p/model"
)

func TestAccentToTones(t *testing.T) {
	tests := []struct {
		name   string
		kana   string
		accent string
		want   []int
	}{
		// ミカン: m i | k a N
		{"flat", "ミカン", "0", []int{0, 0, 1, 1, 1}},
		// ハシ(箸): h a | sh i
		{"head", "ハシ", "1", []int{1, 1, 0, 0}},
		// オカシ: o | k a | sh i
		{"middle nucleus", "オカシ", "2", []int{0, 1, 1, 0, 0}},
		// コンニチワ: k o N n i ch i | w a
		{"tail nucleus", "コンニチワ", "5", []int{0, 0, 0, 0, 0, 0, 0, 1, 1}},
		{"one mora accented", "テ", "1", []int{1, 1}},
		{"one mora flat", "テ", "0", []int{0, 0}},
		{"glide pair accented", "シャ", "1", []int{1, 1}},
		{"glide pair flat", "シャ", "0", []int{0, 0}},
		// フェニックス: f e | n i | q k u s u
		{"leading glide nucleus two", "フェニックス", "2", []int{0, 0, 1, 1, 0, 0, 0, 0, 0}},
		{"all high", "ソー", AccentAllHigh, []int{1, 1, 1}},
		{"all low", "ソー", AccentAllLow, []int{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccentToTones(tt.kana, tt.accent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccentToTonesGlideAfterNucleus(t *testing.T) {
	// nucleus mora followed by a glide glyph keeps the glide high
	// カシャミ with nucleus 2: k a | sh a | m i
	got, err := AccentToTones("カシャミ", "2")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 0, 0}, got)
}

func TestAccentToTonesErrors(t *testing.T) {
	_, err := AccentToTones("ミカン", "x")
	assert.ErrorIs(t, err, model.ErrInvalidFormat)

	_, err = AccentToTones("ミカン", "-1")
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestAccentToTonesNucleusBeyondReading(t *testing.T) {
	got, err := AccentToTones("ハシ", "5")
	require.NoError(t, err)
	assert.Empty(t, got)
}
