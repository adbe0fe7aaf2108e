package prosody

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japaneseg2p/model"
)

// label builds a minimal full-context label carrying just the features the
// extractor reads: the phoneme, the A block and the forward mora count.
func label(p3 string, a1, a2, a3, f1 int) string {
	return fmt.Sprintf("xx^xx-%s+xx=xx/A:%d+%d+%d/F:%d_xx", p3, a1, a2, a3, f1)
}

func silLabel(e3 int) string {
	return fmt.Sprintf("xx^xx-sil+xx=xx!%d_xx", e3)
}

// hashiLabels spells ハシ with the accent nucleus on the first mora, the
// pattern of 箸: high on ha, falling into shi.
func hashiLabels(e3 int) []string {
	return []string{
		silLabel(0),
		label("h", 0, 1, 2, 2),
		label("a", 0, 1, 2, 2),
		label("sh", 1, 2, 1, 2),
		label("i", 1, 2, 1, 2),
		silLabel(e3),
	}
}

func TestExtractSymbolsFall(t *testing.T) {
	got, err := ExtractSymbols(hashiLabels(0), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"^", "h", "a", "]", "sh", "i", "$"}, got)
}

func TestExtractSymbolsQuestion(t *testing.T) {
	got, err := ExtractSymbols(hashiLabels(1), true)
	require.NoError(t, err)
	assert.Equal(t, "?", got[len(got)-1])
}

func TestExtractSymbolsRiseAndPause(t *testing.T) {
	// ミカン, flat accent: rise after the first mora, then a pause
	labels := []string{
		silLabel(0),
		label("m", 5, 1, 3, 3),
		label("i", 5, 1, 3, 3),
		label("k", 5, 2, 2, 3),
		label("a", 5, 2, 2, 3),
		label("N", 5, 3, 1, 3),
		"xx^xx-pau+xx=xx",
		label("m", 5, 1, 3, 3),
		label("i", 5, 1, 3, 3),
		label("k", 5, 2, 2, 3),
		label("a", 5, 2, 2, 3),
		label("N", 5, 3, 1, 3),
		silLabel(0),
	}
	got, err := ExtractSymbols(labels, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"^", "m", "i", "[", "k", "a", "N",
		"_", "m", "i", "[", "k", "a", "N", "$",
	}, got)
}

func TestExtractSymbolsPhraseBreak(t *testing.T) {
	// final mora of an accent phrase followed by the first mora of the next
	labels := []string{
		silLabel(0),
		label("k", 5, 1, 1, 1),
		label("a", 5, 1, 1, 1),
		label("t", 5, 1, 2, 2),
		label("o", 5, 1, 2, 2),
		label("k", 5, 2, 1, 2),
		label("a", 5, 2, 1, 2),
		silLabel(0),
	}
	got, err := ExtractSymbols(labels, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"^", "k", "a", "#", "t", "o", "[", "k", "a", "$"}, got)
}

func TestExtractSymbolsDevoicedVowel(t *testing.T) {
	labels := []string{
		silLabel(0),
		label("s", 0, 1, 1, 1),
		label("U", 0, 1, 1, 1),
		silLabel(0),
	}
	lowered, err := ExtractSymbols(labels, true)
	require.NoError(t, err)
	assert.Contains(t, lowered, "u")

	kept, err := ExtractSymbols(labels, false)
	require.NoError(t, err)
	assert.Contains(t, kept, "U")
}

func TestExtractSymbolsInteriorSilence(t *testing.T) {
	labels := []string{
		silLabel(0),
		label("k", 0, 1, 1, 1),
		silLabel(0),
		label("a", 0, 1, 1, 1),
		silLabel(0),
	}
	_, err := ExtractSymbols(labels, true)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestExtractAndAssignGreetingSentence(t *testing.T) {
	// こんにちは、世界ー。。元気？！ label-level rendition: three accent
	// phrases separated by pauses, question ending
	labels := []string{
		silLabel(1),
		// コンニチワ, flat
		label("k", 9, 1, 5, 5),
		label("o", 9, 1, 5, 5),
		label("N", 9, 2, 4, 5),
		label("n", 9, 3, 3, 5),
		label("i", 9, 3, 3, 5),
		label("ch", 9, 4, 2, 5),
		label("i", 9, 4, 2, 5),
		label("w", 9, 5, 1, 5),
		label("a", 9, 5, 1, 5),
		"xx^xx-pau+xx=xx",
		// セカイー, nucleus on the first mora
		label("s", 0, 1, 4, 4),
		label("e", 0, 1, 4, 4),
		label("k", 1, 2, 3, 4),
		label("a", 1, 2, 3, 4),
		label("i", 2, 3, 2, 4),
		label("i", 3, 4, 1, 4),
		"xx^xx-pau+xx=xx",
		// ゲンキ, nucleus on the first mora
		label("g", 0, 1, 3, 3),
		label("e", 0, 1, 3, 3),
		label("N", 1, 2, 2, 3),
		label("k", 2, 3, 1, 3),
		label("i", 2, 3, 1, 3),
		silLabel(1),
	}
	symbols, err := ExtractSymbols(labels, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"^", "k", "o", "[", "N", "n", "i", "ch", "i", "w", "a",
		"_", "s", "e", "]", "k", "a", "i", "i",
		"_", "g", "e", "]", "N", "k", "i", "?",
	}, symbols)

	pairs, err := PhoneTones(symbols)
	require.NoError(t, err)
	tones := make([]int, len(pairs))
	for i, pt := range pairs {
		tones[i] = pt.Tone
	}
	assert.Equal(t, []int{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0}, tones)
}

func TestPhoneTones(t *testing.T) {
	// こんにちは、世界ー。。元気？！ without punctuation
	symbols := []string{
		"^", "k", "o", "[", "N", "n", "i", "ch", "i", "w", "a",
		"_", "s", "e", "]", "k", "a", "i", "i",
		"_", "g", "e", "]", "N", "k", "i", "?",
	}
	got, err := PhoneTones(symbols)
	require.NoError(t, err)
	want := []model.PhoneTone{
		{Phone: "k", Tone: 0}, {Phone: "o", Tone: 0},
		{Phone: "N", Tone: 1}, {Phone: "n", Tone: 1}, {Phone: "i", Tone: 1},
		{Phone: "ch", Tone: 1}, {Phone: "i", Tone: 1}, {Phone: "w", Tone: 1}, {Phone: "a", Tone: 1},
		{Phone: "s", Tone: 1}, {Phone: "e", Tone: 1},
		{Phone: "k", Tone: 0}, {Phone: "a", Tone: 0}, {Phone: "i", Tone: 0}, {Phone: "i", Tone: 0},
		{Phone: "g", Tone: 1}, {Phone: "e", Tone: 1},
		{Phone: "N", Tone: 0}, {Phone: "k", Tone: 0}, {Phone: "i", Tone: 0},
	}
	assert.Equal(t, want, got)
}

func TestPhoneTonesRenamesGeminate(t *testing.T) {
	got, err := PhoneTones([]string{"^", "k", "a", "cl", "t", "a", "$"})
	require.NoError(t, err)
	assert.Equal(t, "q", got[2].Phone)
}

func TestPhoneTonesInconsistentMarkers(t *testing.T) {
	// two rises in one phrase push the tone set to {0,1,2}
	_, err := PhoneTones([]string{"^", "k", "a", "[", "t", "[", "a", "$"})
	assert.ErrorIs(t, err, model.ErrTone)
}

func TestAlignTones(t *testing.T) {
	phones := []string{"…", "w", "a", ",", ",", "s", "o", "o", "!"}
	tones := []model.PhoneTone{
		{Phone: "w", Tone: 0}, {Phone: "a", Tone: 1},
		{Phone: "s", Tone: 1}, {Phone: "o", Tone: 1}, {Phone: "o", Tone: 0},
	}
	got, err := AlignTones(phones, tones)
	require.NoError(t, err)
	want := []model.PhoneTone{
		{Phone: "…", Tone: 0},
		{Phone: "w", Tone: 0}, {Phone: "a", Tone: 1},
		{Phone: ",", Tone: 0}, {Phone: ",", Tone: 0},
		{Phone: "s", Tone: 1}, {Phone: "o", Tone: 1}, {Phone: "o", Tone: 0},
		{Phone: "!", Tone: 0},
	}
	assert.Equal(t, want, got)
}

func TestAlignTonesMismatch(t *testing.T) {
	_, err := AlignTones([]string{"k", "a"}, []model.PhoneTone{{Phone: "s", Tone: 0}})
	assert.ErrorIs(t, err, model.ErrAlignment)
}
