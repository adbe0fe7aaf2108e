package homograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	surfaces := []string{"何", "が", "何", "でも"}
	kanas := []string{"ナニ", "ガ", "ナニ", "デモ"}

	got := Apply(surfaces, kanas, []Proposal{{Surface: "何", Reading: "なん"}})
	assert.Equal(t, []string{"ナン", "ガ", "ナン", "デモ"}, got)
	// input slice is untouched
	assert.Equal(t, "ナニ", kanas[0])
}

func TestApplyNoProposals(t *testing.T) {
	kanas := []string{"ナニ", "ガ"}
	got := Apply([]string{"何", "が"}, kanas, nil)
	assert.Equal(t, kanas, got)
}

func TestApplyKatakanaReadingKept(t *testing.T) {
	got := Apply([]string{"辛い"}, []string{"カライ"}, []Proposal{{Surface: "辛い", Reading: "ツライ"}})
	assert.Equal(t, []string{"ツライ"}, got)
}
