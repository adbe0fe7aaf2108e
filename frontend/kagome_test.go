package frontend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKagomeParseWords(t *testing.T) {
	k := NewKagome()
	words, err := k.ParseWords("私は思う")
	require.NoError(t, err)
	require.NotEmpty(t, words)

	assert.Equal(t, "私", words[0].Surface)
	assert.Equal(t, "ワタシ", words[0].Reading)

	// surfaces concatenate back to the input
	var surfaces []string
	for _, w := range words {
		surfaces = append(surfaces, w.Surface)
	}
	assert.Equal(t, "私は思う", strings.Join(surfaces, ""))
}

func TestKagomeParseWordsUnreadable(t *testing.T) {
	k := NewKagome()
	words, err := k.ParseWords("!")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, Unreadable, words[0].Reading)
}

func TestKagomeParseWordsEmpty(t *testing.T) {
	k := NewKagome()
	words, err := k.ParseWords("")
	require.NoError(t, err)
	assert.Empty(t, words)
}
