// Package frontend defines the linguistic front-end collaborators the G2P
// pipeline consumes, and provides the kagome-backed word parser.
package frontend

// Word is one analyzer word: the surface substring of the normalized text
// and the raw reading (pronunciation) the analyzer assigned to it.
type Word struct {
	Surface string
	Reading string
}

// Unreadable is the raw reading an analyzer reports when it cannot produce
// a pronunciation for a non-punctuation word.
const Unreadable = "、"

// WordParser segments normalized text into words with readings.
type WordParser interface {
	ParseWords(text string) ([]Word, error)
}

// Labeler produces OpenJTalk-compatible full-context phonetic labels for
// normalized text. One label per phonetic unit, silence first and last.
type Labeler interface {
	Labels(text string) ([]string, error)
}
