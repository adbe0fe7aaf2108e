package model

import "errors"

// PhoneTone pairs one phoneme with its binary pitch level.
// During accent-phrase accumulation Tone may transiently hold other values;
// every PhoneTone that leaves the prosody package has Tone 0 or 1.
type PhoneTone struct {
	Phone string `json:"phone"`
	Tone  int    `json:"tone"`
}

// Result is the output triple of a conversion, plus any advisory
// diagnostics collected along the way (e.g. unreadable-text substitutions).
// Invariants: len(Phones) == len(Tones) == sum(Word2Ph); both sequences are
// bracketed by the boundary phoneme "_" with tone 0 and word2ph count 1.
type Result struct {
	Phones      []string     `json:"phones"`
	Tones       []int        `json:"tones"`
	Word2Ph     []int        `json:"word2ph"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Diagnostic records a recoverable oddity the pipeline worked around.
// The caller decides whether and how to log it.
type Diagnostic struct {
	Word    string `json:"word"`
	Message string `json:"message"`
}

// Error taxonomy. Everything the pipeline returns wraps one of these.
var (
	// ErrUnreadableText: the analyzer produced no reading for a
	// non-punctuation substring and strict mode was requested.
	ErrUnreadableText = errors.New("unreadable text")

	// ErrInvalidFormat: a reading expected to be pure kana or punctuation
	// is not. Indicates an upstream analyzer or normalization bug.
	ErrInvalidFormat = errors.New("invalid reading format")

	// ErrAlignment: the punctuation-preserving and punctuation-free phoneme
	// streams disagree outside punctuation, or a length invariant failed.
	ErrAlignment = errors.New("phoneme alignment inconsistency")

	// ErrTone: an accent phrase accumulated a tone set that is neither
	// {0}, {0,1} nor {-1,0}.
	ErrTone = errors.New("unexpected tone values")

	// ErrReconcile: the reconciler could not keep every word2ph slot
	// within [1,6] while matching the override phoneme count.
	ErrReconcile = errors.New("override phonemes incompatible with text")
)
