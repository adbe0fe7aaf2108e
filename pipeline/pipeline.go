// Package pipeline runs conversions concurrently over a channel of
// utterances, decoupling producers from the converter.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"japaneseg2p/g2p"
	"japaneseg2p/model"
)

// Utterance is one ingested text with metadata.
type Utterance struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Outcome pairs an Utterance with its conversion result or error.
type Outcome struct {
	Utterance Utterance
	Result    model.Result
	Err       error
}

// Pipeline feeds submitted utterances through a Converter on worker
// goroutines. Create with New, then Start before Submit.
type Pipeline struct {
	conv *g2p.Converter
	opts g2p.Options

	in  chan Utterance
	out chan Outcome
}

// New returns a Pipeline over conv with buffered channels.
func New(conv *g2p.Converter, opts g2p.Options) *Pipeline {
	return &Pipeline{
		conv: conv,
		opts: opts,
		in:   make(chan Utterance, 100),
		out:  make(chan Outcome, 100),
	}
}

// Outcomes is the channel conversion results are published on. It closes
// after Start's context is done and the workers have drained.
func (p *Pipeline) Outcomes() <-chan Outcome {
	return p.out
}

// Submit validates and enqueues text for conversion, returning the created
// Utterance. It blocks while the input buffer is full.
func (p *Pipeline) Submit(ctx context.Context, text string) (Utterance, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Utterance{}, errors.New("empty utterance")
	}
	u := Utterance{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}
	select {
	case <-ctx.Done():
		return Utterance{}, ctx.Err()
	case p.in <- u:
		return u, nil
	}
}

// Start launches workers goroutines that convert submitted utterances until
// ctx is done, then closes the outcome channel.
func (p *Pipeline) Start(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	done := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for {
				select {
				case <-ctx.Done():
					return
				case u := <-p.in:
					res, err := p.conv.Convert(u.Text, p.opts)
					if err != nil {
						log.WithError(err).WithField("id", u.ID).Warn("pipeline: conversion failed")
					}
					select {
					case <-ctx.Done():
						return
					case p.out <- Outcome{Utterance: u, Result: res, Err: err}:
					}
				}
			}
		}()
	}
	go func() {
		for i := 0; i < workers; i++ {
			<-done
		}
		close(p.out)
	}()
}
