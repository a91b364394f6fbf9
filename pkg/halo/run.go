package halo

import (
	"context"

	"github.com/rileyhilliard/halo/internal/textutil"
)

type runConfig struct {
	final  bool
	symbol string
	text   string
}

// RunOption configures Run and RunEach.
type RunOption func(*runConfig)

// WithFinal ends the run with "<symbol> <text>" through StopAndPersist,
// whatever fn returned, instead of a success or failure line. Empty text
// keeps the current text; an empty symbol draws a blank.
func WithFinal(symbol, text string) RunOption {
	return func(c *runConfig) {
		c.final = true
		c.symbol = symbol
		c.text = text
	}
}

// Run starts the spinner, calls fn, and finishes with Succeed when fn
// returns nil or Fail when it returns an error. If ctx is cancelled before
// fn returns with an error, the spinner is stopped without a status line.
// fn's error comes first in the returned error.
func (s *Spinner) Run(ctx context.Context, fn func(ctx context.Context) error, opts ...RunOption) error {
	cfg := runOptions(opts)
	if err := s.Start(); err != nil {
		return err
	}
	return s.finishRun(ctx, fn(ctx), cfg)
}

// RunEach runs fn once per item under a single spinner. Before each call the
// spinner text is template with its {placeholders} filled from the item,
// matched by position (see the example). The first error ends the loop and
// is finished like Run; so is a cancelled ctx between items.
//
//	s.RunEach(ctx, "Loading {task}", [][]string{{"breakfast"}, {"lunch"}}, load)
func (s *Spinner) RunEach(ctx context.Context, template string, items [][]string, fn func(ctx context.Context, item []string) error, opts ...RunOption) error {
	cfg := runOptions(opts)
	if len(items) > 0 {
		s.SetText(textutil.Fill(template, items[0]))
	}
	if err := s.Start(); err != nil {
		return err
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return s.finishRun(ctx, err, cfg)
		}
		s.SetText(textutil.Fill(template, item))
		if err := fn(ctx, item); err != nil {
			return s.finishRun(ctx, err, cfg)
		}
	}
	return s.finishRun(ctx, nil, cfg)
}

func runOptions(opts []RunOption) runConfig {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (s *Spinner) finishRun(ctx context.Context, err error, cfg runConfig) error {
	switch {
	case err != nil && ctx.Err() != nil:
		return joinErrors(err, s.Stop())
	case cfg.final:
		return joinErrors(err, s.StopAndPersist(cfg.symbol, cfg.text))
	case err != nil:
		return joinErrors(err, s.Fail(""))
	}
	return s.Succeed("")
}
