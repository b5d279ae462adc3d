package wakuchin

import (
	"context"
	"regexp"
	"time"
)

// Builder provides staged construction of engine inputs (spec.md §4.9).
// Rust's phantom-typed ResearchBuilder enforces "tries/times/regex
// required" at compile time; Go's type system has no lightweight
// equivalent for a three-way required-field state machine, so this
// builder instead tracks presence with booleans and fails at Run* time
// with ErrInvalidConfiguration if a required setter was skipped — the
// explicit-validation fallback spec.md §4.9 sanctions for targets that
// cannot express the state machine in their type system. See DESIGN.md.
type Builder struct {
	tries    uint64
	triesSet bool
	times    uint64
	timesSet bool
	regex    *regexp.Regexp
	regexSet bool
	handler  ProgressHandler
	interval time.Duration
	workers  uint
}

// NewBuilder returns a Builder with spec.md §4.9's defaults: 500ms
// interval, auto (0) workers, no-op progress handler.
func NewBuilder() *Builder {
	return &Builder{
		handler:  NoopHandler(),
		interval: 500 * time.Millisecond,
	}
}

func (b *Builder) Tries(tries uint64) *Builder {
	b.tries = tries
	b.triesSet = true

	return b
}

func (b *Builder) Times(times uint64) *Builder {
	b.times = times
	b.timesSet = true

	return b
}

func (b *Builder) Regex(regex *regexp.Regexp) *Builder {
	b.regex = regex
	b.regexSet = true

	return b
}

func (b *Builder) ProgressHandler(handler ProgressHandler) *Builder {
	b.handler = handler

	return b
}

func (b *Builder) ProgressInterval(interval time.Duration) *Builder {
	b.interval = interval

	return b
}

func (b *Builder) Workers(workers uint) *Builder {
	b.workers = workers

	return b
}

func (b *Builder) config() (Config, error) {
	if !b.triesSet || !b.timesSet || !b.regexSet {
		return Config{}, ErrInvalidConfiguration
	}

	return Config{
		Tries:    b.tries,
		Times:    b.times,
		Regex:    b.regex,
		Handler:  b.handler,
		Interval: b.interval,
		Workers:  b.workers,
	}, nil
}

// RunParallel validates the builder's state and runs RunParallel.
func (b *Builder) RunParallel(ctx context.Context) (Result, error) {
	cfg, err := b.config()
	if err != nil {
		return Result{}, err
	}

	return RunParallel(ctx, cfg)
}

// RunSequential validates the builder's state and runs RunSequential.
func (b *Builder) RunSequential(ctx context.Context) (Result, error) {
	cfg, err := b.config()
	if err != nil {
		return Result{}, err
	}

	return RunSequential(ctx, cfg)
}
