package wakuchin

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Config carries the validated inputs to RunParallel/RunSequential
// (spec.md §3 Configuration).
type Config struct {
	Tries    uint64
	Times    uint64
	Regex    *regexp.Regexp
	Handler  ProgressHandler
	Interval time.Duration
	// Workers is the worker count; 0 means "auto: logical CPU count"
	// (spec.md §3), ignored by RunSequential.
	Workers uint
}

// RunParallel partitions [0, tries) across W' workers, fans their hits
// into a shared hit store, and drives the external progress handler
// from a dedicated aggregator goroutine (spec.md §4.8). ctx gives
// callers a second, idiomatic cancellation path layered on top of the
// OS-interrupt handling RunParallel installs for the duration of the
// call; cancelling ctx has the same effect as the operator's interrupt.
func RunParallel(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Tries == 0 {
		return Result{}, nil
	}
	if cfg.Times == 0 {
		return Result{}, ErrTimesIsZero
	}

	handler := cfg.Handler
	if handler == nil {
		handler = noopHandler{}
	}

	workers := int(cfg.Workers)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if uint64(workers) > cfg.Tries {
		workers = int(cfg.Tries)
	}

	ranges := partition(cfg.Tries, workers)

	var cancelled atomic.Bool

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	stopWatch := make(chan struct{})
	defer close(stopWatch)

	go func() {
		select {
		case <-sigCh:
			cancelled.Store(true)
		case <-ctx.Done():
			cancelled.Store(true)
		case <-stopWatch:
		}
	}()

	watches := make([]*progressWatch, workers)
	for i := range watches {
		watches[i] = newProgressWatch(idleProgress(i+1, workers))
	}

	queue := newHitQueue(workers)
	store := HitStore(newConcurrentHitStore())
	counter := newHitCounter(store, queue)

	go counter.run()

	agg := &aggregator{
		watches:   watches,
		ranges:    ranges,
		store:     store,
		handler:   handler,
		interval:  cfg.Interval,
		cancelled: &cancelled,
		drained:   counter.drained(),
	}

	aggDone := make(chan error, 1)
	go func() { aggDone <- agg.run() }()

	workerHits := make([][]Hit, workers)
	workerPanics := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(idx int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					cancelled.Store(true)
					workerPanics[idx] = fmt.Errorf("panic: %v", r)
				}
			}()

			w := &worker{
				id:        idx + 1,
				totalWork: workers,
				rng:       ranges[idx],
				times:     int(cfg.Times),
				regex:     cfg.Regex,
				hits:      queue,
				progress:  watches[idx],
				cancelled: &cancelled,
			}

			workerHits[idx] = w.run()
		}(i)
	}

	wg.Wait()

	for idx, perr := range workerPanics {
		if perr != nil {
			cancelled.Store(true)
			<-aggDone
			return Result{}, &WorkerError{WorkerID: idx + 1, Cause: perr}
		}
	}

	aggErr := <-aggDone

	if aggErr != nil {
		return Result{}, aggErr
	}

	return assembleResult(cfg.Tries, store, workerHits), nil
}

// RunSequential runs the single-threaded variant: one goroutine drives
// the candidate loop directly and calls handler.Handle in-line with the
// same at-most-once-per-interval throttling as the parallel aggregator
// (spec.md §4.7 sequential variant, §4.8).
func RunSequential(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Tries == 0 {
		return Result{}, nil
	}
	if cfg.Times == 0 {
		return Result{}, ErrTimesIsZero
	}

	handler := cfg.Handler
	if handler == nil {
		handler = noopHandler{}
	}

	var cancelled atomic.Bool

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	stopWatch := make(chan struct{})
	defer close(stopWatch)

	go func() {
		select {
		case <-sigCh:
			cancelled.Store(true)
		case <-ctx.Done():
			cancelled.Store(true)
		case <-stopWatch:
		}
	}()

	if err := handler.BeforeStart(1); err != nil {
		return Result{}, &HandlerError{Cause: err}
	}

	store := HitStore(newPlainHitStore())

	var detail []Hit
	var lastTick time.Time
	var previousTotal uint64
	haveTick := false

	for i := uint64(0); i < cfg.Tries; i++ {
		if cancelled.Load() {
			if err := handler.OnAccidentalStop(); err != nil {
				return Result{}, &HandlerError{Cause: err}
			}

			return Result{}, ErrCancelled
		}

		candidate := Generate(int(cfg.Times))

		if Matches(candidate, cfg.Regex) {
			hit := Hit{Index: i, Text: candidate}
			detail = append(detail, hit)
			store.add(candidate)
		}

		now := time.Now()
		if !haveTick {
			lastTick = now
			haveTick = true
		}

		if elapsed := now.Sub(lastTick); elapsed >= cfg.Interval {
			progresses := []Progress{processingProgress(0, i, cfg.Tries, candidate, 1)}
			currentDiff := (i + 1) - previousTotal

			if err := handler.Handle(progresses, store.allCounts(), elapsed, currentDiff, false); err != nil {
				return Result{}, &HandlerError{Cause: err}
			}

			previousTotal = i + 1
			lastTick = now
		}
	}

	progresses := []Progress{doneProgress(0, cfg.Tries, 1)}
	if err := handler.Handle(progresses, store.allCounts(), time.Since(lastTick), 0, true); err != nil {
		return Result{}, &HandlerError{Cause: err}
	}

	if err := handler.AfterFinish(); err != nil {
		return Result{}, &HandlerError{Cause: err}
	}

	return assembleResult(cfg.Tries, store, [][]Hit{detail}), nil
}
