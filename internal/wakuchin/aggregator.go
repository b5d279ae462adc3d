package wakuchin

import (
	"sync/atomic"
	"time"
)

// ProgressHandler is the external contract consumed by the aggregator
// (spec.md §4.4). Implementations live in internal/wakuchin/handlers.
type ProgressHandler interface {
	BeforeStart(totalWorkers int) error
	Handle(progresses []Progress, hitCounts []HitCount, elapsed time.Duration, currentDiff uint64, allDone bool) error
	AfterFinish() error
	OnAccidentalStop() error
}

// aggregator polls the per-worker progress watches and the hit store on
// an interval, invoking the external progress handler (spec.md §4.7).
type aggregator struct {
	watches   []*progressWatch
	ranges    []workerRange
	store     HitStore
	handler   ProgressHandler
	interval  time.Duration
	cancelled *atomic.Bool
	drained   <-chan struct{}
}

// run executes the aggregator loop to completion and returns the first
// error observed (from the handler) or ErrCancelled if cancellation was
// observed before drain-complete.
func (a *aggregator) run() error {
	totalWorkers := len(a.watches)

	if err := a.handler.BeforeStart(totalWorkers); err != nil {
		return &HandlerError{Cause: err}
	}

	var previousTotal uint64
	lastTick := time.Now()

	for {
		if a.cancelled.Load() {
			if err := a.handler.OnAccidentalStop(); err != nil {
				return &HandlerError{Cause: err}
			}

			return ErrCancelled
		}

		select {
		case <-a.drained:
			progresses := make([]Progress, totalWorkers)
			for i, r := range a.ranges {
				progresses[i] = doneProgress(i+1, r.size(), totalWorkers)
			}

			if err := a.handler.Handle(progresses, a.store.allCounts(), time.Since(lastTick), 0, true); err != nil {
				return &HandlerError{Cause: err}
			}

			return a.handler.AfterFinish()
		default:
		}

		elapsed := time.Since(lastTick)
		if elapsed < a.interval {
			time.Sleep(a.interval - elapsed)
			continue
		}

		progresses := make([]Progress, totalWorkers)
		var currentTotal uint64

		for i, w := range a.watches {
			p := w.Latest()
			progresses[i] = p
			currentTotal += p.currentOf()
		}

		currentDiff := currentTotal - previousTotal

		if err := a.handler.Handle(progresses, a.store.allCounts(), elapsed, currentDiff, false); err != nil {
			return &HandlerError{Cause: err}
		}

		previousTotal = currentTotal
		lastTick = time.Now()
	}
}
