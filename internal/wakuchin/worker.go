package wakuchin

import (
	"regexp"
	"sync/atomic"
)

// workerRange is a half-open index range [Lo, Hi) assigned to one
// worker, sized by the engine's partitioning rule (spec.md §4.8 step 6).
type workerRange struct {
	Lo, Hi uint64
}

func (r workerRange) size() uint64 { return r.Hi - r.Lo }

// worker generates candidates for its assigned index range, matches
// them against regex, and publishes hits and progress. This realizes
// spec.md §4.5, adapted from the teacher's worker-pool goroutine shape
// in internal/worker/pool.go (a plain function run in its own
// goroutine, reading task state from closure, writing results to
// shared channels) but specialized to wakuchin's own index-range and
// latest-value-progress model rather than a generic task queue.
type worker struct {
	id        int
	totalWork int
	rng       workerRange
	times     int
	regex     *regexp.Regexp
	hits      *hitQueue
	progress  *progressWatch
	cancelled *atomic.Bool
}

// run executes the worker loop and returns this worker's local hit
// list, in strictly increasing local-index order (spec.md §5 ordering
// guarantee).
func (w *worker) run() []Hit {
	total := w.rng.size()

	var local []Hit

	for i := uint64(0); i < total; i++ {
		if w.cancelled.Load() {
			w.hits.CloseSender()
			return local
		}

		candidate := Generate(w.times)

		if Matches(candidate, w.regex) {
			hit := Hit{Index: i, Text: candidate}
			local = append(local, hit)
			w.hits.Send(hit)
		}

		w.progress.Send(processingProgress(w.id, i, total, candidate, w.totalWork))
	}

	w.hits.CloseSender()
	w.progress.Send(doneProgress(w.id, total, w.totalWork))

	return local
}

// partition divides [0, tries) into n contiguous near-equal ranges per
// spec.md §4.8 step 6: lo(k) = floor(k*tries/n), hi(k) =
// floor((k+1)*tries/n). Sizes differ by at most 1.
func partition(tries uint64, n int) []workerRange {
	ranges := make([]workerRange, n)

	for k := 0; k < n; k++ {
		lo := uint64(k) * tries / uint64(n)
		hi := uint64(k+1) * tries / uint64(n)
		ranges[k] = workerRange{Lo: lo, Hi: hi}
	}

	return ranges
}
