package wakuchin

import (
	"regexp"
	"sync/atomic"
	"testing"
)

func TestPartitionCoversExactlyTries(t *testing.T) {
	ranges := partition(7, 3)

	want := []workerRange{{0, 3}, {3, 5}, {5, 7}}
	if len(ranges) != len(want) {
		t.Fatalf("expected %d ranges, got %d", len(want), len(ranges))
	}

	for i, r := range ranges {
		if r != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, r, want[i])
		}
	}

	var sum uint64
	for i, r := range ranges {
		if i > 0 && r.Lo != ranges[i-1].Hi {
			t.Errorf("range %d does not start where range %d ended", i, i-1)
		}
		sum += r.size()
	}

	if sum != 7 {
		t.Errorf("expected partition sizes to sum to 7, got %d", sum)
	}
}

func TestPartitionSizesDifferByAtMostOne(t *testing.T) {
	ranges := partition(100, 7)

	min, max := ranges[0].size(), ranges[0].size()
	for _, r := range ranges {
		if r.size() < min {
			min = r.size()
		}
		if r.size() > max {
			max = r.size()
		}
	}

	if max-min > 1 {
		t.Errorf("expected partition sizes to differ by at most 1, got min=%d max=%d", min, max)
	}
}

func TestWorkerRunCollectsOnlyMatches(t *testing.T) {
	var cancelled atomic.Bool

	w := &worker{
		id:        1,
		totalWork: 1,
		rng:       workerRange{Lo: 0, Hi: 50},
		times:     2,
		regex:     regexp.MustCompile(".*"),
		hits:      newHitQueue(1),
		progress:  newProgressWatch(idleProgress(1, 1)),
		cancelled: &cancelled,
	}

	local := w.run()

	if len(local) != 50 {
		t.Fatalf("expected 50 hits for a match-everything regex, got %d", len(local))
	}

	for i, h := range local {
		if h.Index != uint64(i) {
			t.Errorf("hit %d has index %d, want strictly increasing local index", i, h.Index)
		}
	}
}

func TestWorkerRunStopsOnCancellation(t *testing.T) {
	var cancelled atomic.Bool
	cancelled.Store(true)

	w := &worker{
		id:        1,
		totalWork: 1,
		rng:       workerRange{Lo: 0, Hi: 1_000_000},
		times:     2,
		regex:     regexp.MustCompile(".*"),
		hits:      newHitQueue(1),
		progress:  newProgressWatch(idleProgress(1, 1)),
		cancelled: &cancelled,
	}

	local := w.run()

	if len(local) != 0 {
		t.Errorf("expected no work done once cancelled before the first iteration, got %d hits", len(local))
	}
}
