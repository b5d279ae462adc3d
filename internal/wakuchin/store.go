package wakuchin

import (
	"sync"
	"sync/atomic"
)

// HitStore is a concurrent multiset mapping candidate text to hit count.
// add must never reorder or lose increments; allCounts returns an
// unordered snapshot.
type HitStore interface {
	add(text string)
	allCounts() []HitCount
}

// concurrentHitStore is the Shared profile from spec.md §4.3: mutated
// concurrently by a single writer (the hit counter task) but read by
// the aggregator at any time, so each bucket uses its own atomic
// counter rather than a single map-wide lock.
type concurrentHitStore struct {
	counts sync.Map // string -> *atomic.Uint64
}

func newConcurrentHitStore() *concurrentHitStore {
	return &concurrentHitStore{}
}

func (s *concurrentHitStore) add(text string) {
	if v, ok := s.counts.Load(text); ok {
		v.(*atomic.Uint64).Add(1)
		return
	}

	n := new(atomic.Uint64)
	n.Store(1)

	if actual, loaded := s.counts.LoadOrStore(text, n); loaded {
		actual.(*atomic.Uint64).Add(1)
	}
}

func (s *concurrentHitStore) allCounts() []HitCount {
	var out []HitCount

	s.counts.Range(func(key, value any) bool {
		out = append(out, HitCount{
			Text:  key.(string),
			Count: value.(*atomic.Uint64).Load(),
		})

		return true
	})

	return out
}

// plainHitStore is the Exclusive profile from spec.md §4.3: mutated by
// a single goroutine (sequential mode), so no synchronization is
// required.
type plainHitStore struct {
	counts map[string]uint64
}

func newPlainHitStore() *plainHitStore {
	return &plainHitStore{counts: make(map[string]uint64)}
}

func (s *plainHitStore) add(text string) {
	s.counts[text]++
}

func (s *plainHitStore) allCounts() []HitCount {
	out := make([]HitCount, 0, len(s.counts))

	for text, count := range s.counts {
		out = append(out, HitCount{Text: text, Count: count})
	}

	return out
}
