package wakuchin

import "testing"

func TestHitCounterDrainsIntoStore(t *testing.T) {
	store := newConcurrentHitStore()
	queue := newHitQueue(1)
	counter := newHitCounter(store, queue)

	go counter.run()

	queue.Send(Hit{Index: 0, Text: "WKCN"})
	queue.Send(Hit{Index: 1, Text: "WKCN"})
	queue.CloseSender()

	<-counter.drained()

	counts := store.allCounts()
	if len(counts) != 1 || counts[0].Count != 2 {
		t.Fatalf("expected one key with count 2, got %+v", counts)
	}
}
