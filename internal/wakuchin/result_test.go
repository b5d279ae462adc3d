package wakuchin

import "testing"

func TestAssembleResultConcatenatesInWorkerOrder(t *testing.T) {
	store := newPlainHitStore()
	store.add("WKCN")
	store.add("NCKW")
	store.add("WKCN")

	workerHits := [][]Hit{
		{{Index: 0, Text: "WKCN"}},
		{{Index: 0, Text: "NCKW"}, {Index: 1, Text: "WKCN"}},
	}

	result := assembleResult(10, store, workerHits)

	if result.Tries != 10 {
		t.Errorf("expected Tries 10, got %d", result.Tries)
	}
	if result.HitsTotal != 3 {
		t.Errorf("expected HitsTotal 3, got %d", result.HitsTotal)
	}
	if len(result.HitsDetail) != 3 {
		t.Fatalf("expected 3 detail entries, got %d", len(result.HitsDetail))
	}

	want := []string{"WKCN", "NCKW", "WKCN"}
	for i, h := range result.HitsDetail {
		if h.Text != want[i] {
			t.Errorf("detail[%d] = %q, want %q (worker-id order)", i, h.Text, want[i])
		}
	}
}
