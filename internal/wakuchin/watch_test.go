package wakuchin

import "testing"

func TestProgressWatchLatestSurvivesRepeatedReads(t *testing.T) {
	w := newProgressWatch(idleProgress(1, 1))

	first := w.Latest()
	second := w.Latest()

	if first.Kind != KindIdle || second.Kind != KindIdle {
		t.Fatalf("expected both reads to observe Idle, got %v and %v", first.Kind, second.Kind)
	}
}

func TestProgressWatchSendOverwrites(t *testing.T) {
	w := newProgressWatch(idleProgress(1, 1))

	w.Send(processingProgress(1, 3, 10, "WKCN", 1))
	w.Send(processingProgress(1, 7, 10, "NCKW", 1))

	latest := w.Latest()
	if latest.Current != 7 {
		t.Errorf("expected the latest Send to win, got Current=%d", latest.Current)
	}
}
