package wakuchin

import "time"

// noopHandler is the builder's default progress handler (spec.md §4.9):
// it observes every callback and does nothing.
type noopHandler struct{}

func (noopHandler) BeforeStart(int) error { return nil }

func (noopHandler) Handle([]Progress, []HitCount, time.Duration, uint64, bool) error {
	return nil
}

func (noopHandler) AfterFinish() error { return nil }

func (noopHandler) OnAccidentalStop() error { return nil }

// NoopHandler returns a ProgressHandler that ignores every callback.
func NoopHandler() ProgressHandler { return noopHandler{} }
