package wakuchin

import "testing"

func TestNoopHandlerIgnoresEverything(t *testing.T) {
	h := NoopHandler()

	if err := h.BeforeStart(4); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := h.Handle(nil, nil, 0, 0, false); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := h.AfterFinish(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := h.OnAccidentalStop(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
