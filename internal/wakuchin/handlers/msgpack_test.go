package handlers

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wakuchin-go/wakuchin/internal/wakuchin"
)

func TestMsgpackEncodesFrame(t *testing.T) {
	var buf bytes.Buffer

	m := NewMsgpack(1000)
	m.out = &buf

	progresses := []wakuchin.Progress{{Kind: wakuchin.KindProcessing, WorkerID: 1, Current: 50, Total: 100}}
	hitCounts := []wakuchin.HitCount{{Text: "WKCN", Count: 3}}

	if err := m.Handle(progresses, hitCounts, time.Second, 50, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var frame rawMsgpackFrame
	if err := msgpack.Unmarshal(buf.Bytes(), &frame); err != nil {
		t.Fatalf("failed to decode frame: %v", err)
	}

	if frame.Tries != 1000 {
		t.Errorf("expected Tries 1000, got %d", frame.Tries)
	}
	if frame.AllDone {
		t.Error("expected AllDone=false")
	}
	if len(frame.HitCounts) != 1 || frame.HitCounts[0].Text != "WKCN" {
		t.Errorf("expected hit counts to round-trip, got %+v", frame.HitCounts)
	}
	if frame.CurrentRate != 50 {
		t.Errorf("expected current_rate 50 (50 candidates / 1s), got %f", frame.CurrentRate)
	}
}

func TestMsgpackBase64Encodes(t *testing.T) {
	var buf bytes.Buffer

	m := NewMsgpackBase64(100)
	m.out = &buf

	if err := m.Handle(nil, nil, time.Second, 0, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := buf.String()
	if len(line) == 0 {
		t.Fatal("expected non-empty output")
	}

	decoded, err := base64.StdEncoding.DecodeString(line[:len(line)-1]) // strip trailing newline
	if err != nil {
		t.Fatalf("output was not valid base64: %v", err)
	}

	var frame rawMsgpackFrame
	if err := msgpack.Unmarshal(decoded, &frame); err != nil {
		t.Fatalf("decoded bytes were not valid msgpack: %v", err)
	}

	if !frame.AllDone {
		t.Error("expected AllDone=true")
	}
}
