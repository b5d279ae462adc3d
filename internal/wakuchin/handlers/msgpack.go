package handlers

import (
	"encoding/base64"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wakuchin-go/wakuchin/internal/wakuchin"
)

// rawMsgpackFrame is the wire shape for Msgpack's per-tick frames,
// grounded on original_source/cli/src/handlers.rs's MsgpackProgressHandler
// frame struct (field names translated to snake_case via msgpack tags the
// way the teacher's config keys are translated via mapstructure tags).
type rawMsgpackFrame struct {
	Progresses    []wakuchin.Progress `msgpack:"progresses"`
	HitCounts     []wakuchin.HitCount `msgpack:"hit_counts"`
	CurrentRate   float64             `msgpack:"current_rate"`
	RemainingSecs float64             `msgpack:"remaining_secs"`
	Tries         uint64              `msgpack:"tries"`
	AllDone       bool                `msgpack:"all_done"`
}

// Msgpack emits one binary (or base64-wrapped) msgpack frame per tick to
// out, for consumers that pipe wakuchin's progress stream into another
// process (spec.md §6's "msgpack" / "msgpack_base64" handlers).
type Msgpack struct {
	tries uint64
	out   io.Writer
	b64   bool
}

// NewMsgpack writes raw msgpack-encoded frames to stdout.
func NewMsgpack(tries uint64) *Msgpack {
	return &Msgpack{tries: tries, out: os.Stdout}
}

// NewMsgpackBase64 writes base64-encoded msgpack frames, one per line, to
// stdout — for consumers that require a text-safe transport.
func NewMsgpackBase64(tries uint64) *Msgpack {
	return &Msgpack{tries: tries, out: os.Stdout, b64: true}
}

func (m *Msgpack) BeforeStart(int) error { return nil }

func (m *Msgpack) Handle(progresses []wakuchin.Progress, hitCounts []wakuchin.HitCount, elapsed time.Duration, currentDiff uint64, allDone bool) error {
	var currentTotal uint64
	for _, p := range progresses {
		currentTotal += progressCurrent(p)
	}

	var rate float64
	if elapsed > 0 {
		rate = float64(currentDiff) / elapsed.Seconds()
	}

	var remaining float64
	if rate > 0 && m.tries > currentTotal {
		remaining = float64(m.tries-currentTotal) / rate
	}

	frame := rawMsgpackFrame{
		Progresses:    progresses,
		HitCounts:     hitCounts,
		CurrentRate:   rate,
		RemainingSecs: remaining,
		Tries:         m.tries,
		AllDone:       allDone,
	}

	data, err := msgpack.Marshal(&frame)
	if err != nil {
		return &wakuchin.SerializationError{Cause: err}
	}

	if m.b64 {
		_, err = io.WriteString(m.out, base64.StdEncoding.EncodeToString(data)+"\n")
	} else {
		_, err = m.out.Write(data)
	}

	return err
}

func (m *Msgpack) AfterFinish() error { return nil }

func (m *Msgpack) OnAccidentalStop() error { return m.AfterFinish() }
