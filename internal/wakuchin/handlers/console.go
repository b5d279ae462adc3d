// Package handlers provides ProgressHandler implementations: a colored
// terminal progress bar (Console) and machine-readable msgpack frames
// (Msgpack / MsgpackBase64), named by spec.md §6's "console", "msgpack",
// "msgpack_base64" configuration schema.
package handlers

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/wakuchin-go/wakuchin/internal/wakuchin"
)

var (
	colorIdle = color.New(color.FgYellow)
	colorProc = color.New(color.FgBlue)
	colorDone = color.New(color.FgGreen)
	colorHit  = color.New(color.FgBlue, color.Underline)
)

// Console renders live progress to a terminal using a colored progress
// bar (schollz/progressbar/v3) and per-worker status lines
// (fatih/color), grounded on original_source/cli/src/handlers.rs's
// ConsoleProgressHandler and the teacher's internal/worker/progress.go
// bar-rendering shape, but driven by pack libraries instead of a
// hand-rolled `\r` redraw.
type Console struct {
	tries      uint64
	noProgress bool
	out        io.Writer
	bar        *progressbar.ProgressBar
}

// NewConsole creates a console progress handler for a run of tries
// candidates. If noProgress is true, Handle/BeforeStart/AfterFinish are
// no-ops (spec.md §6 --no-progress).
func NewConsole(tries uint64, noProgress bool) *Console {
	return &Console{
		tries:      tries,
		noProgress: noProgress,
		out:        os.Stderr,
	}
}

func (c *Console) BeforeStart(totalWorkers int) error {
	if c.noProgress {
		return nil
	}

	fmt.Fprintln(c.out, "Spawning workers...")

	c.bar = progressbar.NewOptions64(
		int64(c.tries),
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription("Status"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(c.out) }),
	)

	return nil
}

func (c *Console) Handle(progresses []wakuchin.Progress, hitCounts []wakuchin.HitCount, elapsed time.Duration, currentDiff uint64, allDone bool) error {
	if c.noProgress {
		return nil
	}

	for _, hc := range hitCounts {
		pct := float64(hc.Count) / float64(c.tries) * 100
		colorHit.Fprint(c.out, "hits")
		fmt.Fprintf(c.out, " %s: %d (%.3f%%)\n", wakuchin.CharsToWakuchin(hc.Text), hc.Count, pct)
	}

	var currentTotal uint64
	for _, p := range progresses {
		currentTotal += progressCurrent(p)
		c.renderWorkerLine(p)
	}

	if allDone {
		colorDone.Fprintln(c.out, "All workers done")
		return nil
	}

	if c.bar != nil {
		_ = c.bar.Set64(int64(currentTotal))
	}

	return nil
}

func (c *Console) renderWorkerLine(p wakuchin.Progress) {
	label := workerLabel(p.WorkerID, p.TotalWorkers)

	switch p.Kind {
	case wakuchin.KindIdle:
		colorIdle.Fprintf(c.out, "%s Idle\n", label)
	case wakuchin.KindProcessing:
		colorProc.Fprintf(c.out, "%s Processing %s (%d/%d)\n", label, wakuchin.CharsToWakuchin(p.Wakuchin), p.Current, p.Total)
	case wakuchin.KindDone:
		colorDone.Fprintf(c.out, "%s Done (%d)\n", label, p.Total)
	}
}

func workerLabel(id, totalWorkers int) string {
	if id == 0 && totalWorkers <= 1 {
		return ""
	}

	return fmt.Sprintf("#%d", id)
}

func progressCurrent(p wakuchin.Progress) uint64 {
	switch p.Kind {
	case wakuchin.KindProcessing:
		return p.Current
	case wakuchin.KindDone:
		return p.Total
	default:
		return 0
	}
}

func (c *Console) AfterFinish() error {
	if c.noProgress {
		return nil
	}

	if c.bar != nil {
		return c.bar.Finish()
	}

	return nil
}

func (c *Console) OnAccidentalStop() error {
	return c.AfterFinish()
}
