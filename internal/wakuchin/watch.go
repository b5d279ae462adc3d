package wakuchin

// progressWatch is a single-writer/single-reader "latest value" channel:
// Send overwrites any unread value instead of blocking or queuing, and
// Latest always returns the most recently sent value. This is the Go
// idiom for status-watch channels (used throughout the ecosystem's
// worker-pool packages in place of a full MPSC queue) and gives exactly
// the semantics spec.md §4.7/§9 requires for per-worker progress:
// intermediate snapshots may be coalesced, only the latest matters.
type progressWatch struct {
	ch chan Progress
}

func newProgressWatch(initial Progress) *progressWatch {
	w := &progressWatch{ch: make(chan Progress, 1)}
	w.ch <- initial

	return w
}

// Send publishes a new value, dropping whatever was previously unread.
func (w *progressWatch) Send(p Progress) {
	for {
		select {
		case <-w.ch:
		default:
		}

		select {
		case w.ch <- p:
			return
		default:
			// Latest put its value back in between; drain it again.
		}
	}
}

// Latest returns the most recently sent value without consuming it
// permanently from the reader's perspective (the value is put back so
// a subsequent Latest call observes it too, unless a newer Send has
// refilled the slot in the meantime, in which case the newer value is
// kept, matching "the reader always sees the most recent snapshot").
func (w *progressWatch) Latest() Progress {
	p := <-w.ch

	select {
	case w.ch <- p:
	default:
	}

	return p
}
