package wakuchin

// Kind tags which variant of Progress is populated.
type Kind int

const (
	// KindIdle: worker not yet started.
	KindIdle Kind = iota
	// KindProcessing: worker is at local index Current of Total.
	KindProcessing
	// KindDone: worker finished its range.
	KindDone
)

// Progress is a tagged-union snapshot of one worker's state, published
// on that worker's progress channel. Only the fields relevant to Kind
// are meaningful; this mirrors the Idle/Processing/Done enum from
// spec.md §3 as a single struct, the common Go idiom for porting a
// small closed sum type without an interface per variant.
//
// TotalWorkers is a supplemental field (not in spec.md's data model,
// see SPEC_FULL.md §10) used only by the console progress handler to
// size its worker-id column; core invariants never depend on it.
type Progress struct {
	Kind Kind

	// WorkerID is 1-indexed in parallel mode; sequential mode uses 0 for
	// its single synthesized worker (original_source convention, see
	// SPEC_FULL.md §10).
	WorkerID int

	// Current and Total are meaningful for KindProcessing and KindDone
	// (Total only for KindDone unless Kind is KindProcessing, in which
	// case both are set).
	Current uint64
	Total   uint64

	// Wakuchin is the last generated candidate string, set only for
	// KindProcessing.
	Wakuchin string

	TotalWorkers int
}

func idleProgress(id, totalWorkers int) Progress {
	return Progress{Kind: KindIdle, WorkerID: id, TotalWorkers: totalWorkers}
}

func processingProgress(id int, current, total uint64, wakuchin string, totalWorkers int) Progress {
	return Progress{
		Kind:         KindProcessing,
		WorkerID:     id,
		Current:      current,
		Total:        total,
		Wakuchin:     wakuchin,
		TotalWorkers: totalWorkers,
	}
}

func doneProgress(id int, total uint64, totalWorkers int) Progress {
	return Progress{Kind: KindDone, WorkerID: id, Total: total, TotalWorkers: totalWorkers}
}

// currentOf returns the "progress so far" value used when summing
// across workers: Current for Processing, Total for Done, 0 for Idle.
func (p Progress) currentOf() uint64 {
	switch p.Kind {
	case KindProcessing:
		return p.Current
	case KindDone:
		return p.Total
	default:
		return 0
	}
}
