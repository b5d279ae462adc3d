package wakuchin

// Result is the public result of a completed run (spec.md §3
// WakuchinResult). HitsTotal == sum of Hits[i].Count == len(HitsDetail).
type Result struct {
	Tries      uint64
	HitsTotal  uint64
	Hits       []HitCount
	HitsDetail []Hit
}

// assembleResult builds a Result from the final hit store snapshot and
// the concatenation of worker hit lists, in worker-id order (spec.md
// §4.8 step 11 / §5 ordering guarantee).
func assembleResult(tries uint64, store HitStore, workerHits [][]Hit) Result {
	hits := store.allCounts()

	var total uint64
	for _, hc := range hits {
		total += hc.Count
	}

	var detail []Hit
	for _, wh := range workerHits {
		detail = append(detail, wh...)
	}

	return Result{
		Tries:      tries,
		HitsTotal:  total,
		Hits:       hits,
		HitsDetail: detail,
	}
}
