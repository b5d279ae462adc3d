package wakuchin

// Hit is a candidate that matched the search regex, tagged with its
// worker-local index.
type Hit struct {
	Index uint64
	Text  string
}

// HitCount is the (text, count) projection over a set of hits sharing
// the same candidate text.
type HitCount struct {
	Text  string
	Count uint64
}
