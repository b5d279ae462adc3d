package wakuchin

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// OutputFormat selects the Result rendering in Format.
type OutputFormat int

const (
	OutputText OutputFormat = iota
	OutputJSON
)

// ParseOutputFormat parses the CLI/config "text"/"json" strings named in
// spec.md §6.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOutputFormat, s)
	}
}

// Format renders result per spec.md §4.10.
func Format(result Result, format OutputFormat) (string, error) {
	switch format {
	case OutputText:
		return formatText(result), nil
	case OutputJSON:
		return formatJSON(result)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownOutputFormat, format)
	}
}

// firstSeenOrder returns each hit text in the order it was first
// observed in detail, so text-mode output is deterministic even though
// the hit store's allCounts() snapshot is unordered (spec.md §4.3/§4.10).
func firstSeenOrder(detail []Hit) []string {
	seen := make(map[string]bool, len(detail))

	var order []string

	for _, h := range detail {
		if !seen[h.Text] {
			seen[h.Text] = true
			order = append(order, h.Text)
		}
	}

	return order
}

func formatText(result Result) string {
	var b strings.Builder

	b.WriteString("--- Result ---\n")
	fmt.Fprintf(&b, "Tries: %d\n", result.Tries)

	counts := make(map[string]uint64, len(result.Hits))
	for _, hc := range result.Hits {
		counts[hc.Text] = hc.Count
	}

	for _, text := range firstSeenOrder(result.HitsDetail) {
		count := counts[text]
		fmt.Fprintf(&b, "%s hits: %d (%s%%)\n", text, count, formatPercent(count, result.Tries))
	}

	fmt.Fprintf(&b, "Total hits: %d (%s%%)\n", result.HitsTotal, formatPercent(result.HitsTotal, result.Tries))

	return b.String()
}

// formatPercent computes round(100*count/tries) using round-half-to-even
// (banker's rounding), per spec.md §4.10's "uniform rounding rule".
func formatPercent(count, tries uint64) string {
	if tries == 0 {
		return "0"
	}

	pct := math.RoundToEven(100 * float64(count) / float64(tries))

	return fmt.Sprintf("%d", int64(pct))
}

type jsonHitCount struct {
	Chars string `json:"chars"`
	Hits  uint64 `json:"hits"`
}

type jsonHit struct {
	HitOn uint64 `json:"hit_on"`
	Chars string `json:"chars"`
}

type jsonResult struct {
	Tries      uint64         `json:"tries"`
	HitsTotal  uint64         `json:"hits_total"`
	Hits       []jsonHitCount `json:"hits"`
	HitsDetail []jsonHit      `json:"hits_detail"`
}

func formatJSON(result Result) (string, error) {
	out := jsonResult{
		Tries:     result.Tries,
		HitsTotal: result.HitsTotal,
	}

	for _, hc := range result.Hits {
		out.Hits = append(out.Hits, jsonHitCount{Chars: hc.Text, Hits: hc.Count})
	}

	for _, h := range result.HitsDetail {
		out.HitsDetail = append(out.HitsDetail, jsonHit{HitOn: h.Index, Chars: h.Text})
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", &SerializationError{Cause: err}
	}

	return string(data), nil
}
