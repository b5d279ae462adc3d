package wakuchin

import (
	"regexp"
	"testing"
)

func TestMatches(t *testing.T) {
	re := regexp.MustCompile(`^WK`)

	if !Matches("WKCN", re) {
		t.Error("expected WKCN to match ^WK")
	}
	if Matches("KWCN", re) {
		t.Error("expected KWCN not to match ^WK")
	}
}

func TestMatchesAnyRegexAlwaysTrue(t *testing.T) {
	re := regexp.MustCompile(`.*`)

	if !Matches("", re) {
		t.Error("expected .* to match the empty string")
	}
}
