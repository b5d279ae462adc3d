package wakuchin

import "testing"

func TestCharsToWakuchinRoundTrip(t *testing.T) {
	in := "WKCN"

	jp := CharsToWakuchin(in)
	if jp != "わくちん" {
		t.Fatalf("CharsToWakuchin(%q) = %q, want わくちん", in, jp)
	}

	back := WakuchinToChars(jp)
	if back != in {
		t.Fatalf("WakuchinToChars(%q) = %q, want %q", jp, back, in)
	}
}

func TestConvertUnknownByteMapsToNull(t *testing.T) {
	if got := CharsToWakuchin("Z"); got != "\x00" {
		t.Errorf("CharsToWakuchin(%q) = %q, want null byte", "Z", got)
	}
}
