package wakuchin

import "strings"

// charToWakuchin maps a single internal symbol to its external (display)
// form. Unknown input maps to the null character, per spec: this is not
// a failure, just a sentinel for "not a wakuchin symbol".
func charToWakuchin(c rune) rune {
	switch c {
	case SymbolW:
		return SymbolExternalW
	case SymbolK:
		return SymbolExternalK
	case SymbolC:
		return SymbolExternalC
	case SymbolN:
		return SymbolExternalN
	default:
		return '\x00'
	}
}

// wakuchinToChar is the inverse of charToWakuchin.
func wakuchinToChar(c rune) rune {
	switch c {
	case SymbolExternalW:
		return SymbolW
	case SymbolExternalK:
		return SymbolK
	case SymbolExternalC:
		return SymbolC
	case SymbolExternalN:
		return SymbolN
	default:
		return '\x00'
	}
}

// CharsToWakuchin converts every internal wakuchin symbol in chars to its
// Japanese display form (W->わ, K->く, C->ち, N->ん). Characters outside
// the alphabet become '\x00'.
func CharsToWakuchin(chars string) string {
	var b strings.Builder
	b.Grow(len(chars) * 3) // display symbols are multi-byte in UTF-8

	for _, c := range chars {
		b.WriteRune(charToWakuchin(c))
	}

	return b.String()
}

// WakuchinToChars is the inverse of CharsToWakuchin.
func WakuchinToChars(chars string) string {
	var b strings.Builder
	b.Grow(len(chars))

	for _, c := range chars {
		b.WriteRune(wakuchinToChar(c))
	}

	return b.String()
}
