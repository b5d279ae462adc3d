// Package wakuchin implements the parallel wakuchin research engine:
// candidate generation, worker partitioning, hit counting, progress
// aggregation, cancellation, and result assembly.
package wakuchin

import "math/rand/v2"

// Internal wakuchin alphabet. The order here is the cycle order used to
// seed a candidate before shuffling; it has no effect on the output
// distribution.
const (
	SymbolW = 'W'
	SymbolK = 'K'
	SymbolC = 'C'
	SymbolN = 'N'
)

// Alphabet lists the four internal wakuchin symbols.
var Alphabet = [4]byte{SymbolW, SymbolK, SymbolC, SymbolN}

// External (display) forms of the alphabet, used by CharsToWakuchin /
// WakuchinToChars.
const (
	SymbolExternalW = 'わ'
	SymbolExternalK = 'く'
	SymbolExternalC = 'ち'
	SymbolExternalN = 'ん'
)

// Generate produces a string containing exactly times copies of each of
// W, K, C, N, shuffled with an unbiased Fisher-Yates permutation. It
// draws from math/rand/v2's top-level functions, which are safe for
// concurrent use and are backed by the runtime's per-thread generator
// rather than a shared lockable source, so concurrent workers need no
// external synchronization.
func Generate(times int) string {
	n := len(Alphabet) * times
	buf := make([]byte, n)

	for i := 0; i < times; i++ {
		for j, sym := range Alphabet {
			buf[i*len(Alphabet)+j] = sym
		}
	}

	// Fisher-Yates: for i from n-1 down to 1, swap buf[i] with buf[j]
	// where j is uniformly chosen in [0, i].
	for i := n - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Validate reports whether every byte of s is one of the four wakuchin
// symbols.
func Validate(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case SymbolW, SymbolK, SymbolC, SymbolN:
		default:
			return false
		}
	}

	return true
}
