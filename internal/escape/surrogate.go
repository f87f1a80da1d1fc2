package escape

// UTF-16 surrogate arithmetic for JavaScript \uHHHH escapes. Kept as
// tiny pure helpers so the bit-shift math is testable in isolation.

const (
	highSurrogateStart = 0xD800
	highSurrogateEnd   = 0xDBFF
	lowSurrogateStart  = 0xDC00
	lowSurrogateEnd    = 0xDFFF
	supplementaryBase  = 0x10000
)

// surrogatePair splits a supplementary-plane code point (above U+FFFF)
// into its UTF-16 high and low surrogate code units.
func surrogatePair(r rune) (hi, lo uint32) {
	v := uint32(r) - supplementaryBase
	return highSurrogateStart + (v >> 10), lowSurrogateStart + (v & 0x3FF)
}

// combineSurrogates rebuilds the code point encoded by a high/low
// surrogate pair. Inverse of surrogatePair.
func combineSurrogates(hi, lo uint32) rune {
	return rune((hi-highSurrogateStart)<<10 + (lo - lowSurrogateStart) + supplementaryBase)
}

func isHighSurrogate(v uint32) bool {
	return v >= highSurrogateStart && v <= highSurrogateEnd
}

func isLowSurrogate(v uint32) bool {
	return v >= lowSurrogateStart && v <= lowSurrogateEnd
}
