package token

// Span is a half-open range of rune offsets [Start, End) into the logical
// name a token was cut from.
type Span struct {
	Start int // 0-based rune offset, inclusive
	End   int // 0-based rune offset, exclusive
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if the span contains the given rune offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

