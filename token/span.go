package token

// Span is a byte-offset range into a source chunk sequence: [Start, End).
// Spans are only meaningful relative to the particular concatenation of
// chunks a lexer/reader pair was fed (spec.md §3, "Lexeme span").
type Span struct {
	Start, End int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// IsZero reports whether this is the zero Span.
func (s Span) IsZero() bool { return s == Span{} }

// Join returns the smallest span covering both s and other. Either may be
// the zero span, in which case the other is returned unchanged.
func (s Span) Join(other Span) Span {
	if s.IsZero() {
		return other
	}
	if other.IsZero() {
		return s
	}
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}
