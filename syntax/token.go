package syntax

import "github.com/frengels/ely/token"

// Token is one real (non-atmosphere) lexer record together with the
// atmosphere attached to either side of it (spec.md §3, "Token"). Every
// atmosphere record decoded from the lexer's output belongs to exactly one
// Token's Leading or Trailing list.
type Token struct {
	Kind     token.Kind
	Span     token.Span
	Leading  []Atmosphere
	Trailing []Atmosphere
}

// Size returns leading_size + span_len + trailing_size, satisfying the
// per-token half of spec.md §8's size-composition invariant.
func (t Token) Size() int {
	return atmosphereListSize(t.Leading) + t.Span.Len() + atmosphereListSize(t.Trailing)
}
