package syntax

import "github.com/frengels/ely/token"

// Atmosphere is one whitespace/tab/newline/comment record attached to a
// token's leading or trailing list (spec.md §3, "Atmosphere"). It carries
// no semantic content but must round-trip: concatenating the atmosphere of
// every token in source order must reproduce every atmosphere byte span in
// the lexer's output (spec.md §4.5).
type Atmosphere struct {
	Kind token.Kind
	Span token.Span
}

// Size returns the byte length of this atmosphere item's span.
func (a Atmosphere) Size() int { return a.Span.Len() }

func atmosphereListSize(list []Atmosphere) int {
	n := 0
	for _, a := range list {
		n += a.Size()
	}
	return n
}
