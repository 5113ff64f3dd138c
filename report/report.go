// Package report implements the structured-diagnostics contract spec.md §7
// asks for: the core records lexical, reader, and expander errors as
// structured values and keeps going, rather than aborting or formatting
// messages for a terminal. Rendering those records for a human is a
// separate collaborator's job (spec.md §1); this package only accumulates
// them.
package report

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/frengels/ely/token"
)

// Level is the severity of a [Diagnostic].
type Level int8

const (
	// Error indicates a semantic or syntactic constraint violation.
	Error Level = 1 + iota
	// Warning indicates something that probably should not be ignored.
	Warning
	// Remark is the diagnostics equivalent of an informational note.
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int8(l))
	}
}

// Diagnostic is one structured record: what went wrong, how bad it is, and
// where in the source it happened (spec.md §7: "carries a source location
// ... and a human-readable tag").
type Diagnostic struct {
	Level   Level
	Message string
	Span    token.Span // zero Span means "no specific location"
	Session uuid.UUID
}

// Report accumulates the diagnostics produced by one front-end session
// (spec.md §3's "front-end instance"). Every Diagnostic pushed onto it
// carries the owning session's id, so a caller juggling several concurrent
// Frontend instances (spec.md §5) can always tell whose diagnostic is
// whose without any shared state between sessions.
type Report struct {
	mu      sync.Mutex
	Session uuid.UUID
	Diags   []Diagnostic
}

// New creates an empty Report tagged with session.
func New(session uuid.UUID) *Report {
	return &Report{Session: session}
}

// Errorf appends an Error-level diagnostic at span.
func (r *Report) Errorf(span token.Span, format string, args ...any) *Diagnostic {
	return r.push(Error, span, format, args...)
}

// Warnf appends a Warning-level diagnostic at span.
func (r *Report) Warnf(span token.Span, format string, args ...any) *Diagnostic {
	return r.push(Warning, span, format, args...)
}

// Remarkf appends a Remark-level diagnostic at span.
func (r *Report) Remarkf(span token.Span, format string, args ...any) *Diagnostic {
	return r.push(Remark, span, format, args...)
}

func (r *Report) push(level Level, span token.Span, format string, args ...any) *Diagnostic {
	d := Diagnostic{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
		Session: r.Session,
	}
	r.mu.Lock()
	r.Diags = append(r.Diags, d)
	r.mu.Unlock()
	return &d
}

// HasErrors reports whether any Error-level diagnostic has been recorded.
func (r *Report) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.Diags {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics recorded so far.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Diags)
}

// AsError wraps all of r's Error-level diagnostics as a single Go error,
// for callers that just want a pass/fail signal at the end of a pipeline
// run. It returns nil if there are no errors.
func (r *Report) AsError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var msgs []string
	for _, d := range r.Diags {
		if d.Level == Error {
			msgs = append(msgs, d.Message)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return &AsError{Messages: msgs}
}

// AsError is the error type [Report.AsError] returns: every accumulated
// Error-level diagnostic message, joined for a single top-level failure.
type AsError struct {
	Messages []string
}

// Error implements the error interface.
func (e *AsError) Error() string {
	switch len(e.Messages) {
	case 0:
		return "report: no errors"
	case 1:
		return e.Messages[0]
	default:
		return fmt.Sprintf("%s (and %d more error(s))", e.Messages[0], len(e.Messages)-1)
	}
}
