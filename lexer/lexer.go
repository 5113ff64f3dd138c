// Package lexer implements the resumable, buffer-chunked byte lexer
// described in spec.md §4.4: a table-dispatched state machine that turns
// arbitrary byte chunks into a dense token-record stream (package token),
// suspending in-band via spill/buffer-full/eof records instead of blocking
// or erroring.
package lexer

import "github.com/frengels/ely/token"

// State names one node of the lexer's state machine. The zero State,
// Start, is "nothing in progress" -- the default continuation for a fresh
// lex call (spec.md §4.4's continuation_id=0).
type State uint8

const (
	Start State = iota
	inWhitespace
	inTab
	afterCR
	inLineComment
	inIdentifier
	inNumber
	inDecimal
	inString
	inStringEscaped
	afterNumberSign
	inKeywordLit
	inCharLit
	afterSign
	afterComma
	afterSyntaxComma
	inUnknown
	afterBoolSign
	flushingRun
)

// Continuation is the resumable state a caller threads between Lex calls
// when a call returns having spilled mid-token. LengthConsumed is an
// in-memory accumulator of how many bytes of the in-progress token have
// been seen across every resumed call so far; it is not itself part of the
// wire format (the Spill record's length_consumed byte is a saturating,
// informational echo of it, clamped to MaxRunLength). Reconstructing a token's true
// span is the reader's job, done from absolute chunk offsets, not from this
// counter.
type Continuation struct {
	State          State
	LengthConsumed int

	// stringEscaped is folded into State (inString vs inStringEscaped), but
	// kept as a named constant set above rather than a separate bool field
	// so that the *entire* resumable state is the single State byte spec.md
	// §4.4 calls "continuation_id".

	// PendingKind is only meaningful when State is flushingRun: it names the
	// record kind a prior call was still splitting into MaxRunLength pieces
	// when the output buffer ran out of room (see flushRun). LengthConsumed
	// doubles as the remaining unwritten byte count in that case.
	PendingKind token.Kind
}

// minOutputHeadroom is the threshold below which Lex stops and emits
// BufferFull rather than risk writing a record it can't finish (spec.md
// §4.4: "the output is exhausted before input").
const minOutputHeadroom = 4

// Lex runs the state machine over chunk, appending encoded token records to
// out starting at offset 0, resuming from cont (the zero Continuation means
// "start fresh", i.e. continuation_id=0). It returns the number of bytes
// written to out, the number of bytes of chunk consumed, whether the call
// ended by emitting a Spill record, and the continuation to resume with on
// the next call.
//
// A non-Start returned continuation means the call ended mid-token because
// out ran low on space (emits BufferFull; call again with the unconsumed
// remainder chunk[consumed:] and the same Continuation, once out has been
// drained) or because chunk ended mid-token (emits Spill, spilled=true;
// consumed == len(chunk) in this case, so call again with the next chunk and
// this Continuation). A Start continuation means chunk was fully consumed
// with nothing pending, the sentinel byte was found and EOF was emitted, or
// out ran low between two tokens (emits BufferFull; resume with
// chunk[consumed:] as above).
//
// Callers decoding the written bytes with [token.DecodeAll] must pass
// spilled through unchanged; it cannot be recovered by inspecting the bytes
// alone (see DecodeAll).
func Lex(chunk []byte, out []byte, cont Continuation) (written, consumed int, spilled bool, next Continuation) {
	w := token.NewWriter(out)
	r := &run{chunk: chunk, w: w, state: cont.State, consumed: cont.LengthConsumed, pendingKind: cont.PendingKind}
	r.loop()
	return w.Written(), r.i, r.spilled, Continuation{State: r.state, LengthConsumed: r.consumed, PendingKind: r.pendingKind}
}

// run carries the mutable cursor state for one Lex call.
type run struct {
	chunk       []byte
	w           *token.Writer
	i           int
	state       State
	consumed    int // bytes of the in-progress token/run seen before this chunk
	spilled     bool
	pendingKind token.Kind // valid only while state == flushingRun
}

func (r *run) full() bool { return r.w.Free() < minOutputHeadroom }

func (r *run) peek() (byte, bool) {
	if r.i >= len(r.chunk) {
		return 0, false
	}
	return r.chunk[r.i], true
}

// spill ends the call because chunk is exhausted mid-token.
func (r *run) spill() {
	total := r.consumed
	wire := total
	if wire > token.MaxRunLength {
		wire = token.MaxRunLength
	}
	r.w.Spill(wire, byte(r.state))
	r.spilled = true
}

// loop is the main dispatch loop. Each iteration examines the byte at the
// current state's resumption point and either continues a run, completes a
// token, or starts a new one from Start.
func (r *run) loop() {
	for {
		if r.full() {
			r.w.ZeroArg(token.BufferFull)
			return
		}

		switch r.state {
		case Start:
			if !r.start() {
				return
			}
		case inWhitespace:
			if !r.run_(isSpace, token.Whitespace) {
				return
			}
		case inTab:
			if !r.run_(isTab, token.Tab) {
				return
			}
		case afterCR:
			if !r.afterCR() {
				return
			}
		case inLineComment:
			if !r.lineComment() {
				return
			}
		case inIdentifier:
			if !r.identifier() {
				return
			}
		case inNumber:
			if !r.number() {
				return
			}
		case inDecimal:
			if !r.decimal() {
				return
			}
		case inString:
			if !r.stringLit(false) {
				return
			}
		case inStringEscaped:
			if !r.stringLit(true) {
				return
			}
		case afterNumberSign:
			if !r.numberSign() {
				return
			}
		case afterBoolSign:
			if !r.boolSign() {
				return
			}
		case inKeywordLit:
			if !r.keywordLit() {
				return
			}
		case inCharLit:
			if !r.charLit() {
				return
			}
		case afterSign:
			if !r.sign() {
				return
			}
		case afterComma:
			if !r.comma(token.Unquote, token.UnquoteSplicing) {
				return
			}
		case afterSyntaxComma:
			if !r.comma(token.SyntaxUnquote, token.SyntaxUnquoteSplicing) {
				return
			}
		case inUnknown:
			if !r.unknown() {
				return
			}
		case flushingRun:
			if !r.flushRun(r.pendingKind, r.consumed) {
				return
			}
		default:
			panic("lexer: unreachable state")
		}
	}
}

// emitRun resets run bookkeeping and writes a length-tagged record for a run
// that just completed, splitting it into MaxRunLength-sized pieces if the
// total (including any bytes consumed in earlier chunks) overflows a single
// record. It reports false if the output buffer ran out mid-emission, in
// which case the caller must stop and let loop return.
func (r *run) emitRun(kind token.Kind) bool {
	return r.flushRun(kind, r.consumed)
}

// flushRun is emitRun's resumable core: total bytes of kind are already
// fully read out of the input by the time this runs, so there is nothing
// left to spill if the output buffer runs low -- only buffer_full applies
// (spec.md §4.4). A run long enough to need several MaxRunLength-sized
// records can exhaust the buffer partway through; flushRun pauses in
// flushingRun and resumes splitting the remainder once the caller has
// drained out and called Lex again, exactly the way a spilled token resumes
// from its Continuation.
func (r *run) flushRun(kind token.Kind, total int) bool {
	for total > token.MaxRunLength {
		if r.full() {
			r.pauseFlush(kind, total)
			return false
		}
		r.w.LengthTagged(kind, token.MaxRunLength)
		total -= token.MaxRunLength
	}
	if r.full() {
		r.pauseFlush(kind, total)
		return false
	}
	r.w.LengthTagged(kind, total)
	r.consumed = 0
	r.state = Start
	return true
}

func (r *run) pauseFlush(kind token.Kind, remaining int) {
	r.pendingKind = kind
	r.consumed = remaining
	r.state = flushingRun
	r.w.ZeroArg(token.BufferFull)
}

func (r *run) emitZeroArg(kind token.Kind) {
	r.w.ZeroArg(kind)
	r.consumed = 0
	r.state = Start
}

// emitUnknown closes out a run of unrecognized bytes, using the one-byte
// Unknown record for the common singleton case and UnknownRun (split at
// MaxRunLength) otherwise -- spec.md §6.1 reserves a dedicated zero-arg
// kind for exactly this case so a single garbage byte costs one byte on
// the wire instead of two.
func (r *run) emitUnknown() bool {
	if r.consumed == 1 {
		r.emitZeroArg(token.Unknown)
		return true
	}
	return r.emitRun(token.UnknownRun)
}

// pause ends the call because chunk ran out mid-token; the caller must
// resume with the next chunk and the Continuation this call returns.
func (r *run) pause() {
	r.spill()
}
