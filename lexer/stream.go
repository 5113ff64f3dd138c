package lexer

import "github.com/frengels/ely/token"

// outBufSize is the scratch output buffer Stream refills Lex into. It's
// comfortably larger than minOutputHeadroom so a single Lex call usually
// produces many records before needing to drain.
const outBufSize = 4096

// Stream adapts the pull-based token.Record decoding the reader wants
// (spec.md §4.5: "a one-token-lookahead stream over the lexer's decoded
// output") on top of the push-style, buffer-chunked Lex function. It hides
// BufferFull (by draining and re-invoking Lex) and Spill (by pulling the
// next chunk from its ChunkSource and resuming) from callers; only real
// token-stream records are handed out.
type Stream struct {
	src  ChunkSource
	cont Continuation

	chunk []byte // current unconsumed remainder of the active source chunk
	out   [outBufSize]byte
	recs  []token.Record
	ri    int

	eof bool
}

// NewStream creates a Stream pulling chunks from src.
func NewStream(src ChunkSource) *Stream {
	return &Stream{src: src}
}

// Next returns the next decoded record, or ok=false once an EOF record has
// already been returned.
func (s *Stream) Next() (token.Record, bool) {
	for s.ri >= len(s.recs) {
		if s.eof {
			return token.Record{}, false
		}
		s.refill()
	}
	rec := s.recs[s.ri]
	s.ri++
	if rec.Kind == token.EOF {
		s.eof = true
	}
	return rec, true
}

// refill runs one or more Lex calls until it has at least one new record
// decoded into s.recs.
func (s *Stream) refill() {
	for {
		if len(s.chunk) == 0 {
			chunk, ok := s.src.NextChunk()
			if !ok {
				// No more input and nothing pending: treat as logical EOF
				// even without an explicit sentinel, so callers never spin.
				s.recs = []token.Record{{Kind: token.EOF}}
				s.ri = 0
				return
			}
			s.chunk = chunk
		}

		n, consumed, spilled, next := Lex(s.chunk, s.out[:], s.cont)
		records := token.DecodeAll(s.out[:], n, spilled)
		s.cont = next
		s.chunk = s.chunk[consumed:]

		if len(records) > 0 {
			switch records[len(records)-1].Kind {
			case token.BufferFull, token.Spill:
				// Neither is a real token: BufferFull means resume the
				// same chunk once the caller has drained what's left (the
				// top of this loop re-enters Lex on s.chunk, now already
				// advanced past what was consumed); Spill means chunk ran
				// out mid-token, resumed once the next chunk is pulled in
				// the len(s.chunk) == 0 branch above. Either way it is not
				// part of the token stream Next callers see.
				records = records[:len(records)-1]
			}
		}

		if len(records) > 0 {
			s.recs = records
			s.ri = 0
			return
		}
		// A call can legitimately produce zero real records (e.g. an empty
		// chunk, or a call that did nothing but spill/buffer-full); loop
		// around to pull the next chunk or retry output.
	}
}
