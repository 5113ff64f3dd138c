package lexer

import "github.com/frengels/ely/token"

// start dispatches on the first byte of a new token. It returns false when
// there is nothing left to do this call: either chunk is exhausted with no
// token in progress, or the sentinel byte ended the logical input.
func (r *run) start() bool {
	b, ok := r.peek()
	if !ok {
		return false
	}

	switch {
	case b == 0:
		r.i++
		r.emitZeroArg(token.EOF)
		return false

	case b == ' ':
		r.i++
		r.consumed = 1
		r.state = inWhitespace
		return true
	case b == '\t':
		r.i++
		r.consumed = 1
		r.state = inTab
		return true
	case b == '\n':
		r.i++
		r.emitZeroArg(token.NewlineLF)
		return true
	case b == '\r':
		r.i++
		r.state = afterCR
		return true
	case b == ';':
		r.i++
		r.consumed = 1
		r.state = inLineComment
		return true

	case b == '(':
		r.i++
		r.emitZeroArg(token.LParen)
		return true
	case b == ')':
		r.i++
		r.emitZeroArg(token.RParen)
		return true
	case b == '[':
		r.i++
		r.emitZeroArg(token.LBracket)
		return true
	case b == ']':
		r.i++
		r.emitZeroArg(token.RBracket)
		return true
	case b == '{':
		r.i++
		r.emitZeroArg(token.LBrace)
		return true
	case b == '}':
		r.i++
		r.emitZeroArg(token.RBrace)
		return true
	case b == '/':
		r.i++
		r.emitZeroArg(token.Slash)
		return true

	case b == '"':
		r.i++
		r.consumed = 1
		r.state = inString
		return true

	case b == '#':
		r.i++
		r.consumed = 1
		r.state = afterNumberSign
		return true
	case b == ',':
		r.i++
		r.consumed = 1
		r.state = afterComma
		return true
	case b == '\'':
		r.i++
		r.emitZeroArg(token.Quote)
		return true
	case b == '`':
		r.i++
		r.emitZeroArg(token.QuasiQuote)
		return true

	case b == ':':
		r.i++
		r.emitZeroArg(token.Colon)
		return true
	case b == '!':
		r.i++
		r.emitZeroArg(token.Exclamation)
		return true
	case b == '?':
		r.i++
		r.emitZeroArg(token.Question)
		return true
	case b == '&':
		r.i++
		r.emitZeroArg(token.Ampersand)
		return true
	case b == '@':
		r.i++
		r.emitZeroArg(token.At)
		return true

	case isDigit(b):
		r.state = inNumber
		return true

	case b == '+' || b == '-':
		r.i++
		r.consumed = 1
		r.state = afterSign
		return true

	case isIdentifierStart(b):
		r.state = inIdentifier
		return true

	default:
		r.i++
		r.consumed = 1
		r.state = inUnknown
		return true
	}
}

// run_ consumes bytes equal to the one that started the run (used for
// whitespace/tab collapsing) until a different byte or chunk end.
func (r *run) run_(match func(byte) bool, kind token.Kind) bool {
	for {
		b, ok := r.peek()
		if !ok {
			r.pause()
			return false
		}
		if !match(b) {
			return r.emitRun(kind)
		}
		r.i++
		r.consumed++
	}
}

func isSpace(b byte) bool { return b == ' ' }
func isTab(b byte) bool   { return b == '\t' }

// afterCR resolves whether a lone \r is CRLF or a bare CR.
func (r *run) afterCR() bool {
	b, ok := r.peek()
	if !ok {
		r.pause()
		return false
	}
	if b == '\n' {
		r.i++
		r.emitZeroArg(token.NewlineCRLF)
		return true
	}
	r.emitZeroArg(token.NewlineCR)
	return true
}

// lineComment consumes through (but not including) the newline that ends
// it; the newline itself is lexed separately by Start on the next
// iteration.
func (r *run) lineComment() bool {
	for {
		b, ok := r.peek()
		if !ok {
			r.pause()
			return false
		}
		if b == '\n' || b == '\r' || b == 0 {
			return r.emitRun(token.LineComment)
		}
		r.i++
		r.consumed++
	}
}

// identifier consumes until a delimiter byte.
func (r *run) identifier() bool { return r.identifierLike(token.Identifier) }

// keywordLit consumes the body of a #:keyword literal the same way an
// identifier is consumed, but closes out as KeywordLit.
func (r *run) keywordLit() bool { return r.identifierLike(token.KeywordLit) }

// charLit consumes the body of a #\char literal (a char name like "newline"
// or a single character) the same way an identifier is consumed, but closes
// out as CharLit.
func (r *run) charLit() bool { return r.identifierLike(token.CharLit) }

// identifierLike consumes bytes until a delimiter and emits them as a single
// length-tagged record of kind.
func (r *run) identifierLike(kind token.Kind) bool {
	for {
		b, ok := r.peek()
		if !ok {
			r.pause()
			return false
		}
		if isDelimiterByte(b) {
			return r.emitRun(kind)
		}
		r.i++
		r.consumed++
	}
}

// unknown consumes a run of consecutive unrecognized bytes.
func (r *run) unknown() bool {
	for {
		b, ok := r.peek()
		if !ok {
			r.pause()
			return false
		}
		if !isUnknownByte(b) {
			return r.emitUnknown()
		}
		r.i++
		r.consumed++
	}
}

// number consumes digits; '.' promotes to a decimal, a delimiter closes an
// integer literal, and anything else degrades the run into an identifier
// (spec.md §4.4: "malformed numbers degrade to identifiers").
func (r *run) number() bool {
	for {
		b, ok := r.peek()
		if !ok {
			r.pause()
			return false
		}
		switch {
		case isDigit(b):
			r.i++
			r.consumed++
		case b == '.':
			r.i++
			r.consumed++
			r.state = inDecimal
			return true
		case isDelimiterByte(b):
			return r.emitRun(token.IntegerLit)
		default:
			r.i++
			r.consumed++
			r.state = inIdentifier
			return true
		}
	}
}

// decimal is number's continuation after a '.'.
func (r *run) decimal() bool {
	for {
		b, ok := r.peek()
		if !ok {
			r.pause()
			return false
		}
		switch {
		case isDigit(b):
			r.i++
			r.consumed++
		case isDelimiterByte(b):
			return r.emitRun(token.DecimalLit)
		default:
			r.i++
			r.consumed++
			r.state = inIdentifier
			return true
		}
	}
}

// stringLit consumes a string literal body, tracking a one-bit escape flag
// across resumptions via the inString/inStringEscaped state pair. Reaching
// the sentinel before an unescaped closing quote yields
// UnterminatedStringLit instead of StringLit.
func (r *run) stringLit(escaped bool) bool {
	for {
		b, ok := r.peek()
		if !ok {
			if escaped {
				r.state = inStringEscaped
			} else {
				r.state = inString
			}
			r.pause()
			return false
		}
		switch {
		case b == 0:
			return r.emitRun(token.UnterminatedStringLit)
		case !escaped && b == '"':
			r.i++
			r.consumed++
			return r.emitRun(token.StringLit)
		case !escaped && b == '\\':
			r.i++
			r.consumed++
			escaped = true
		default:
			r.i++
			r.consumed++
			escaped = false
		}
	}
}

// numberSign dispatches the byte after '#' (spec.md §4.4's NumberSign
// state): booleans, keyword/char literals, and the syntax-quote family.
func (r *run) numberSign() bool {
	b, ok := r.peek()
	if !ok {
		r.state = afterNumberSign
		r.pause()
		return false
	}
	switch b {
	case 't', 'f':
		r.i++
		r.consumed++
		return r.boolSign()
	case ':':
		r.i++
		r.consumed++
		r.state = inKeywordLit
		return true
	case '\\':
		r.i++
		r.consumed++
		r.state = inCharLit
		return true
	case '\'':
		r.i++
		r.emitZeroArg(token.SyntaxQuote)
		return true
	case '`':
		r.i++
		r.emitZeroArg(token.QuasiSyntax)
		return true
	case ',':
		r.i++
		r.consumed++
		r.state = afterSyntaxComma
		return true
	default:
		r.emitZeroArg(token.InvalidNumberSign)
		return true
	}
}

// boolSign decides whether a consumed "#t"/"#f" is a genuine BoolLit --
// which requires seeing the delimiter that ends it -- or degrades to
// InvalidNumberSign. If chunk ends before that deciding byte is available,
// it pauses in afterBoolSign instead of guessing, so a chunk split right
// after the 't'/'f' produces the same result as seeing it all at once
// (spec.md §8's chunking-equivalence property).
func (r *run) boolSign() bool {
	next, ok := r.peek()
	if !ok {
		r.state = afterBoolSign
		r.pause()
		return false
	}
	if !isDelimiterByte(next) {
		r.emitZeroArg(token.InvalidNumberSign)
		return true
	}
	return r.emitRun(token.BoolLit)
}

// sign dispatches the byte after a leading '+' or '-'.
func (r *run) sign() bool {
	b, ok := r.peek()
	if !ok {
		r.pause()
		return false
	}
	switch {
	case isDigit(b):
		r.state = inNumber
		return true
	case isDelimiterByte(b):
		return r.emitRun(token.Identifier)
	default:
		r.i++
		r.consumed++
		r.state = inIdentifier
		return true
	}
}

// comma handles both ',' (Unquote/UnquoteSplicing) and '#,'
// (SyntaxUnquote/SyntaxUnquoteSplicing) depending on which kinds the
// caller passes.
func (r *run) comma(plain, splicing token.Kind) bool {
	b, ok := r.peek()
	if ok && b == '@' {
		r.i++
		r.emitZeroArg(splicing)
		return true
	}
	if !ok {
		r.pause()
		return false
	}
	r.emitZeroArg(plain)
	return true
}
