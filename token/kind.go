// Package token defines the record-level vocabulary the lexer emits and the
// reader consumes: token kinds and the 1-3 byte wire encoding for them.
package token

import "fmt"

// Kind is the tag of a single token record. It is a stable enumeration for
// the lifetime of a lexer/reader pair within one process; the exact numeric
// values are not part of any on-disk or cross-process contract (spec.md
// §6.1).
type Kind byte

const (
	// Unknown is the zero Kind so a zero-valued Token is recognizably not a
	// real token.
	Unknown Kind = iota
	UnknownRun // A run of >1 unrecognized bytes; length-tagged.

	// Atmosphere kinds.
	Whitespace
	Tab
	NewlineLF
	NewlineCR
	NewlineCRLF
	LineComment
	BlockComment

	// Brackets.
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	// Standalone punctuation.
	Slash
	Colon
	Exclamation
	Question
	Ampersand
	At

	// Literals and identifiers.
	Identifier
	IntegerLit
	DecimalLit
	StringLit
	CharLit
	KeywordLit
	BoolLit

	// Quote family.
	Quote
	QuasiQuote
	Unquote
	UnquoteSplicing
	SyntaxQuote
	QuasiSyntax
	SyntaxUnquote
	SyntaxUnquoteSplicing

	// Lexical error kinds (still emitted in-band; spec.md §7).
	InvalidNumberSign
	UnterminatedStringLit

	// Control/termination kinds.
	EOF
	Spill
	BufferFull
)

var names = [...]string{
	Unknown:                "Unknown",
	UnknownRun:             "UnknownRun",
	Whitespace:             "Whitespace",
	Tab:                    "Tab",
	NewlineLF:              "NewlineLF",
	NewlineCR:              "NewlineCR",
	NewlineCRLF:            "NewlineCRLF",
	LineComment:            "LineComment",
	BlockComment:           "BlockComment",
	LParen:                 "LParen",
	RParen:                 "RParen",
	LBracket:               "LBracket",
	RBracket:               "RBracket",
	LBrace:                 "LBrace",
	RBrace:                 "RBrace",
	Slash:                  "Slash",
	Colon:                  "Colon",
	Exclamation:            "Exclamation",
	Question:               "Question",
	Ampersand:              "Ampersand",
	At:                     "At",
	Identifier:             "Identifier",
	IntegerLit:             "IntegerLit",
	DecimalLit:             "DecimalLit",
	StringLit:              "StringLit",
	CharLit:                "CharLit",
	KeywordLit:             "KeywordLit",
	BoolLit:                "BoolLit",
	Quote:                  "Quote",
	QuasiQuote:             "QuasiQuote",
	Unquote:                "Unquote",
	UnquoteSplicing:        "UnquoteSplicing",
	SyntaxQuote:            "SyntaxQuote",
	QuasiSyntax:            "QuasiSyntax",
	SyntaxUnquote:          "SyntaxUnquote",
	SyntaxUnquoteSplicing:  "SyntaxUnquoteSplicing",
	InvalidNumberSign:      "InvalidNumberSign",
	UnterminatedStringLit:  "UnterminatedStringLit",
	EOF:                    "EOF",
	Spill:                  "Spill",
	BufferFull:             "BufferFull",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return fmt.Sprintf("token.Kind(%d)", byte(k))
}

// IsZeroArg reports whether this kind's record is exactly the one-byte kind
// tag, with no length or payload (spec.md §6.1's "Zero-arg tokens" row).
func (k Kind) IsZeroArg() bool {
	switch k {
	case LParen, RParen, LBracket, RBracket, LBrace, RBrace, Slash,
		Colon, Exclamation, Question, Ampersand, At,
		Quote, QuasiQuote, Unquote, UnquoteSplicing,
		SyntaxQuote, QuasiSyntax, SyntaxUnquote, SyntaxUnquoteSplicing,
		InvalidNumberSign,
		NewlineLF, NewlineCR, NewlineCRLF, EOF, BufferFull, Unknown:
		return true
	}
	return false
}

// IsLengthTagged reports whether this kind's record is [kind][length], with
// length in [0, 255] (spec.md §6.1's "Length-tagged tokens" row).
func (k Kind) IsLengthTagged() bool {
	switch k {
	case Whitespace, Tab, Identifier, IntegerLit, DecimalLit, StringLit,
		LineComment, KeywordLit, CharLit, UnknownRun, UnterminatedStringLit, BoolLit:
		return true
	}
	return false
}

// IsAtmosphere reports whether a token of this kind carries no semantic
// content and belongs in a neighboring real token's atmosphere list.
func (k Kind) IsAtmosphere() bool {
	switch k {
	case Whitespace, Tab, NewlineLF, NewlineCR, NewlineCRLF, LineComment, BlockComment:
		return true
	}
	return false
}

// IsNewline reports whether this atmosphere kind represents a line break.
func (k Kind) IsNewline() bool {
	switch k {
	case NewlineLF, NewlineCR, NewlineCRLF:
		return true
	}
	return false
}

// MaxRunLength is the largest length a single length-tagged record can
// encode; longer runs are split across consecutive same-kind records
// (spec.md §6.1).
const MaxRunLength = 255
