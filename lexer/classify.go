package lexer

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isDelimiterByte reports whether b ends an identifier, keyword, char, or
// number run, or confirms a "#t"/"#f" BoolLit (spec.md §4.4's delimiter
// set). Line comments do not use it; they end only at CR, LF, or \0.
func isDelimiterByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', 0, ';', '/', '(', ')', '[', ']', '{', '}', '"':
		return true
	}
	return false
}

// isUnknownByte reports whether b is a raw control byte that does not
// otherwise classify (spec.md §4.4's Start "otherwise" fallthrough).
func isUnknownByte(b byte) bool {
	if b == 0x7F {
		return true
	}
	if b < 0x20 {
		switch b {
		case 0, '\t', '\n', '\r':
			// 0 is the EOF sentinel, never a garbage byte; \t/\n/\r are
			// their own atmosphere kinds. Everything else in this range is
			// an unrecognized control byte.
			return false
		}
		return true
	}
	return false
}

// isIdentifierStart reports whether b may begin an identifier: any byte
// that isn't whitespace, a structural delimiter, reserved single-char
// punctuation, a sign, a digit, or an unknown control byte. This includes
// every UTF-8 lead and continuation byte (>= 0x80), which is how this
// lexer implements spec.md §4.4's Unicode2/Unicode3/Unicode4 states: since
// continuation bytes are never delimiters, there is no need to track how
// many of them remain to be skipped.
func isIdentifierStart(b byte) bool {
	if isUnknownByte(b) {
		return false
	}
	switch b {
	case ' ', '\t', '\n', '\r', 0,
		';', '(', ')', '[', ']', '{', '}', '/', '"',
		'#', ',', '\'', '`', ':', '!', '?', '&', '@',
		'+', '-':
		return false
	}
	return !isDigit(b)
}
