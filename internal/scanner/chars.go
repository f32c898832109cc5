package scanner

import "unicode"

// ---------------------------------------------------------------------------
// Character-class predicates
// ---------------------------------------------------------------------------

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}

func isDecDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// isIdentStart is ASCII-only: identifiers in this position never start with
// a non-ASCII letter.
func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_'
}

func isIdentChar(ch rune) bool { return isIdentStart(ch) || isDecDigit(ch) }

// isHorizontalSpace matches the blanks skipped between tokens. Line
// terminators are significant and never skipped.
func isHorizontalSpace(ch rune) bool { return ch == ' ' || ch == '\t' }

func isLineEnd(ch rune) bool { return ch == '\n' || ch == '\r' }

/*
 * isDateChar reports whether ch may appear in the body of a date literal:
 * digits, letters (month names, AM/PM), blanks and the separators / : , - .
 * Line terminators are checked by the caller before this predicate.
 */
func isDateChar(ch rune) bool {
	switch ch {
	case '/', ':', ',', '-', '.':
		return true
	}
	if ch == EOF || isLineEnd(ch) {
		return false
	}
	return isDecDigit(ch) || unicode.IsLetter(ch) || unicode.IsSpace(ch)
}

func toLowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
