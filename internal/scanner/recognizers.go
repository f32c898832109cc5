package scanner

import "strings"

/*
 * Recognizers.
 *
 * Each recognizer starts with the cursor on its leading character and
 * returns true only after committing an end boundary with MarkEnd. A
 * recognizer that returns false may leave the cursor anywhere; Scan restores
 * the snapshot taken before the attempt.
 */

/*
 * scanLineContinuation matches "_", blanks, then CR, LF or CR LF:
 *
 *	Dim x As Long _
 *	    , y As String
 *
 * Anything else after the blanks (including end of input) declines, leaving
 * the underscore to be read as an identifier character.
 */
func scanLineContinuation(c Cursor) bool {
	if c.Lookahead() != '_' {
		return false
	}
	c.Advance()

	for isHorizontalSpace(c.Lookahead()) {
		c.Advance()
	}

	switch c.Lookahead() {
	case '\r':
		c.Advance()
		if c.Lookahead() == '\n' {
			c.Advance()
		}
	case '\n':
		c.Advance()
	default:
		return false
	}
	c.MarkEnd()
	return true
}

// guidGroups is the 8-4-4-4-12 hex digit layout of a GUID literal.
var guidGroups = [...]int{8, 4, 4, 4, 12}

// scanGUID matches {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx} (always 38
// characters) as used in class module headers and type library references.
// All or nothing.
func scanGUID(c Cursor) bool {
	if c.Lookahead() != '{' {
		return false
	}
	c.Advance()

	for g, n := range guidGroups {
		for i := 0; i < n; i++ {
			if !isHexDigit(c.Lookahead()) {
				return false
			}
			c.Advance()
		}
		if g < len(guidGroups)-1 {
			if c.Lookahead() != '-' {
				return false
			}
			c.Advance()
		}
	}

	if c.Lookahead() != '}' {
		return false
	}
	c.Advance()
	c.MarkEnd()
	return true
}

/*
 * scanHashLiteral resolves the '#' prefix shared by date literals and file
 * numbers:
 *
 *	#1/1/2024#   #January 1, 2024#   #12:30:00 PM#    → DateLiteral
 *	#1           #hFile                               → FileNumber
 *	#If  #Else  #End If  #Const                       → neither
 *
 * The text right after '#' (a digit run or an identifier run) is the file
 * number candidate. Unless it is a preprocessor word, its end is committed as
 * a fallback before the date body is scanned. A date literal that closes with
 * a second '#' on the same line re-commits the end past that '#' and wins.
 * Otherwise the fallback stands, provided the candidate is not followed by a
 * character that belongs to some other literal.
 */
func scanHashLiteral(c Cursor, valid ValidSymbols) (TokenType, bool) {
	if c.Lookahead() != '#' {
		return 0, false
	}
	wantDate := valid.Has(DateLiteral)
	wantFile := valid.Has(FileNumber)
	if !wantDate && !wantFile {
		return 0, false
	}
	c.Advance()

	candidate := scanHashCandidate(c)
	fileValid := false
	if candidate != "" && !IsPreprocessorKeyword(candidate) {
		switch c.Lookahead() {
		case '/', ':', '-', '.', '#':
			// date, time or another literal; not a file number
		default:
			fileValid = true
			c.MarkEnd()
		}
	}

	if wantDate {
		hasBody := candidate != ""
		for {
			ch := c.Lookahead()
			if ch == '#' {
				if !hasBody {
					break
				}
				c.Advance()
				c.MarkEnd()
				return DateLiteral, true
			}
			if ch == EOF || isLineEnd(ch) || !isDateChar(ch) {
				break
			}
			hasBody = true
			c.Advance()
		}
	}

	if wantFile && fileValid {
		return FileNumber, true
	}
	return 0, false
}

// scanHashCandidate reads the digit run or identifier run directly after
// '#'. Anything else yields an empty candidate and consumes nothing.
func scanHashCandidate(c Cursor) string {
	var b strings.Builder
	switch ch := c.Lookahead(); {
	case isDecDigit(ch):
		for isDecDigit(c.Lookahead()) {
			b.WriteRune(c.Lookahead())
			c.Advance()
		}
	case isIdentStart(ch):
		return scanIdentifier(c)
	}
	return b.String()
}

// scanIdentifier consumes a maximal identifier and returns its text. The
// caller has checked isIdentStart on the lookahead.
func scanIdentifier(c Cursor) string {
	var b strings.Builder
	for isIdentChar(c.Lookahead()) {
		b.WriteRune(c.Lookahead())
		c.Advance()
	}
	return b.String()
}

/*
 * scanCallableIdentifier matches an identifier that can be the target of an
 * implicit call statement ("DoSomething arg1, arg2").
 *
 * Reserved keywords decline so that "Public", "Dim", ... reach the grammar's
 * own keyword tokens. After committing the identifier, the next significant
 * character is peeked (never included in the token) to leave assignments,
 * labels and member or index expressions to the grammar:
 *
 *	Foo = 1    Foo: ...   Foo.Bar   Foo!Field   Foo(1)   Foo += 1
 */
func scanCallableIdentifier(c Cursor) bool {
	if !isIdentStart(c.Lookahead()) {
		return false
	}
	if IsReservedKeyword(scanIdentifier(c)) {
		return false
	}
	c.MarkEnd()

	for isHorizontalSpace(c.Lookahead()) {
		c.Advance()
	}

	switch c.Lookahead() {
	case '=', ':', '.', '!', '(':
		return false
	case '+', '-':
		c.Advance()
		if c.Lookahead() == '=' {
			return false
		}
	}
	return true
}

// scanLabelIdentifier matches a non-keyword identifier immediately followed
// by ':'. The colon is required but stays outside the token.
func scanLabelIdentifier(c Cursor) bool {
	if !isIdentStart(c.Lookahead()) {
		return false
	}
	if IsReservedKeyword(scanIdentifier(c)) {
		return false
	}
	if c.Lookahead() != ':' {
		return false
	}
	c.MarkEnd()
	return true
}
