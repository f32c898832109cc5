/*
 * Package scanner recognizes the Visual Basic 6 tokens that a context-free
 * grammar cannot resolve on its own:
 *
 *   - line continuations ("_" at the end of a physical line),
 *   - date literals (#...#) and file numbers (#1, #hFile),
 *   - GUID literals ({xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}),
 *   - callable and label identifiers (identifiers that are not keywords).
 *
 * The host parser positions a Cursor, says which categories are acceptable
 * in its current state and calls Scan once. Scan either returns one matched
 * category with its span or declines, in which case the cursor is back where
 * it started and the host tokenizes by its own rules.
 *
 * Usage:
 *
 *	c := scanner.NewStringCursor(src, offset)
 *	if res, ok := scanner.Scan(c, scanner.Request(scanner.DateLiteral, scanner.FileNumber)); ok {
 *	    // res.Type, res.Start, res.End
 *	}
 *
 * The package holds no mutable state; concurrent scans over independent
 * cursors are safe.
 */
package scanner

// Result is a recognized external token.
type Result struct {
	Type  TokenType
	Start int // byte offset of the first character
	End   int // exclusive end offset
}

// Len returns the span length in bytes.
func (r Result) Len() int { return r.End - r.Start }

// Text returns the matched text from the source the cursor was built on.
func (r Result) Text(src string) string {
	if r.Start < 0 || r.End > len(src) || r.Start > r.End {
		return ""
	}
	return src[r.Start:r.End]
}

/*
 * Scan attempts to recognize one external token at the cursor.
 *
 * Blanks (space, tab) are skipped first and never belong to a token. The
 * recognizers are then tried in fixed priority, each only when its category
 * is requested and the lookahead can start it:
 *
 *  1. line continuation   '_'
 *  2. date / file number  '#'   (either category requested)
 *  3. GUID                '{'
 *  4. label identifier    identifier start
 *  5. callable identifier identifier start
 *
 * The first success wins: the cursor is left at the token's end and the
 * result returned. A failed attempt is rolled back before the next one is
 * tried; if every attempt fails the cursor is restored to its state on entry
 * and ok is false.
 */
func Scan(c Cursor, valid ValidSymbols) (Result, bool) {
	entry := c.Mark()

	for isHorizontalSpace(c.Lookahead()) {
		c.Skip()
	}
	start := c.Offset()

	if valid.Has(LineContinuation) && c.Lookahead() == '_' {
		if attempt(c, scanLineContinuation) {
			return commit(c, start, LineContinuation), true
		}
	}

	if (valid.Has(DateLiteral) || valid.Has(FileNumber)) && c.Lookahead() == '#' {
		m := c.Mark()
		if typ, ok := scanHashLiteral(c, valid); ok {
			return commit(c, start, typ), true
		}
		c.Reset(m)
	}

	if valid.Has(GuidLiteral) && c.Lookahead() == '{' {
		if attempt(c, scanGUID) {
			return commit(c, start, GuidLiteral), true
		}
	}

	if valid.Has(LabelIdentifier) && isIdentStart(c.Lookahead()) {
		if attempt(c, scanLabelIdentifier) {
			return commit(c, start, LabelIdentifier), true
		}
	}

	if valid.Has(CallableIdentifier) && isIdentStart(c.Lookahead()) {
		if attempt(c, scanCallableIdentifier) {
			return commit(c, start, CallableIdentifier), true
		}
	}

	c.Reset(entry)
	return Result{}, false
}

// ScanString runs Scan over src starting at offset.
func ScanString(src string, offset int, valid ValidSymbols) (Result, bool) {
	return Scan(NewStringCursor(src, offset), valid)
}

// attempt runs recognize and rolls the cursor back if it declines.
func attempt(c Cursor, recognize func(Cursor) bool) bool {
	m := c.Mark()
	if recognize(c) {
		return true
	}
	c.Reset(m)
	return false
}

// commit moves the cursor to the committed end, dropping any lookahead read
// past it, and builds the result.
func commit(c Cursor, start int, typ TokenType) Result {
	end := c.TokenEnd()
	c.Reset(Mark{Pos: end, Start: start, End: end})
	return Result{Type: typ, Start: start, End: end}
}
