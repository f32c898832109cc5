/*
 * lexer.go
 *
 * Reference host tokenizer for Visual Basic 6 source text.
 *
 * The lexer owns the grammar-state side of the external scanner contract: at
 * every token it decides which external categories are acceptable, asks
 * scanner.Scan for one of them, and only when the scanner declines falls back
 * to ordinary context-free tokenization (words, numbers, strings, comments,
 * operators).
 *
 * The grammar-state model is deliberately small:
 *
 *   statement start   LineContinuation, LabelIdentifier, CallableIdentifier
 *   file number slot  LineContinuation, FileNumber
 *   anywhere else     LineContinuation, DateLiteral, GuidLiteral
 *
 * A statement starts at the beginning of input, after a line break, after a
 * ':' separator and after Then / Else. A file number slot is the operand
 * position right after a file I/O keyword (Print #1, Close #1, #2,
 * Open ... As #1, Line Input #1).
 *
 * Usage:
 *
 *	lx := parser.NewLexer(src)
 *	for {
 *	    tok := lx.Next()
 *	    if tok.Type == parser.EOF { break }
 *	    // use tok.Type, tok.Text, tok.Pos, tok.Line
 *	}
 */
package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/internal/scanner"
)

/*
 * TokenType is the lexical category of a host token.
 *
 * Single-character punctuation tokens use their code point as the TokenType
 * value; all named categories are ≥ 1000.
 */
type TokenType int

// EOF is returned when the input is fully consumed.
const EOF TokenType = 0

const (
	Newline  TokenType = 1000 + iota // CR, LF or CR LF
	Ident                            // identifier that is not a reserved word
	Keyword                          // reserved word
	Number                           // 12, 1.5E3, &HFF&, 1#
	String                           // "text" with "" escapes
	Comment                          // ' … or Rem …
	Operator                         // <= >= <> :=

	// External categories, recognized by the scanner package.
	LineContinuation
	DateLiteral
	GuidLiteral
	FileNumber
	CallableIdentifier
	LabelIdentifier
)

var tokenTypeNames = map[TokenType]string{
	EOF:                "EOF",
	Newline:            "Newline",
	Ident:              "Ident",
	Keyword:            "Keyword",
	Number:             "Number",
	String:             "String",
	Comment:            "Comment",
	Operator:           "Operator",
	LineContinuation:   "LineContinuation",
	DateLiteral:        "DateLiteral",
	GuidLiteral:        "GuidLiteral",
	FileNumber:         "FileNumber",
	CallableIdentifier: "CallableIdentifier",
	LabelIdentifier:    "LabelIdentifier",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	if t > 0 && t < 1000 {
		return fmt.Sprintf("%q", rune(t))
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// externalTypes maps scanner categories onto host token types.
var externalTypes = map[scanner.TokenType]TokenType{
	scanner.LineContinuation:   LineContinuation,
	scanner.DateLiteral:        DateLiteral,
	scanner.GuidLiteral:        GuidLiteral,
	scanner.FileNumber:         FileNumber,
	scanner.CallableIdentifier: CallableIdentifier,
	scanner.LabelIdentifier:    LabelIdentifier,
}

// Token is a single lexical token from VB6 source text.
type Token struct {
	Type TokenType // Lexical category.
	Text string    // Raw source text that forms this token.
	Pos  int       // Byte offset of the first character (0-based).
	Line int       // Line of the first character (1-based).
}

// IsExternal reports whether the token was produced by the external scanner.
func (t Token) IsExternal() bool { return t.Type >= LineContinuation && t.Type <= LabelIdentifier }

// Is reports whether the token's text equals word, ignoring case.
func (t Token) Is(word string) bool { return strings.EqualFold(t.Text, word) }

// GUID parses the value of a GuidLiteral token.
func (t Token) GUID() (uuid.UUID, error) {
	if t.Type != GuidLiteral {
		return uuid.Nil, fmt.Errorf("token %s is not a GUID literal", t.Type)
	}
	return uuid.Parse(t.Text)
}

// fileStatements are the statements whose first operand is a file number.
var fileStatements = map[string]bool{
	"open": true, "close": true, "get": true, "put": true,
	"print": true, "write": true, "input": true, "line input": true,
	"seek": true, "lock": true, "unlock": true, "width": true,
	"reset": true,
}

/*
 * Lexer tokenizes VB6 source text one token at a time.
 * Blanks between tokens are silently consumed; line breaks are tokens.
 */
type Lexer struct {
	src    string
	pos    int
	line   int
	cursor *scanner.StringCursor

	stmtStart   bool   // next token begins a statement
	stmtKeyword string // lowercase leading keyword of the current statement
	stmtLen     int    // significant tokens seen in the current statement
	prev        Token  // previous significant token in the statement

	diagnostics []*errors.ParseError
	file        string
}

// NewLexer returns a Lexer that reads from src.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:       src,
		line:      1,
		cursor:    scanner.NewStringCursor(src, 0),
		stmtStart: true,
	}
}

// WithFile sets the file name used in diagnostics.
func (l *Lexer) WithFile(name string) *Lexer {
	l.file = name
	return l
}

// Pos returns the byte offset of the next character to be read.
func (l *Lexer) Pos() int { return l.pos }

// Diagnostics returns the problems found so far (unterminated strings).
func (l *Lexer) Diagnostics() []*errors.ParseError { return l.diagnostics }

// Next returns the next token, or a token of type EOF at the end of input.
func (l *Lexer) Next() Token {
	l.skipBlanks()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Pos: l.pos, Line: l.line}
	}

	tok, ok := l.external()
	if !ok {
		tok = l.ordinary()
	}
	l.line += countLineBreaks(tok.Text)
	l.update(tok)
	return tok
}

// All tokenizes the remaining input and returns every token (no EOF entry).
func (l *Lexer) All() []Token {
	var toks []Token
	for {
		t := l.Next()
		if t.Type == EOF {
			break
		}
		toks = append(toks, t)
	}
	return toks
}

// Tokenize is a convenience wrapper returning all tokens of src.
func Tokenize(src string) []Token {
	return NewLexer(src).All()
}

/*
 * SplitLogicalLines tokenizes src and groups tokens into logical lines.
 * Line breaks end a group and are not included; a line continuation keeps
 * the following physical line in the same group. Empty lines are dropped.
 */
func SplitLogicalLines(src string) [][]Token {
	lx := NewLexer(src)
	var lines [][]Token
	var cur []Token
	for {
		tok := lx.Next()
		if tok.Type == EOF {
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			break
		}
		if tok.Type == Newline {
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, tok)
	}
	return lines
}

// ---------------------------------------------------------------------------
// Grammar state
// ---------------------------------------------------------------------------

// validSymbols returns the external categories acceptable at this point.
func (l *Lexer) validSymbols() scanner.ValidSymbols {
	v := scanner.Request(scanner.LineContinuation)
	switch {
	case l.stmtStart:
		return v.With(scanner.LabelIdentifier).With(scanner.CallableIdentifier)
	case l.fileNumberSlot():
		return v.With(scanner.FileNumber)
	default:
		return v.With(scanner.DateLiteral).With(scanner.GuidLiteral)
	}
}

// fileNumberSlot reports whether the next operand is a file number.
func (l *Lexer) fileNumberSlot() bool {
	if !fileStatements[l.stmtKeyword] {
		return false
	}
	switch l.stmtKeyword {
	case "open":
		return l.prev.Type == Keyword && l.prev.Is("As")
	case "close":
		return l.stmtLen == 1 || l.prev.Type == TokenType(',')
	case "line input":
		return l.stmtLen == 2
	default:
		return l.stmtLen == 1
	}
}

// update advances the grammar state past tok.
func (l *Lexer) update(tok Token) {
	switch {
	case tok.Type == Comment, tok.Type == LineContinuation:
		return
	case tok.Type == Newline, tok.Type == TokenType(':'):
		l.beginStatement()
		return
	case tok.Type == Keyword && (tok.Is("Then") || tok.Is("Else")):
		// Single-line If: a statement may follow on the same line.
		l.beginStatement()
		return
	}

	if l.stmtLen == 0 && tok.Type == Keyword {
		l.stmtKeyword = strings.ToLower(tok.Text)
	}
	if l.stmtLen == 1 && l.stmtKeyword == "line" && tok.Is("Input") {
		l.stmtKeyword = "line input"
	}
	l.stmtLen++
	l.stmtStart = false
	l.prev = tok
}

func (l *Lexer) beginStatement() {
	l.stmtStart = true
	l.stmtKeyword = ""
	l.stmtLen = 0
	l.prev = Token{}
}

// ---------------------------------------------------------------------------
// Token production
// ---------------------------------------------------------------------------

// external asks the scanner for a token at the current position.
func (l *Lexer) external() (Token, bool) {
	l.cursor.Seek(l.pos)
	res, ok := scanner.Scan(l.cursor, l.validSymbols())
	if !ok {
		return Token{}, false
	}
	l.pos = res.End
	return Token{Type: externalTypes[res.Type], Text: res.Text(l.src), Pos: res.Start, Line: l.line}, true
}

/*
 * ordinary is the context-free fallback tokenizer. The case ordering
 * matters: line breaks and comments first, then literals, then words, then
 * two-character operators before single punctuation.
 */
func (l *Lexer) ordinary() Token {
	start := l.pos
	ch := l.src[l.pos]

	switch {
	case ch == '\r' || ch == '\n':
		l.pos++
		if ch == '\r' && l.peek(0) == '\n' {
			l.pos++
		}
		return l.token(Newline, start)

	case ch == '\'':
		return l.comment(start)

	case ch == '"':
		return l.stringLiteral(start)

	case isDigit(ch), ch == '.' && isDigit(l.peek(1)):
		return l.number(start)

	case ch == '&' && strings.ContainsRune("hHoO", rune(l.peek(1))):
		return l.radixNumber(start)

	case isWordStart(l.src[l.pos:]):
		return l.word(start)

	case ch == '<' && (l.peek(1) == '=' || l.peek(1) == '>'),
		ch == '>' && l.peek(1) == '=',
		ch == ':' && l.peek(1) == '=':
		l.pos += 2
		return l.token(Operator, start)

	default:
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
		return Token{Type: TokenType(r), Text: l.src[start:l.pos], Pos: start, Line: l.line}
	}
}

func (l *Lexer) token(typ TokenType, start int) Token {
	return Token{Type: typ, Text: l.src[start:l.pos], Pos: start, Line: l.line}
}

// peek returns the byte at l.pos+offset, or 0 if out of bounds.
func (l *Lexer) peek(offset int) byte {
	if i := l.pos + offset; i < len(l.src) {
		return l.src[i]
	}
	return 0
}

func (l *Lexer) skipBlanks() {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
}

// comment consumes to the end of the line; the line break is not included.
func (l *Lexer) comment(start int) Token {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
		l.pos++
	}
	return l.token(Comment, start)
}

/*
 * stringLiteral consumes "…" where "" is an escaped quote. Strings cannot
 * span lines; an unterminated string ends at the line break and is recorded
 * as a diagnostic.
 */
func (l *Lexer) stringLiteral(start int) Token {
	l.pos++ /* opening quote */
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '"':
			l.pos++
			if l.peek(0) == '"' {
				l.pos++
				continue
			}
			return l.token(String, start)
		case '\r', '\n':
			l.unterminated(start)
			return l.token(String, start)
		default:
			l.pos++
		}
	}
	l.unterminated(start)
	return l.token(String, start)
}

func (l *Lexer) unterminated(start int) {
	col := start - strings.LastIndexAny(l.src[:start], "\r\n")
	l.diagnostics = append(l.diagnostics, errors.NewParseError(l.file, l.line, col, "unterminated string literal"))
}

/*
 * number consumes a decimal literal: digits, an optional fraction, an
 * optional E/D exponent and an optional type suffix (% & ! # @ ^).
 */
func (l *Lexer) number(start int) Token {
	l.digits()
	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		l.pos++
		l.digits()
	}
	if c := l.peek(0); c == 'e' || c == 'E' || c == 'd' || c == 'D' {
		n := 1
		if s := l.peek(1); s == '+' || s == '-' {
			n = 2
		}
		if isDigit(l.peek(n)) {
			l.pos += n
			l.digits()
		}
	}
	l.typeSuffix()
	return l.token(Number, start)
}

// radixNumber consumes &Hxx or &Oxx with an optional & or % suffix.
func (l *Lexer) radixNumber(start int) Token {
	hex := l.peek(1) == 'h' || l.peek(1) == 'H'
	l.pos += 2
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isDigit(c) && (hex || c <= '7') || hex && strings.IndexByte("abcdefABCDEF", c) >= 0 {
			l.pos++
			continue
		}
		break
	}
	if c := l.peek(0); c == '&' || c == '%' {
		l.pos++
	}
	return l.token(Number, start)
}

func (l *Lexer) digits() {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) typeSuffix() {
	if strings.IndexByte("%&!#@^", l.peek(0)) >= 0 && !isWordChar(l.src[l.pos+1:]) {
		l.pos++
	}
}

/*
 * word consumes an identifier or keyword. A trailing type-declaration
 * character ($ % & ! # @) belongs to the word unless another word follows it
 * directly (rs!Field is a bang member access, not rs! + Field). "Rem" starts
 * a comment.
 */
func (l *Lexer) word(start int) Token {
	for l.pos < len(l.src) && isWordChar(l.src[l.pos:]) {
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
	}
	text := l.src[start:l.pos]
	if strings.EqualFold(text, "Rem") {
		return l.comment(start)
	}
	if l.pos < len(l.src) && strings.IndexByte("$%&!#@", l.src[l.pos]) >= 0 && !isWordChar(l.src[l.pos+1:]) {
		l.pos++
	}
	if scanner.IsReservedKeyword(text) {
		return l.token(Keyword, start)
	}
	return l.token(Ident, start)
}

// ---------------------------------------------------------------------------
// Character-class predicates
// ---------------------------------------------------------------------------

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// isWordStart reports whether s begins with a letter or '_'. Non-ASCII
// letters are accepted here so that Windows-1252 names decode to one word.
func isWordStart(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r)
}

func isWordChar(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// countLineBreaks counts CR, LF and CR LF sequences in s.
func countLineBreaks(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			n++
		case '\r':
			n++
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		}
	}
	return n
}
