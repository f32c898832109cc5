package scanner

import "strings"

// TokenType is one of the external token categories the host grammar can
// request at a lexing decision point.
type TokenType int

/*
 * External token categories.
 *
 * The numbering is the index into ValidSymbols and must stay dense and start
 * at zero; hosts that mirror these values in their own symbol tables rely on
 * the order below.
 */
const (
	LineContinuation   TokenType = iota // "_" + optional blanks + line end
	DateLiteral                         // #1/1/2024#, #12:30 PM#
	GuidLiteral                         // {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
	FileNumber                          // #1, #hFile
	CallableIdentifier                  // implicit call target
	LabelIdentifier                     // jump target followed by ':'

	tokenTypeCount
)

var tokenTypeNames = [tokenTypeCount]string{
	LineContinuation:   "LineContinuation",
	DateLiteral:        "DateLiteral",
	GuidLiteral:        "GuidLiteral",
	FileNumber:         "FileNumber",
	CallableIdentifier: "CallableIdentifier",
	LabelIdentifier:    "LabelIdentifier",
}

// String returns the category name.
func (t TokenType) String() string {
	if !t.valid() {
		return "Unknown"
	}
	return tokenTypeNames[t]
}

func (t TokenType) valid() bool { return t >= 0 && t < tokenTypeCount }

// TokenTypes returns every category in priority-independent declaration order.
func TokenTypes() []TokenType {
	types := make([]TokenType, 0, tokenTypeCount)
	for t := TokenType(0); t < tokenTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ValidSymbols is the request set: the categories acceptable in the current
// grammar state. The zero value requests nothing.
type ValidSymbols [tokenTypeCount]bool

// Request builds a request set from the given categories.
func Request(types ...TokenType) ValidSymbols {
	var v ValidSymbols
	for _, t := range types {
		if t.valid() {
			v[t] = true
		}
	}
	return v
}

// AllSymbols returns a request set accepting every category.
func AllSymbols() ValidSymbols {
	return Request(TokenTypes()...)
}

// Has reports whether t is requested.
func (v ValidSymbols) Has(t TokenType) bool { return t.valid() && v[t] }

// With returns a copy of v that also requests t.
func (v ValidSymbols) With(t TokenType) ValidSymbols {
	if t.valid() {
		v[t] = true
	}
	return v
}

// Without returns a copy of v that no longer requests t.
func (v ValidSymbols) Without(t TokenType) ValidSymbols {
	if t.valid() {
		v[t] = false
	}
	return v
}

// Empty reports whether no category is requested.
func (v ValidSymbols) Empty() bool {
	for _, ok := range v {
		if ok {
			return false
		}
	}
	return true
}

func (v ValidSymbols) String() string {
	var names []string
	for t := TokenType(0); t < tokenTypeCount; t++ {
		if v[t] {
			names = append(names, t.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
