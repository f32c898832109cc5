package parser

import (
	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// ParsedSource represents a tokenized VB6 source file
type ParsedSource struct {
	File        *discovery.DiscoveredFile
	Encoding    source.Encoding
	Lines       []*LogicalLine
	Diagnostics []*errors.ParseError
}

// Tokens returns every token of every logical line in source order
func (p *ParsedSource) Tokens() []Token {
	var toks []Token
	for _, line := range p.Lines {
		toks = append(toks, line.Tokens...)
	}
	return toks
}

// LogicalLine is one statement line, with continued physical lines joined
type LogicalLine struct {
	Text      string        // Original source text of the line
	StartPos  int           // Byte offset of the first token
	StartLine int           // 1-indexed line number
	EndLine   int           // 1-indexed line number
	Type      StatementType // Statement classification
	Tokens    []Token
}

// StatementType classifies logical lines by their leading tokens
type StatementType int

const (
	StmtUnknown      StatementType = iota
	StmtLabel                      // Retry: ...
	StmtCall                       // DoSomething arg
	StmtPreprocessor               // #If / #Else / #End If / #Const
	StmtFileIO                     // Open, Print #1, Close ...
	StmtDeclaration                // Dim, Public Sub, Type, Option ...
	StmtOther                      // Any other statement
)

// String returns a string representation of StatementType
func (st StatementType) String() string {
	switch st {
	case StmtLabel:
		return "label"
	case StmtCall:
		return "call"
	case StmtPreprocessor:
		return "preprocessor"
	case StmtFileIO:
		return "fileio"
	case StmtDeclaration:
		return "declaration"
	case StmtOther:
		return "other"
	default:
		return "unknown"
	}
}
