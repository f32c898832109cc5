package parser

import (
	"fmt"
	"strings"

	"github.com/cybertec-postgresql/vb6scan/internal/discovery"
	"github.com/cybertec-postgresql/vb6scan/internal/errors"
	"github.com/cybertec-postgresql/vb6scan/internal/scanner"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// declarationKeywords open declaration statements.
var declarationKeywords = map[string]bool{
	"dim": true, "public": true, "private": true, "friend": true,
	"global": true, "static": true, "const": true, "declare": true,
	"type": true, "enum": true, "sub": true, "function": true,
	"property": true, "event": true, "implements": true,
	"option": true, "attribute": true, "version": true, "begin": true,
}

// Parse reads a VB6 file in the given encoding (source.Unknown detects) and
// splits it into classified logical lines
func Parse(file *discovery.DiscoveredFile, enc source.Encoding) (*ParsedSource, error) {
	content, err := source.ReadFile(file.Path, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	name := file.RelativePath
	if name == "" {
		name = file.Path
	}

	lines, diags := splitAndClassify(content.Text, name)
	return &ParsedSource{
		File:        file,
		Encoding:    content.Encoding,
		Lines:       lines,
		Diagnostics: diags,
	}, nil
}

// ParseFile is a convenience function that parses a file path directly
func ParseFile(filePath string) (*ParsedSource, error) {
	file := &discovery.DiscoveredFile{
		Path: filePath,
		Type: discovery.ClassifyPath(filePath),
	}
	return Parse(file, source.Unknown)
}

// ParseSource splits source text directly into logical lines
func ParseSource(text string) []*LogicalLine {
	lines, _ := splitAndClassify(text, "")
	return lines
}

// splitAndClassify tokenizes text, groups tokens into logical lines and
// classifies each one by inspecting its leading tokens.
func splitAndClassify(text, name string) ([]*LogicalLine, []*errors.ParseError) {
	lx := NewLexer(text).WithFile(name)

	var lines []*LogicalLine
	var cur []Token
	flush := func() {
		if line := buildLine(text, cur); line != nil {
			lines = append(lines, line)
		}
		cur = nil
	}

	for {
		tok := lx.Next()
		if tok.Type == EOF {
			flush()
			break
		}
		if tok.Type == Newline {
			flush()
			continue
		}
		cur = append(cur, tok)
	}

	return lines, lx.Diagnostics()
}

// buildLine turns a token group into a LogicalLine; comment-only groups
// yield nil.
func buildLine(text string, toks []Token) *LogicalLine {
	significant := significantTokens(toks)
	if len(significant) == 0 {
		return nil
	}

	first := toks[0]
	last := toks[len(toks)-1]
	end := last.Pos + len(last.Text)

	return &LogicalLine{
		Text:      text[first.Pos:end],
		StartPos:  first.Pos,
		StartLine: first.Line,
		EndLine:   last.Line + countLineBreaks(last.Text),
		Type:      classifyTokens(significant),
		Tokens:    toks,
	}
}

// significantTokens drops comments and line continuations.
func significantTokens(toks []Token) []Token {
	var out []Token
	for _, t := range toks {
		if t.Type != Comment && t.Type != LineContinuation {
			out = append(out, t)
		}
	}
	return out
}

// classifyTokens determines the statement type from its leading tokens.
func classifyTokens(tokens []Token) StatementType {
	if len(tokens) == 0 {
		return StmtUnknown
	}

	first := tokens[0]
	switch {
	case first.Type == LabelIdentifier:
		return StmtLabel
	case first.Type == CallableIdentifier:
		return StmtCall
	case first.Type == TokenType('#') && len(tokens) > 1 && scanner.IsPreprocessorKeyword(tokens[1].Text):
		return StmtPreprocessor
	}

	for _, t := range tokens {
		if t.Type == FileNumber {
			return StmtFileIO
		}
	}

	if first.Type == Keyword {
		word := strings.ToLower(first.Text)
		switch {
		case fileStatements[word]:
			return StmtFileIO
		case word == "line" && len(tokens) > 1 && tokens[1].Is("Input"):
			return StmtFileIO
		case declarationKeywords[word]:
			return StmtDeclaration
		}
	}

	return StmtOther
}
