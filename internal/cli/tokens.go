package cli

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/vb6scan/internal/parser"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

// Tokens prints the host token stream of one file, one token per line as
// line:offset, type and quoted text. With externalOnly set, only tokens
// recognized by the external scanner are printed. Lexer diagnostics follow
// the tokens.
func Tokens(path string, enc source.Encoding, externalOnly bool, out io.Writer) error {
	content, err := source.ReadFile(path, enc)
	if err != nil {
		return err
	}

	lx := parser.NewLexer(content.Text).WithFile(path)
	for {
		tok := lx.Next()
		if tok.Type == parser.EOF {
			break
		}
		if externalOnly && !tok.IsExternal() {
			continue
		}
		if _, err := fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Pos, tok.Type, tok.Text); err != nil {
			return err
		}
	}

	for _, d := range lx.Diagnostics() {
		fmt.Fprintf(out, "warning: %v\n", d)
	}
	return nil
}
