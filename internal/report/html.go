package report

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/cybertec-postgresql/vb6scan/internal/inventory"
)

// HTMLReporter formats the inventory as a standalone HTML page
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// Format formats the inventory as HTML and writes to the writer
func (r *HTMLReporter) Format(inv *inventory.Inventory, writer io.Writer) error {
	files := inv.GetFiles()

	if err := r.writeHeader(inv, writer); err != nil {
		return err
	}

	if err := r.writeSummary(inv, files, writer); err != nil {
		return err
	}

	for _, file := range files {
		if err := r.writeFileDetail(file, inv.Files[file], writer); err != nil {
			return err
		}
	}

	return r.writeFooter(writer)
}

// writeHeader writes the HTML document header with CSS
func (r *HTMLReporter) writeHeader(inv *inventory.Inventory, writer io.Writer) error {
	timestamp := time.Now().Format(time.RFC1123)
	if !inv.Timestamp.IsZero() {
		timestamp = inv.Timestamp.Format(time.RFC1123)
	}

	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>vb6scan Token Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        header { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        header h1 { font-size: 2.5em; margin-bottom: 10px; }
        header .meta { opacity: 0.8; font-size: 0.9em; }
        section { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        section h2, section h3 { margin-bottom: 15px; color: #2c3e50; }
        section h3 { font-family: 'Courier New', monospace; }
        .summary-stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 20px; }
        .stat-card { background: #f8f9fa; padding: 20px; border-radius: 6px; border-left: 4px solid #3498db; }
        .stat-card .label { font-size: 0.85em; color: #7f8c8d; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 8px; }
        .stat-card .value { font-size: 2em; font-weight: bold; color: #2c3e50; }
        table { width: 100%%; border-collapse: collapse; font-size: 0.9em; }
        th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #ecf0f1; }
        th { color: #7f8c8d; text-transform: uppercase; font-size: 0.8em; }
        td.num { text-align: right; }
        td.text { font-family: 'Courier New', monospace; white-space: pre; }
        .kind { font-size: 0.75em; padding: 2px 8px; border-radius: 4px; background: #ecf0f1; margin-left: 8px; }
        .warning { color: #856404; background: #fff3cd; padding: 8px 12px; border-radius: 4px; margin-bottom: 10px; font-size: 0.9em; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>vb6scan Token Report</h1>
            <div class="meta">Generated: %s | Version: %s</div>
        </div>
    </header>
    <div class="container">
`, timestamp, html.EscapeString(inv.Version))
	return err
}

// writeSummary writes one stat card per token category
func (r *HTMLReporter) writeSummary(inv *inventory.Inventory, files []string, writer io.Writer) error {
	totals := inv.TotalCounts()

	var cards strings.Builder
	for _, category := range inventory.Categories() {
		fmt.Fprintf(&cards, `                <div class="stat-card">
                    <div class="label">%s</div>
                    <div class="value">%d</div>
                </div>
`, category, totals[category])
	}

	_, err := fmt.Fprintf(writer, `        <section class="summary">
            <h2>Summary</h2>
            <div class="summary-stats">
                <div class="stat-card">
                    <div class="label">Files</div>
                    <div class="value">%d</div>
                </div>
                <div class="stat-card">
                    <div class="label">Tokens</div>
                    <div class="value">%d</div>
                </div>
%s            </div>
        </section>

`, len(files), inv.TotalTokens(), cards.String())
	return err
}

// writeFileDetail writes the token table of a single file
func (r *HTMLReporter) writeFileDetail(file string, entry *inventory.FileTokens, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        <section class="file-detail">
            <h3>%s <span class="kind">%s</span> <span class="kind">%s</span></h3>
`, html.EscapeString(file), entry.Type, entry.Encoding)
	if err != nil {
		return err
	}

	for _, d := range entry.Diagnostics {
		if _, err := fmt.Fprintf(writer, "            <div class=\"warning\">%s</div>\n", html.EscapeString(d)); err != nil {
			return err
		}
	}

	if _, err := writer.Write([]byte(`            <table>
                <tr><th>Line</th><th>Offset</th><th>Type</th><th>Text</th></tr>
`)); err != nil {
		return err
	}

	for _, tok := range entry.Tokens {
		_, err := fmt.Fprintf(writer, "                <tr><td class=\"num\">%d</td><td class=\"num\">%d</td><td>%s</td><td class=\"text\">%s</td></tr>\n",
			tok.Line, tok.Pos, html.EscapeString(tok.Type), html.EscapeString(displayText(tok.Text)))
		if err != nil {
			return err
		}
	}

	_, err = writer.Write([]byte(`            </table>
        </section>

`))
	return err
}

// displayText makes line breaks inside a token visible
func displayText(s string) string {
	return strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(s)
}

// writeFooter writes the HTML document footer
func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        <footer>
            Generated by <strong>vb6scan</strong> - Visual Basic 6 token scanner
        </footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns the inventory as an HTML string
func (r *HTMLReporter) FormatString(inv *inventory.Inventory) (string, error) {
	var buf strings.Builder
	if err := r.Format(inv, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *HTMLReporter) Name() string {
	return "html"
}
