// Package observability provides formatted console output for the roster
// table, the Q&A transcript, and the AI report.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/otabek/hr-console/internal/admin"
	"github.com/otabek/hr-console/internal/i18n"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRoster outputs the candidate roster as a table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRoster(t i18n.AdminStrings, rows []admin.Row) {
	fmt.Fprintf(p.out, "%s — %s\n\n", t.Title, t.Subtitle)

	header := []string{t.ThCandidate, t.ThPhone, t.ThEmail, t.ThLang, t.ThDate, t.ThStatus, t.ThScore, "CV", "Session"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cv := r.CVLink
		if cv == "" {
			cv = "No CV"
		}
		cells = append(cells, []string{r.Name, r.Phone, r.Email, r.Lang, r.Date, r.StatusStr, r.Score, cv, r.SessionID})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len([]rune(h))
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := len([]rune(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	printRow := func(row []string) {
		parts := make([]string, len(row))
		for i, cell := range row {
			parts[i] = cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
		}
		fmt.Fprintf(p.out, "%s\n", strings.Join(parts, "  "))
	}

	printRow(header)
	for i, w := range widths {
		header[i] = strings.Repeat("─", w)
	}
	printRow(header)
	for _, row := range cells {
		printRow(row)
	}
}

// PrintTranscript outputs the Q&A history of one session.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTranscript(items []admin.QAItem) {
	if len(items) == 0 {
		fmt.Fprintln(p.out, "No questions found for this session.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(p.out, "Q%d: %s\n", item.Number, item.Question)
		fmt.Fprintf(p.out, "A:  %s", item.Answer)
		for _, badge := range item.Badges {
			fmt.Fprintf(p.out, "  [%s]", badge.Label)
		}
		fmt.Fprintln(p.out)
		for _, badge := range item.Badges {
			fmt.Fprintf(p.out, "    %s: %s\n", badge.Label, badge.Tooltip)
		}
		fmt.Fprintln(p.out)
	}
}

// PrintReport outputs the assembled AI report.
func (p *Printer) PrintReport(labels i18n.ReportLabels, report *admin.Report) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", labels.Decision, report.Decision))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", labels.Comment, report.Comment))
	sb.WriteString("\n")
	sb.WriteString(labels.Reasons + "\n")
	if len(report.Reasons) == 0 {
		sb.WriteString("  - " + labels.NoFlags + "\n")
	}
	for _, reason := range report.Reasons {
		sb.WriteString("  - " + reason + "\n")
	}
	p.printBox(report.Title, strings.TrimRight(sb.String(), "\n"))
}
