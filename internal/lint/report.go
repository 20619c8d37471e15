package lint

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const okMessage = "OK: all checked key entries have an in-object comment directly above and match convention (heuristic)"

// Reporter prints lint results. Styling is applied only when the output is
// a terminal.
type Reporter struct {
	out     io.Writer
	details bool

	headerStyle lipgloss.Style
	markStyle   lipgloss.Style
	okStyle     lipgloss.Style
}

// NewReporter creates a Reporter writing to out. With details set, each
// issue is followed by the surrounding lines.
func NewReporter(out io.Writer, details bool) *Reporter {
	r := lipgloss.NewRenderer(out)
	return &Reporter{
		out:         out,
		details:     details,
		headerStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		markStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		okStyle:     r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Report writes the result for f
func (r *Reporter) Report(f *File) {
	if len(f.Issues) == 0 {
		fmt.Fprintln(r.out, r.okStyle.Render(okMessage))
		return
	}

	fmt.Fprintln(r.out, r.headerStyle.Render(fmt.Sprintf("Found %d issue(s):", len(f.Issues))))
	for _, issue := range f.Issues {
		fmt.Fprintf(r.out, " - %s\n", issue)
		if r.details {
			r.context(f.Lines, issue.Line)
			fmt.Fprintln(r.out)
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Notes:")
	fmt.Fprintln(r.out, " - This linter is conservative and uses heuristics; it expects the JSONC layout similar to repository conventions.")
	fmt.Fprintln(r.out, " - It does not modify files (read-only).")
}

// context prints two lines either side of lineno, marking lineno with '>'
func (r *Reporter) context(lines []string, lineno int) {
	start := max(0, lineno-3)
	end := min(len(lines), lineno+2)
	for i := start; i < end; i++ {
		prefix := " "
		if i+1 == lineno {
			prefix = r.markStyle.Render(">")
		}
		fmt.Fprintf(r.out, "%s %5d: %s\n", prefix, i+1, lines[i])
	}
}
