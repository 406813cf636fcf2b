// Package report renders solved completions for humans: the classic
// fixed-width text layout, and a markdown variant for rich terminals.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/splice/pkg/domain"
)

// Text renders the completion in the classic layout:
//
//	Extra Cost = 2
//	Extra Path = 1
//	Extra Node = 1
//	Path:
//	S0 --(01/1)--> S1
//	S1 --(00/0)--> N1 (extra, new node)
func Text(c *domain.Completion) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Extra Cost = %d\n", c.Cost)
	fmt.Fprintf(&sb, "Extra Path = %d\n", c.ExtraTransitions)
	fmt.Fprintf(&sb, "Extra Node = %d\n", c.NewStates)
	sb.WriteString("Path:\n")
	for _, s := range c.Path {
		sb.WriteString(FormatStep(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatStep renders a single path step as "from --(input/output)--> to",
// annotated when the transition was added during search.
func FormatStep(s domain.PathStep) string {
	line := fmt.Sprintf("%s --(%s/%s)--> %s", s.From, s.Input, s.Output, s.To)
	switch {
	case s.Extra && s.NewState:
		line += " (extra, new node)"
	case s.Extra:
		line += " (extra)"
	}
	return line
}

// Markdown renders the completion as a markdown document.
func Markdown(c *domain.Completion) string {
	var sb strings.Builder
	sb.WriteString("# Completion\n\n")
	fmt.Fprintf(&sb, "Start state **%s**, extra cost **%d** "+
		"(%d added transitions, %d new states).\n\n", c.Start, c.Cost, c.ExtraTransitions, c.NewStates)
	sb.WriteString("| # | Transition | Origin |\n")
	sb.WriteString("|---|------------|--------|\n")
	for i, s := range c.Path {
		origin := "predefined"
		switch {
		case s.Extra && s.NewState:
			origin = "extra, new node"
		case s.Extra:
			origin = "extra"
		}
		fmt.Fprintf(&sb, "| %d | `%s --(%s/%s)--> %s` | %s |\n", i+1, s.From, s.Input, s.Output, s.To, origin)
	}
	return sb.String()
}

// RenderMarkdown renders markdown for terminal display using glamour,
// auto-detecting light/dark backgrounds.
func RenderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// Colorize highlights the extra/new-node annotations of a text report when
// the terminal supports color. Plain terminals get the text unchanged.
func Colorize(text string) string {
	p := termenv.ColorProfile()
	if p == termenv.Ascii {
		return text
	}
	text = strings.ReplaceAll(text, "(extra, new node)",
		termenv.String("(extra, new node)").Foreground(p.Color("#f472b6")).String())
	return replaceStandaloneExtra(text, p)
}

func replaceStandaloneExtra(text string, p termenv.Profile) string {
	colored := termenv.String("(extra)").Foreground(p.Color("#818cf8")).String()
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasSuffix(line, " (extra)") {
			lines[i] = strings.TrimSuffix(line, "(extra)") + colored
		}
	}
	return strings.Join(lines, "\n")
}
