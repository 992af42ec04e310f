package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// printer styles the transcript. Styles degrade to plain text when out is
// not a terminal.
type printer struct {
	out      io.Writer
	title    lipgloss.Style
	label    lipgloss.Style
	failure  lipgloss.Style
	markdown *glamour.TermRenderer
}

func newPrinter(out io.Writer, markdown bool) *printer {
	r := lipgloss.NewRenderer(out)

	p := &printer{
		out: out,
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Border(lipgloss.DoubleBorder(), true, false).
			Padding(0, 1),
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}

	if markdown {
		md, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			p.markdown = md
		}
	}

	return p
}

func (p *printer) banner(v Variant) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.title.Render(v.Title))
	fmt.Fprintln(p.out)
	if v.Intro != "" {
		fmt.Fprintln(p.out, v.Intro)
		fmt.Fprintln(p.out)
	}
}

func (p *printer) reply(text string) {
	label := p.label.Render("Gemini:")
	if p.markdown != nil {
		if rendered, err := p.markdown.Render(text); err == nil {
			fmt.Fprintln(p.out, label)
			fmt.Fprintln(p.out, strings.TrimRight(rendered, "\n"))
			return
		}
	}
	fmt.Fprintln(p.out, label, text)
}

func (p *printer) errorf(format string, args ...any) {
	fmt.Fprintln(p.out, p.failure.Render(fmt.Sprintf(format, args...)))
}
