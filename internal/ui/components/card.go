package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// Card frames content in a rounded border with the title set into the top
// edge. Compact cards drop the frame for a title and a rule.
type Card struct {
	Title   string         // may carry ANSI styling
	Width   int            // outer width
	Content string         // pre-rendered lines
	Accent  lipgloss.Color // border color; theme border when empty
	Compact bool
}

// InnerWidth returns the usable content width inside the card.
func (c Card) InnerWidth() int {
	if c.Compact {
		return c.Width - 2
	}
	return c.Width - 4
}

// Render returns the styled card string.
func (c Card) Render() string {
	if c.Compact {
		return c.renderCompact()
	}
	return c.renderFull()
}

func (c Card) border() lipgloss.Style {
	if c.Accent != "" {
		return lipgloss.NewStyle().Foreground(c.Accent)
	}
	return lipgloss.NewStyle().Foreground(theme.ColorBorder)
}

func (c Card) renderCompact() string {
	rule := c.border().Render("  " + strings.Repeat("─", max(c.Width-4, 1)))
	if c.Content == "" {
		return c.Title + "\n" + rule
	}
	return c.Title + "\n" + rule + "\n" + c.Content
}

func (c Card) renderFull() string {
	bs := c.border()
	inner := c.Width - 2

	title := ""
	if c.Title != "" {
		title = " " + c.Title + " "
	}
	fill := max(inner-1-lipgloss.Width(title), 0)
	top := bs.Render("╭─") + title + bs.Render(strings.Repeat("─", fill)+"╮")

	contentWidth := inner - 2
	lines := strings.Split(c.Content, "\n")
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		body = append(body, bs.Render("│")+" "+PadRight(line, contentWidth)+" "+bs.Render("│"))
	}

	bottom := bs.Render("╰" + strings.Repeat("─", inner) + "╯")
	return top + "\n" + strings.Join(body, "\n") + "\n" + bottom
}
