package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RowView is everything needed to draw one result
type RowView struct {
	Number     int
	Title      string
	Domain     string
	Snippet    string
	Suggestion bool
	Focused    bool
	Marked     bool
	Pulse      bool
}

// ResultRenderer handles rendering of result rows
type ResultRenderer struct {
	styles       *Styles
	showSnippets bool
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles, showSnippets bool) *ResultRenderer {
	return &ResultRenderer{
		styles:       styles,
		showSnippets: showSnippets,
	}
}

// LinesPerRow is the number of terminal lines one result takes
func (r *ResultRenderer) LinesPerRow() int {
	if r.showSnippets {
		return 2
	}
	return 1
}

// RenderResult renders a result as one title line plus an optional
// snippet line. anyMarked switches on the mark column.
func (r *ResultRenderer) RenderResult(row RowView, anyMarked bool, width int) string {
	if width <= 0 {
		width = 80
	}

	cursor := "  "
	if row.Focused {
		cursor = "› "
	}

	var parts []string
	parts = append(parts, cursor)
	if anyMarked {
		if row.Marked {
			parts = append(parts, "[x] ")
		} else {
			parts = append(parts, "[ ] ")
		}
	}
	prefix := strings.Join(parts, "")
	if row.Suggestion {
		prefix += "   "
	} else {
		prefix += fmt.Sprintf("%2d. ", row.Number)
	}

	title := row.Title
	domain := ""
	if row.Domain != "" {
		domain = "  " + row.Domain
	}
	room := width - runewidth.StringWidth(prefix) - runewidth.StringWidth(domain)
	if room < 10 {
		domain = ""
		room = width - runewidth.StringWidth(prefix)
	}
	title = truncate(title, room)

	titleStyle := r.styles.HelpDesc
	switch {
	case row.Pulse:
		titleStyle = r.styles.CopyPulse
	case row.Suggestion:
		titleStyle = r.styles.Suggestion
	case row.Marked:
		titleStyle = r.styles.Marked
	}
	if row.Focused && !row.Pulse {
		titleStyle = titleStyle.Inherit(r.styles.Focused)
	}

	line := prefix + titleStyle.Render(title) + r.styles.Domain.Render(domain)
	if !r.showSnippets {
		return line
	}

	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))
	snippet := truncate(row.Snippet, width-len(indent))
	return line + "\n" + indent + r.styles.Snippet.Render(snippet)
}

// truncate shortens s to max display cells, ending in "..." when cut
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 3 {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, "...")
}
