package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"serpnav/internal/ui/keymap"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Rows             []RowView
	ViewportOffset   int
	ViewportHeight   int
	Query            string
	PageNumber       int
	Provider         string
	HasPage          bool
	Loading          bool
	LoadingState     string
	StatusMessage    string
	Notice           string
	PendingChord     string
	VisualActive     bool
	MarkCount        int
	ShowHelp         bool
	HelpScrollOffset int
	Prompt           string
	TextInput        string
	TextEntry        bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	rowRender   *ResultRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showSnippets bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		rowRender:   NewResultRenderer(styles, showSnippets),
		popupRender: NewPopupRenderer(styles),
	}
}

// LinesPerRow is the number of terminal lines one result takes
func (r *Renderer) LinesPerRow() int {
	return r.rowRender.LinesPerRow()
}

// ChromeLines is the number of lines used by everything but the rows:
// container padding, title with prompt and gap, scroll indicators and
// the status bar
func (r *Renderer) ChromeLines() int {
	return 2 + 3 + 2 + 1
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(r.renderHelpContent(state.Height, state.HelpScrollOffset),
			state.Height, state.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.TextEntry {
		content.WriteString(r.styles.Prompt.Render(state.Prompt))
		content.WriteString(state.TextInput)
	}
	content.WriteString("\n\n")

	switch {
	case state.Loading && len(state.Rows) == 0:
		content.WriteString(r.styles.Dim.Render(state.LoadingState))
	case !state.HasPage:
		content.WriteString(r.styles.Dim.Render("Press / to search."))
	case len(state.Rows) == 0:
		content.WriteString(r.styles.Dim.Render("No results on this page."))
	default:
		content.WriteString(r.renderResultList(state))
	}

	// Pad so the status bar sits on the last line
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - 1; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(r.renderStatusBar(state))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("serpnav")

	var right string
	switch {
	case state.Loading:
		right = r.styles.Dim.Render(state.LoadingState)
	case state.HasPage:
		right = r.styles.Dim.Render(fmt.Sprintf("%q • page %d • %s", state.Query, state.PageNumber, state.Provider))
	}
	if right == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderResultList renders the visible window of results
func (r *Renderer) renderResultList(state ViewState) string {
	var lines []string

	width := state.Width - 4
	anyMarked := state.MarkCount > 0

	start := state.ViewportOffset
	if start < 0 {
		start = 0
	}
	end := start + state.ViewportHeight
	if end > len(state.Rows) {
		end = len(state.Rows)
	}

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	} else {
		lines = append(lines, "")
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.rowRender.RenderResult(state.Rows[i], anyMarked, width))
	}

	if below := len(state.Rows) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

// renderStatusBar shows mode, marks, pending chord and the notice
func (r *Renderer) renderStatusBar(state ViewState) string {
	var parts []string

	if state.VisualActive {
		parts = append(parts, r.styles.Visual.Render(" VISUAL "))
	}
	if state.MarkCount > 0 {
		parts = append(parts, r.styles.Marked.Render(fmt.Sprintf("%d marked", state.MarkCount)))
	}
	if state.PendingChord != "" {
		parts = append(parts, r.styles.Chord.Render(state.PendingChord+"…"))
	}

	switch {
	case state.Notice != "":
		parts = append(parts, r.styles.Notice.Render(state.Notice))
	case strings.HasPrefix(state.StatusMessage, "Search failed") || strings.HasPrefix(state.StatusMessage, "Error"):
		parts = append(parts, r.styles.StatusError.Render(state.StatusMessage))
	case state.StatusMessage != "":
		parts = append(parts, r.styles.StatusBar.Render(state.StatusMessage))
	}

	left := strings.Join(parts, "  ")
	right := r.styles.Help.Render("? help")

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		return left
	}
	return left + strings.Repeat(" ", padding) + right
}

// renderHelpContent renders the key reference, scrolled to fit height
func (r *Renderer) renderHelpContent(height int, scrollOffset int) string {
	var help strings.Builder
	keyWidth := keymap.KeyWidth()

	help.WriteString(r.styles.HelpTitle.Render("serpnav Help"))
	help.WriteString("\n")
	for _, section := range keymap.Sections {
		help.WriteString("\n")
		help.WriteString(r.styles.HelpSection.Render(section.Title))
		help.WriteString("\n")
		for _, b := range section.Bindings {
			key := b.Keys + strings.Repeat(" ", keyWidth-lipgloss.Width(b.Keys))
			help.WriteString(fmt.Sprintf("  %s  %s\n", r.styles.HelpKey.Render(key), r.styles.HelpDesc.Render(b.Desc)))
		}
	}
	help.WriteString("\n")
	help.WriteString(r.styles.Dim.Render("Esc or ? to close"))

	lines := strings.Split(help.String(), "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines > visibleHeight {
		maxOffset := totalLines - visibleHeight
		if scrollOffset > maxOffset {
			scrollOffset = maxOffset
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}

		endLine := scrollOffset + visibleHeight
		lines = lines[scrollOffset:endLine]

		if scrollOffset > 0 {
			lines[0] = r.styles.Scroll.Render("↑ (more above)")
		}
		if endLine < totalLines {
			lines[len(lines)-1] = r.styles.Scroll.Render("↓ (more below)")
		}
	}

	return strings.Join(lines, "\n")
}
