package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rows(n int) []RowView {
	var out []RowView
	for i := 0; i < n; i++ {
		out = append(out, RowView{
			Number:  i + 1,
			Title:   fmt.Sprintf("Result %d", i+1),
			Domain:  "example.com",
			Snippet: fmt.Sprintf("snippet %d", i+1),
		})
	}
	return out
}

func TestRenderShowsVisibleWindow(t *testing.T) {
	r := NewRenderer(true)
	out := StripANSI(r.Render(ViewState{
		Width:          100,
		Height:         30,
		Rows:           rows(8),
		ViewportOffset: 2,
		ViewportHeight: 3,
		Query:          "golang",
		PageNumber:     2,
		Provider:       "file",
		HasPage:        true,
	}))

	assert.Contains(t, out, `"golang" • page 2 • file`)
	assert.Contains(t, out, "↑ 2 more above ↑")
	assert.Contains(t, out, "Result 3")
	assert.Contains(t, out, "snippet 5")
	assert.NotContains(t, out, "Result 6")
	assert.Contains(t, out, "↓ 3 more below ↓")
}

func TestRenderMarksAndFocus(t *testing.T) {
	r := NewRenderer(false)
	rs := rows(3)
	rs[0].Focused = true
	rs[1].Marked = true

	out := StripANSI(r.Render(ViewState{
		Width:          100,
		Height:         20,
		Rows:           rs,
		ViewportHeight: 10,
		HasPage:        true,
		MarkCount:      1,
		VisualActive:   true,
		PendingChord:   "g",
		Notice:         "URL copied to clipboard",
	}))

	assert.Contains(t, out, "› [ ]  1. Result 1")
	assert.Contains(t, out, "  [x]  2. Result 2")
	assert.Contains(t, out, "VISUAL")
	assert.Contains(t, out, "1 marked")
	assert.Contains(t, out, "g…")
	assert.Contains(t, out, "URL copied to clipboard")
}

func TestRenderEmptyStates(t *testing.T) {
	r := NewRenderer(true)

	out := StripANSI(r.Render(ViewState{Width: 80, Height: 20}))
	assert.Contains(t, out, "Press / to search.")

	out = StripANSI(r.Render(ViewState{Width: 80, Height: 20, Loading: true, LoadingState: "Searching..."}))
	assert.Contains(t, out, "Searching...")

	out = StripANSI(r.Render(ViewState{Width: 80, Height: 20, HasPage: true}))
	assert.Contains(t, out, "No results on this page.")
}

func TestRenderPromptWhileTextEntry(t *testing.T) {
	r := NewRenderer(true)
	out := StripANSI(r.Render(ViewState{
		Width:     80,
		Height:    20,
		TextEntry: true,
		Prompt:    "Search: ",
		TextInput: "bubbletea",
	}))
	assert.Contains(t, out, "Search: bubbletea")
}

func TestRenderHelpOverlay(t *testing.T) {
	r := NewRenderer(true)
	out := StripANSI(r.Render(ViewState{Width: 100, Height: 60, ShowHelp: true}))

	for _, section := range []string{"Navigation", "Selection", "Actions"} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "Toggle visual range mode")
	assert.NotContains(t, out, "more below")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a long...", truncate("a long title here", 9))
	assert.Equal(t, "", truncate("anything", 0))
	assert.True(t, strings.HasSuffix(truncate(strings.Repeat("x", 50), 20), "..."))
}
