package export

import (
	"fmt"
	"log"
	"strings"

	"serpnav/internal/domain"
	"serpnav/internal/logic"
	"serpnav/internal/ui/services/events"
	"serpnav/internal/ui/state"
)

// DefaultLabel is used for markdown links whose item has no label
const DefaultLabel = "Link"

// Service turns the selection into clipboard text
type Service struct {
	state *state.AppState
	items logic.ItemProvider
	bus   events.EventBus
}

// NewService creates a new export service
func NewService(st *state.AppState, items logic.ItemProvider, bus events.EventBus) *Service {
	return &Service{
		state: st,
		items: items,
		bus:   bus,
	}
}

// BuildSelection resolves the marked items in ascending order, or the
// focused item when nothing is marked. Items without a link are skipped.
func (s *Service) BuildSelection() ([]Entry, bool) {
	nav := s.state.Nav
	indices := nav.MarkedIndices()
	fromMarks := len(indices) > 0
	if !fromMarks {
		if nav.Focus < 0 {
			return nil, false
		}
		indices = []int{nav.Focus}
	}
	return Resolve(s.items.ListItems(), indices), fromMarks
}

// Resolve looks up link and label for each index against items
func Resolve(items []logic.Item, indices []int) []Entry {
	var entries []Entry
	for _, i := range indices {
		if i < 0 || i >= len(items) {
			continue
		}
		link, ok := items[i].Link()
		if !ok || link == "" {
			continue
		}
		entries = append(entries, Entry{
			Index: i,
			Link:  link,
			Label: strings.TrimSpace(items[i].Label()),
		})
	}
	return entries
}

// RenderPlain joins the links with newlines
func RenderPlain(entries []Entry) string {
	links := make([]string, len(entries))
	for i, e := range entries {
		links[i] = e.Link
	}
	return strings.Join(links, "\n")
}

// RenderMarkdown renders [label](link) per entry, bulleted when there is
// more than one
func RenderMarkdown(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		label := e.Label
		if label == "" {
			label = DefaultLabel
		}
		line := fmt.Sprintf("[%s](%s)", label, e.Link)
		if len(entries) > 1 {
			line = "- " + line
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// NoticeFor returns the success notice for n exported items
func NoticeFor(format Format, n int) string {
	switch {
	case format == FormatMarkdown && n == 1:
		return "Markdown link copied"
	case format == FormatMarkdown:
		return fmt.Sprintf("%d Markdown links copied", n)
	case n == 1:
		return "URL copied to clipboard"
	default:
		return fmt.Sprintf("%d URLs copied to clipboard", n)
	}
}

// Prepare builds the export for format; false means there is nothing to copy
func (s *Service) Prepare(format Format) (Request, bool) {
	entries, fromMarks := s.BuildSelection()
	if len(entries) == 0 {
		return Request{}, false
	}

	req := Request{
		Format:    format,
		FromMarks: fromMarks,
		Notice:    NoticeFor(format, len(entries)),
	}
	for _, e := range entries {
		req.Indices = append(req.Indices, e.Index)
	}
	if format == FormatMarkdown {
		req.Text = RenderMarkdown(entries)
	} else {
		req.Text = RenderPlain(entries)
	}
	return req, true
}

// Complete finishes an export once the clipboard write returned. On
// success the contributing items pulse and ExportCompletedEvent is
// published; a failed write is logged and changes nothing.
func (s *Service) Complete(req Request, err error) bool {
	if err != nil {
		log.Printf("Export: clipboard write failed: %v", err)
		return false
	}

	items := s.items.ListItems()
	for _, i := range req.Indices {
		if i < len(items) {
			items[i].ApplyVisualState(domain.TagCopyPulse)
		}
	}

	log.Printf("Export: copied %d %s item(s), from marks: %v", len(req.Indices), req.Format, req.FromMarks)
	s.bus.Publish(ExportCompletedEvent{
		Format:    req.Format,
		Count:     len(req.Indices),
		FromMarks: req.FromMarks,
	})
	return true
}

// EndPulse removes the copy pulse from indices
func (s *Service) EndPulse(indices []int) {
	items := s.items.ListItems()
	for _, i := range indices {
		if i >= 0 && i < len(items) {
			items[i].RemoveVisualState(domain.TagCopyPulse)
		}
	}
}
