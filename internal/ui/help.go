package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"serpnav/internal/ui/keymap"
)

// RenderKeyReference renders the key reference markdown wrapped to width.
// Plain output carries no escape sequences.
func RenderKeyReference(width int, plain bool) (string, error) {
	if width < 20 {
		width = 80
	}

	style := "dark"
	if plain {
		style = "notty"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(keymap.Markdown())
	if err != nil {
		return "", fmt.Errorf("rendering key reference: %w", err)
	}
	return out, nil
}

// ShowInPager shows content using the ov pager. It takes over the
// terminal until the pager exits.
func ShowInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Leave the screen alone on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)
	return root.Run()
}
