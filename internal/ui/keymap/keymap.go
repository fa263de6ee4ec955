// Package keymap holds the static key reference shown by the help
// overlay and the keys subcommand.
package keymap

import (
	"fmt"
	"strings"
)

// Binding is one documented key
type Binding struct {
	Keys string
	Desc string
}

// Section groups related bindings
type Section struct {
	Title    string
	Bindings []Binding
}

// Sections lists every command, grouped by navigation, selection and actions
var Sections = []Section{
	{
		Title: "Navigation",
		Bindings: []Binding{
			{Keys: "j / ↓", Desc: "Next result"},
			{Keys: "k / ↑", Desc: "Previous result"},
			{Keys: "gg", Desc: "First result"},
			{Keys: "G", Desc: "Last result"},
			{Keys: "H / [[", Desc: "Previous page"},
			{Keys: "L / ]]", Desc: "Next page"},
			{Keys: "Ctrl+o", Desc: "Back in page history"},
			{Keys: "Ctrl+i", Desc: "Forward in page history"},
		},
	},
	{
		Title: "Selection",
		Bindings: []Binding{
			{Keys: "Space", Desc: "Toggle mark"},
			{Keys: "v", Desc: "Toggle visual range mode"},
			{Keys: "A", Desc: "Mark all"},
			{Keys: "D", Desc: "Clear marks"},
			{Keys: "Esc", Desc: "Exit visual mode or close help"},
		},
	},
	{
		Title: "Actions",
		Bindings: []Binding{
			{Keys: "Enter", Desc: "Open result"},
			{Keys: "Ctrl/Alt+Enter", Desc: "Open result in a new window"},
			{Keys: "o", Desc: "Open marked results (or the focused one) in new windows"},
			{Keys: "c", Desc: "Copy URLs"},
			{Keys: "C", Desc: "Copy as Markdown links"},
			{Keys: "/", Desc: "New search"},
			{Keys: "?", Desc: "Toggle this help"},
			{Keys: "q / Ctrl+c", Desc: "Quit"},
		},
	},
}

// KeyWidth returns the widest key column across all sections
func KeyWidth() int {
	w := 0
	for _, s := range Sections {
		for _, b := range s.Bindings {
			if n := len([]rune(b.Keys)); n > w {
				w = n
			}
		}
	}
	return w
}

// Markdown renders the reference as a markdown document
func Markdown() string {
	var b strings.Builder
	b.WriteString("# serpnav keys\n")
	for _, s := range Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.Title)
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, k := range s.Bindings {
			fmt.Fprintf(&b, "| `%s` | %s |\n", k.Keys, k.Desc)
		}
	}
	return b.String()
}
