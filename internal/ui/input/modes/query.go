package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"serpnav/internal/ui/input/types"
)

// QueryMode edits the search query
type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", "Search: ", ti),
	}
}
