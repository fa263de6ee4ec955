package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"serpnav/internal/config"
	"serpnav/internal/domain"
	"serpnav/internal/logic"
	"serpnav/internal/ui/state"
	"serpnav/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	items     logic.ItemProvider
	width     int
	height    int
	prompt    string
	textInput *textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, items logic.ItemProvider) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		items:  items,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetTextInput sets the active text input and its prompt; nil hides it
func (vm *ViewModel) SetTextInput(prompt string, ti *textinput.Model) {
	vm.prompt = prompt
	vm.textInput = ti
}

// BuildViewState creates a ViewState from the current state
func (vm *ViewModel) BuildViewState() views.ViewState {
	st := vm.state
	vs := views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Rows:             BuildRows(vm.items.ListItems()),
		ViewportOffset:   st.ViewportOffset,
		ViewportHeight:   st.ViewportHeight,
		Query:            st.Query,
		PageNumber:       st.Page.Number,
		Provider:         st.Provider,
		HasPage:          st.HasPage,
		Loading:          st.Loading,
		LoadingState:     st.LoadingState,
		StatusMessage:    st.StatusMessage,
		Notice:           st.Notice,
		PendingChord:     st.PendingChord,
		VisualActive:     st.Nav.Visual.Active,
		MarkCount:        len(st.Nav.Marks),
		ShowHelp:         st.ShowHelp,
		HelpScrollOffset: st.HelpScrollOffset,
	}

	if vm.textInput != nil {
		vs.TextEntry = true
		vs.Prompt = vm.prompt
		vs.TextInput = vm.textInput.View()
	}

	return vs
}

// BuildRows converts item handles into row views. Rows are numbered
// among organic results only.
func BuildRows(items []logic.Item) []views.RowView {
	rows := make([]views.RowView, 0, len(items))
	number := 0
	for _, it := range items {
		row := views.RowView{
			Title:   it.Label(),
			Focused: it.HasVisualState(domain.TagFocused),
			Marked:  it.HasVisualState(domain.TagMarked),
			Pulse:   it.HasVisualState(domain.TagCopyPulse),
		}
		if ri, ok := it.(interface{ Result() domain.Result }); ok {
			r := ri.Result()
			row.Domain = r.Domain
			row.Snippet = r.Snippet
			row.Suggestion = r.Kind == domain.KindSuggestion
		}
		if !row.Suggestion {
			number++
			row.Number = number
		}
		rows = append(rows, row)
	}
	return rows
}
