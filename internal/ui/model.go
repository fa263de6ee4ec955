package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"serpnav/internal/config"
	"serpnav/internal/eventbus"
	"serpnav/internal/logic"
	"serpnav/internal/platform"
	"serpnav/internal/ui/commands"
	"serpnav/internal/ui/coordinator"
	"serpnav/internal/ui/handlers"
	"serpnav/internal/ui/input"
	inputtypes "serpnav/internal/ui/input/types"
	"serpnav/internal/ui/services/events"
	"serpnav/internal/ui/services/export"
	"serpnav/internal/ui/services/navigation"
	"serpnav/internal/ui/state"
	"serpnav/internal/ui/viewmodels"
	"serpnav/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	store  logic.ResultStore

	width  int
	height int

	// Handlers
	coordinator  *coordinator.Coordinator // navigator services
	renderer     *views.Renderer          // view renderer
	eventHandler *handlers.EventHandler   // event processing handler
	viewModel    *viewmodels.ViewModel    // view model for rendering
	cmdExecutor  *commands.Executor       // command executor
	inputHandler *input.Handler           // input handling

	// Page requested on start
	initialQuery string
	initialPage  int
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.ResultStore, clip platform.Clipboard, browser platform.Browser) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:      bus,
		config:   cfg,
		state:    appState,
		store:    store,
		renderer: views.NewRenderer(cfg.UI.ShowSnippets),
	}

	m.coordinator = coordinator.NewCoordinator(appState, store, events.NewBus())
	m.coordinator.SetChordWindow(cfg.ChordTimeout())
	m.coordinator.Navigation.SetCentered(cfg.UI.CenterFocus)

	// The input handler shares the coordinator's chord state
	m.inputHandler = input.New(m.coordinator.Chords)

	m.eventHandler = handlers.NewEventHandler(appState, store, m.coordinator)
	m.cmdExecutor = commands.NewExecutor(appState, bus, clip, browser)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, store)

	return m
}

// SetInitialPage sets the page loaded when the program starts
func (m *Model) SetInitialPage(query string, number int) {
	m.initialQuery = strings.TrimSpace(query)
	m.initialPage = number
}

// SetClock replaces the time source used for chord deadlines
func (m *Model) SetClock(now func() time.Time) {
	m.coordinator.Chords.SetClock(now)
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.initialQuery != "" {
		page := m.initialPage
		if page < 1 {
			page = 1
		}
		m.cmdExecutor.ExecuteRequestPage(m.initialQuery, page)
	}
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		// Lapsed chords are dropped before the key is looked at
		m.syncPendingChord()

		if m.state.ShowHelp && m.handleHelpKey(msg) {
			return m, nil
		}

		ctx := &input.ModelContext{
			State: m.state,
			Items: m.store,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.state.PendingChord = m.coordinator.Chords.Pending()
		return m, tea.Batch(cmds...)

	default:
		// Cursor blink and friends for the query prompt
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetTextInput(m.inputHandler.Prompt(), m.inputHandler.TextInput())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// handleHelpKey scrolls or closes the help overlay. Keys it does not
// claim fall through to normal dispatch.
func (m *Model) handleHelpKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "j", "down":
		m.state.HelpScrollOffset++
		return true
	case "k", "up":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
		return true
	case "q":
		m.state.ShowHelp = false
		return true
	case "?", "esc", "ctrl+c":
		return false
	}
	return true
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	c := m.coordinator

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		c.Navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.ToggleMarkAction:
		c.Selection.ToggleCurrent()

	case inputtypes.ToggleVisualAction:
		c.Selection.ToggleVisual()

	case inputtypes.MarkAllAction:
		c.Selection.MarkAll()

	case inputtypes.ClearMarksAction:
		c.Selection.ClearAll()

	case inputtypes.EscapeAction:
		if c.Selection.IsVisual() {
			c.Selection.ExitVisual()
		} else if m.state.ShowHelp {
			m.state.ShowHelp = false
		}

	case inputtypes.CopyAction:
		format := export.FormatPlain
		if a.Markdown {
			format = export.FormatMarkdown
		}
		req, ok := c.Export.Prepare(format)
		if !ok {
			log.Printf("Export: nothing to copy")
			return nil
		}
		return m.cmdExecutor.ExecuteCopy(req)

	case inputtypes.OpenMarkedAction:
		links := c.MarkedLinks()
		if len(links) == 0 {
			return m.activate(true)
		}
		log.Printf("Open: %d marked links in new contexts", len(links))
		cmd := m.cmdExecutor.ExecuteOpen(links, true)
		c.Selection.ClearAll()
		return cmd

	case inputtypes.ActivateAction:
		return m.activate(a.NewContext)

	case inputtypes.PageAction:
		return m.changePage(a.Delta)

	case inputtypes.HistoryAction:
		return m.walkHistory(a.Forward)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.SubmitTextAction:
		query := strings.TrimSpace(a.Text)
		if query == "" {
			return nil
		}
		return m.cmdExecutor.ExecuteRequestPage(query, 1)

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The text input already holds the new value

	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }

	default:
		log.Printf("processAction: unhandled %T", action)
	}

	return nil
}

// activate opens the focused item in place, or in a new context
func (m *Model) activate(newContext bool) tea.Cmd {
	item := m.coordinator.GetCurrentItem()
	if item == nil {
		return nil
	}
	link, ok := item.Link()
	if !ok {
		log.Printf("Open: focused item %d has no link", m.state.Nav.Focus)
		return nil
	}
	return m.cmdExecutor.ExecuteOpen([]string{link}, newContext)
}

// changePage requests the page delta away from the current one
func (m *Model) changePage(delta int) tea.Cmd {
	if !m.state.HasPage {
		return nil
	}
	target := m.state.Page.Number + delta
	if target < 1 {
		log.Printf("No previous page available")
		m.state.StatusMessage = "No previous page available"
		return nil
	}
	return m.cmdExecutor.ExecuteRequestPage(m.state.Page.Query, target)
}

// walkHistory reloads the previous or next page of the history stack
func (m *Model) walkHistory(forward bool) tea.Cmd {
	h := m.coordinator.History
	move := h.Back
	if forward {
		move = h.Forward
	}
	page, ok := move()
	if !ok {
		log.Printf("History: nothing to go to (forward: %v)", forward)
		return nil
	}
	return m.cmdExecutor.ExecuteRequestPage(page.Query, page.Number)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case ListChangedMsg:
		m.coordinator.Selection.Prune()
		m.coordinator.Navigation.Refresh()
		m.coordinator.Selection.RecomputeRange()
		return m, nil

	case tickMsg:
		m.syncPendingChord()
		return m, tick()

	case commands.ClipboardWrittenMsg:
		if msg.ViewID != m.state.Page.ViewID {
			log.Printf("Export: clipboard write finished for stale view %s", msg.ViewID)
			return m, nil
		}
		if !m.coordinator.Export.Complete(msg.Request, msg.Err) {
			return m, nil
		}
		seq := m.state.ShowNotice(msg.Request.Notice)
		viewID, indices := msg.ViewID, msg.Request.Indices
		return m, tea.Batch(
			tea.Tick(m.config.PulseDuration(), func(time.Time) tea.Msg {
				return pulseEndedMsg{viewID: viewID, indices: indices}
			}),
			tea.Tick(m.config.ToastDuration(), func(time.Time) tea.Msg {
				return clearNoticeMsg{seq: seq}
			}),
		)

	case pulseEndedMsg:
		if msg.viewID == m.state.Page.ViewID {
			m.coordinator.Export.EndPulse(msg.indices)
		}
		return m, nil

	case clearNoticeMsg:
		m.state.ClearNotice(msg.seq)
		return m, nil

	case commands.OpenedMsg:
		if msg.Err != nil {
			m.state.StatusMessage = fmt.Sprintf("Open failed: %v", msg.Err)
			return m, nil
		}
		if !msg.NewContext && m.config.UI.QuitOnNavigate {
			return m, tea.Quit
		}
		return m, nil

	case quitMsg:
		return m, tea.Quit

	default:
		return m, nil
	}
}

// syncPendingChord expires lapsed chords and mirrors the pending one
func (m *Model) syncPendingChord() {
	m.coordinator.Chords.Expire()
	m.state.PendingChord = m.coordinator.Chords.Pending()
}

// updateViewportHeight fits the number of visible results to the terminal
func (m *Model) updateViewportHeight() {
	rows := (m.height - m.renderer.ChromeLines()) / m.renderer.LinesPerRow()
	if rows < 1 {
		rows = 1
	}
	m.coordinator.SetViewportHeight(rows)
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
