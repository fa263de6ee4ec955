package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"serpnav/internal/config"
	"serpnav/internal/eventbus"
	"serpnav/internal/logger"
	"serpnav/internal/logic"
	"serpnav/internal/platform"
	"serpnav/internal/search"
	"serpnav/internal/ui"
)

// options holds the command line flags
type options struct {
	configPath   string
	provider     string
	fromFile     string
	page         int
	chordTimeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "serpnav [query...]",
		Short:        "Keyboard-driven navigator for web search results",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Search and browse the first page
  serpnav golang bubbletea

  # Browse a saved result page offline
  serpnav --from-file results.html golang

  # Show the key reference
  serpnav keys
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file (default: "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "Search provider (overrides config)")
	cmd.Flags().StringVar(&opts.fromFile, "from-file", "", "Serve result pages from a saved HTML file; %d in the path is replaced by the page number")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page to open first")
	cmd.Flags().DurationVar(&opts.chordTimeout, "chord-timeout", 0, "Window for two-key sequences such as gg (default from config)")

	cmd.AddCommand(newKeysCmd())
	return cmd
}

func newKeysCmd() *cobra.Command {
	var noPager bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := int(os.Stdout.Fd())
			tty := term.IsTerminal(fd)

			width := 80
			if tty {
				if w, _, err := term.GetSize(fd); err == nil {
					width = w
				}
			}

			out, err := ui.RenderKeyReference(width, !tty)
			if err != nil {
				return err
			}
			if !tty || noPager {
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			return ui.ShowInPager(out)
		},
	}

	cmd.Flags().BoolVar(&noPager, "no-pager", false, "Print instead of opening the pager")
	return cmd
}

// loadConfig loads the config file and applies flag overrides
func loadConfig(opts *options, bus eventbus.EventBus) (*config.Config, error) {
	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		if cfg == nil {
			return nil, err
		}
		// Defaults are usable even if writing them failed
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if opts.provider != "" {
		cfg.Search.Provider = opts.provider
	}
	if opts.chordTimeout > 0 {
		cfg.Keys.ChordTimeoutMS = int(opts.chordTimeout / time.Millisecond)
	}
	cfg.Validate()
	return cfg, nil
}

func run(opts *options, query string) error {
	// Set up logging; nothing may reach the terminal once the UI runs
	if err := logger.Init(""); err != nil {
		logger.Disable()
	}
	defer logger.Close()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	cfg, err := loadConfig(opts, bus)
	if err != nil {
		return err
	}
	if cfg.LogFile != "" {
		if err := logger.Init(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		}
	}

	provider, err := search.New(cfg.Search, opts.fromFile)
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// The search service subscribes to page requests automatically
	_ = search.NewService(ctx, provider, bus, time.Duration(cfg.Search.TimeoutSeconds)*time.Second)

	store := logic.NewMemoryResultStore()
	clip, browser := platform.FromEnv(cfg.Browser)

	log.Printf("Creating UI model (provider %s)...", provider.Name())
	uiModel := ui.NewModel(bus, cfg, store, clip, browser)
	uiModel.SetInitialPage(query, opts.page)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventResultsLoaded,
		eventbus.EventSearchFailed,
		eventbus.EventError,
		eventbus.EventConfigSaved,
	} {
		unsubscribe := bus.Subscribe(t, forwardEvent)
		defer unsubscribe()
	}

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	if os.Getenv("SERPNAV_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
