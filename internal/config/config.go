package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"serpnav/internal/eventbus"
)

const (
	DefaultChordTimeout = 500 * time.Millisecond
	DefaultPulse        = 500 * time.Millisecond
	DefaultToast        = 2000 * time.Millisecond
	DefaultProvider     = "duckduckgo"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Search  SearchSettings `toml:"search"`
	Keys    KeySettings    `toml:"keys"`
	UI      UISettings     `toml:"ui"`
	Browser string         `toml:"browser,omitempty"` // command used to open links, empty = system default
	LogFile string         `toml:"log_file,omitempty"`
}

// SearchSettings configures where result pages come from
type SearchSettings struct {
	Provider       string `toml:"provider"`
	BaseURL        string `toml:"base_url,omitempty"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Region         string `toml:"region,omitempty"`
}

// KeySettings configures key handling
type KeySettings struct {
	ChordTimeoutMS int `toml:"chord_timeout_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	PulseMS        int  `toml:"pulse_ms"`
	ToastMS        int  `toml:"toast_ms"`
	ShowSnippets   bool `toml:"show_snippets"`
	CenterFocus    bool `toml:"center_focus"`
	QuitOnNavigate bool `toml:"quit_on_navigate"`
}

// ChordTimeout returns the two-key disambiguation window
func (c *Config) ChordTimeout() time.Duration {
	return time.Duration(c.Keys.ChordTimeoutMS) * time.Millisecond
}

// PulseDuration returns how long the copy pulse stays on exported items
func (c *Config) PulseDuration() time.Duration {
	return time.Duration(c.UI.PulseMS) * time.Millisecond
}

// ToastDuration returns how long a transient notice stays visible
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.UI.ToastMS) * time.Millisecond
}

// Validate replaces unusable values with defaults
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Search.Provider == "" {
		c.Search.Provider = def.Search.Provider
	}
	if c.Search.UserAgent == "" {
		c.Search.UserAgent = def.Search.UserAgent
	}
	if c.Search.TimeoutSeconds <= 0 {
		c.Search.TimeoutSeconds = def.Search.TimeoutSeconds
	}
	if c.Keys.ChordTimeoutMS <= 0 {
		c.Keys.ChordTimeoutMS = def.Keys.ChordTimeoutMS
	}
	if c.UI.PulseMS <= 0 {
		c.UI.PulseMS = def.UI.PulseMS
	}
	if c.UI.ToastMS <= 0 {
		c.UI.ToastMS = def.UI.ToastMS
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns ~/.config/serpnav/config.toml (or the platform equivalent)
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "serpnav", "config.toml")
}

// NewConfigService creates a config service backed by path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, writing defaults on first run
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return cfg, err
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Provider: cfg.Search.Provider,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Validate()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			Provider:       DefaultProvider,
			UserAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			TimeoutSeconds: 15,
		},
		Keys: KeySettings{
			ChordTimeoutMS: int(DefaultChordTimeout / time.Millisecond),
		},
		UI: UISettings{
			PulseMS:        int(DefaultPulse / time.Millisecond),
			ToastMS:        int(DefaultToast / time.Millisecond),
			ShowSnippets:   true,
			CenterFocus:    true,
			QuitOnNavigate: true,
		},
	}
}
