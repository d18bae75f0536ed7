package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"chipselect/internal/domain"
	"chipselect/internal/eventbus"
)

// FileName is the config file looked up in the working directory
const FileName = ".chipselect.toml"

// Config represents the application configuration
type Config struct {
	Version     int          `toml:"version"`
	Label       string       `toml:"label"`
	Placeholder string       `toml:"placeholder"`
	Hint        string       `toml:"hint,omitempty"`
	Required    bool         `toml:"required"`
	Disabled    bool         `toml:"disabled"`
	MaxItems    int          `toml:"max_items,omitempty"` // 0 means no limit
	Value       []any        `toml:"value"`
	Items       []ItemConfig `toml:"items"`
	UISettings  UISettings   `toml:"ui"`
}

// ItemConfig is one selectable option. Value is an integer or a string.
type ItemConfig struct {
	Value     any    `toml:"value"`
	ViewValue string `toml:"view_value"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `toml:"show_help"`
	Autosave bool `toml:"autosave"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "chipselect", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default file. A missing file
// yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath, cfg)
		return cfg, nil
	}

	cfg, err := readFile(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cs.filePath, cfg)
	return cfg, nil
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Items: len(cfg.Items)})
	}
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Candidates(); err != nil {
		return nil, err
	}
	if _, err := cfg.InitialValue(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Candidates builds the option list. Every call returns fresh items.
func (c *Config) Candidates() ([]*domain.Item, error) {
	items := make([]*domain.Item, 0, len(c.Items))
	for i, ic := range c.Items {
		v, err := domain.ValueOf(ic.Value)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		viewValue := ic.ViewValue
		if viewValue == "" {
			viewValue = fmt.Sprint(v.Raw())
		}
		items = append(items, domain.NewItem(v, viewValue))
	}
	return items, nil
}

// InitialValue decodes the stored selection
func (c *Config) InitialValue() ([]domain.Value, error) {
	values, err := domain.ValuesOf(c.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	return values, nil
}

// SetValue stores a selection so it is written on the next save
func (c *Config) SetValue(values []domain.Value) {
	c.Value = domain.RawValues(values)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Label:       "Favorite fruits",
		Placeholder: "Add fruit",
		Hint:        "Type to filter, enter to toggle",
		Items: []ItemConfig{
			{Value: int64(1), ViewValue: "Apple"},
			{Value: int64(2), ViewValue: "Lemon"},
			{Value: int64(3), ViewValue: "Lime"},
			{Value: int64(4), ViewValue: "Orange"},
			{Value: int64(5), ViewValue: "Strawberry"},
		},
		UISettings: UISettings{
			ShowHelp: true,
			Autosave: true,
		},
	}
}
