package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ohare93/keyprompt/internal/prompt"
)

const (
	// DefaultDirName is the keyprompt directory under the config home.
	DefaultDirName = ".keyprompt"

	configFileName = "config.yaml"
)

// Options holds configurable paths for loading the config
type Options struct {
	ConfigHome string // Override for the home directory (for testing)
	DirName    string // Name of the keyprompt directory (default: ".keyprompt")
}

// DefaultOptions returns the default config options
func DefaultOptions() Options {
	home, _ := os.UserHomeDir()
	return Options{
		ConfigHome: home,
		DirName:    DefaultDirName,
	}
}

// FilePath returns the config file path for the given options.
func FilePath(opts Options) string {
	dirName := opts.DirName
	if dirName == "" {
		dirName = DefaultDirName
	}
	return filepath.Join(opts.ConfigHome, dirName, configFileName)
}

// OptionSpec is one answer in a preset: the key to press, the value
// printed when it is chosen, and the description shown in help.
type OptionSpec struct {
	Key         string `yaml:"key"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

// Preset is a reusable named prompt.
type Preset struct {
	Question       string       `yaml:"question"`
	HelpText       string       `yaml:"help_text,omitempty"`
	HelpSurface    string       `yaml:"help_surface,omitempty"`
	TimeoutSeconds int          `yaml:"timeout_seconds,omitempty"`
	AlwaysShowHelp bool         `yaml:"always_show_help,omitempty"`
	Options        []OptionSpec `yaml:"options"`
}

// PromptOptions converts the preset's option list for the prompt loop.
func (p Preset) PromptOptions() []prompt.Option {
	opts := make([]prompt.Option, len(p.Options))
	for i, o := range p.Options {
		opts[i] = prompt.Option{Key: o.Key, Value: o.Value, Desc: o.Description}
	}
	return opts
}

// PromptConfig converts the preset's settings for the prompt loop.
func (p Preset) PromptConfig() prompt.Config {
	return prompt.Config{
		Timeout:        time.Duration(p.TimeoutSeconds) * time.Second,
		AlwaysShowHelp: p.AlwaysShowHelp,
		HelpText:       p.HelpText,
		HelpSurface:    p.HelpSurface,
	}
}

// Config holds the keyprompt configuration file contents.
type Config struct {
	Presets map[string]Preset `yaml:"presets"`

	path string
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	return LoadWithOptions(DefaultOptions())
}

// LoadWithOptions reads the config from the location the options describe.
// A missing file yields an empty config; a malformed file or an invalid
// preset is an error.
func LoadWithOptions(opts Options) (*Config, error) {
	path := FilePath(opts)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{Presets: map[string]Preset{}, path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Presets == nil {
		cfg.Presets = map[string]Preset{}
	}
	cfg.path = path

	for _, name := range cfg.PresetNames() {
		preset := cfg.Presets[name]
		if err := prompt.Validate(preset.Question, preset.PromptOptions()); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return &cfg, nil
}

// Path returns where the config was loaded from (or would be saved to).
func (c *Config) Path() string {
	return c.path
}

// Preset looks up a preset by name.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("preset %q not found", name)
	}
	return p, nil
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the config back to its path, creating the directory if
// needed.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
