/*
Package config manages TOML config for the completion pipeline.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/windymelt/company-fuzzy/pkg/provider"
	"github.com/windymelt/company-fuzzy/pkg/rank"
)

// Config holds the entire config structure
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Sources  []SourceConfig `toml:"source"`
	Server   ServerConfig   `toml:"server"`
}

// PipelineConfig controls candidate aggregation and ranking.
type PipelineConfig struct {
	Strategy         string   `toml:"strategy"`
	PrefixOnTop      bool     `toml:"prefix_on_top"`
	AnnotationFormat string   `toml:"annotation_format"`
	TriggerSymbols   []string `toml:"trigger_symbols"`
	HistorySources   []string `toml:"history_sources"`
}

// SourceConfig is one source list entry: a plain provider name or a group.
// Kind optionally overrides how prefixes resolve for the named provider.
type SourceConfig struct {
	Name  string   `toml:"name,omitempty"`
	Group []string `toml:"group,omitempty"`
	Kind  string   `toml:"kind,omitempty"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
	MinInput int `toml:"min_input"`
	MaxInput int `toml:"max_input"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Strategy:         "alphabetic",
			PrefixOnTop:      true,
			AnnotationFormat: " <%s>",
			TriggerSymbols:   []string{".", "->"},
			HistorySources:   []string{"recent"},
		},
		Sources: []SourceConfig{
			{Name: "words"},
			{Group: []string{"path", "recent"}},
		},
		Server: ServerConfig{
			MaxLimit: 64,
			MinInput: 1,
			MaxInput: 60,
		},
	}
}

// Entries maps the configured sources onto registry entries.
func (c *Config) Entries() []provider.Entry {
	entries := make([]provider.Entry, 0, len(c.Sources))
	for _, src := range c.Sources {
		entries = append(entries, provider.Entry{Name: src.Name, Group: src.Group})
	}
	return entries
}

// Kinds returns the per-provider kind overrides named in the sources.
func (c *Config) Kinds() map[string]provider.Kind {
	kinds := make(map[string]provider.Kind)
	for _, src := range c.Sources {
		if src.Name != "" && src.Kind != "" {
			kinds[src.Name] = provider.ParseKind(src.Kind)
		}
	}
	return kinds
}

// Strategy returns the configured sort strategy. Unrecognized values fall
// back to accumulation order with a warning, never an error.
func (c *Config) Strategy() rank.Strategy {
	strategy, ok := rank.ParseStrategy(c.Pipeline.Strategy)
	if !ok {
		log.Warnf("config: unrecognized strategy %q, keeping accumulation order", c.Pipeline.Strategy)
	}
	return strategy
}

// Validate clamps out-of-range server values in place.
func (c *Config) Validate() {
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = 64
	}
	if c.Server.MinInput < 1 {
		c.Server.MinInput = 1
	}
	if c.Server.MaxInput < c.Server.MinInput {
		c.Server.MaxInput = 60
	}
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "company-fuzzy", "config.toml"), nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); err != nil {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
		} else {
			log.Debugf("Created default config file at: %s", configPath)
		}
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, falling back to partial recovery and
// then to built-in defaults on parse errors.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return tryPartialParse(configPath)
	}
	config.Validate()
	return config, nil
}

// tryPartialParse salvages recognizable sections from a broken TOML file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, nil
	}
	tempConfig := make(map[string]any)
	if _, err := toml.Decode(string(data), &tempConfig); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := tempConfig["pipeline"].(map[string]any); ok {
		extractPipelineConfig(section, &config.Pipeline)
	}
	if section, ok := tempConfig["server"].(map[string]any); ok {
		extractServerConfig(section, &config.Server)
	}
	config.Validate()
	return config, nil
}

func extractPipelineConfig(data map[string]any, pipeline *PipelineConfig) {
	if val, ok := data["strategy"].(string); ok {
		pipeline.Strategy = val
	}
	if val, ok := data["prefix_on_top"].(bool); ok {
		pipeline.PrefixOnTop = val
	}
	if val, ok := data["annotation_format"].(string); ok {
		pipeline.AnnotationFormat = val
	}
	if vals, ok := stringSlice(data["trigger_symbols"]); ok {
		pipeline.TriggerSymbols = vals
	}
	if vals, ok := stringSlice(data["history_sources"]); ok {
		pipeline.HistorySources = vals
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := data["max_limit"].(int64); ok {
		server.MaxLimit = int(val)
	}
	if val, ok := data["min_input"].(int64); ok {
		server.MinInput = int(val)
	}
	if val, ok := data["max_input"].(int64); ok {
		server.MaxInput = int(val)
	}
}

func stringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(config)
}
