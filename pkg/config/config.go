// Package config loads voxmux settings from an optional YAML file and fills
// in working defaults so a missing config is never an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

// DefaultConfidenceThreshold is the minimum recognition confidence a
// transcript needs before its parsed intent is dispatched.
const DefaultConfidenceThreshold = 0.6

// Config is the root of voxmux.yml.
type Config struct {
	// ConfidenceThreshold gates dispatch; transcripts whose confidence
	// falls below it are ignored as if they had not matched.
	ConfidenceThreshold float64 `yaml:"confidence_threshold" json:"confidence_threshold"`

	Feedback FeedbackConfig `yaml:"feedback" json:"feedback"`
	Tmux     TmuxConfig     `yaml:"tmux" json:"tmux"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// FeedbackConfig controls spoken confirmations.
type FeedbackConfig struct {
	// Enabled defaults to true; nil means unset.
	Enabled *bool `yaml:"enabled" json:"enabled"`

	// SynthesizeCommand writes audio for its final argument to stdout.
	SynthesizeCommand []string `yaml:"synthesize_command" json:"synthesize_command"`

	// PlayCommand plays the audio file given as its final argument.
	PlayCommand []string `yaml:"play_command" json:"play_command"`
}

// TmuxConfig locates the tmux binary.
type TmuxConfig struct {
	Binary string `yaml:"binary" json:"binary"`
}

// FeedbackEnabled reports whether spoken feedback should be attempted.
func (c *Config) FeedbackEnabled() bool {
	return c.Feedback.Enabled == nil || *c.Feedback.Enabled
}

// Default returns the zero-config settings.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ConfidenceThreshold == 0 {
		c.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if len(c.Feedback.SynthesizeCommand) == 0 {
		c.Feedback.SynthesizeCommand = []string{"espeak-ng", "--stdout"}
	}
	if len(c.Feedback.PlayCommand) == 0 {
		c.Feedback.PlayCommand = []string{"aplay", "-q"}
	}
	if c.Tmux.Binary == "" {
		c.Tmux.Binary = "tmux"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// DefaultPath returns the conventional config location,
// $XDG_CONFIG_HOME/voxmux/voxmux.yml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "voxmux", "voxmux.yml")
}

// Load reads the config at path, falling back to DefaultPath when path is
// empty. A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}
