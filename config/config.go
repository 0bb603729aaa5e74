// Package config provides configuration loading and management for semshape.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semshape/engine"
)

// Config represents the complete semshape configuration
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
}

// LoggingConfig configures structured logging
type LoggingConfig struct {
	// Level is the minimum level emitted: debug, info, warn, error
	Level string `yaml:"level"`
	// Format selects the handler: text or json
	Format string `yaml:"format"`
}

// ValidationConfig configures the validation engine
type ValidationConfig struct {
	// MaxPatternLength rejects pattern constraints longer than this many bytes
	MaxPatternLength int `yaml:"max_pattern_length"`
	// PatternTimeout bounds the time spent compiling one pattern (e.g. "100ms")
	PatternTimeout Duration `yaml:"pattern_timeout"`
	// MaxListDepth bounds traversal of enumerated value lists
	MaxListDepth int `yaml:"max_list_depth"`
	// Parallelism is the worker pool width (0 = logical core count)
	Parallelism int `yaml:"parallelism"`
	// FailFast stops at the first violation and flags the report truncated
	FailFast bool `yaml:"fail_fast"`
	// Deadline bounds a whole run (e.g. "30s"; 0 = unbounded)
	Deadline Duration `yaml:"deadline"`
	// SubclassClosure enables transitive subclass matching for class constraints
	SubclassClosure bool `yaml:"subclass_closure"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	// Format selects the report renderer: text or json
	Format string `yaml:"format"`
}

// Duration wraps time.Duration so YAML values can be written as "100ms"
// or "30s" rather than raw nanoseconds.
type Duration time.Duration

// UnmarshalYAML parses either a duration string or an integer nanosecond count.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var asString string
	if err := value.Decode(&asString); err == nil {
		parsed, perr := time.ParseDuration(asString)
		if perr != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, perr)
		}
		*d = Duration(parsed)
		return nil
	}
	var asInt int64
	if err := value.Decode(&asInt); err != nil {
		return fmt.Errorf("invalid duration value")
	}
	*d = Duration(asInt)
	return nil
}

// MarshalYAML renders the duration in its string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Validation: ValidationConfig{
			MaxPatternLength: 500,
			PatternTimeout:   Duration(100 * time.Millisecond),
			MaxListDepth:     100,
			Parallelism:      0, // logical core count
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json")
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json")
	}
	if c.Validation.MaxPatternLength < 0 {
		return fmt.Errorf("validation.max_pattern_length must not be negative")
	}
	if c.Validation.MaxListDepth < 0 {
		return fmt.Errorf("validation.max_list_depth must not be negative")
	}
	if c.Validation.Parallelism < 0 {
		return fmt.Errorf("validation.parallelism must not be negative")
	}
	return nil
}

// EngineOptions maps the validation section onto engine options.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		MaxPatternLength: c.Validation.MaxPatternLength,
		PatternTimeout:   c.Validation.PatternTimeout.Std(),
		MaxListDepth:     c.Validation.MaxListDepth,
		Parallelism:      c.Validation.Parallelism,
		FailFast:         c.Validation.FailFast,
		Deadline:         c.Validation.Deadline.Std(),
		SubclassClosure:  c.Validation.SubclassClosure,
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.Format != "" {
		c.Logging.Format = other.Logging.Format
	}

	if other.Validation.MaxPatternLength != 0 {
		c.Validation.MaxPatternLength = other.Validation.MaxPatternLength
	}
	if other.Validation.PatternTimeout != 0 {
		c.Validation.PatternTimeout = other.Validation.PatternTimeout
	}
	if other.Validation.MaxListDepth != 0 {
		c.Validation.MaxListDepth = other.Validation.MaxListDepth
	}
	if other.Validation.Parallelism != 0 {
		c.Validation.Parallelism = other.Validation.Parallelism
	}
	if other.Validation.FailFast {
		c.Validation.FailFast = true
	}
	if other.Validation.Deadline != 0 {
		c.Validation.Deadline = other.Validation.Deadline
	}
	if other.Validation.SubclassClosure {
		c.Validation.SubclassClosure = true
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
}
