package jsonvalue

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/unicode/norm"

	"github.com/cybergodev/jsonvalue/internal"
)

// Config holds the limits and logging settings shared by path resolution,
// hashing and the decoding bridges
type Config struct {
	MaxPathDepth    int    `yaml:"max_path_depth"`    // Maximum number of steps in one path
	MaxArrayIndex   int    `yaml:"max_array_index"`   // Highest index create mode may gap-fill to
	MaxHashDepth    int    `yaml:"max_hash_depth"`    // Depth at which Hash switches to HashSentinel
	MaxNestingDepth int    `yaml:"max_nesting_depth"` // Nesting accepted by the JSON and YAML bridges
	NormalizeKeys   bool   `yaml:"normalize_keys"`    // NFC-normalize field names taken from paths
	LogLevel        string `yaml:"log_level"`         // Minimum level this package emits (debug, info, warn, error)

	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxPathDepth:    DefaultMaxPathDepth,
		MaxArrayIndex:   DefaultMaxArrayIndex,
		MaxHashDepth:    DefaultMaxHashDepth,
		MaxNestingDepth: DefaultMaxNestingDepth,
		NormalizeKeys:   false,
		LogLevel:        "info",
	}
}

// ValidateConfig validates configuration values and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}

	if config.MaxPathDepth < 0 {
		return newOperationError("validate_config", "MaxPathDepth cannot be negative", ErrInvalidConfig)
	}
	if config.MaxArrayIndex < 0 {
		return newOperationError("validate_config", "MaxArrayIndex cannot be negative", ErrInvalidConfig)
	}
	if config.MaxHashDepth < 0 {
		return newOperationError("validate_config", "MaxHashDepth cannot be negative", ErrInvalidConfig)
	}
	if config.MaxNestingDepth < 0 {
		return newOperationError("validate_config", "MaxNestingDepth cannot be negative", ErrInvalidConfig)
	}
	if _, err := parseLogLevel(config.LogLevel); err != nil {
		return err
	}

	// Apply defaults for unset values
	if config.MaxPathDepth == 0 {
		config.MaxPathDepth = DefaultMaxPathDepth
	}
	if config.MaxArrayIndex == 0 {
		config.MaxArrayIndex = DefaultMaxArrayIndex
	}
	if config.MaxHashDepth == 0 {
		config.MaxHashDepth = DefaultMaxHashDepth
	}
	if config.MaxNestingDepth == 0 {
		config.MaxNestingDepth = DefaultMaxNestingDepth
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return nil
}

// LoadConfig parses a YAML configuration document on top of DefaultConfig
func LoadConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, newOperationError("load_config", err.Error(), ErrInvalidConfig)
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Clone returns a shallow copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

var defaultConfig atomic.Pointer[Config]

func init() {
	defaultConfig.Store(DefaultConfig())
}

// SetDefaultConfig replaces the package-wide configuration used by every
// path operation. The config is validated and copied.
func SetDefaultConfig(config *Config) error {
	clone := config.Clone()
	if err := ValidateConfig(clone); err != nil {
		return err
	}
	defaultConfig.Store(clone)
	return nil
}

// CurrentConfig returns a copy of the package-wide configuration
func CurrentConfig() *Config {
	return defaultConfig.Load().Clone()
}

func activeConfig() *Config {
	return defaultConfig.Load()
}

// keyFunc returns the tokenizer hook for field names
func (c *Config) keyFunc() internal.KeyFunc {
	if !c.NormalizeKeys {
		return nil
	}
	return norm.NFC.String
}

func parseLogLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return slog.LevelInfo, newOperationError("validate_config", "unknown log level "+level, ErrInvalidConfig)
	}
	return lvl, nil
}
