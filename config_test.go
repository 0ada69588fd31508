package jsonvalue

import (
	"testing"
)

// TestConfiguration tests configuration creation, validation, loading and installation
func TestConfiguration(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		helper.AssertEqual(DefaultMaxPathDepth, config.MaxPathDepth)
		helper.AssertEqual(DefaultMaxArrayIndex, config.MaxArrayIndex)
		helper.AssertEqual(DefaultMaxHashDepth, config.MaxHashDepth)
		helper.AssertEqual(DefaultMaxNestingDepth, config.MaxNestingDepth)
		helper.AssertFalse(config.NormalizeKeys)
		helper.AssertEqual("info", config.LogLevel)
	})

	t.Run("ValidateConfigAppliesDefaults", func(t *testing.T) {
		config := &Config{}
		helper.AssertNoError(ValidateConfig(config))
		helper.AssertEqual(DefaultMaxPathDepth, config.MaxPathDepth)
		helper.AssertEqual(DefaultMaxArrayIndex, config.MaxArrayIndex)
		helper.AssertEqual("info", config.LogLevel)
	})

	t.Run("ValidateConfigRejects", func(t *testing.T) {
		helper.AssertErrorIs(ValidateConfig(nil), ErrInvalidConfig)

		invalid := []*Config{
			{MaxPathDepth: -1},
			{MaxArrayIndex: -1},
			{MaxHashDepth: -5},
			{MaxNestingDepth: -1},
			{LogLevel: "loud"},
		}
		for _, config := range invalid {
			helper.AssertErrorIs(ValidateConfig(config), ErrInvalidConfig, "config %+v", *config)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		config, err := LoadConfig([]byte(`
max_path_depth: 16
normalize_keys: true
log_level: debug
`))
		helper.AssertNoError(err)
		helper.AssertEqual(16, config.MaxPathDepth)
		helper.AssertEqual(DefaultMaxArrayIndex, config.MaxArrayIndex)
		helper.AssertTrue(config.NormalizeKeys)
		helper.AssertEqual("debug", config.LogLevel)
	})

	t.Run("LoadConfigErrors", func(t *testing.T) {
		for _, data := range []string{"max_path_depth: -1", "log_level: loud", "max_path_depth: [1"} {
			_, err := LoadConfig([]byte(data))
			helper.AssertErrorIs(err, ErrInvalidConfig, "input %q", data)
		}
	})

	t.Run("SetDefaultConfigCopies", func(t *testing.T) {
		config := DefaultConfig()
		config.MaxPathDepth = 32
		withConfig(t, config)

		config.MaxPathDepth = 1
		helper.AssertEqual(32, CurrentConfig().MaxPathDepth)

		current := CurrentConfig()
		current.MaxPathDepth = 2
		helper.AssertEqual(32, CurrentConfig().MaxPathDepth)
	})

	t.Run("SetDefaultConfigRejectsInvalid", func(t *testing.T) {
		before := CurrentConfig()
		helper.AssertErrorIs(SetDefaultConfig(&Config{MaxPathDepth: -1}), ErrInvalidConfig)
		helper.AssertEqual(before.MaxPathDepth, CurrentConfig().MaxPathDepth)
	})

	t.Run("Clone", func(t *testing.T) {
		var nilConfig *Config
		helper.AssertTrue(nilConfig.Clone() == nil)

		original := DefaultConfig()
		cloned := original.Clone()
		cloned.NormalizeKeys = true
		helper.AssertFalse(original.NormalizeKeys)
	})
}
