package jsonvalue

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// TestHelper provides assertion utilities for value-model tests
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

func message(fallback string, msgAndArgs []any) string {
	if len(msgAndArgs) > 0 {
		return fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}
	return fallback
}

// AssertEqual checks if two plain Go values are equal
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		h.t.Errorf("%s\nExpected: %v (%T)\nActual: %v (%T)",
			message("Values are not equal", msgAndArgs), expected, expected, actual, actual)
	}
}

// AssertValueEqual checks two Values with Compare
func (h *TestHelper) AssertValueEqual(expected Value, actual *Value, msgAndArgs ...any) {
	h.t.Helper()
	if actual == nil {
		h.t.Errorf("%s\nExpected: %s\nActual: <nil>", message("Values are not equal", msgAndArgs), expected)
		return
	}
	if Compare(&expected, actual) != 0 {
		h.t.Errorf("%s\nExpected: %s\nActual: %s", message("Values are not equal", msgAndArgs), expected, *actual)
	}
}

// AssertTrue checks that condition is true
func (h *TestHelper) AssertTrue(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	if !condition {
		h.t.Error(message("Expected condition to be true", msgAndArgs))
	}
}

// AssertFalse checks that condition is false
func (h *TestHelper) AssertFalse(condition bool, msgAndArgs ...any) {
	h.t.Helper()
	if condition {
		h.t.Error(message("Expected condition to be false", msgAndArgs))
	}
}

// AssertNoError checks that error is nil
func (h *TestHelper) AssertNoError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err != nil {
		h.t.Errorf("%s, but got: %v", message("Expected no error", msgAndArgs), err)
	}
}

// AssertErrorIs checks that err matches target with errors.Is
func (h *TestHelper) AssertErrorIs(err, target error, msgAndArgs ...any) {
	h.t.Helper()
	if !errors.Is(err, target) {
		h.t.Errorf("%s: want %v, got %v", message("Unexpected error", msgAndArgs), target, err)
	}
}

// withConfig installs cfg as the package default for the duration of the test
func withConfig(t *testing.T, cfg *Config) {
	t.Helper()
	previous := CurrentConfig()
	if err := SetDefaultConfig(cfg); err != nil {
		t.Fatalf("SetDefaultConfig: %v", err)
	}
	t.Cleanup(func() {
		_ = SetDefaultConfig(previous)
	})
}
