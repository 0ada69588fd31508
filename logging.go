package jsonvalue

import (
	"context"
	"log/slog"
	"strings"
)

// Reasons attached to refused path operations
const (
	reasonMalformedPath = "malformed path"
	reasonPathTooDeep   = "path depth limit exceeded"
	reasonScalarInWay   = "scalar cannot become a container"
	reasonKindMismatch  = "step does not match container kind"
	reasonIndexLimit    = "array index limit exceeded"
	reasonAppendMisuse  = "append token outside final create step"
)

// logger returns the configured logger or the component-scoped default
func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default().With("component", componentName)
}

// logRefused reports a path operation that degraded to a no-op
func (c *Config) logRefused(operation, path, reason string) {
	level, _ := parseLogLevel(c.LogLevel)
	if level > slog.LevelDebug {
		return
	}

	ctx := context.Background()
	logger := c.logger()
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "path operation refused",
		slog.String("operation", operation),
		slog.String("path", sanitizePath(path)),
		slog.String("reason", reason),
	)
}

// sanitizePath removes potentially sensitive information from paths. The
// whole path is scanned before it is truncated.
func sanitizePath(path string) string {
	lowerPath := strings.ToLower(path)
	sensitivePatterns := []string{
		"password", "passwd", "pwd",
		"token", "bearer",
		"apikey", "api_key", "api-key",
		"secret", "credential",
		"authorization",
		"session", "cookie",
	}
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerPath, pattern) {
			return "[REDACTED_PATH]"
		}
	}
	return truncateString(path, MaxLoggedPathLength)
}

// truncateString truncates a string with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
