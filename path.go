package jsonvalue

import "github.com/cybergodev/jsonvalue/internal"

// PathSyntax identifies the grammar of a path string
type PathSyntax uint8

const (
	// SyntaxDotBracket is dot notation with optional [n] indices: "users[0].name", "users.0.name"
	SyntaxDotBracket = PathSyntax(internal.SyntaxDotBracket)
	// SyntaxPointer is an RFC 6901 JSON Pointer: "/users/0/name"
	SyntaxPointer = PathSyntax(internal.SyntaxPointer)
)

// String returns the string representation of PathSyntax
func (s PathSyntax) String() string {
	return internal.Syntax(s).String()
}

// ClassifyPath reports which syntax a path uses. Paths starting with "/" are
// JSON Pointers; everything else, including the empty path, is dot/bracket.
func ClassifyPath(path string) PathSyntax {
	return PathSyntax(internal.Classify(path))
}

// EscapePointerToken escapes "~" and "/" in a JSON Pointer reference token
func EscapePointerToken(token string) string {
	return internal.EscapeJSONPointer(token)
}

// UnescapePointerToken decodes a JSON Pointer reference token, reporting
// false for invalid escapes
func UnescapePointerToken(token string) (string, bool) {
	return internal.UnescapeJSONPointer(token)
}

// ValidPath reports whether path is syntactically well formed. It does not
// consult any document.
func ValidPath(path string) bool {
	cfg := activeConfig()
	steps, ok := internal.Tokenize(path, nil)
	return ok && len(steps) <= cfg.MaxPathDepth
}
