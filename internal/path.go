package internal

import (
	"strconv"
	"strings"
)

// Syntax identifies which path grammar a path string uses
type Syntax uint8

const (
	SyntaxDotBracket Syntax = iota
	SyntaxPointer
)

// String returns the string representation of Syntax
func (s Syntax) String() string {
	switch s {
	case SyntaxPointer:
		return "pointer"
	case SyntaxDotBracket:
		return "dot-bracket"
	default:
		return "unknown"
	}
}

// Classify decides the syntax of a path with a single leading-character check
func Classify(path string) Syntax {
	if len(path) > 0 && path[0] == '/' {
		return SyntaxPointer
	}
	return SyntaxDotBracket
}

// StepKind describes how a path step addresses its container
type StepKind uint8

const (
	// StepKey addresses an object field only
	StepKey StepKind = iota
	// StepIndex addresses an array element only (bracket form)
	StepIndex
	// StepNumeric is an all-digit token: array index on arrays, field name on objects
	StepNumeric
	// StepAppend is the JSON Pointer "-" token
	StepAppend
)

// String returns the string representation of StepKind
func (k StepKind) String() string {
	switch k {
	case StepKey:
		return "key"
	case StepIndex:
		return "index"
	case StepNumeric:
		return "numeric"
	case StepAppend:
		return "append"
	default:
		return "unknown"
	}
}

// Step is one tokenized path component
type Step struct {
	Kind  StepKind
	Key   string // field name for StepKey, StepNumeric and StepAppend
	Index int    // array index for StepIndex and StepNumeric
}

// WantsArray reports whether a Null node addressed by this step becomes an array
func (s Step) WantsArray() bool {
	return s.Kind != StepKey
}

// MatchesKey reports whether this step can name an object field
func (s Step) MatchesKey() bool {
	return s.Kind != StepIndex
}

// KeyStep creates a field step
func KeyStep(key string) Step { return Step{Kind: StepKey, Key: key} }

// IndexStep creates a bracket index step
func IndexStep(index int) Step { return Step{Kind: StepIndex, Index: index} }

// NumericStep creates an ambiguous all-digit step
func NumericStep(raw string, index int) Step {
	return Step{Kind: StepNumeric, Key: raw, Index: index}
}

// AppendStep creates the JSON Pointer append step
func AppendStep() Step { return Step{Kind: StepAppend, Key: "-"} }

// KeyFunc transforms field names while tokenizing (used for Unicode normalization)
type KeyFunc func(string) string

// Tokenize splits a path into steps using the syntax chosen by Classify.
// It returns false for malformed paths; nothing about the document is consulted.
func Tokenize(path string, keyFn KeyFunc) ([]Step, bool) {
	if Classify(path) == SyntaxPointer {
		return ParsePointer(path, keyFn)
	}
	return ParseDotBracket(path, keyFn)
}

// ParsePointer tokenizes an RFC 6901 JSON Pointer. Empty tokens and invalid
// escapes are rejected.
func ParsePointer(path string, keyFn KeyFunc) ([]Step, bool) {
	if len(path) == 0 || path[0] != '/' {
		return nil, false
	}

	rest := path[1:]
	steps := make([]Step, 0, strings.Count(rest, "/")+1)
	for {
		var raw string
		slash := strings.IndexByte(rest, '/')
		if slash < 0 {
			raw = rest
		} else {
			raw = rest[:slash]
		}
		if raw == "" {
			return nil, false
		}

		token, ok := UnescapeJSONPointer(raw)
		if !ok {
			return nil, false
		}

		switch {
		case token == "-":
			steps = append(steps, AppendStep())
		default:
			if index, ok := ParsePointerIndex(token); ok {
				steps = append(steps, NumericStep(token, index))
			} else {
				if keyFn != nil {
					token = keyFn(token)
				}
				steps = append(steps, KeyStep(token))
			}
		}

		if slash < 0 {
			break
		}
		rest = rest[slash+1:]
	}
	return steps, true
}

// ParseDotBracket tokenizes dot notation with optional chained bracket
// indices, e.g. "users[0].tags[2]" or "matrix.[1][0]". Empty segments are
// skipped; malformed brackets reject the whole path.
func ParseDotBracket(path string, keyFn KeyFunc) ([]Step, bool) {
	steps := make([]Step, 0, strings.Count(path, ".")+1)

	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			continue
		}

		name, brackets := segment, ""
		if open := strings.IndexByte(segment, '['); open >= 0 {
			name, brackets = segment[:open], segment[open:]
		}

		if name != "" {
			if IsDigits(name) {
				if index, ok := ParseDigits(name); ok {
					steps = append(steps, NumericStep(name, index))
				} else {
					steps = append(steps, KeyStep(name))
				}
			} else {
				if keyFn != nil {
					name = keyFn(name)
				}
				steps = append(steps, KeyStep(name))
			}
		}

		for brackets != "" {
			if brackets[0] != '[' {
				return nil, false
			}
			end := strings.IndexByte(brackets, ']')
			if end < 0 {
				return nil, false
			}
			index, ok := ParseDigits(brackets[1:end])
			if !ok {
				return nil, false
			}
			steps = append(steps, IndexStep(index))
			brackets = brackets[end+1:]
		}
	}
	return steps, true
}

// IsDigits reports whether s is non-empty and consists only of ASCII digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseDigits parses a non-empty all-digit string into an int, rejecting overflow
func ParseDigits(s string) (int, bool) {
	if !IsDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParsePointerIndex parses an RFC 6901 array index: digits only, and no
// leading zero unless the token is exactly "0"
func ParsePointerIndex(token string) (int, bool) {
	if len(token) > 1 && token[0] == '0' {
		return 0, false
	}
	return ParseDigits(token)
}

// EscapeJSONPointer escapes special characters for JSON Pointer
// Uses single-pass algorithm to avoid multiple allocations
func EscapeJSONPointer(s string) string {
	if strings.IndexByte(s, '~') < 0 && strings.IndexByte(s, '/') < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			sb.WriteString("~0")
		case '/':
			sb.WriteString("~1")
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// UnescapeJSONPointer decodes "~1" and "~0". A "~" followed by anything else,
// or at the end of the token, is an invalid escape.
func UnescapeJSONPointer(s string) (string, bool) {
	if strings.IndexByte(s, '~') < 0 {
		return s, true
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '~' {
			sb.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", false
		}
		switch s[i+1] {
		case '0':
			sb.WriteByte('~')
		case '1':
			sb.WriteByte('/')
		default:
			return "", false
		}
		i++
	}
	return sb.String(), true
}

// Segment is a concrete location component produced while walking a tree
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// JoinPointer appends one segment to a JSON Pointer prefix
func JoinPointer(prefix string, seg Segment) string {
	if seg.IsIndex {
		return prefix + "/" + strconv.Itoa(seg.Index)
	}
	return prefix + "/" + EscapeJSONPointer(seg.Key)
}

// JoinDotBracket appends one segment to a dot/bracket prefix. Dot notation has
// no escape syntax, so keys are appended unmodified.
func JoinDotBracket(prefix string, seg Segment) string {
	if seg.IsIndex {
		return prefix + "[" + strconv.Itoa(seg.Index) + "]"
	}
	if prefix == "" {
		return seg.Key
	}
	return prefix + "." + seg.Key
}

// FormatPointer renders segments as a JSON Pointer
func FormatPointer(segments []Segment) string {
	var path string
	for _, seg := range segments {
		path = JoinPointer(path, seg)
	}
	return path
}

// FormatDotBracket renders segments in dot notation with bracket indices
func FormatDotBracket(segments []Segment) string {
	var path string
	for _, seg := range segments {
		path = JoinDotBracket(path, seg)
	}
	return path
}
