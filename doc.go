// Package jsonvalue provides an in-memory JSON value model with unified
// path addressing: JSON Pointer (RFC 6901), dot notation and bracket indices
// can be used interchangeably against the same tree.
//
// The package uses an internal package for implementation details:
//
//   - internal: path syntax classification, tokenizing, JSON Pointer escaping
//     and path formatting
//
// # Basic Usage
//
// The zero Value is null and grows as paths are written:
//
//	var doc jsonvalue.Value
//	jsonvalue.Set(&doc, "user.profile.firstName", "Alice")
//	jsonvalue.Set(&doc, "/user/tags/0", "admin")
//	jsonvalue.Set(&doc, "user.scores[2]", 9.5) // scores[0] and scores[1] become null
//
//	name, ok := jsonvalue.Get[string](&doc, "user.profile.firstName")
//	tag, ok := jsonvalue.Get[string](&doc, "user.tags[0]")
//
// "users[0].name", "users.0.name" and "/users/0/name" all address the same
// node. A path starting with "/" is a JSON Pointer; anything else is
// dot/bracket notation.
//
// # Auto-vivification
//
// Writes create missing objects and arrays along the path. A null node may
// become a container; a bool, number or string never does:
//
//	jsonvalue.Set(&doc, "count", 5)
//	jsonvalue.Set(&doc, "count.label", "x") // false, doc unchanged
//
// # Typed Access
//
// Get narrows and widens numbers safely:
//
//	jsonvalue.Set(&doc, "n", int64(300))
//	_, ok := jsonvalue.Get[int8](&doc, "n")   // false: out of range
//	f, _ := jsonvalue.Get[float64](&doc, "n") // 300
//
// Path operations never return errors: missing paths, kind mismatches and
// malformed paths degrade to absent values, false predicates and no-op writes.
// Direct element access (At, AtKey) returns errors.
//
// # Other Operations
//
//   - Compare, Equal and Less: a total order over values
//   - Hash: a depth-capped content hash
//   - Enumerate: every (path, value, depth, leaf) entry of a document
//   - Parse / MarshalJSON: JSON text through github.com/goccy/go-json
//   - ParseYAML / ToYAML: YAML through gopkg.in/yaml.v3
//   - Query: JSONPath selection through github.com/theory/jsonpath
//
// # Concurrency
//
// Values are not safe for concurrent mutation. Pointers returned by lookups
// are borrows that end at the next mutation of the owning container.
package jsonvalue
