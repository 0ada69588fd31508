// Package schema validates jsonvalue documents against JSON Schema using
// github.com/santhosh-tekuri/jsonschema/v5. It only reads documents: kinds,
// visitors and member/element iteration.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cybergodev/jsonvalue"
)

// Schema is a compiled JSON Schema
type Schema struct {
	url      string
	compiled *jsonschema.Schema
}

// Issue is one leaf validation failure
type Issue struct {
	InstanceLocation string // JSON Pointer into the validated document ("" is the root)
	KeywordLocation  string
	Message          string
}

// Compile compiles a schema held as a jsonvalue document
func Compile(url string, doc *jsonvalue.Value) (*Schema, error) {
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return CompileBytes(url, data)
}

// CompileBytes compiles a schema from its JSON text
func CompileBytes(url string, data []byte) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, &jsonvalue.ValueError{Op: "schema_compile", Path: url, Message: err.Error(), Err: err}
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, &jsonvalue.ValueError{Op: "schema_compile", Path: url, Message: err.Error(), Err: err}
	}
	return &Schema{url: url, compiled: compiled}, nil
}

// URL returns the URL the schema was compiled under
func (s *Schema) URL() string { return s.url }

// Validate checks doc against the schema. Failures are returned as
// *jsonschema.ValidationError.
func (s *Schema) Validate(doc *jsonvalue.Value) error {
	instance, err := jsonvalue.Accept[any](doc, instanceBuilder{})
	if err != nil {
		return err
	}
	return s.compiled.Validate(instance)
}

// Valid reports whether doc satisfies the schema
func (s *Schema) Valid(doc *jsonvalue.Value) bool {
	return s.Validate(doc) == nil
}

// Issues flattens a validation error into its leaf failures
func Issues(err error) []Issue {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	var issues []Issue
	collectIssues(verr, &issues)
	return issues
}

func collectIssues(verr *jsonschema.ValidationError, issues *[]Issue) {
	if len(verr.Causes) == 0 {
		*issues = append(*issues, Issue{
			InstanceLocation: verr.InstanceLocation,
			KeywordLocation:  verr.KeywordLocation,
			Message:          verr.Message,
		})
		return
	}
	for _, cause := range verr.Causes {
		collectIssues(cause, issues)
	}
}

// instanceBuilder converts a document into the plain Go data the validator
// walks. Numbers become json.Number so integer checks stay exact.
type instanceBuilder struct{}

func (instanceBuilder) Null() (any, error)           { return nil, nil }
func (instanceBuilder) Bool(b bool) (any, error)     { return b, nil }
func (instanceBuilder) String(s string) (any, error) { return s, nil }

func (instanceBuilder) Int64(i int64) (any, error) {
	return json.Number(strconv.FormatInt(i, 10)), nil
}

func (instanceBuilder) Uint64(u uint64) (any, error) {
	return json.Number(strconv.FormatUint(u, 10)), nil
}

func (instanceBuilder) Double(f float64) (any, error) {
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

func (b instanceBuilder) Array(elems []jsonvalue.Value) (any, error) {
	out := make([]any, len(elems))
	for i := range elems {
		child, err := jsonvalue.Accept[any](&elems[i], b)
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}

func (b instanceBuilder) Object(members []jsonvalue.Member) (any, error) {
	out := make(map[string]any, len(members))
	for i := range members {
		if _, dup := out[members[i].Key]; dup {
			continue
		}
		child, err := jsonvalue.Accept[any](&members[i].Value, b)
		if err != nil {
			return nil, err
		}
		out[members[i].Key] = child
	}
	return out, nil
}
