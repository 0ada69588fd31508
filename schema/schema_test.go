package schema

import (
	"errors"
	"testing"

	"github.com/cybergodev/jsonvalue"
)

const personSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0},
		"tags": {"type": "array", "items": {"type": "string"}}
	}
}`

func compilePerson(t *testing.T) *Schema {
	t.Helper()
	doc := jsonvalue.MustParse(personSchema)
	s, err := Compile("https://example.com/person.json", &doc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return s
}

func TestValidate(t *testing.T) {
	s := compilePerson(t)
	if s.URL() != "https://example.com/person.json" {
		t.Errorf("URL() = %q", s.URL())
	}

	valid := []string{
		`{"name":"ann"}`,
		`{"name":"ann","age":3,"tags":["a"]}`,
		`{"name":"ann","age":18446744073709551615}`,
	}
	for _, in := range valid {
		doc := jsonvalue.MustParse(in)
		if err := s.Validate(&doc); err != nil {
			t.Errorf("Validate(%s) = %v", in, err)
		}
	}

	invalid := []string{
		`{}`,
		`{"name":1}`,
		`{"name":"ann","age":1.5}`,
		`{"name":"ann","age":-1}`,
		`{"name":"ann","tags":[1]}`,
		`[]`,
	}
	for _, in := range invalid {
		doc := jsonvalue.MustParse(in)
		if s.Valid(&doc) {
			t.Errorf("Valid(%s) = true", in)
		}
	}
}

func TestIssues(t *testing.T) {
	s := compilePerson(t)

	var doc jsonvalue.Value
	jsonvalue.Set(&doc, "age", -1)
	jsonvalue.Set(&doc, "tags[1]", "ok")

	issues := Issues(s.Validate(&doc))
	locations := make(map[string]bool, len(issues))
	for _, issue := range issues {
		locations[issue.InstanceLocation] = true
		if issue.Message == "" {
			t.Errorf("issue at %q has no message", issue.InstanceLocation)
		}
	}
	for _, want := range []string{"", "/age", "/tags/0"} {
		if !locations[want] {
			t.Errorf("missing issue at %q, got %+v", want, issues)
		}
	}

	if Issues(nil) != nil {
		t.Error("Issues(nil) should be nil")
	}
}

func TestCompileErrors(t *testing.T) {
	_, err := CompileBytes("https://example.com/broken.json", []byte(`{"type": `))
	if err == nil {
		t.Fatal("expected error for malformed schema")
	}
	var verr *jsonvalue.ValueError
	if !errors.As(err, &verr) || verr.Op != "schema_compile" {
		t.Errorf("error %v is not a schema_compile ValueError", err)
	}

	_, err = CompileBytes("https://example.com/bad-type.json", []byte(`{"type": 12}`))
	if err == nil {
		t.Error("expected error for invalid schema keyword")
	}
}
