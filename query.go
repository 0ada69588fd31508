package jsonvalue

import (
	"github.com/theory/jsonpath"
)

// Query evaluates an RFC 9535 JSONPath expression (e.g. "$.users[*].name",
// "$..price") against doc and returns copies of the selected nodes in
// selection order. Objects in the result have their members ordered by key.
func Query(doc *Value, expr string) ([]Value, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, newPathError("query", expr, err.Error(), ErrInvalidPath)
	}

	nodes := path.Select(doc.Interface())
	results := make([]Value, 0, len(nodes))
	for _, node := range nodes {
		v, err := FromAny(node)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// QueryFirst returns the first node selected by expr, if any
func QueryFirst(doc *Value, expr string) (Value, bool, error) {
	results, err := Query(doc, expr)
	if err != nil || len(results) == 0 {
		return Value{}, false, err
	}
	return results[0], true, nil
}
