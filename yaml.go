package jsonvalue

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes the first YAML document in data into a Value. Mapping
// order is preserved; integers become Int64 (UInt64 above the int64 range),
// floats Double, and every other scalar tag a String.
func ParseYAML(data []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		var verr *ValueError
		if errors.As(err, &verr) {
			return Value{}, verr
		}
		return Value{}, newOperationError("parse_yaml", err.Error(), ErrInvalidYAML)
	}
	return v, nil
}

// ToYAML encodes v as a YAML document
func ToYAML(v *Value) ([]byte, error) {
	node, err := yamlNode(v, 0, activeConfig().MaxNestingDepth)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, newOperationError("to_yaml", err.Error(), ErrInvalidYAML)
	}
	return data, nil
}

// MarshalYAML implements yaml.Marshaler
func (v Value) MarshalYAML() (any, error) {
	return yamlNode(&v, 0, activeConfig().MaxNestingDepth)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := fromYAMLNode(node, 0, activeConfig().MaxNestingDepth)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func yamlNode(v *Value, depth, limit int) (*yaml.Node, error) {
	if depth > limit {
		return nil, newDepthLimitError("to_yaml", depth, limit)
	}

	switch v.Kind() {
	case KindBool:
		return scalarNode("!!bool", strconv.FormatBool(v.num != 0)), nil
	case KindInt64:
		return scalarNode("!!int", strconv.FormatInt(int64(v.num), 10)), nil
	case KindUint64:
		return scalarNode("!!int", strconv.FormatUint(v.num, 10)), nil
	case KindDouble:
		return scalarNode("!!float", yamlFloat(math.Float64frombits(v.num))), nil
	case KindString:
		return scalarNode("!!str", v.str), nil
	case KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := range v.arr {
			child, err := yamlNode(&v.arr[i], depth+1, limit)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i := range v.obj {
			child, err := yamlNode(&v.obj[i].Value, depth+1, limit)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", v.obj[i].Key), child)
		}
		return node, nil
	default:
		return scalarNode("!!null", "null"), nil
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func fromYAMLNode(node *yaml.Node, depth, limit int) (Value, error) {
	if depth > limit {
		return Value{}, newDepthLimitError("parse_yaml", depth, limit)
	}
	if node == nil {
		return Null(), nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(node.Content[0], depth, limit)
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias, depth+1, limit)
	case yaml.SequenceNode:
		arr := NewArray()
		for _, item := range node.Content {
			child, err := fromYAMLNode(item, depth+1, limit)
			if err != nil {
				return Value{}, err
			}
			arr.Push(child)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return Value{}, newOperationError("parse_yaml",
					fmt.Sprintf("line %d: mapping key must be a scalar", key.Line), ErrInvalidYAML)
			}
			child, err := fromYAMLNode(node.Content[i+1], depth+1, limit)
			if err != nil {
				return Value{}, err
			}
			obj.Put(key.Value, child)
		}
		return obj, nil
	case yaml.ScalarNode:
		return yamlScalar(node)
	}
	return Value{}, newOperationError("parse_yaml", fmt.Sprintf("line %d: unsupported node", node.Line), ErrInvalidYAML)
}

func yamlScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, newOperationError("parse_yaml", err.Error(), ErrInvalidYAML)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int(i), nil
		}
		var u uint64
		if err := node.Decode(&u); err == nil {
			return Uint(u), nil
		}
		return Value{}, newOperationError("parse_yaml",
			fmt.Sprintf("line %d: integer %q out of range", node.Line, node.Value), ErrInvalidYAML)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, newOperationError("parse_yaml", err.Error(), ErrInvalidYAML)
		}
		return Float(f), nil
	default:
		return String(node.Value), nil
	}
}
