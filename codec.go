package jsonvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Parse decodes a single JSON document into a Value. Numbers that are
// integers become Int64 (or UInt64 above the int64 range), others Double.
// Object member order is preserved; a repeated key overwrites the first
// occurrence in place.
func Parse(data []byte) (Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader decodes a single JSON document from r
func ParseReader(r io.Reader) (Value, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	d := &decoder{dec: dec, limit: activeConfig().MaxNestingDepth}

	v, err := d.value(0)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, newOperationError("parse", "unexpected data after top-level value", ErrInvalidJSON)
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(data string) Value {
	v, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return v
}

// decoder populates a Value tree from the go-json token stream using only
// the raw construction API (Put, Push)
type decoder struct {
	dec   *gojson.Decoder
	limit int
}

func (d *decoder) token() (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newOperationError("parse", "unexpected end of input", ErrInvalidJSON)
		}
		return nil, newOperationError("parse", err.Error(), ErrInvalidJSON)
	}
	return tok, nil
}

func (d *decoder) value(depth int) (Value, error) {
	tok, err := d.token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return d.object(depth + 1)
		case '[':
			return d.array(depth + 1)
		}
		return Value{}, newOperationError("parse", fmt.Sprintf("unexpected delimiter %q", rune(t)), ErrInvalidJSON)
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case gojson.Number:
		return numberValue(string(t))
	case float64:
		return Float(t), nil
	case nil:
		return Null(), nil
	}
	return Value{}, newOperationError("parse", fmt.Sprintf("unexpected token %T", tok), ErrInvalidJSON)
}

func (d *decoder) object(depth int) (Value, error) {
	if depth > d.limit {
		return Value{}, newDepthLimitError("parse", depth, d.limit)
	}
	obj := NewObject()
	for d.dec.More() {
		tok, err := d.token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, newOperationError("parse", "object key is not a string", ErrInvalidJSON)
		}
		child, err := d.value(depth)
		if err != nil {
			return Value{}, err
		}
		obj.Put(key, child)
	}
	if _, err := d.token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func (d *decoder) array(depth int) (Value, error) {
	if depth > d.limit {
		return Value{}, newDepthLimitError("parse", depth, d.limit)
	}
	arr := NewArray()
	for d.dec.More() {
		child, err := d.value(depth)
		if err != nil {
			return Value{}, err
		}
		arr.Push(child)
	}
	if _, err := d.token(); err != nil {
		return Value{}, err
	}
	return arr, nil
}

// MarshalJSON encodes v as compact JSON, keeping object members in order.
// NaN and infinite doubles cannot be represented and fail.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, &v, 0, activeConfig().MaxNestingDepth); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces v with the decoded document
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func writeJSON(buf *bytes.Buffer, v *Value, depth, limit int) error {
	if depth > limit {
		return newDepthLimitError("marshal", depth, limit)
	}

	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.num != 0))
	case KindInt64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v.num), 10))
	case KindUint64:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), v.num, 10))
	case KindDouble:
		f := math.Float64frombits(v.num)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return newOperationError("marshal", fmt.Sprintf("unsupported double %v", f), ErrInvalidJSON)
		}
		start := buf.Len()
		if err := writeScalar(buf, f); err != nil {
			return err
		}
		// keep integral doubles distinguishable from Int64 when parsed back
		if !bytes.ContainsAny(buf.Bytes()[start:], ".eE") {
			buf.WriteString(".0")
		}
	case KindString:
		return writeScalar(buf, v.str)
	case KindArray:
		buf.WriteByte('[')
		for i := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, &v.arr[i], depth+1, limit); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i := range v.obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeScalar(buf, v.obj[i].Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, &v.obj[i].Value, depth+1, limit); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// writeScalar delegates string escaping and float formatting to go-json
func writeScalar(buf *bytes.Buffer, x any) error {
	data, err := gojson.Marshal(x)
	if err != nil {
		return newOperationError("marshal", err.Error(), ErrInvalidJSON)
	}
	buf.Write(data)
	return nil
}
