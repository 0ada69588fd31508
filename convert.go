package jsonvalue

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"unicode/utf8"
)

// Scalar lists the Go types the typed accessors store and extract
type Scalar interface {
	bool | string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

type signed interface {
	int | int8 | int16 | int32 | int64
}

type unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Of normalizes a Go scalar into one of the storage kinds: every signed width
// becomes Int64, every unsigned width UInt64 and both float widths Double.
func Of[T Scalar](x T) Value {
	switch x := any(x).(type) {
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	}
	return Value{}
}

// extract converts a node into T following the narrowing and widening rules
// of the typed accessors
func extract[T Scalar](v *Value) (T, bool) {
	var out T
	ok := false
	switch p := any(&out).(type) {
	case *bool:
		*p, ok = v.AsBool()
	case *string:
		*p, ok = v.AsString()
	case *int:
		*p, ok = toSigned[int](v)
	case *int8:
		*p, ok = toSigned[int8](v)
	case *int16:
		*p, ok = toSigned[int16](v)
	case *int32:
		*p, ok = toSigned[int32](v)
	case *int64:
		*p, ok = toSigned[int64](v)
	case *uint:
		*p, ok = toUnsigned[uint](v)
	case *uint8:
		*p, ok = toUnsigned[uint8](v)
	case *uint16:
		*p, ok = toUnsigned[uint16](v)
	case *uint32:
		*p, ok = toUnsigned[uint32](v)
	case *uint64:
		*p, ok = toUnsigned[uint64](v)
	case *float32:
		var f float64
		f, ok = toFloat(v)
		*p = float32(f)
	case *float64:
		*p, ok = toFloat(v)
	}
	if !ok {
		var zero T
		return zero, false
	}
	return out, true
}

// toSigned reads Int64 with range checking, or truncates a Double
func toSigned[I signed](v *Value) (I, bool) {
	var i int64
	switch v.Kind() {
	case KindInt64:
		i = int64(v.num)
	case KindDouble:
		f := math.Float64frombits(v.num)
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		i = int64(f)
	default:
		return 0, false
	}
	narrowed := I(i)
	if int64(narrowed) != i {
		return 0, false
	}
	return narrowed, true
}

// toUnsigned reads UInt64 with range checking, or a non-negative Int64
func toUnsigned[U unsigned](v *Value) (U, bool) {
	var u uint64
	switch v.Kind() {
	case KindUint64:
		u = v.num
	case KindInt64:
		i := int64(v.num)
		if i < 0 {
			return 0, false
		}
		u = uint64(i)
	default:
		return 0, false
	}
	narrowed := U(u)
	if uint64(narrowed) != u {
		return 0, false
	}
	return narrowed, true
}

// toFloat reads Double directly and widens both integer kinds
func toFloat(v *Value) (float64, bool) {
	switch v.Kind() {
	case KindDouble:
		return math.Float64frombits(v.num), true
	case KindInt64:
		return float64(int64(v.num)), true
	case KindUint64:
		return float64(v.num), true
	default:
		return 0, false
	}
}

// toChar reads a String holding exactly one character
func toChar(v *Value) (rune, bool) {
	s, ok := v.AsString()
	if !ok || s == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

// FromAny converts decoded Go data into a Value. It accepts nil, bool,
// string, every integer and float width, json.Number, Value, *Value, slices
// and string-keyed maps (members are ordered by key).
func FromAny(x any) (Value, error) {
	return fromAny(x, 0, activeConfig().MaxNestingDepth)
}

func fromAny(x any, depth, limit int) (Value, error) {
	if depth > limit {
		return Value{}, newDepthLimitError("from_any", depth, limit)
	}

	switch x := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x.Clone(), nil
	case *Value:
		return x.Clone(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Of(x), nil
	case int8:
		return Of(x), nil
	case int16:
		return Of(x), nil
	case int32:
		return Of(x), nil
	case int64:
		return Of(x), nil
	case uint:
		return Of(x), nil
	case uint8:
		return Of(x), nil
	case uint16:
		return Of(x), nil
	case uint32:
		return Of(x), nil
	case uint64:
		return Of(x), nil
	case float32:
		return Of(x), nil
	case float64:
		return Of(x), nil
	case json.Number:
		return numberValue(string(x))
	case []any:
		arr := Value{kind: KindArray, arr: make([]Value, 0, len(x))}
		for _, elem := range x {
			child, err := fromAny(elem, depth+1, limit)
			if err != nil {
				return Value{}, err
			}
			arr.arr = append(arr.arr, child)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for key := range x {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		obj := Value{kind: KindObject, obj: make([]Member, 0, len(x))}
		for _, key := range keys {
			child, err := fromAny(x[key], depth+1, limit)
			if err != nil {
				return Value{}, err
			}
			obj.obj = append(obj.obj, Member{Key: key, Value: child})
		}
		return obj, nil
	}

	return fromReflect(reflect.ValueOf(x), depth, limit)
}

// fromReflect handles typed slices and maps such as []string or map[string]int
func fromReflect(rv reflect.Value, depth, limit int) (Value, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return fromAny(elems, depth, limit)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null(), nil
		}
		members := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			members[iter.Key().String()] = iter.Value().Interface()
		}
		return fromAny(members, depth, limit)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromAny(rv.Elem().Interface(), depth, limit)
	}

	if !rv.IsValid() {
		return Null(), nil
	}
	return Value{}, newOperationError("from_any",
		fmt.Sprintf("cannot convert %s", rv.Type()), ErrUnsupportedType)
}

// numberValue classifies a JSON number literal: integers that fit int64 are
// Int64, larger non-negative integers UInt64, everything else Double
func numberValue(lit string) (Value, error) {
	isInt := lit != ""
	for i := 0; i < len(lit); i++ {
		switch lit[i] {
		case '.', 'e', 'E':
			isInt = false
		}
	}
	if isInt {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(i), nil
		}
		if lit[0] != '-' {
			if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
				return Uint(u), nil
			}
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, newOperationError("parse_number", "invalid number literal "+strconv.Quote(lit), ErrInvalidJSON)
	}
	return Float(f), nil
}

// Interface converts v into plain Go data: nil, bool, int64, uint64,
// float64, string, []any and map[string]any. Duplicate keys keep the first
// member.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.num != 0
	case KindInt64:
		return int64(v.num)
	case KindUint64:
		return v.num
	case KindDouble:
		return math.Float64frombits(v.num)
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i := range v.arr {
			out[i] = v.arr[i].Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for i := range v.obj {
			if _, dup := out[v.obj[i].Key]; dup {
				continue
			}
			out[v.obj[i].Key] = v.obj[i].Value.Interface()
		}
		return out
	default:
		return nil
	}
}
