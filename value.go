package jsonvalue

import (
	"iter"
	"math"
	"slices"
	"strconv"
)

// Kind identifies the active alternative of a Value. The numeric order of the
// constants is the rank used by Compare.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindUint64
	KindDouble
	KindString
	KindArray
	KindObject
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// IsContainer reports whether the kind holds child values
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindObject
}

// Member is one key/value pair of an Object
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value: exactly one of null, bool, int64, uint64, double,
// string, array or object. The zero Value is null.
//
// Containers own their children by value. Pointers handed out by lookups
// (Find, Index, At, GetRef, iterators) borrow into the parent's storage and
// are only valid until the parent is next mutated; growing an array may move
// its elements.
type Value struct {
	kind Kind
	num  uint64 // bool, int64, uint64 and double payloads
	str  string
	arr  []Value
	obj  []Member
}

// Null returns the JSON null value
func Null() Value { return Value{} }

// Bool returns a bool value
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Int returns a signed integer value
func Int(i int64) Value { return Value{kind: KindInt64, num: uint64(i)} }

// Uint returns an unsigned integer value
func Uint(u uint64) Value { return Value{kind: KindUint64, num: u} }

// Float returns a double value
func Float(f float64) Value { return Value{kind: KindDouble, num: math.Float64bits(f)} }

// String returns a string value
func String(s string) Value { return Value{kind: KindString, str: s} }

// NewArray returns an array holding the given elements
func NewArray(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// NewObject returns an object holding the given members. Later members with
// a repeated key overwrite earlier ones.
func NewObject(members ...Member) Value {
	v := Value{kind: KindObject, obj: make([]Member, 0, len(members))}
	for _, m := range members {
		v.Put(m.Key, m.Value)
	}
	return v
}

// Kind returns the active kind
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsContainer reports whether v is an array or an object
func (v *Value) IsContainer() bool { return v.Kind().IsContainer() }

// AsBool returns the payload of a bool value
func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.num != 0, true
}

// AsInt64 returns the payload of an int64 value
func (v *Value) AsInt64() (int64, bool) {
	if v.Kind() != KindInt64 {
		return 0, false
	}
	return int64(v.num), true
}

// AsUint64 returns the payload of a uint64 value
func (v *Value) AsUint64() (uint64, bool) {
	if v.Kind() != KindUint64 {
		return 0, false
	}
	return v.num, true
}

// AsFloat64 returns the payload of a double value
func (v *Value) AsFloat64() (float64, bool) {
	if v.Kind() != KindDouble {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

// AsString returns the payload of a string value
func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.str, true
}

// Len returns the number of elements or members, 0 for scalars
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Array returns the backing elements of an array (nil otherwise)
func (v *Value) Array() []Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the backing members of an object (nil otherwise)
func (v *Value) Object() []Member {
	if v.Kind() != KindObject {
		return nil
	}
	return v.obj
}

// Find returns the first member named key, or nil
func (v *Value) Find(key string) *Value {
	if v.Kind() != KindObject {
		return nil
	}
	for i := range v.obj {
		if v.obj[i].Key == key {
			return &v.obj[i].Value
		}
	}
	return nil
}

// Index returns the element at i, or nil when v is not an array or i is out of range
func (v *Value) Index(i int) *Value {
	if v.Kind() != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return &v.arr[i]
}

// At returns the element at i, failing for non-arrays and out-of-range indices
func (v *Value) At(i int) (*Value, error) {
	if v.Kind() != KindArray {
		return nil, newPathError("at", strconv.Itoa(i), "receiver is "+v.Kind().String(), ErrNotContainer)
	}
	if i < 0 || i >= len(v.arr) {
		return nil, newPathError("at", strconv.Itoa(i),
			"index outside [0, "+strconv.Itoa(len(v.arr))+")", ErrIndexOutOfRange)
	}
	return &v.arr[i], nil
}

// AtKey returns the member named key, failing for non-objects and missing keys
func (v *Value) AtKey(key string) (*Value, error) {
	if v.Kind() != KindObject {
		return nil, newPathError("at_key", key, "receiver is "+v.Kind().String(), ErrNotContainer)
	}
	if child := v.Find(key); child != nil {
		return child, nil
	}
	return nil, newPathError("at_key", key, "no such member", ErrKeyNotFound)
}

// Member returns the member named key, inserting a null member when absent.
// A null receiver becomes an object first. Returns nil for other kinds.
func (v *Value) Member(key string) *Value {
	if v == nil {
		return nil
	}
	if v.kind == KindNull {
		v.becomeObject()
	}
	if v.kind != KindObject {
		return nil
	}
	if child := v.Find(key); child != nil {
		return child
	}
	v.obj = append(v.obj, Member{Key: key})
	return &v.obj[len(v.obj)-1].Value
}

// Put upserts a member: the first member named key is overwritten in place,
// otherwise a new member is appended. A null receiver becomes an object.
func (v *Value) Put(key string, value Value) bool {
	slot := v.Member(key)
	if slot == nil {
		return false
	}
	*slot = value
	return true
}

// AppendMember appends a member without checking for an existing key. It is
// meant for decoders reproducing their input verbatim and may create
// duplicate keys.
func (v *Value) AppendMember(key string, value Value) bool {
	if v == nil {
		return false
	}
	if v.kind == KindNull {
		v.becomeObject()
	}
	if v.kind != KindObject {
		return false
	}
	v.obj = append(v.obj, Member{Key: key, Value: value})
	return true
}

// Push appends an element. A null receiver becomes an array.
func (v *Value) Push(value Value) bool {
	if v == nil {
		return false
	}
	if v.kind == KindNull {
		v.becomeArray()
	}
	if v.kind != KindArray {
		return false
	}
	v.arr = append(v.arr, value)
	return true
}

// RemoveKey removes the first member named key and returns the count removed
func (v *Value) RemoveKey(key string) int {
	if v.Kind() != KindObject {
		return 0
	}
	for i := range v.obj {
		if v.obj[i].Key == key {
			v.obj = slices.Delete(v.obj, i, i+1)
			return 1
		}
	}
	return 0
}

// RemoveIndex removes the element at i and returns the count removed
func (v *Value) RemoveIndex(i int) int {
	if v.Kind() != KindArray || i < 0 || i >= len(v.arr) {
		return 0
	}
	v.arr = slices.Delete(v.arr, i, i+1)
	return 1
}

// Members iterates the key/value pairs of an object in insertion order
func (v *Value) Members() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.Kind() != KindObject {
			return
		}
		for i := range v.obj {
			if !yield(v.obj[i].Key, &v.obj[i].Value) {
				return
			}
		}
	}
}

// Keys iterates the keys of an object in insertion order
func (v *Value) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range v.Members() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values iterates the children of an array or object as mutable pointers
func (v *Value) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		switch v.Kind() {
		case KindArray:
			for i := range v.arr {
				if !yield(&v.arr[i]) {
					return
				}
			}
		case KindObject:
			for i := range v.obj {
				if !yield(&v.obj[i].Value) {
					return
				}
			}
		}
	}
}

// Elements iterates the elements of an array with their indices
func (v *Value) Elements() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if v.Kind() != KindArray {
			return
		}
		for i := range v.arr {
			if !yield(i, &v.arr[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy sharing no storage with v
func (v *Value) Clone() Value {
	if v == nil {
		return Value{}
	}
	out := Value{kind: v.kind, num: v.num, str: v.str}
	switch v.kind {
	case KindArray:
		out.arr = make([]Value, len(v.arr))
		for i := range v.arr {
			out.arr[i] = v.arr[i].Clone()
		}
	case KindObject:
		out.obj = make([]Member, len(v.obj))
		for i := range v.obj {
			out.obj[i] = Member{Key: v.obj[i].Key, Value: v.obj[i].Value.Clone()}
		}
	}
	return out
}

// String renders v as compact JSON
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(data)
}

func (v *Value) becomeArray() {
	*v = Value{kind: KindArray, arr: []Value{}}
}

func (v *Value) becomeObject() {
	*v = Value{kind: KindObject, obj: []Member{}}
}

// growTo extends an array so that index is valid, filling the gap with nulls
func (v *Value) growTo(index int) {
	for len(v.arr) <= index {
		v.arr = append(v.arr, Value{})
	}
}
