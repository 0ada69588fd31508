package jsonvalue

// Path-based accessors. Every path may be a JSON Pointer ("/a/0/b") or
// dot/bracket notation ("a[0].b", "a.0.b"). Missing paths, kind mismatches
// and malformed paths never produce errors: reads report absence, predicates
// report false and writes become no-ops that leave the document unchanged.

// Get resolves path and extracts its value as T. Int64 narrows to smaller
// signed widths and UInt64 to smaller unsigned widths with range checks,
// non-negative Int64 reads as unsigned, both integer kinds widen to floats,
// and Double truncates to signed integers. Anything else is absent.
func Get[T Scalar](doc *Value, path string) (T, bool) {
	node := newResolver("get", path).resolve(doc, modeRead)
	if node == nil {
		var zero T
		return zero, false
	}
	return extract[T](node)
}

// GetInto assigns the value at path to out on success and leaves out
// untouched otherwise
func GetInto[T Scalar](doc *Value, path string, out *T) bool {
	value, ok := Get[T](doc, path)
	if ok && out != nil {
		*out = value
	}
	return ok
}

// GetOr returns the value at path, or def when it is absent
func GetOr[T Scalar](doc *Value, path string, def T) T {
	if value, ok := Get[T](doc, path); ok {
		return value
	}
	return def
}

// Set stores x at path, creating missing intermediate objects and arrays.
// It returns false, leaving doc unchanged, when the path is malformed or
// would have to turn an existing scalar into a container.
func Set[T Scalar](doc *Value, path string, x T) bool {
	node := newResolver("set", path).resolve(doc, modeCreate)
	if node == nil {
		return false
	}
	*node = Of(x)
	return true
}

// Is reports whether path resolves to a value extractable as T
func Is[T Scalar](doc *Value, path string) bool {
	_, ok := Get[T](doc, path)
	return ok
}

// GetRef returns the node at path without creating anything, or nil. The
// pointer is valid until the owning container is next mutated.
func (v *Value) GetRef(path string) *Value {
	return newResolver("get_ref", path).resolve(v, modeRead)
}

// Vivify resolves path in create mode and returns the node, which is null if
// it was just created. Returns nil when the path cannot be created.
func (v *Value) Vivify(path string) *Value {
	return newResolver("vivify", path).resolve(v, modeCreate)
}

// Contains reports whether path resolves to any node, containers included
func (v *Value) Contains(path string) bool {
	return v.GetRef(path) != nil
}

// SetValue stores a deep copy of value at path
func (v *Value) SetValue(path string, value Value) bool {
	node := newResolver("set_value", path).resolve(v, modeCreate)
	if node == nil {
		return false
	}
	*node = value.Clone()
	return true
}

// SetNull stores null at path
func (v *Value) SetNull(path string) bool {
	node := newResolver("set_null", path).resolve(v, modeCreate)
	if node == nil {
		return false
	}
	*node = Value{}
	return true
}

// SetObject makes the node at path an empty object. An existing object is
// kept as is so it can be populated incrementally.
func (v *Value) SetObject(path string) bool {
	node := newResolver("set_object", path).resolve(v, modeCreate)
	if node == nil {
		return false
	}
	if node.kind != KindObject {
		node.becomeObject()
	}
	return true
}

// SetArray makes the node at path an empty array. An existing array is kept
// as is so it can be populated incrementally.
func (v *Value) SetArray(path string) bool {
	node := newResolver("set_array", path).resolve(v, modeCreate)
	if node == nil {
		return false
	}
	if node.kind != KindArray {
		node.becomeArray()
	}
	return true
}

// Erase removes the key or index named by the last step of path and returns
// the number of nodes removed (0 or 1)
func (v *Value) Erase(path string) int {
	return newResolver("erase", path).erase(v)
}

// IsNull reports whether path resolves to null
func (v *Value) IsNull(path string) bool {
	return v.GetRef(path).kindIs(KindNull)
}

// IsObject reports whether path resolves to an object
func (v *Value) IsObject(path string) bool {
	return v.GetRef(path).kindIs(KindObject)
}

// IsArray reports whether path resolves to an array
func (v *Value) IsArray(path string) bool {
	return v.GetRef(path).kindIs(KindArray)
}

// KindAt returns the kind at path and whether the path resolved
func (v *Value) KindAt(path string) (Kind, bool) {
	node := v.GetRef(path)
	if node == nil {
		return KindNull, false
	}
	return node.kind, true
}

// GetChar reads a string holding exactly one character as a rune
func (v *Value) GetChar(path string) (rune, bool) {
	node := v.GetRef(path)
	if node == nil {
		return 0, false
	}
	return toChar(node)
}

// GetString is shorthand for Get[string]
func (v *Value) GetString(path string) (string, bool) { return Get[string](v, path) }

// GetBool is shorthand for Get[bool]
func (v *Value) GetBool(path string) (bool, bool) { return Get[bool](v, path) }

// GetInt64 is shorthand for Get[int64]
func (v *Value) GetInt64(path string) (int64, bool) { return Get[int64](v, path) }

// GetUint64 is shorthand for Get[uint64]
func (v *Value) GetUint64(path string) (uint64, bool) { return Get[uint64](v, path) }

// GetFloat64 is shorthand for Get[float64]
func (v *Value) GetFloat64(path string) (float64, bool) { return Get[float64](v, path) }

func (v *Value) kindIs(kind Kind) bool {
	return v != nil && v.kind == kind
}
