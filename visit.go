package jsonvalue

import "math"

// A Visitor is used by Accept to process a Value according to its kind. The
// Array and Object methods receive the backing storage of the container and
// may recursively call Accept on the children.
type Visitor[T any] interface {
	Null() (T, error)
	Bool(bool) (T, error)
	Int64(int64) (T, error)
	Uint64(uint64) (T, error)
	Double(float64) (T, error)
	String(string) (T, error)
	Array([]Value) (T, error)
	Object([]Member) (T, error)
}

// Accept applies the visitor method matching the kind of v.
//
// Note that this is a function so that the visitor and return value can be a
// generic type. Go does not allow methods to have type parameters unrelated to
// the receiver type.
func Accept[T any](v *Value, visitor Visitor[T]) (T, error) {
	switch v.Kind() {
	case KindBool:
		return visitor.Bool(v.num != 0)
	case KindInt64:
		return visitor.Int64(int64(v.num))
	case KindUint64:
		return visitor.Uint64(v.num)
	case KindDouble:
		return visitor.Double(math.Float64frombits(v.num))
	case KindString:
		return visitor.String(v.str)
	case KindArray:
		return visitor.Array(v.arr)
	case KindObject:
		return visitor.Object(v.obj)
	default:
		return visitor.Null()
	}
}
