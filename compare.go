package jsonvalue

import (
	"cmp"
	"math"
	"strings"
)

// Compare orders two values: first by kind rank
// (null < bool < int64 < uint64 < double < string < array < object), then by
// payload. Doubles use IEEE relational operators, so NaN compares equal to
// every double. Arrays and objects compare element by element in storage
// order (objects key first, then value) and then by length.
func Compare(a, b *Value) int {
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return cmp.Compare(ka, kb)
	}

	switch ka {
	case KindBool:
		return cmp.Compare(a.num, b.num)
	case KindInt64:
		return cmp.Compare(int64(a.num), int64(b.num))
	case KindUint64:
		return cmp.Compare(a.num, b.num)
	case KindDouble:
		fa, fb := math.Float64frombits(a.num), math.Float64frombits(b.num)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case KindString:
		return strings.Compare(a.str, b.str)
	case KindArray:
		n := min(len(a.arr), len(b.arr))
		for i := 0; i < n; i++ {
			if c := Compare(&a.arr[i], &b.arr[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.arr), len(b.arr))
	case KindObject:
		n := min(len(a.obj), len(b.obj))
		for i := 0; i < n; i++ {
			if c := strings.Compare(a.obj[i].Key, b.obj[i].Key); c != 0 {
				return c
			}
			if c := Compare(&a.obj[i].Value, &b.obj[i].Value); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.obj), len(b.obj))
	}
	return 0
}

// Equal reports whether Compare(v, other) == 0
func (v *Value) Equal(other *Value) bool {
	return Compare(v, other) == 0
}

// Less reports whether v orders before other
func (v *Value) Less(other *Value) bool {
	return Compare(v, other) < 0
}

// CompareValues adapts Compare to slices.SortFunc and friends
func CompareValues(a, b Value) int {
	return Compare(&a, &b)
}
