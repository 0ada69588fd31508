package jsonvalue

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestValueConstruction(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("ZeroValueIsNull", func(t *testing.T) {
		var v Value
		helper.AssertEqual(KindNull, v.Kind())
		helper.AssertEqual(KindNull, (*Value)(nil).Kind())
	})

	t.Run("Scalars", func(t *testing.T) {
		b := Bool(true)
		got, ok := b.AsBool()
		helper.AssertTrue(ok && got)

		i := Int(-42)
		n, ok := i.AsInt64()
		helper.AssertTrue(ok && n == -42)

		u := Uint(math.MaxUint64)
		un, ok := u.AsUint64()
		helper.AssertTrue(ok && un == math.MaxUint64)

		f := Float(2.5)
		fv, ok := f.AsFloat64()
		helper.AssertTrue(ok && fv == 2.5)

		s := String("x")
		sv, ok := s.AsString()
		helper.AssertTrue(ok && sv == "x")

		_, ok = s.AsInt64()
		helper.AssertFalse(ok, "string must not read as int64")
	})

	t.Run("OfNormalizesWidths", func(t *testing.T) {
		tests := []struct {
			value Value
			kind  Kind
		}{
			{Of(int8(-1)), KindInt64},
			{Of(int16(2)), KindInt64},
			{Of(int32(3)), KindInt64},
			{Of(4), KindInt64},
			{Of(uint8(5)), KindUint64},
			{Of(uint16(6)), KindUint64},
			{Of(uint32(7)), KindUint64},
			{Of(uint(8)), KindUint64},
			{Of(float32(1.5)), KindDouble},
			{Of(2.5), KindDouble},
			{Of("c"), KindString},
			{Of(true), KindBool},
		}
		for _, tt := range tests {
			helper.AssertEqual(tt.kind, tt.value.Kind(), "kind of %s", tt.value)
		}
	})

	t.Run("KindNames", func(t *testing.T) {
		helper.AssertEqual("uint64", KindUint64.String())
		helper.AssertEqual("object", KindObject.String())
		helper.AssertEqual("unknown", Kind(200).String())
	})
}

func TestObjectMembers(t *testing.T) {
	helper := NewTestHelper(t)

	t.Run("PutUpsertsInPlace", func(t *testing.T) {
		obj := NewObject()
		obj.Put("a", Int(1))
		obj.Put("b", Int(2))
		obj.Put("a", Int(3))

		helper.AssertEqual(2, obj.Len())
		helper.AssertEqual([]string{"a", "b"}, slices.Collect(obj.Keys()))
		helper.AssertValueEqual(Int(3), obj.Find("a"))
	})

	t.Run("NewObjectCollapsesRepeatedKeys", func(t *testing.T) {
		obj := NewObject(Member{"k", Int(1)}, Member{"k", Int(2)})
		helper.AssertEqual(1, obj.Len())
		helper.AssertValueEqual(Int(2), obj.Find("k"))
	})

	t.Run("AppendMemberKeepsDuplicates", func(t *testing.T) {
		obj := NewObject()
		obj.AppendMember("k", Int(1))
		obj.AppendMember("k", Int(2))
		helper.AssertEqual(2, obj.Len())
		// lookup is first match
		helper.AssertValueEqual(Int(1), obj.Find("k"))
	})

	t.Run("MemberInsertsNull", func(t *testing.T) {
		var v Value
		slot := v.Member("x")
		helper.AssertTrue(slot != nil)
		helper.AssertEqual(KindObject, v.Kind())
		helper.AssertEqual(KindNull, slot.Kind())
		*slot = String("y")
		helper.AssertValueEqual(String("y"), v.Find("x"))
	})

	t.Run("ScalarsRejectStructuredWrites", func(t *testing.T) {
		v := Int(5)
		helper.AssertFalse(v.Put("a", Null()))
		helper.AssertFalse(v.Push(Null()))
		helper.AssertTrue(v.Member("a") == nil)
		helper.AssertValueEqual(Int(5), &v)
	})

	t.Run("RemoveKey", func(t *testing.T) {
		obj := MustParse(`{"a":1,"b":2,"c":3}`)
		helper.AssertEqual(1, obj.RemoveKey("b"))
		helper.AssertEqual(0, obj.RemoveKey("b"))
		helper.AssertEqual([]string{"a", "c"}, slices.Collect(obj.Keys()))
		// the vacated tail slot no longer holds the old member
		backing := obj.Object()[:3]
		helper.AssertEqual(Member{}, backing[2])
	})
}

func TestArrayElements(t *testing.T) {
	helper := NewTestHelper(t)

	arr := NewArray(Int(1), String("two"))
	helper.AssertTrue(arr.Push(Null()))
	helper.AssertEqual(3, arr.Len())

	t.Run("At", func(t *testing.T) {
		elem, err := arr.At(1)
		helper.AssertNoError(err)
		helper.AssertValueEqual(String("two"), elem)

		_, err = arr.At(3)
		helper.AssertErrorIs(err, ErrIndexOutOfRange)
		_, err = arr.At(-1)
		helper.AssertErrorIs(err, ErrIndexOutOfRange)

		s := String("x")
		_, err = s.At(0)
		helper.AssertErrorIs(err, ErrNotContainer)

		var verr *ValueError
		helper.AssertTrue(errors.As(err, &verr))
		helper.AssertEqual("at", verr.Op)
	})

	t.Run("AtKey", func(t *testing.T) {
		obj := MustParse(`{"a":1}`)
		_, err := obj.AtKey("missing")
		helper.AssertErrorIs(err, ErrKeyNotFound)
		_, err = arr.AtKey("a")
		helper.AssertErrorIs(err, ErrNotContainer)
	})

	t.Run("Index", func(t *testing.T) {
		helper.AssertValueEqual(Int(1), arr.Index(0))
		helper.AssertTrue(arr.Index(9) == nil)
	})

	t.Run("RemoveIndex", func(t *testing.T) {
		c := arr.Clone()
		helper.AssertEqual(1, c.RemoveIndex(0))
		helper.AssertEqual(0, c.RemoveIndex(5))
		helper.AssertValueEqual(String("two"), c.Index(0))

		nums := NewArray(Int(1), Int(2), Int(3))
		backing := nums.Array()
		helper.AssertEqual(1, nums.RemoveIndex(1))
		helper.AssertValueEqual(MustParse(`[1,3]`), &nums)
		// the vacated tail slot no longer holds the old element
		helper.AssertEqual(KindNull, backing[2].Kind())
	})
}

func TestIteration(t *testing.T) {
	helper := NewTestHelper(t)
	doc := MustParse(`{"a":1,"b":[10,20],"c":"x"}`)

	var keys []string
	for key, value := range doc.Members() {
		keys = append(keys, key+"="+value.Kind().String())
	}
	helper.AssertEqual([]string{"a=int64", "b=array", "c=string"}, keys)

	for value := range doc.Values() {
		if value.Kind() == KindInt64 {
			*value = Int(100)
		}
	}
	helper.AssertValueEqual(Int(100), doc.Find("a"))

	var sum int64
	for i, elem := range doc.Find("b").Elements() {
		n, _ := elem.AsInt64()
		sum += n * int64(i+1)
	}
	helper.AssertEqual(int64(50), sum)

	// early break stops iteration
	count := 0
	for range doc.Keys() {
		count++
		break
	}
	helper.AssertEqual(1, count)
}

func TestClone(t *testing.T) {
	helper := NewTestHelper(t)
	original := MustParse(`{"list":[1,{"deep":true}]}`)
	copied := original.Clone()

	Set(&copied, "list[1].deep", false)
	copied.Find("list").Push(Int(3))

	helper.AssertValueEqual(MustParse(`{"list":[1,{"deep":true}]}`), &original)
	helper.AssertEqual(3, copied.Find("list").Len())
}

type kindNamer struct{}

func (kindNamer) Null() (string, error)           { return "null", nil }
func (kindNamer) Bool(b bool) (string, error)     { return fmt.Sprint(b), nil }
func (kindNamer) Int64(i int64) (string, error)   { return fmt.Sprint(i), nil }
func (kindNamer) Uint64(u uint64) (string, error) { return fmt.Sprintf("%du", u), nil }
func (kindNamer) Double(f float64) (string, error) {
	return fmt.Sprintf("%gd", f), nil
}
func (kindNamer) String(s string) (string, error) { return "'" + s + "'", nil }

func (k kindNamer) Array(elems []Value) (string, error) {
	parts := make([]string, len(elems))
	for i := range elems {
		part, err := Accept[string](&elems[i], k)
		if err != nil {
			return "", err
		}
		parts[i] = part
	}
	return "[" + strings.Join(parts, " ") + "]", nil
}

func (k kindNamer) Object(members []Member) (string, error) {
	parts := make([]string, len(members))
	for i := range members {
		part, err := Accept[string](&members[i].Value, k)
		if err != nil {
			return "", err
		}
		parts[i] = members[i].Key + ":" + part
	}
	return "{" + strings.Join(parts, " ") + "}", nil
}

func TestAccept(t *testing.T) {
	helper := NewTestHelper(t)

	doc := NewObject(
		Member{"n", Null()},
		Member{"b", Bool(true)},
		Member{"i", Int(-1)},
		Member{"u", Uint(2)},
		Member{"d", Float(0.5)},
		Member{"s", String("x")},
		Member{"a", NewArray(Int(1), Int(2))},
	)
	got, err := Accept[string](&doc, kindNamer{})
	helper.AssertNoError(err)
	helper.AssertEqual("{n:null b:true i:-1 u:2u d:0.5d s:'x' a:[1 2]}", got)
}
