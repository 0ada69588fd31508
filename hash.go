package jsonvalue

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// canonicalNaN is hashed for every NaN payload
const canonicalNaN = 0x7ff8000000000001

// Hash returns a content hash of v: values with the same kinds and payloads
// hash equal however they were built. Subtrees at or below the configured
// MaxHashDepth hash to HashSentinel.
func Hash(v *Value) uint64 {
	return HashWithLimit(v, activeConfig().MaxHashDepth)
}

// HashWithLimit is Hash with an explicit depth cap. A cap of 0 returns
// HashSentinel for any value.
func HashWithLimit(v *Value, limit int) uint64 {
	h := &hasher{h: fnv.New64a(), limit: limit}
	return h.value(v, 0)
}

type hasher struct {
	h     hash.Hash64
	buf   [8]byte
	limit int
}

func (h *hasher) value(v *Value, depth int) uint64 {
	if depth >= h.limit {
		return HashSentinel
	}

	// children are hashed first, each with a fresh state
	var children []uint64
	switch v.Kind() {
	case KindArray:
		children = make([]uint64, len(v.arr))
		for i := range v.arr {
			children[i] = h.value(&v.arr[i], depth+1)
		}
	case KindObject:
		children = make([]uint64, len(v.obj))
		for i := range v.obj {
			children[i] = h.value(&v.obj[i].Value, depth+1)
		}
	}

	h.h.Reset()
	h.h.Write([]byte{byte(v.Kind())})

	switch v.Kind() {
	case KindBool, KindInt64, KindUint64:
		h.word(v.num)
	case KindDouble:
		f := math.Float64frombits(v.num)
		switch {
		case f == 0:
			h.word(0)
		case math.IsNaN(f):
			h.word(canonicalNaN)
		default:
			h.word(v.num)
		}
	case KindString:
		h.bytes(v.str)
	case KindArray:
		h.word(uint64(len(children)))
		for _, c := range children {
			h.word(c)
		}
	case KindObject:
		h.word(uint64(len(children)))
		for i, c := range children {
			h.bytes(v.obj[i].Key)
			h.word(c)
		}
	}
	return h.h.Sum64()
}

func (h *hasher) word(x uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], x)
	h.h.Write(h.buf[:])
}

func (h *hasher) bytes(s string) {
	h.word(uint64(len(s)))
	h.h.Write([]byte(s))
}

// Hash is shorthand for the package-level Hash
func (v *Value) Hash() uint64 {
	return Hash(v)
}
