// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist

import (
	"bytes"
	"encoding/binary"
	"hash/maphash"
)

// A PlainValue is a view over a Value whose equality and hash ignore all
// formatting options and dictionary key order (spec.md §4.9), grounded on
// the teacher's jwcc.Value.Undecorate pattern of stripping comment/layout
// metadata to compare only the underlying content.
type PlainValue struct {
	v Value
}

// Plain wraps v in a PlainValue.
func Plain(v Value) PlainValue { return PlainValue{v: v} }

// Value returns the wrapped Value.
func (p PlainValue) Value() Value { return p.v }

// Equal reports whether p and other describe the same tree, ignoring
// formatting options and dictionary order. Nil values are equal only to
// each other.
func (p PlainValue) Equal(other PlainValue) bool { return plainEqual(p.v, other.v) }

func plainEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *String:
		return av.Text.Equal(b.(*String).Text)
	case *Data:
		return bytes.Equal(av.Bytes, b.(*Data).Bytes)
	case *Array:
		bv := b.(*Array)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !plainEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dictionary:
		bv := b.(*Dictionary)
		if av.Len() != bv.Len() {
			return false
		}
		for name, av1 := range av.entries {
			bv1, ok := bv.entries[name]
			if !ok || !plainEqual(av1.value, bv1.value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash returns a hash of p that agrees with Equal: it depends only on the
// variant and content of the tree, never on formatting options or
// dictionary order.
func (p PlainValue) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writePlainHash(&h, p.v)
	return h.Sum64()
}

func writePlainHash(h *maphash.Hash, v Value) {
	switch t := v.(type) {
	case nil:
		h.WriteByte(byte(KindInvalid))
	case *String:
		h.WriteByte(byte(KindString))
		h.WriteString(t.Text.String())
	case *Data:
		h.WriteByte(byte(KindData))
		h.Write(t.Bytes)
	case *Array:
		h.WriteByte(byte(KindArray))
		for _, e := range t.Elements {
			writePlainHash(h, e)
		}
	case *Dictionary:
		h.WriteByte(byte(KindDictionary))
		// Dictionaries compare as unordered mappings, so the digest must be
		// insensitive to iteration order: combine per-member hashes with a
		// commutative operator (sum) rather than concatenating them.
		var acc uint64
		for name, e := range t.entries {
			var mh maphash.Hash
			mh.SetSeed(hashSeed)
			mh.WriteString(name)
			writePlainHash(&mh, e.value)
			acc += mh.Sum64()
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], acc)
		h.Write(buf[:])
	}
}
