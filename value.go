// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist

import (
	"golang.org/x/exp/slices"
)

// Kind identifies the concrete variant of a Value.
type Kind int

const (
	// KindInvalid is the zero Kind; no well-formed Value has this kind.
	KindInvalid Kind = iota
	KindString
	KindData
	KindArray
	KindDictionary
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindData:
		return "data"
	case KindArray:
		return "array"
	case KindDictionary:
		return "dictionary"
	default:
		return "invalid"
	}
}

// A Value is an arbitrary OpenStep property-list value: a string, a blob of
// data, an array, or a dictionary. The concrete type is one of *String,
// *Data, *Array, or *Dictionary.
type Value interface {
	// Kind reports the concrete variant of the value.
	Kind() Kind

	isValue()
}

// A String is a textual value together with the formatting options under
// which it was (or should be) written.
type String struct {
	Text    ByteString
	Options StringOptions
}

// NewString constructs a String value from s with no formatting options.
func NewString(s string) *String { return &String{Text: NewByteString(s)} }

func (*String) Kind() Kind { return KindString }
func (*String) isValue()   {}

// A Data is an opaque sequence of raw bytes. Decoded data values contain
// only the raw bytes; there is no associated encoding.
type Data struct {
	Bytes []byte
}

// NewData constructs a Data value that copies b.
func NewData(b []byte) *Data { return &Data{Bytes: append([]byte(nil), b...)} }

func (*Data) Kind() Kind { return KindData }
func (*Data) isValue()   {}

// An Array is an ordered sequence of values together with the formatting
// options under which it was (or should be) written.
type Array struct {
	Elements []Value
	Options  ArrayOptions
}

// NewArray constructs an Array value from the given elements.
func NewArray(elements ...Value) *Array { return &Array{Elements: elements} }

func (*Array) Kind() Kind { return KindArray }
func (*Array) isValue()   {}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Elements) }

// At returns the element of a at index i, bounds-checked. A negative index
// counts backward from the end of the array (-1 is the last element).
// It reports false if i is out of bounds.
func (a *Array) At(i int) (Value, bool) {
	n := len(a.Elements)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, false
	}
	return a.Elements[i], true
}

// A dictEntry pairs a Key (carrying formatting options) with its Value.
type dictEntry struct {
	key   Key
	value Value
}

// A Dictionary is a mapping from Key to Value. It optionally carries an
// explicit key order, present only when the order the keys were originally
// written in was not already ascending by ByteString order; absent order
// means "emit keys sorted ascending".
type Dictionary struct {
	entries map[string]*dictEntry
	order   []Key // nil: emit sorted; otherwise the explicit order, len == len(entries)

	Options DictionaryOptions
}

// NewDictionary constructs an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]*dictEntry)}
}

func (*Dictionary) Kind() Kind { return KindDictionary }
func (*Dictionary) isValue()   {}

// Len reports the number of members of d.
func (d *Dictionary) Len() int { return len(d.entries) }

// Get returns the value associated with name, if any.
func (d *Dictionary) Get(name string) (Value, bool) {
	e, ok := d.entries[name]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Lookup is equivalent to Get, but additionally reports the Key (including
// its formatting options) under which the value was stored.
func (d *Dictionary) Lookup(name string) (Key, Value, bool) {
	e, ok := d.entries[name]
	if !ok {
		return Key{}, nil, false
	}
	return e.key, e.value, true
}

// Set inserts or overwrites the member for key, appending to the explicit
// order only if one is already being tracked; callers that build a
// Dictionary programmatically and want a specific emission order should
// call SetOrder once all members are present.
func (d *Dictionary) Set(key Key, value Value) {
	name := key.Name.String()
	if _, exists := d.entries[name]; !exists && d.order != nil {
		d.order = append(d.order, key)
	}
	d.entries[name] = &dictEntry{key: key, value: value}
}

// Delete removes the member named name, if present.
func (d *Dictionary) Delete(name string) {
	if _, ok := d.entries[name]; !ok {
		return
	}
	delete(d.entries, name)
	if d.order != nil {
		for i, k := range d.order {
			if k.Name.String() == name {
				d.order = append(d.order[:i:i], d.order[i+1:]...)
				break
			}
		}
	}
}

// HasOrder reports whether d carries an explicit (non-ascending) key order.
func (d *Dictionary) HasOrder() bool { return d.order != nil }

// SetOrder installs an explicit key order. It panics if order does not
// name exactly the keys currently in d, matching the encoder's defensive
// assertion in spec.md §4.8.
func (d *Dictionary) SetOrder(order []Key) {
	if len(order) != len(d.entries) {
		panic("plist: SetOrder: order does not match key set (length mismatch)")
	}
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		name := k.Name.String()
		if _, ok := d.entries[name]; !ok {
			panic("plist: SetOrder: order names a key not present in the dictionary: " + name)
		}
		if seen[name] {
			panic("plist: SetOrder: order repeats key: " + name)
		}
		seen[name] = true
	}
	d.order = append([]Key(nil), order...)
}

// ClearOrder discards any explicit key order, so that Keys reports the
// sorted-ascending order on subsequent calls.
func (d *Dictionary) ClearOrder() { d.order = nil }

// Keys returns the keys of d: the explicit order if one is recorded,
// otherwise the keys sorted ascending by ByteString order.
func (d *Dictionary) Keys() []Key {
	if d.order != nil {
		out := make([]Key, len(d.order))
		copy(out, d.order)
		return out
	}
	out := make([]Key, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.key)
	}
	slices.SortFunc(out, func(a, b Key) int { return a.Compare(b) })
	return out
}

// IsAscending reports whether keys is already in strictly ascending
// ByteString order, with no duplicates.
func IsAscending(keys []Key) bool {
	if !slices.IsSortedFunc(keys, func(a, b Key) int { return a.Compare(b) }) {
		return false
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1].Compare(keys[i]) == 0 {
			return false
		}
	}
	return true
}

// AsString reports whether v is a *String, returning it if so.
func AsString(v Value) (*String, bool) { s, ok := v.(*String); return s, ok }

// AsData reports whether v is a *Data, returning it if so.
func AsData(v Value) (*Data, bool) { d, ok := v.(*Data); return d, ok }

// AsArray reports whether v is an *Array, returning it if so.
func AsArray(v Value) (*Array, bool) { a, ok := v.(*Array); return a, ok }

// AsDictionary reports whether v is a *Dictionary, returning it if so.
func AsDictionary(v Value) (*Dictionary, bool) { d, ok := v.(*Dictionary); return d, ok }
