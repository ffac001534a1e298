// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist

// A Key is the key of a dictionary member: a string together with the
// formatting options under which it was (or should be) written.
//
// Equality and hashing depend only on the string; Options is carried along
// for faithful re-emission but is never mixed into the digest, so a Key
// constructed from a bare string compares equal to one whose Options record
// that it was parsed from a quoted literal.
type Key struct {
	Name    ByteString
	Options StringOptions
}

// NewKey constructs a Key from s with no formatting options set.
func NewKey(s string) Key { return Key{Name: NewByteString(s)} }

// Equal reports whether k and other have the same Name, ignoring Options.
func (k Key) Equal(other Key) bool { return k.Name.Equal(other.Name) }

// Compare orders k and other by Name, ignoring Options.
func (k Key) Compare(other Key) int { return k.Name.Compare(other.Name) }

// Hash returns a hash of k that depends only on Name.
func (k Key) Hash() uint64 { return k.Name.Hash() }

// String returns the key's string value.
func (k Key) String() string { return k.Name.String() }
