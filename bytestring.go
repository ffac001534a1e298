// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist

import (
	"hash/maphash"
	"strings"

	"go4.org/mem"
)

// A ByteString is an immutable UTF-8 byte sequence with a cached flag
// reporting whether all of its bytes are ASCII (≤ 0x7F).
//
// Equality of two ByteStrings is byte-wise equality of their UTF-8 form.
// Ordering is lexicographic over UTF-8 bytes, with shorter strings ordered
// before their prefixed extensions.
type ByteString struct {
	data    string
	isASCII bool
}

// NewByteString constructs a ByteString from s, computing and caching its
// all-ASCII flag.
func NewByteString(s string) ByteString {
	return ByteString{data: s, isASCII: isASCIIString(s)}
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// String returns the string value of b.
func (b ByteString) String() string { return b.data }

// Bytes returns the UTF-8 bytes of b. The caller must not modify the
// returned slice.
func (b ByteString) Bytes() []byte { return []byte(b.data) }

// Len reports the length of b in bytes.
func (b ByteString) Len() int { return len(b.data) }

// IsASCII reports whether every byte of b is ≤ 0x7F.
func (b ByteString) IsASCII() bool { return b.isASCII }

// Equal reports whether b and other have identical UTF-8 bytes.
func (b ByteString) Equal(other ByteString) bool {
	return mem.S(b.data).Equal(mem.S(other.data))
}

// Compare returns -1, 0, or 1 as b is less than, equal to, or greater than
// other, ordering lexicographically over UTF-8 bytes (a shorter string
// sorts before any of its prefix extensions).
func (b ByteString) Compare(other ByteString) int {
	return strings.Compare(b.data, other.data)
}

// Less reports whether b sorts strictly before other.
func (b ByteString) Less(other ByteString) bool { return b.Compare(other) < 0 }

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of b's bytes, consistent with Equal: two ByteStrings
// that are Equal always produce the same Hash.
func (b ByteString) Hash() uint64 {
	return maphash.String(hashSeed, b.data)
}
