// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist_test

import (
	"testing"

	"github.com/creachadair/plist"
)

func TestByteString_IsASCII(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"hello", true},
		{"hello\x7f", true},
		{"héllo", false},
		{"\x80", false},
	}
	for _, test := range tests {
		got := plist.NewByteString(test.input).IsASCII()
		if got != test.want {
			t.Errorf("NewByteString(%q).IsASCII() = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestByteString_Equal(t *testing.T) {
	a := plist.NewByteString("abc")
	b := plist.NewByteString("abc")
	c := plist.NewByteString("abd")
	if !a.Equal(b) {
		t.Errorf("%v.Equal(%v) = false, want true", a, b)
	}
	if a.Equal(c) {
		t.Errorf("%v.Equal(%v) = true, want false", a, c)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("hash mismatch for equal ByteStrings %v, %v", a, b)
	}
}

func TestByteString_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"ab", "a", 1},
		{"a", "ab", -1},
	}
	for _, test := range tests {
		got := sign(plist.NewByteString(test.a).Compare(plist.NewByteString(test.b)))
		if got != test.want {
			t.Errorf("Compare(%q, %q) sign = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
