// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist_test

import (
	"testing"

	"github.com/creachadair/plist"
)

func TestPlainValue_ignoresOptions(t *testing.T) {
	a := &plist.String{Text: plist.NewByteString("hi"), Options: plist.StringUnquoted}
	b := &plist.String{Text: plist.NewByteString("hi"), Options: plist.StringEscapedLineFeedsNamed}

	if !plist.Plain(a).Equal(plist.Plain(b)) {
		t.Errorf("values with the same text but different options should be plain-equal")
	}
	if plist.Plain(a).Hash() != plist.Plain(b).Hash() {
		t.Errorf("plain hashes should agree for plain-equal values")
	}
}

func TestPlainValue_ignoresDictionaryOrder(t *testing.T) {
	d1 := plist.NewDictionary()
	d1.Set(plist.NewKey("a"), plist.NewString("1"))
	d1.Set(plist.NewKey("b"), plist.NewString("2"))

	d2 := plist.NewDictionary()
	d2.Set(plist.NewKey("b"), plist.NewString("2"))
	d2.Set(plist.NewKey("a"), plist.NewString("1"))
	d2.SetOrder([]plist.Key{plist.NewKey("b"), plist.NewKey("a")})

	if !plist.Plain(d1).Equal(plist.Plain(d2)) {
		t.Errorf("dictionaries differing only in explicit order should be plain-equal")
	}
	if plist.Plain(d1).Hash() != plist.Plain(d2).Hash() {
		t.Errorf("plain hashes should agree regardless of dictionary order")
	}
}

func TestPlainValue_structuralDifference(t *testing.T) {
	a := plist.NewArray(plist.NewString("x"), plist.NewString("y"))
	b := plist.NewArray(plist.NewString("x"), plist.NewString("z"))
	if plist.Plain(a).Equal(plist.Plain(b)) {
		t.Errorf("arrays with different elements must not be plain-equal")
	}
}
