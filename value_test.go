// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/plist"
)

func TestKey_IdentityIgnoresOptions(t *testing.T) {
	bare := plist.NewKey("name")
	quoted := plist.Key{Name: plist.NewByteString("name"), Options: plist.StringUnquoted}

	if !bare.Equal(quoted) {
		t.Errorf("bare.Equal(quoted) = false, want true")
	}
	if bare.Hash() != quoted.Hash() {
		t.Errorf("bare.Hash() != quoted.Hash()")
	}
}

func TestArray_At(t *testing.T) {
	a := plist.NewArray(plist.NewString("x"), plist.NewString("y"), plist.NewString("z"))

	if v, ok := a.At(0); !ok || v.(*plist.String).Text.String() != "x" {
		t.Errorf("At(0) = %v, %v", v, ok)
	}
	if v, ok := a.At(-1); !ok || v.(*plist.String).Text.String() != "z" {
		t.Errorf("At(-1) = %v, %v", v, ok)
	}
	if _, ok := a.At(3); ok {
		t.Errorf("At(3) should be out of bounds")
	}
	if _, ok := a.At(-4); ok {
		t.Errorf("At(-4) should be out of bounds")
	}
}

func TestDictionary_SetOrder(t *testing.T) {
	d := plist.NewDictionary()
	d.Set(plist.NewKey("a"), plist.NewString("1"))
	d.Set(plist.NewKey("b"), plist.NewString("2"))

	d.SetOrder([]plist.Key{plist.NewKey("b"), plist.NewKey("a")})
	if !d.HasOrder() {
		t.Errorf("HasOrder() = false after SetOrder")
	}
	got := d.Keys()
	if len(got) != 2 || got[0].String() != "b" || got[1].String() != "a" {
		t.Errorf("Keys() = %v, want [b a]", got)
	}

	mtest.MustPanic(t, func() {
		d.SetOrder([]plist.Key{plist.NewKey("a")})
	})
	mtest.MustPanic(t, func() {
		d.SetOrder([]plist.Key{plist.NewKey("a"), plist.NewKey("c")})
	})
	mtest.MustPanic(t, func() {
		d.SetOrder([]plist.Key{plist.NewKey("a"), plist.NewKey("a")})
	})
}

func TestDictionary_ClearOrder(t *testing.T) {
	d := plist.NewDictionary()
	d.Set(plist.NewKey("b"), plist.NewString("2"))
	d.Set(plist.NewKey("a"), plist.NewString("1"))
	d.SetOrder([]plist.Key{plist.NewKey("b"), plist.NewKey("a")})

	d.ClearOrder()
	if d.HasOrder() {
		t.Errorf("HasOrder() = true after ClearOrder")
	}
	got := d.Keys()
	if len(got) != 2 || got[0].String() != "a" || got[1].String() != "b" {
		t.Errorf("Keys() after ClearOrder = %v, want sorted [a b]", got)
	}
}

func TestIsAscending(t *testing.T) {
	asc := []plist.Key{plist.NewKey("a"), plist.NewKey("b"), plist.NewKey("c")}
	if !plist.IsAscending(asc) {
		t.Errorf("IsAscending(%v) = false, want true", asc)
	}
	dup := []plist.Key{plist.NewKey("a"), plist.NewKey("a")}
	if plist.IsAscending(dup) {
		t.Errorf("IsAscending(%v) = true, want false (duplicate)", dup)
	}
	desc := []plist.Key{plist.NewKey("b"), plist.NewKey("a")}
	if plist.IsAscending(desc) {
		t.Errorf("IsAscending(%v) = true, want false", desc)
	}
}
