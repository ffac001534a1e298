// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/plist"
)

func TestEncode_stringQuoting(t *testing.T) {
	tests := []struct {
		name string
		s    *plist.String
		want string
	}{
		{"unquotedEligible", &plist.String{Text: plist.NewByteString("abc_123"), Options: plist.StringUnquoted}, "abc_123"},
		{"emptyNeverUnquoted", &plist.String{Text: plist.NewByteString(""), Options: plist.StringUnquoted}, `""`},
		{"needsQuoting", plist.NewString("has space"), `"has space"`},
		{"backslashAndQuote", plist.NewString(`a\b"c`), `"a\\b\"c"`},
		{"namedLineFeed", &plist.String{Text: plist.NewByteString("a\nb"), Options: plist.StringEscapedLineFeedsNamed}, `"a\nb"`},
		{"octalLineFeed", &plist.String{Text: plist.NewByteString("a\nb"), Options: plist.StringEscapedLineFeedsOctal}, `"a\012b"`},
		{"literalLineFeed", &plist.String{Text: plist.NewByteString("a\nb"), Options: plist.StringEscapedLineFeedsLiteral}, "\"a\\\nb\""},
		{"plainLineFeed", plist.NewString("a\nb"), "\"a\nb\""},
		{"octalTab", &plist.String{Text: plist.NewByteString("a\tb"), Options: plist.StringEscapedHorizontalTabsOctal}, `"a\011b"`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := plist.EncodeToString(test.s, plist.EncodingConfig{})
			if got != test.want {
				t.Errorf("EncodeToString() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestEncode_data(t *testing.T) {
	d := plist.NewData([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	got := plist.EncodeToString(d, plist.EncodingConfig{})
	want := "<deadbeef>"
	if got != want {
		t.Errorf("EncodeToString() = %q, want %q", got, want)
	}
}

func TestEncode_arrayBreakElementsOntoLines(t *testing.T) {
	a := &plist.Array{
		Elements: []plist.Value{plist.NewString("x"), plist.NewString("y")},
		Options:  plist.ArrayBreakElementsOntoLines,
	}
	got := plist.EncodeToString(a, plist.EncodingConfig{Indentation: plist.Spaces(2)})
	want := "(\n  \"x\",\n  \"y\"\n)"
	if got != want {
		t.Errorf("EncodeToString() = %q, want %q", got, want)
	}
}

func TestEncode_arrayCompact(t *testing.T) {
	a := plist.NewArray(plist.NewString("x"), plist.NewString("y"))
	got := plist.EncodeToString(a, plist.EncodingConfig{})
	want := `("x","y")`
	if got != want {
		t.Errorf("EncodeToString() = %q, want %q", got, want)
	}
}

func TestEncode_dictionarySortedByDefault(t *testing.T) {
	d := plist.NewDictionary()
	d.Set(plist.NewKey("b"), plist.NewString("2"))
	d.Set(plist.NewKey("a"), plist.NewString("1"))

	got := plist.EncodeToString(d, plist.EncodingConfig{})
	want := `{"a" = "1";"b" = "2";}`
	if got != want {
		t.Errorf("EncodeToString() = %q, want %q", got, want)
	}
}

func TestEncode_dictionaryExplicitOrder(t *testing.T) {
	d := plist.NewDictionary()
	d.Set(plist.NewKey("a"), plist.NewString("1"))
	d.Set(plist.NewKey("b"), plist.NewString("2"))
	d.SetOrder([]plist.Key{plist.NewKey("b"), plist.NewKey("a")})

	got := plist.EncodeToString(d, plist.EncodingConfig{})
	want := `{"b" = "2";"a" = "1";}`
	if got != want {
		t.Errorf("EncodeToString() = %q, want %q", got, want)
	}
}

func TestEncode_dictionaryOrderMismatchPanics(t *testing.T) {
	d := plist.NewDictionary()
	d.Set(plist.NewKey("a"), plist.NewString("1"))
	d.Set(plist.NewKey("b"), plist.NewString("2"))
	d.SetOrder([]plist.Key{plist.NewKey("b"), plist.NewKey("a")})
	d.Delete("a") // now order is stale relative to the (unexported) key set

	mtest.MustPanic(t, func() {
		plist.EncodeToString(d, plist.EncodingConfig{})
	})
}

func TestRoundTrip_structural(t *testing.T) {
	inputs := []string{
		`{a = 1; b = 2;}`,
		`(1, 2, )`,
		`< F F >`,
		`"some\nword"`,
	}
	for _, input := range inputs {
		v, err := plist.DecodeString(input)
		if err != nil {
			t.Fatalf("Decode(%q): %v", input, err)
		}
		out := plist.EncodeToString(v, plist.EncodingConfig{})
		v2, err := plist.DecodeString(out)
		if err != nil {
			t.Fatalf("re-decoding %q (from %q): %v", out, input, err)
		}
		if !plist.Plain(v).Equal(plist.Plain(v2)) {
			t.Errorf("round trip not plain-equal: %q -> %q", input, out)
		}
	}
}

func TestEncode_scenario14(t *testing.T) {
	v, err := plist.DecodeString(`"some\nword"`)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := plist.EncodeToString(v, plist.EncodingConfig{})
	if got == "\"some\nword\"" {
		t.Errorf("expected an escape, got a literal LF: %q", got)
	}
	if got != `"some\nword"` {
		t.Errorf("EncodeToString() = %q, want %q", got, `"some\nword"`)
	}
}
