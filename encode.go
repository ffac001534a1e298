// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/plist/internal/escape"
)

// An IndentStyle selects how Encode indents nested arrays and dictionaries.
type IndentStyle int

const (
	// IndentNone disables indentation entirely; breakElementsOntoLines is
	// still honored, but no leading whitespace is written.
	IndentNone IndentStyle = iota
	IndentSpaces
	IndentTabs
)

// An Indentation describes one level of indentation.
type Indentation struct {
	style IndentStyle
	width int
}

// Spaces constructs an Indentation that repeats a single space n times per
// level. Spaces(0) (and any n <= 0) is equivalent to NoIndentation().
func Spaces(n int) Indentation {
	if n <= 0 {
		return Indentation{style: IndentNone}
	}
	return Indentation{style: IndentSpaces, width: n}
}

// Tabs constructs an Indentation that emits one tab per level.
func Tabs() Indentation { return Indentation{style: IndentTabs} }

// NoIndentation constructs an Indentation that emits nothing.
func NoIndentation() Indentation { return Indentation{style: IndentNone} }

func (ind Indentation) unit() string {
	switch ind.style {
	case IndentSpaces:
		return strings.Repeat(" ", ind.width)
	case IndentTabs:
		return "\t"
	default:
		return ""
	}
}

// EncodingConfig configures Encode.
type EncodingConfig struct {
	// Indentation selects the per-level indent unit.
	Indentation Indentation

	// Level is the starting indent depth; it is incremented for each nested
	// array or dictionary, whether or not breakElementsOntoLines is set.
	Level int
}

// Encode writes the textual representation of v to w, driven by v's
// formatting options and cfg. Encoding is total: the only failure modes are
// an underlying write error from w, or a panic if a dictionary's explicit
// key order does not match its key set (spec.md §9).
func Encode(w io.Writer, v Value, cfg EncodingConfig) error {
	e := &encoder{w: w, cfg: cfg}
	e.encodeValue(v, cfg.Level)
	return e.err
}

// EncodeToString is a convenience wrapper that encodes v to a string using
// cfg. Since bytes.Buffer never fails to write, only a panic (per Encode's
// documented assertion) can prevent it from returning.
func EncodeToString(v Value, cfg EncodingConfig) string {
	var buf bytes.Buffer
	Encode(&buf, v, cfg)
	return buf.String()
}

type encoder struct {
	w   io.Writer
	cfg EncodingConfig
	err error
}

func (e *encoder) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) writeBytes(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *encoder) writeIndent(level int) {
	unit := e.cfg.Indentation.unit()
	if unit == "" {
		return
	}
	for i := 0; i < level; i++ {
		e.writeString(unit)
	}
}

func (e *encoder) encodeValue(v Value, level int) {
	switch t := v.(type) {
	case *String:
		e.encodeString(t)
	case *Data:
		e.encodeData(t)
	case *Array:
		e.encodeArray(t, level)
	case *Dictionary:
		e.encodeDictionary(t, level)
	default:
		panic(fmt.Sprintf("plist: encode: unknown value type %T", v))
	}
}

// --- §4.8 string ---

func (e *encoder) encodeString(s *String) {
	raw := s.Text.Bytes()
	if s.Options.Has(StringUnquoted) && len(raw) > 0 && allUnquotedChars(raw) {
		e.writeBytes(raw)
		return
	}
	e.writeBytes(escape.Quote(nil, raw, stringOptionsToHints(s.Options)))
}

// stringOptionsToHints is the inverse of hintsToStringOptions (decode.go):
// it picks the subset of a String's formatting options that the shared
// escape.Quote codec needs to reproduce the original LF/TAB spelling.
func stringOptionsToHints(opts StringOptions) escape.Hints {
	var h escape.Hints
	switch opts.LineFeedEscaping() {
	case LineFeedNamed:
		h.LineFeed = escape.LineFeedNamed
	case LineFeedLiteral:
		h.LineFeed = escape.LineFeedLiteral
	case LineFeedOctal:
		h.LineFeed = escape.LineFeedOctal
	}
	h.TabOctal = opts.Has(StringEscapedHorizontalTabsOctal)
	return h
}

func allUnquotedChars(b []byte) bool {
	for _, c := range b {
		if !isUnquotedChar(c) {
			return false
		}
	}
	return true
}

// --- §4.8 data ---

const hexDigitsLower = "0123456789abcdef"

func (e *encoder) encodeData(d *Data) {
	e.writeString("<")
	buf := make([]byte, 2)
	for _, b := range d.Bytes {
		buf[0] = hexDigitsLower[b>>4]
		buf[1] = hexDigitsLower[b&0x0F]
		e.writeBytes(buf)
	}
	e.writeString(">")
}

// --- §4.8 array ---

func (e *encoder) encodeArray(a *Array, level int) {
	e.writeString("(")
	brk := a.Options.Has(ArrayBreakElementsOntoLines)
	if brk {
		e.writeString("\n")
	}
	inner := level + 1
	for i, v := range a.Elements {
		if i > 0 {
			e.writeString(",")
			switch {
			case brk:
				e.writeString("\n")
			case a.Options.Has(ArraySpaceSeparator):
				e.writeString(" ")
			}
		}
		if brk {
			e.writeIndent(inner)
		}
		e.encodeValue(v, inner)
	}
	if len(a.Elements) > 0 {
		if a.Options.Has(ArrayTrailingComma) {
			e.writeString(",")
		}
		if brk {
			e.writeString("\n")
		}
	}
	if brk {
		e.writeIndent(level)
	}
	e.writeString(")")
}

// --- §4.8 dictionary ---

func (e *encoder) encodeDictionary(d *Dictionary, level int) {
	keys := d.Keys()
	if d.HasOrder() {
		assertOrderMatchesKeySet(d, keys)
	}

	e.writeString("{")
	brk := d.Options.Has(DictionaryBreakElementsOntoLines)
	if brk {
		e.writeString("\n")
	}
	inner := level + 1
	for _, k := range keys {
		if brk {
			e.writeIndent(inner)
		}
		_, v, _ := d.Lookup(k.Name.String())
		e.encodeString(&String{Text: k.Name, Options: k.Options})
		e.writeString(" = ")
		e.encodeValue(v, inner)
		e.writeString(";")
		if brk {
			e.writeString("\n")
		}
	}
	if brk {
		e.writeIndent(level)
	}
	e.writeString("}")
}

// assertOrderMatchesKeySet is the encoder's defensive check that a
// dictionary's explicit order names exactly the keys present in it
// (spec.md §9: "the encoder must defensively assert the stored order
// matches the key set").
func assertOrderMatchesKeySet(d *Dictionary, order []Key) {
	if len(order) != d.Len() {
		panic("plist: encode: dictionary order does not match key set (length mismatch)")
	}
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		name := k.Name.String()
		if _, ok := d.Get(name); !ok {
			panic("plist: encode: dictionary order names a key not present in the dictionary: " + name)
		}
		if seen[name] {
			panic("plist: encode: dictionary order repeats key: " + name)
		}
		seen[name] = true
	}
}
