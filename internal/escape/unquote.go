// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package escape implements the OpenStep/NeXTSTEP quoted-string escape
// grammar (spec.md §4.4) shared by the decoder (unquoting) and the encoder
// (quoting). It is internal because the grammar is specific to this format,
// not a general-purpose string-escaping API.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// A LineFeedStyle records which of the three mutually exclusive LF-escaping
// forms applies to a string, or none.
type LineFeedStyle int

const (
	LineFeedNone LineFeedStyle = iota
	LineFeedNamed
	LineFeedLiteral
	LineFeedOctal
)

// Hints records the formatting clues Unquote observed while decoding a
// string (or that Quote should honor while encoding one). It mirrors a
// subset of the plist package's StringOptions bits, kept as an independent
// type here to avoid an import cycle between this package and the root
// package that uses it.
type Hints struct {
	LineFeed LineFeedStyle
	TabOctal bool
}

// An ErrorKind enumerates the ways Unquote can fail; each corresponds to one
// of the ContentError variants named in spec.md §7.
type ErrorKind int

const (
	_ ErrorKind = iota
	ErrMissingClosingQuote
	ErrNonUTF8
	ErrOctalOverflow
	ErrNonASCIIOctal
	ErrIncompleteHex
	ErrNonScalarHex
)

// An Error reports a failure to unquote a string, together with whatever
// payload (offending byte, octal digits, or 16-bit code unit) is relevant to
// Kind. Pos is relative to the start of the slice passed to Unquote; the
// caller is responsible for translating it to an absolute position.
type Error struct {
	Kind    ErrorKind
	Pos     int
	Byte    byte
	Digits  [3]byte
	NDigits int
	Rune16  uint16
}

func (e *Error) Error() string { return "escape: invalid string escape" }

// Unquote decodes the body of a quoted string literal. src must begin
// immediately after the opening delimiter; Unquote stops at the first
// unescaped occurrence of delim and reports Consumed as the number of bytes
// of src examined, including that closing delimiter.
//
// If skip is true, Unquote still validates the full grammar (so syntax
// errors are reported at the same position as a full decode) but does not
// allocate or populate Data, matching the decoder's subtree-skipping
// contract (spec.md §4.7).
func Unquote(src []byte, delim byte, skip bool) (out Result) {
	put := func(bs ...byte) {
		if !skip {
			out.Data = append(out.Data, bs...)
		}
	}
	putRune := func(r rune) {
		if skip {
			return
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		out.Data = append(out.Data, buf[:n]...)
	}

	i := 0
	for {
		if i >= len(src) {
			out.Err = &Error{Kind: ErrMissingClosingQuote, Pos: i}
			return out
		}
		b := src[i]
		if b == delim {
			i++
			out.Consumed = i
			return out
		}
		if b == '\\' {
			n, err := unescape(src[i+1:], &out.Hints, put, putRune)
			if err != nil {
				err.Pos += i + 1
				out.Err = err
				return out
			}
			i += 1 + n
			continue
		}

		r, size := mem.DecodeRune(mem.B(src[i:]))
		if r == utf8.RuneError && size <= 1 {
			out.Err = &Error{Kind: ErrNonUTF8, Pos: i}
			return out
		}
		put(src[i : i+size]...)
		i += size
	}
}

// A Result is the outcome of a successful or failed call to Unquote.
type Result struct {
	Data     []byte
	Hints    Hints
	Consumed int
	Err      *Error
}

// unescape decodes the content of a single "\" escape sequence, whose
// backslash has already been consumed, reporting the number of bytes of s it
// consumed.
func unescape(s []byte, hints *Hints, put func(...byte), putRune func(rune)) (int, *Error) {
	if len(s) == 0 {
		return 0, &Error{Kind: ErrMissingClosingQuote, Pos: 0}
	}
	b := s[0]
	switch b {
	case '\\', '"', '\'':
		put(b)
		return 1, nil
	case 'a':
		put(0x07)
		return 1, nil
	case 'b':
		put(0x08)
		return 1, nil
	case 'e':
		put(0x1B)
		return 1, nil
	case 'f':
		put(0x0C)
		return 1, nil
	case 'n':
		put(0x0A)
		hints.LineFeed = LineFeedNamed
		return 1, nil
	case 'r':
		put(0x0D)
		return 1, nil
	case 't':
		put(0x09)
		return 1, nil
	case 'v':
		put(0x0B)
		return 1, nil
	case '\n':
		put(0x0A)
		hints.LineFeed = LineFeedLiteral
		return 1, nil
	case 'U':
		return unescapeHex(s[1:], putRune)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		return unescapeOctal(s, hints, put)
	default:
		put(b)
		return 1, nil
	}
}

func unescapeOctal(s []byte, hints *Hints, put func(...byte)) (int, *Error) {
	var digits [3]byte
	n := 0
	for n < 3 && n < len(s) {
		b := s[n]
		if b < '0' || b > '7' {
			break
		}
		digits[n] = b - '0'
		n++
	}
	d1 := digits[0]
	if n == 3 && d1 >= 4 {
		return 0, &Error{Kind: ErrOctalOverflow, Pos: 0, Digits: digits, NDigits: n}
	}
	if d1 >= 2 && d1 < 4 {
		return 0, &Error{Kind: ErrNonASCIIOctal, Pos: 0, Digits: digits, NDigits: n}
	}
	var value int
	for i := 0; i < n; i++ {
		value = (value << 3) | int(digits[i])
	}
	switch value {
	case 0o011:
		hints.TabOctal = true
	case 0o012:
		hints.LineFeed = LineFeedOctal
	}
	put(byte(value))
	return n, nil
}

func unescapeHex(s []byte, putRune func(rune)) (int, *Error) {
	if len(s) < 4 {
		return 0, &Error{Kind: ErrIncompleteHex, Pos: 0}
	}
	var value uint16
	for i := 0; i < 4; i++ {
		hv, ok := hexVal(s[i])
		if !ok {
			return 0, &Error{Kind: ErrIncompleteHex, Pos: 0}
		}
		value = value<<4 | uint16(hv)
	}
	if value >= 0xD800 && value <= 0xDFFF {
		return 0, &Error{Kind: ErrNonScalarHex, Pos: 0, Rune16: value}
	}
	putRune(rune(value))
	return 1 + 4, nil // the 'U' plus its four hex digits
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
