// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist

import (
	"bytes"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/plist/internal/escape"
)

// An Option configures the behavior of Decode.
type Option func(*decodeConfig)

type decodeConfig struct {
	topLevelKeys mapset.Set[string]
}

// WithTopLevelKeys restricts decoding of the outermost dictionary to the
// named keys (spec.md §4.7). Syntax is still fully validated for every
// value in the input; only materialization of the discarded branches is
// skipped. The restriction never applies to nested dictionaries, and has
// no effect if the root value is not a dictionary.
func WithTopLevelKeys(keys mapset.Set[string]) Option {
	return func(c *decodeConfig) { c.topLevelKeys = keys }
}

// Decode parses data as a single OpenStep property-list value. It requires
// that data contain exactly one value, optionally surrounded by trivia
// (whitespace and comments); anything else is reported via a
// *DecodingError.
func Decode(data []byte, opts ...Option) (v Value, err error) {
	var cfg decodeConfig
	for _, o := range opts {
		o(&cfg)
	}
	d := &decoder{buf: data, topLevelKeys: cfg.topLevelKeys}

	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ContentError)
			if !ok {
				panic(r)
			}
			line, col := posToLineCol(data, ce.Pos)
			err = &DecodingError{Err: ce, Line: line, Column: col}
			v = nil
		}
	}()

	v = d.parseValue()
	d.skipTrivia()
	if d.pos < len(d.buf) {
		d.raise(ErrOversuppliedContent)
	}
	return v, nil
}

// DecodeString is a convenience wrapper for Decode(([]byte)(s), opts...).
func DecodeString(s string, opts ...Option) (Value, error) {
	return Decode([]byte(s), opts...)
}

// a decoder holds the mutable state of a single recursive-descent parse. It
// borrows buf for the lifetime of the call and never retains it afterward.
//
// Errors are reported by panicking with a *ContentError; Decode recovers
// this and converts it to a *DecodingError carrying line/column
// information. This mirrors the teacher's fail-fast idiom for recursive
// descent (stream.go's syntaxError/recoverParseError), trading a
// thread-through-every-return-value style for a single recovery point at
// the API boundary.
type decoder struct {
	buf []byte
	pos int

	topLevelKeys mapset.Set[string]
	rootConsumed bool // true once parseValue has dispatched the document's root value

	isSkipping bool // true while parsing a discarded top-level branch
}

func (d *decoder) raise(kind ErrorKind) { panic(&ContentError{Kind: kind, Pos: d.pos}) }

func (d *decoder) raiseAt(kind ErrorKind, pos int) { panic(&ContentError{Kind: kind, Pos: pos}) }

func (d *decoder) raiseByte(kind ErrorKind, b byte) {
	panic(&ContentError{Kind: kind, Pos: d.pos, Byte: b})
}

func (d *decoder) raiseAtByte(kind ErrorKind, pos int, b byte) {
	panic(&ContentError{Kind: kind, Pos: pos, Byte: b})
}

func (d *decoder) eof() bool { return d.pos >= len(d.buf) }

func (d *decoder) peek() (byte, bool) {
	if d.eof() {
		return 0, false
	}
	return d.buf[d.pos], true
}

// --- §4.1 trivia and comments ---

func isASCIIWhitespace(b byte) bool {
	return b == 0x20 || (b >= 0x09 && b <= 0x0D)
}

// lineSepAt reports whether a Unicode line or paragraph separator (U+2028 or
// U+2029) begins at buf[i].
func lineSepAt(buf []byte, i int) bool {
	return i+2 < len(buf) && buf[i] == 0xE2 && buf[i+1] == 0x80 && (buf[i+2] == 0xA8 || buf[i+2] == 0xA9)
}

func (d *decoder) skipTrivia() {
	for !d.eof() {
		b := d.buf[d.pos]
		switch {
		case isASCIIWhitespace(b):
			d.pos++
		case lineSepAt(d.buf, d.pos):
			d.pos += 3
		case b == '/':
			d.skipComment()
		default:
			return
		}
	}
}

// skipWhitespace skips only ASCII whitespace, never comments. It is used
// inside "< ... >" data literals (spec.md §4.5).
func (d *decoder) skipWhitespace() {
	for !d.eof() && isASCIIWhitespace(d.buf[d.pos]) {
		d.pos++
	}
}

func (d *decoder) skipComment() {
	start := d.pos
	d.pos++ // consume '/'
	if d.eof() {
		d.raiseAt(ErrIncompleteCommentStart, start)
	}
	switch d.buf[d.pos] {
	case '/':
		d.pos++
		for !d.eof() {
			b := d.buf[d.pos]
			if b == '\n' || b == '\r' || lineSepAt(d.buf, d.pos) {
				return // terminator left for the next trivia pass
			}
			d.pos++
		}
	case '*':
		d.pos++
		idx := bytes.Index(d.buf[d.pos:], []byte("*/"))
		if idx < 0 {
			d.raiseAt(ErrMissingCommentEnd, start)
		}
		d.pos += idx + 2
	default:
		d.raiseAtByte(ErrIllegalCommentStart, start, d.buf[d.pos])
	}
}

// --- §4.2 dispatch ---

func (d *decoder) parseValue() Value {
	d.skipTrivia()
	b, ok := d.peek()
	if !ok {
		d.raise(ErrMissingContent)
	}
	// isRoot is true only for the very first value parseValue ever
	// dispatches — the document's root — regardless of its kind. This is
	// what WithTopLevelKeys's restriction keys off of (decode.go:19-23): a
	// non-dictionary root permanently disables the restriction, even if a
	// dictionary later turns up nested inside it.
	isRoot := !d.rootConsumed
	d.rootConsumed = true
	switch {
	case b == '(':
		return d.parseArray()
	case b == '{':
		return d.parseDictionary(isRoot)
	case b == '"' || b == '\'':
		return d.parseQuotedString(b)
	case b == '<':
		return d.parseData()
	case isUnquotedChar(b):
		return d.parseUnquotedString()
	default:
		d.raiseByte(ErrIllegalContent, b)
		panic("unreachable")
	}
}

// --- §4.3 array ---

func (d *decoder) parseArray() *Array {
	d.pos++ // consume '('
	var opts ArrayOptions
	if b, ok := d.peek(); ok && b == '\n' {
		opts |= ArrayBreakElementsOntoLines
	}

	var elements []Value
	trailingComma := false
	for {
		d.skipTrivia()
		if b, ok := d.peek(); ok && b == ')' {
			break
		}
		v := d.parseValue()
		if !d.isSkipping {
			elements = append(elements, v)
		}
		d.skipTrivia()
		if b, ok := d.peek(); ok && b == ',' {
			d.pos++
			if b2, ok := d.peek(); ok && b2 == ' ' {
				opts |= ArraySpaceSeparator
			}
			trailingComma = true
			continue
		}
		trailingComma = false
		break
	}
	if b, ok := d.peek(); !ok || b != ')' {
		d.raise(ErrMissingClosingParenthesis)
	}
	d.pos++ // consume ')'
	if trailingComma {
		opts |= ArrayTrailingComma
	}
	return &Array{Elements: elements, Options: opts}
}

// --- §4.5 data ---

func (d *decoder) parseData() *Data {
	d.pos++ // consume '<'
	d.skipWhitespace()

	var out []byte
	for {
		b, ok := d.peek()
		if !ok {
			d.raise(ErrMissingDataEnd)
		}
		if b == '>' {
			d.pos++
			break
		}
		hi, ok := hexVal(b)
		if !ok {
			d.raiseByte(ErrNonHexadecimalHighByteData, b)
		}
		d.pos++
		d.skipWhitespace()

		b2, ok := d.peek()
		if !ok || b2 == '>' {
			d.raise(ErrMissingHexadecimalLowByteData)
		}
		lo, ok := hexVal(b2)
		if !ok {
			d.raiseByte(ErrNonHexadecimalLowByteData, b2)
		}
		d.pos++
		d.skipWhitespace()

		if !d.isSkipping {
			out = append(out, hi<<4|lo)
		}
	}
	return &Data{Bytes: out}
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

// --- §4.4 strings ---

// isUnquotedChar reports whether b belongs to the unquoted-literal
// character class: a-z, A-Z, 0-9, and -./:_$+ (the trailing '+' is an
// intentional extension over the reference grammar).
func isUnquotedChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '-', '.', '/', ':', '_', '$', '+':
		return true
	}
	return false
}

func (d *decoder) parseUnquotedString() *String {
	start := d.pos
	for !d.eof() && isUnquotedChar(d.buf[d.pos]) {
		d.pos++
	}
	if d.isSkipping {
		return &String{Options: StringUnquoted}
	}
	return &String{Text: NewByteString(string(d.buf[start:d.pos])), Options: StringUnquoted}
}

// parseQuotedString delegates the body of the literal to internal/escape,
// which implements the shared unquoting grammar (spec.md §4.4), and
// translates its reported Hints/Error back into this package's StringOptions
// and ContentError.
func (d *decoder) parseQuotedString(delim byte) *String {
	d.pos++ // consume opening delimiter
	res := escape.Unquote(d.buf[d.pos:], delim, d.isSkipping)
	if res.Err != nil {
		d.raiseEscapeError(res.Err)
	}
	d.pos += res.Consumed
	opts := hintsToStringOptions(res.Hints)
	if d.isSkipping {
		return &String{Options: opts}
	}
	return &String{Text: NewByteString(string(res.Data)), Options: opts}
}

func hintsToStringOptions(h escape.Hints) StringOptions {
	var opts StringOptions
	switch h.LineFeed {
	case escape.LineFeedNamed:
		opts |= StringEscapedLineFeedsNamed
	case escape.LineFeedLiteral:
		opts |= StringEscapedLineFeedsLiteral
	case escape.LineFeedOctal:
		opts |= StringEscapedLineFeedsOctal
	}
	if h.TabOctal {
		opts |= StringEscapedHorizontalTabsOctal
	}
	return opts
}

// raiseEscapeError converts an *escape.Error, whose Pos is relative to the
// start of the quoted literal's body, into the matching *ContentError at its
// absolute position in d.buf.
func (d *decoder) raiseEscapeError(e *escape.Error) {
	pos := d.pos + e.Pos
	switch e.Kind {
	case escape.ErrMissingClosingQuote:
		panic(&ContentError{Kind: ErrMissingClosingQuote, Pos: pos})
	case escape.ErrNonUTF8:
		panic(&ContentError{Kind: ErrNonUTF8StringContents, Pos: pos})
	case escape.ErrOctalOverflow:
		panic(&ContentError{Kind: ErrOctalCodeOverflowStringEscapeSequence, Pos: pos, Digits: e.Digits, NDigits: e.NDigits})
	case escape.ErrNonASCIIOctal:
		panic(&ContentError{Kind: ErrNonASCIIOctalCodeStringEscapeSequence, Pos: pos, Digits: e.Digits, NDigits: e.NDigits})
	case escape.ErrIncompleteHex:
		panic(&ContentError{Kind: ErrIncompleteHexadecimalCodeStringEscapeSequence, Pos: pos})
	case escape.ErrNonScalarHex:
		panic(&ContentError{Kind: ErrNonUnicodeScalarHexadecimalCodeStringEscapeSequence, Pos: pos, Rune16: e.Rune16})
	default:
		panic(&ContentError{Kind: ErrInvalid, Pos: pos})
	}
}

// --- §4.6 dictionary ---

func (d *decoder) parseDictionary(isRoot bool) *Dictionary {
	d.pos++ // consume '{'
	restrictTopLevel := d.topLevelKeys != nil && isRoot

	var opts DictionaryOptions
	if b, ok := d.peek(); ok && b == '\n' {
		opts |= DictionaryBreakElementsOntoLines
	}

	dict := NewDictionary()
	var order []Key
	for {
		d.skipTrivia()
		if b, ok := d.peek(); ok && b == '}' {
			break
		}
		keyVal := d.parseValue()
		str, ok := keyVal.(*String)
		if !ok {
			d.raise(ErrNonStringKey)
		}
		key := Key{Name: str.Text, Options: str.Options}

		keep := true
		if restrictTopLevel {
			keep = d.topLevelKeys.Has(key.Name.String())
		}

		d.skipTrivia()
		if b, ok := d.peek(); !ok || b != '=' {
			d.raise(ErrMissingEqualSignInDictionary)
		}
		d.pos++
		d.skipTrivia()

		var val Value
		if keep {
			val = d.parseValue()
		} else {
			saved := d.isSkipping
			d.isSkipping = true
			val = d.parseValue()
			d.isSkipping = saved
		}

		d.skipTrivia()
		if b, ok := d.peek(); !ok || b != ';' {
			d.raise(ErrMissingSemicolonInDictionary)
		}
		d.pos++
		d.skipTrivia()

		if keep && !d.isSkipping {
			dict.Set(key, val)
			order = append(order, key)
		}
	}
	if b, ok := d.peek(); !ok || b != '}' {
		d.raise(ErrMissingClosingBrace)
	}
	d.pos++ // consume '}'

	if IsAscending(order) {
		dict.order = nil
	} else if deduped := dedupeKeepLast(order); IsAscending(deduped) {
		dict.order = nil
	} else {
		dict.order = deduped
	}
	dict.Options = opts
	return dict
}

// dedupeKeepLast reduces a recorded key sequence (which may repeat a key
// that was overwritten per the "last write wins" rule, spec.md §9) to one
// entry per key, keeping each key's last occurrence and the relative order
// of those last occurrences. This keeps the invariant of spec.md §3
// (order's length equals the dictionary's, each key once) even when the
// source text repeated a key.
func dedupeKeepLast(raw []Key) []Key {
	lastIndex := make(map[string]int, len(raw))
	for i, k := range raw {
		lastIndex[k.Name.String()] = i
	}
	out := make([]Key, 0, len(lastIndex))
	for i, k := range raw {
		name := k.Name.String()
		if lastIndex[name] == i {
			out = append(out, k)
		}
	}
	return out
}

// --- error position reporting ---

// posToLineCol converts a byte offset into data to a 1-based (line, column)
// pair, per spec.md §4.2: column counts bytes since the last LF, or is
// offset+1 if no LF precedes pos.
func posToLineCol(data []byte, pos int) (line, column int) {
	line = 1
	lastLF := -1
	n := pos
	if n > len(data) {
		n = len(data)
	}
	for i := 0; i < n; i++ {
		if data[i] == '\n' {
			line++
			lastLF = i
		}
	}
	return line, pos - lastLF
}
