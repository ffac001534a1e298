// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist

// StringOptions records formatting clues captured from (or intended for)
// the textual representation of a string value.
type StringOptions uint8

// Bits of StringOptions. The three escapedLineFeeds* bits are mutually
// exclusive; at most one is ever set.
const (
	// StringUnquoted reports that the literal was (or should be) written
	// without surrounding quotation marks.
	StringUnquoted StringOptions = 1 << iota

	// StringEscapedLineFeedsNamed prefers "\n" to represent LF.
	StringEscapedLineFeedsNamed

	// StringEscapedLineFeedsLiteral prefers backslash followed by a literal
	// LF byte.
	StringEscapedLineFeedsLiteral

	// StringEscapedLineFeedsOctal prefers "\012" to represent LF.
	StringEscapedLineFeedsOctal

	// StringEscapedHorizontalTabsOctal prefers "\011" to represent TAB.
	StringEscapedHorizontalTabsOctal
)

const lineFeedEscapingMask = StringEscapedLineFeedsNamed | StringEscapedLineFeedsLiteral | StringEscapedLineFeedsOctal

// Has reports whether all the bits of other are set in opts.
func (opts StringOptions) Has(other StringOptions) bool { return opts&other == other }

// LineFeedEscaping is the derived reporting of which (if any) of the three
// mutually-exclusive LF escaping preferences is set.
type LineFeedEscaping int

const (
	// LineFeedNone reports that no LF-escaping preference is recorded; a
	// literal LF should be emitted.
	LineFeedNone LineFeedEscaping = iota
	LineFeedNamed
	LineFeedLiteral
	LineFeedOctal
)

// LineFeedEscaping reports which line-feed escaping style, if any, opts
// records.
func (opts StringOptions) LineFeedEscaping() LineFeedEscaping {
	switch {
	case opts.Has(StringEscapedLineFeedsNamed):
		return LineFeedNamed
	case opts.Has(StringEscapedLineFeedsLiteral):
		return LineFeedLiteral
	case opts.Has(StringEscapedLineFeedsOctal):
		return LineFeedOctal
	default:
		return LineFeedNone
	}
}

// ArrayOptions records formatting clues for array values.
type ArrayOptions uint8

const (
	// ArrayBreakElementsOntoLines reports that each element was (or should
	// be) written on its own line.
	ArrayBreakElementsOntoLines ArrayOptions = 1 << iota

	// ArrayTrailingComma reports that a comma followed the last element.
	ArrayTrailingComma

	// ArraySpaceSeparator reports that a single space (rather than nothing)
	// followed each element-separating comma. Ignored when
	// ArrayBreakElementsOntoLines is set.
	ArraySpaceSeparator
)

// Has reports whether all the bits of other are set in opts.
func (opts ArrayOptions) Has(other ArrayOptions) bool { return opts&other == other }

// DictionaryOptions records formatting clues for dictionary values.
type DictionaryOptions uint8

const (
	// DictionaryBreakElementsOntoLines reports that each member was (or
	// should be) written on its own line.
	DictionaryBreakElementsOntoLines DictionaryOptions = 1 << iota
)

// Has reports whether all the bits of other are set in opts.
func (opts DictionaryOptions) Has(other DictionaryOptions) bool { return opts&other == other }
