// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package plist implements a decoder and encoder for the OpenStep/NeXTSTEP
// ASCII property-list format, preserving enough formatting detail (quoting
// style, escape spelling, element separators, line breaks, key order) that
// re-encoding a decoded document reproduces its structure and spelling.
// Comments are not preserved, indentation comes from the EncodingConfig, and
// dictionary members are always written as "key = value;".
//
// # Decoding
//
// Decode parses data as a single property-list value, optionally surrounded
// by whitespace and "//" or "/* */" comments. Any other content, or more than
// one top-level value, is reported as a *DecodingError:
//
//	v, err := plist.Decode(data)
//	if err != nil {
//	    log.Fatalf("Decode failed: %v", err)
//	}
//
// WithTopLevelKeys restricts materialization of the outermost dictionary to
// a chosen set of keys; everything else is still syntax-checked but
// discarded without being allocated, for efficiently reading one field out
// of a large document:
//
//	v, err := plist.Decode(data, plist.WithTopLevelKeys(keys))
//
// # Encoding
//
// Encode writes v back out as property-list text, honoring the formatting
// options recorded on each String, Array, and Dictionary:
//
//	err := plist.Encode(w, v, plist.EncodingConfig{Indentation: plist.Spaces(2)})
//
// # Values
//
// Value is a closed union of *String, *Data, *Array, and *Dictionary. A
// Dictionary's Keys may carry an explicit order distinct from sorted
// order, which the encoder reproduces; Plain and PathSet give structural
// (formatting-independent) equivalence and path-based access over Values.
package plist
