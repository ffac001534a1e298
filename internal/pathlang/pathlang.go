// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package pathlang implements a minimal expression grammar for naming a
// position in an OpenStep property-list value tree: a dot-separated
// sequence of dictionary-key and array-index steps.
//
//	expr  = step+
//	step  = "." name
//	step  = "[" INDEX "]"
//	name  = WORD
//	name  = "'" QTEXT "'"
//
//	WORD  = RE `[\w$:/+-]+`
//	QTEXT = RE `[^']*`
//	INDEX = RE `-?\d+`
//
// This is deliberately much smaller than a JSONPath-style grammar (no root
// marker, wildcards, slices, or filter scripts): the value model has no
// numeric or boolean types to filter over, and every path names exactly one
// position.
package pathlang

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A Step is one parsed component of a path expression.
type Step struct {
	IsKey bool
	Key   string
	Index int
}

// Parse compiles s into a sequence of Steps.
func Parse(s string) ([]Step, error) {
	var steps []Step
	for s != "" {
		step, rest, err := parseStep(s)
		if err != nil {
			return nil, fmt.Errorf("pathlang: at %q: %w", s, err)
		}
		steps = append(steps, step)
		s = rest
	}
	return steps, nil
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "."); ok {
		return parseName(t)
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		m := indexRE.FindStringSubmatch(t)
		if m == nil {
			return Step{}, s, errors.New("invalid index")
		}
		u := t[len(m[0]):]
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, s, errors.New("missing closing bracket")
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Step{}, s, err
		}
		return Step{Index: n}, u, nil
	}
	return Step{}, s, errors.New("expected '.' or '[' to begin a step")
}

func parseName(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "'"); ok {
		m := quoteRE.FindStringSubmatch(t)
		if m == nil {
			return Step{}, s, errors.New("unterminated quoted key")
		}
		return Step{IsKey: true, Key: m[1]}, t[len(m[0]):], nil
	}
	m := wordRE.FindStringSubmatch(s)
	if m == nil {
		return Step{}, s, errors.New("invalid key name")
	}
	return Step{IsKey: true, Key: m[1]}, s[len(m[0]):], nil
}

var (
	wordRE  = regexp.MustCompile(`^([\w$:/+-]+)`)
	quoteRE = regexp.MustCompile(`^([^']*)'`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
)
