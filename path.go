// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist

import (
	"fmt"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/plist/internal/pathlang"
)

// A Component identifies one step into a Value tree: either a dictionary
// key or an array index (spec.md §4.10).
type Component struct {
	isKey bool
	key   string
	index int
}

// KeyComponent constructs a dictionary-key Component.
func KeyComponent(name string) Component { return Component{isKey: true, key: name} }

// IndexComponent constructs an array-index Component.
func IndexComponent(i int) Component { return Component{index: i} }

// IsKey reports whether c is a key component (as opposed to an index).
func (c Component) IsKey() bool { return c.isKey }

// Key returns c's key name; it is meaningful only if c.IsKey().
func (c Component) Key() string { return c.key }

// Index returns c's array index; it is meaningful only if !c.IsKey().
func (c Component) Index() int { return c.index }

func (c Component) String() string {
	if c.isKey {
		return c.key
	}
	return fmt.Sprintf("[%d]", c.index)
}

// A Path is a concrete sequence of Components identifying one position in a
// Value tree.
type Path []Component

// ParsePath compiles a path expression (".key", "[2]", ".'quoted key'") into
// a Path, using the grammar implemented by internal/pathlang.
func ParsePath(s string) (Path, error) {
	steps, err := pathlang.Parse(s)
	if err != nil {
		return nil, err
	}
	path := make(Path, len(steps))
	for i, st := range steps {
		if st.IsKey {
			path[i] = KeyComponent(st.Key)
		} else {
			path[i] = IndexComponent(st.Index)
		}
	}
	return path, nil
}

// At resolves path against v, descending through dictionaries (by key) and
// arrays (by index). It reports false as soon as any step is inapplicable:
// the current value is the wrong kind, a key is absent, or an index is out
// of bounds.
func At(v Value, path Path) (Value, bool) {
	cur := v
	for _, c := range path {
		next, ok := Step(cur, c)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Step resolves a single Component against v.
func Step(v Value, c Component) (Value, bool) {
	if c.isKey {
		return Member(v, c.key)
	}
	return Index(v, c.index)
}

// Member looks up key in v, which must be a *Dictionary.
func Member(v Value, key string) (Value, bool) {
	d, ok := AsDictionary(v)
	if !ok {
		return nil, false
	}
	return d.Get(key)
}

// Index looks up the element at i in v, which must be an *Array.
func Index(v Value, i int) (Value, bool) {
	a, ok := AsArray(v)
	if !ok {
		return nil, false
	}
	return a.At(i)
}

// A PathSet is a recursive structure mapping Component to *PathSet,
// defining a finite subset of positions within a Value tree (spec.md
// §4.10). It is used to prune decode/traversal; the nil *PathSet denotes
// the empty set and is ready for use as a receiver for IsEmpty, Key,
// Index, and Components.
type PathSet struct {
	keys    map[string]*PathSet
	indices map[int]*PathSet
}

// NewPathSet constructs an empty PathSet.
func NewPathSet() *PathSet { return &PathSet{} }

// IsEmpty reports whether p names no positions.
func (p *PathSet) IsEmpty() bool {
	return p == nil || (len(p.keys) == 0 && len(p.indices) == 0)
}

// Add inserts path into the set, creating intermediate nodes as needed. It
// returns the receiver (or a freshly allocated set, if the receiver was
// nil) so that calls can be chained starting from a nil *PathSet.
func (p *PathSet) Add(path Path) *PathSet {
	if p == nil {
		p = NewPathSet()
	}
	if len(path) == 0 {
		return p
	}
	head, rest := path[0], path[1:]
	child := p.at(head)
	if child == nil {
		child = NewPathSet()
		p.put(head, child)
	}
	child.Add(rest)
	return p
}

func (p *PathSet) at(c Component) *PathSet {
	if p == nil {
		return nil
	}
	if c.isKey {
		if p.keys == nil {
			return nil
		}
		return p.keys[c.key]
	}
	if p.indices == nil {
		return nil
	}
	return p.indices[c.index]
}

func (p *PathSet) put(c Component, child *PathSet) {
	if c.isKey {
		if p.keys == nil {
			p.keys = make(map[string]*PathSet)
		}
		p.keys[c.key] = child
		return
	}
	if p.indices == nil {
		p.indices = make(map[int]*PathSet)
	}
	p.indices[c.index] = child
}

// Key returns the subset of p rooted at the named key, or an empty PathSet
// if key is not present at the top level.
func (p *PathSet) Key(name string) *PathSet {
	if s := p.at(KeyComponent(name)); s != nil {
		return s
	}
	return nil
}

// Index returns the subset of p rooted at the given array index, or an
// empty PathSet if the index is not present at the top level.
func (p *PathSet) Index(i int) *PathSet {
	if s := p.at(IndexComponent(i)); s != nil {
		return s
	}
	return nil
}

// Components enumerates the top-level components present in p.
func (p *PathSet) Components() []Component {
	if p == nil {
		return nil
	}
	out := make([]Component, 0, len(p.keys)+len(p.indices))
	for k := range p.keys {
		out = append(out, KeyComponent(k))
	}
	for i := range p.indices {
		out = append(out, IndexComponent(i))
	}
	return out
}

// TopLevelKeys returns the key components at the root of p as a set,
// suitable for passing to WithTopLevelKeys. Decode's topLevelKeys parameter
// is exactly this flat specialization of a PathSet (spec.md §4.10).
func (p *PathSet) TopLevelKeys() mapset.Set[string] {
	s := mapset.New[string]()
	if p == nil {
		return s
	}
	for k := range p.keys {
		s.Add(k)
	}
	return s
}
