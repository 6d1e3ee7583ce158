package store

import (
	"iter"
	"strings"
)

// cursor yields the entries of one store.
type cursor interface {
	next() (Entry, bool)
	// clone returns an independent cursor at the same position.
	clone() cursor
}

// Iter is a lazy, single-pass iterator over entries. Internally it is a
// cons-list of cursors: each node drains its own cursor before moving on to
// the rest, which lets an arbitrarily long causal chain be traversed in one
// pass without collecting intermediate slices.
//
// A nil *Iter is a valid empty iterator.
type Iter struct {
	cur  cursor
	rest *Iter
}

// EmptyIter returns an iterator that yields nothing.
func EmptyIter() *Iter { return &Iter{} }

func newIter(c cursor) *Iter { return &Iter{cur: c} }

// Next returns the next entry, or false once every composed part is drained.
func (it *Iter) Next() (Entry, bool) {
	if it == nil {
		return nil, false
	}
	for {
		if it.cur != nil {
			if e, ok := it.cur.next(); ok {
				return e, true
			}
			it.cur = nil
		}
		if it.rest == nil {
			return nil, false
		}
		*it = *it.rest
	}
}

// Compose returns a new iterator yielding the remaining entries of it, then
// those of other. Either side may be nil. it is left untouched and can be
// composed again; other is consumed by the result.
func (it *Iter) Compose(other *Iter) *Iter {
	if it == nil {
		return other
	}
	if other == nil {
		return it
	}
	head := &Iter{}
	tail := head
	for n := it; n != nil; n = n.rest {
		if n.cur == nil {
			continue
		}
		tail.rest = &Iter{cur: n.cur.clone()}
		tail = tail.rest
	}
	tail.rest = other
	return head
}

// All adapts the iterator to a range-over-func sequence. Ranging consumes it.
func (it *Iter) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for {
			e, ok := it.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *Iter) Collect() []Entry {
	var out []Entry
	for e := range it.All() {
		out = append(out, e)
	}
	return out
}

// Count drains the iterator and returns how many entries it yielded.
func (it *Iter) Count() int {
	n := 0
	for range it.All() {
		n++
	}
	return n
}

// Join drains it and renders the entries comma-separated, e.g.
// `a = "1", b = 2`.
func Join(it *Iter) string {
	var sb strings.Builder
	for entry := range it.All() {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(entry.String())
	}
	return sb.String()
}

// sliceCursor walks a store's backing slice.
type sliceCursor[E Entry] struct {
	items []E
	pos   int
}

func (c *sliceCursor[E]) clone() cursor {
	cp := *c
	return &cp
}

func (c *sliceCursor[E]) next() (Entry, bool) {
	if c.pos >= len(c.items) {
		return nil, false
	}
	e := c.items[c.pos]
	c.pos++
	return e, true
}
