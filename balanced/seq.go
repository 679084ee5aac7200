// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced

import "fmt"

// span is a borrowed, non-owning window over an immutable token buffer.
// Spans are compared by identity, ie. by (backing buffer, offset, length)
// and never by content; two equal-content windows over different buffers
// must not collide in the caches. Go slices have no stable address
// identity, so backing buffers are interned per session and identified
// by a small integer.
type span[T comparable] struct {
	toks []T
	id   int32
	off  int32
}

// viewKey is the identity of a span, used as the cache key for
// decompositions and as half of a memo key.
type viewKey struct {
	id  int32
	off int32
	n   int32
}

// pairKey is the memo key for an ordered pair of spans.
type pairKey struct {
	a, b viewKey
}

func (s span[T]) len() int {
	return len(s.toks)
}

func (s span[T]) key() viewKey {
	return viewKey{id: s.id, off: s.off, n: int32(len(s.toks))}
}

// slice returns the sub-window [i..j) over the same backing buffer.
func (s span[T]) slice(i, j int) span[T] {
	return span[T]{toks: s.toks[i:j], id: s.id, off: s.off + int32(i)}
}

// session holds the per-call state of one top-level computation: the
// buffer identity counter, the decomposition cache and the memo tables.
// Sessions are single threaded and are discarded wholesale once the
// winning outputs have been cloned, which releases every intermediate
// buffer at once.
type session[T comparable] struct {
	alpha *Alphabet[T]
	aff   Affinity[T]

	nextID   int32
	decomps  map[viewKey]*decomp[T]
	embed    map[pairKey]result[T]
	anchored map[pairKey]result[T]
	floating map[pairKey]result[T]

	maxDepth int
	depth    int
}

// result is a memoized triple: the score and the two aligned output
// sequences, as spans over session-owned buffers.
type result[T comparable] struct {
	score float64
	a, b  span[T]
}

func newSession[T comparable](alpha *Alphabet[T], aff Affinity[T], maxDepth int) *session[T] {
	return &session[T]{
		alpha:    alpha,
		aff:      aff,
		decomps:  make(map[viewKey]*decomp[T]),
		embed:    make(map[pairKey]result[T]),
		anchored: make(map[pairKey]result[T]),
		floating: make(map[pairKey]result[T]),
		maxDepth: maxDepth,
	}
}

// intern registers a freshly materialized buffer with the session and
// returns a span covering all of it.
func (se *session[T]) intern(toks []T) span[T] {
	s := span[T]{toks: toks, id: se.nextID}
	se.nextID++
	return s
}

// empty returns the canonical empty span. Every span returned by empty
// shares one identity; empty sub-slices keep the identity of their
// window. The recursion never decomposes or memoizes empty spans.
func (se *session[T]) empty() span[T] {
	return span[T]{id: -1}
}

// join materializes the concatenation of the supplied windows into a
// fresh session-owned buffer.
func (se *session[T]) join(parts ...[]T) span[T] {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]T, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return se.intern(buf)
}

func (se *session[T]) enter() error {
	se.depth++
	if se.maxDepth > 0 && se.depth > se.maxDepth {
		return fmt.Errorf("%w: recursion depth limit %v exceeded", ErrResourceExhausted, se.maxDepth)
	}
	return nil
}

func (se *session[T]) leave() {
	se.depth--
}
