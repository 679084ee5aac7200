// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced

import "fmt"

// decomp is the decomposition of a non-empty balanced span at the close
// matching its first open: a is the first token, b its matching close,
// head the tokens strictly between them and tail the tokens after.
// headTail is materialized lazily since the isomorphism recursion never
// contracts a root pair and so never needs it.
type decomp[T comparable] struct {
	a, b     T
	head     span[T]
	tail     span[T]
	headTail span[T]
	hasHT    bool
}

// decompose splits s at the close matching s[0], memoized by view
// identity. Each distinct sub-view is scanned at most once.
func (se *session[T]) decompose(s span[T]) (*decomp[T], error) {
	k := s.key()
	if d, ok := se.decomps[k]; ok {
		return d, nil
	}
	a := s.toks[0]
	want, ok := se.alpha.CloseOf(a)
	if !ok {
		return nil, fmt.Errorf("%w: %v at offset %v is not an open", ErrUnbalanced, a, s.off)
	}
	// Scan forward from depth 1; the matching close is the first token
	// at which the depth returns to zero and which pairs with a.
	closeIdx := -1
	depth := 1
	for i := 1; i < len(s.toks); i++ {
		t := s.toks[i]
		if se.alpha.IsOpen(t) {
			depth++
			continue
		}
		depth--
		if depth == 0 {
			if t != want {
				break
			}
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return nil, fmt.Errorf("%w: no close matching %v at offset %v", ErrUnbalanced, a, s.off)
	}
	d := &decomp[T]{
		a:    a,
		b:    want,
		head: s.slice(1, closeIdx),
		tail: s.slice(closeIdx+1, len(s.toks)),
	}
	se.decomps[k] = d
	return d, nil
}

// headTail returns the concatenation of d's head and tail, materializing
// it into a fresh session-owned buffer on first use. The concatenation
// needs its own backing storage because the recursion slices into it.
func (se *session[T]) headTail(d *decomp[T]) span[T] {
	if !d.hasHT {
		d.headTail = se.join(d.head.toks, d.tail.toks)
		d.hasHT = true
	}
	return d.headTail
}
