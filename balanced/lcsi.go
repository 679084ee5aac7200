// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced

// lcsi computes the maximum-affinity common balanced subsequence under
// subtree-isomorphism rather than embedding rules: a root pair can never
// be contracted away, so skipping always discards a whole subtree. The
// computation runs in two phases. The floating phase locates the anchor
// by descending into either sequence's first head or tail. Once a pair
// of roots is matched the anchored phase takes over and may only skip
// whole subtrees at the current sibling level, which preserves
// parent/child adjacency below the anchor.
//
// Neither phase contracts a pair, so no head-tail concatenations are
// materialized; the decomposition cache stays purely borrowed.
func (se *session[T]) lcsi(s1, s2 span[T]) (result[T], error) {
	if s1.len() == 0 || s2.len() == 0 {
		return result[T]{a: se.empty(), b: se.empty()}, nil
	}
	k := pairKey{s1.key(), s2.key()}
	if r, ok := se.floating[k]; ok {
		return r, nil
	}
	if err := se.enter(); err != nil {
		return result[T]{}, err
	}
	defer se.leave()

	d1, err := se.decompose(s1)
	if err != nil {
		return result[T]{}, err
	}
	d2, err := se.decompose(s2)
	if err != nil {
		return result[T]{}, err
	}

	best, err := se.lcsi(d1.head, s2)
	if err != nil {
		return result[T]{}, err
	}
	for _, args := range [][2]span[T]{
		{d1.tail, s2},
		{s1, d2.head},
		{s1, d2.tail},
	} {
		cand, err := se.lcsi(args[0], args[1])
		if err != nil {
			return result[T]{}, err
		}
		if cand.score > best.score {
			best = cand
		}
	}
	cand, err := se.lcsiAnchored(d1, d2)
	if err != nil {
		return result[T]{}, err
	}
	if cand.score > best.score {
		best = cand
	}
	se.floating[k] = best
	return best, nil
}

// lcsiSiblings aligns two sibling-level forests: a candidate either
// skips the entire first subtree of one side or matches the two first
// roots and recurses into the heads and tails independently.
func (se *session[T]) lcsiSiblings(s1, s2 span[T]) (result[T], error) {
	if s1.len() == 0 || s2.len() == 0 {
		return result[T]{a: se.empty(), b: se.empty()}, nil
	}
	k := pairKey{s1.key(), s2.key()}
	if r, ok := se.anchored[k]; ok {
		return r, nil
	}
	if err := se.enter(); err != nil {
		return result[T]{}, err
	}
	defer se.leave()

	d1, err := se.decompose(s1)
	if err != nil {
		return result[T]{}, err
	}
	d2, err := se.decompose(s2)
	if err != nil {
		return result[T]{}, err
	}

	best, err := se.lcsiSiblings(d1.tail, s2)
	if err != nil {
		return result[T]{}, err
	}
	cand, err := se.lcsiSiblings(s1, d2.tail)
	if err != nil {
		return result[T]{}, err
	}
	if cand.score > best.score {
		best = cand
	}
	cand, err = se.lcsiAnchored(d1, d2)
	if err != nil {
		return result[T]{}, err
	}
	if cand.score > best.score {
		best = cand
	}
	se.anchored[k] = best
	return best, nil
}

// lcsiAnchored scores the candidate that pairs the two first roots,
// gated on a non-zero affinity.
func (se *session[T]) lcsiAnchored(d1, d2 *decomp[T]) (result[T], error) {
	a := se.aff(d1.a, d2.a)
	if a <= 0 {
		return result[T]{a: se.empty(), b: se.empty()}, nil
	}
	rh, err := se.lcsiSiblings(d1.head, d2.head)
	if err != nil {
		return result[T]{}, err
	}
	rt, err := se.lcsiSiblings(d1.tail, d2.tail)
	if err != nil {
		return result[T]{}, err
	}
	return result[T]{
		score: a + rh.score + rt.score,
		a:     se.join([]T{d1.a}, rh.a.toks, []T{d1.b}, rt.a.toks),
		b:     se.join([]T{d2.a}, rh.b.toks, []T{d2.b}, rt.b.toks),
	}, nil
}
