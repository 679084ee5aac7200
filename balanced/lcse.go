// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package balanced

// lcse computes the maximum-affinity common balanced subsequence of two
// spans. Any common balanced embedding either skips the first open/close
// pair of s1, skips the first pair of s2, or pairs the two first opens
// with each other; the three candidates are evaluated in that order and
// strict comparison retains the earliest maximum. Results are memoized
// by the identity of the ordered span pair.
func (se *session[T]) lcse(s1, s2 span[T]) (result[T], error) {
	if s1.len() == 0 || s2.len() == 0 {
		return result[T]{a: se.empty(), b: se.empty()}, nil
	}
	k := pairKey{s1.key(), s2.key()}
	if r, ok := se.embed[k]; ok {
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

	best, err := se.lcse(se.headTail(d1), s2)
	if err != nil {
		return result[T]{}, err
	}
	cand, err := se.lcse(s1, se.headTail(d2))
	if err != nil {
		return result[T]{}, err
	}
	if cand.score > best.score {
		best = cand
	}
	if a := se.aff(d1.a, d2.a); a > 0 {
		rh, err := se.lcse(d1.head, d2.head)
		if err != nil {
			return result[T]{}, err
		}
		rt, err := se.lcse(d1.tail, d2.tail)
		if err != nil {
			return result[T]{}, err
		}
		if v := a + rh.score + rt.score; v > best.score {
			best = result[T]{
				score: v,
				a:     se.join([]T{d1.a}, rh.a.toks, []T{d1.b}, rt.a.toks),
				b:     se.join([]T{d2.a}, rh.b.toks, []T{d2.b}, rt.b.toks),
			}
		}
	}
	se.embed[k] = best
	return best, nil
}
