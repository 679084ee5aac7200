// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package balanced provides dynamic programming implementations for
// finding the longest common subsequence of two balanced, parenthesis
// like, token sequences, under either embedding (root pairs may be
// contracted away) or subtree-isomorphism (whole subtrees are skipped)
// rules. Balanced sequences encode ordered labeled trees, so these
// algorithms recover the largest common ordered subtree of two trees;
// the tree-facing surface lives in cloudeng.io/subtree/tree.
package balanced

import (
	"fmt"

	"cloudeng.io/errors"
)

// Matcher holds a validated alphabet and the match configuration and
// can be reused across any number of computations. Each computation
// runs with its own private caches; a Matcher is safe for concurrent
// use by multiple goroutines.
type Matcher[T comparable] struct {
	alpha    *Alphabet[T]
	aff      Affinity[T]
	maxDepth int
}

// Option represents an option accepted by NewMatcher.
type Option[T comparable] func(*Matcher[T])

// WithAffinity sets the affinity used to score pairings of open tokens.
// The default is StrictEquality.
func WithAffinity[T comparable](aff Affinity[T]) Option[T] {
	return func(m *Matcher[T]) {
		m.aff = aff
	}
}

// WithMaxDepth bounds the recursion depth; computations that exceed it
// fail with ErrResourceExhausted. A value of zero, the default, imposes
// no bound. The recursion can reach a depth proportional to the input
// length.
func WithMaxDepth[T comparable](n int) Option[T] {
	return func(m *Matcher[T]) {
		m.maxDepth = n
	}
}

// Result represents the outcome of a computation: the two aligned
// output sequences, one embeddable in each input, and their score. A
// and B are balanced, have the same length and are aligned token by
// token; the score is the sum of the affinities of their aligned open
// pairs.
type Result[T comparable] struct {
	Score float64
	A, B  []T
}

// NewMatcher returns a Matcher for the supplied open-to-close pairing.
func NewMatcher[T comparable](pairs map[T]T, opts ...Option[T]) (*Matcher[T], error) {
	alpha, err := NewAlphabet(pairs)
	if err != nil {
		return nil, err
	}
	m := &Matcher[T]{alpha: alpha, aff: StrictEquality[T]}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// LongestCommonEmbedding returns the maximum-affinity common balanced
// subsequence of s1 and s2 under embedding rules: a candidate may skip
// the first open/close pair of either input, contracting the pair away
// and splicing its interior into the sibling level, or pair the two
// first opens with each other. Both inputs must be balanced over the
// Matcher's alphabet.
func (m *Matcher[T]) LongestCommonEmbedding(s1, s2 []T) (Result[T], error) {
	return m.run(s1, s2, (*session[T]).lcse)
}

// LongestCommonIsomorphism returns the maximum-affinity common balanced
// subsequence of s1 and s2 under subtree-isomorphism rules: skipping
// discards whole subtrees and never contracts a pair, so parent/child
// adjacency is preserved below matched roots.
func (m *Matcher[T]) LongestCommonIsomorphism(s1, s2 []T) (Result[T], error) {
	return m.run(s1, s2, (*session[T]).lcsi)
}

func (m *Matcher[T]) run(s1, s2 []T, recurse func(*session[T], span[T], span[T]) (result[T], error)) (Result[T], error) {
	errs := &errors.M{}
	if err := m.alpha.Check(s1); err != nil {
		errs.Append(fmt.Errorf("first input: %w", err))
	}
	if err := m.alpha.Check(s2); err != nil {
		errs.Append(fmt.Errorf("second input: %w", err))
	}
	if err := errs.Err(); err != nil {
		return Result[T]{}, err
	}
	se := newSession(m.alpha, m.aff, m.maxDepth)
	r, err := recurse(se, se.intern(s1), se.intern(s2))
	if err != nil {
		return Result[T]{}, err
	}
	// Clone the winning outputs so that the session and every
	// intermediate buffer it owns can be dropped.
	out := Result[T]{
		Score: r.score,
		A:     append(make([]T, 0, r.a.len()), r.a.toks...),
		B:     append(make([]T, 0, r.b.len()), r.b.toks...),
	}
	return out, nil
}
