// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tree

import (
	"cloudeng.io/subtree/balanced"
)

// Common represents the largest common ordered subtree of two trees:
// the two forests, one drawn from each input, whose nodes correspond
// position by position, and the score of the correspondence.
type Common[L comparable] struct {
	Score float64
	A, B  []*Node[L]
}

type config[L comparable] struct {
	labelAff func(a, b L) float64
	maxDepth int
}

// Option represents an option accepted by the common subtree
// computations.
type Option[L comparable] func(*config[L])

// WithLabelAffinity sets the function used to score the pairing of two
// node labels; pairings that score zero are never made. The default
// scores 1 for equal labels and 0 otherwise. Pass a function that
// always returns 1 to match on shape alone.
func WithLabelAffinity[L comparable](aff func(a, b L) float64) Option[L] {
	return func(c *config[L]) {
		c.labelAff = aff
	}
}

// WithMaxDepth bounds the recursion depth of the underlying sequence
// computation; see cloudeng.io/subtree/balanced.WithMaxDepth.
func WithMaxDepth[L comparable](n int) Option[L] {
	return func(c *config[L]) {
		c.maxDepth = n
	}
}

// MaximumCommonEmbedding returns the largest common embedded subtree of
// t1 and t2. An embedding may contract edges of either input: a node
// can correspond to a descendant position, so ancestry is preserved but
// adjacency need not be. The result can be a forest even though the
// inputs are trees, since the matched nodes need not include the roots.
func MaximumCommonEmbedding[L comparable](t1, t2 *Node[L], opts ...Option[L]) (Common[L], error) {
	return common(t1, t2, false, opts)
}

// MaximumCommonIsomorphism returns the largest common subtree of t1 and
// t2 under isomorphism rules: parent/child adjacency is preserved below
// matched nodes, only whole subtrees and leading ancestors may be
// discarded.
func MaximumCommonIsomorphism[L comparable](t1, t2 *Node[L], opts ...Option[L]) (Common[L], error) {
	return common(t1, t2, true, opts)
}

func common[L comparable](t1, t2 *Node[L], iso bool, opts []Option[L]) (Common[L], error) {
	if t1 == nil || t2 == nil {
		return Common[L]{}, ErrEmptyTree
	}
	cfg := config[L]{
		labelAff: balanced.StrictEquality[L],
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	seq1, nodes1, pairs := Encode(t1)
	seq2, nodes2, pairs2 := Encode(t2)
	for open, cl := range pairs2 {
		pairs[open] = cl
	}
	// Tokens name node serials, so label affinity lifts to token
	// affinity by table lookup: the first token is always drawn from
	// seq1 and the second from seq2.
	aff := func(a, b int32) float64 {
		return cfg.labelAff(nodes1[a/2].Label, nodes2[b/2].Label)
	}
	m, err := balanced.NewMatcher(pairs,
		balanced.WithAffinity[int32](aff),
		balanced.WithMaxDepth[int32](cfg.maxDepth))
	if err != nil {
		return Common[L]{}, err
	}
	var r balanced.Result[int32]
	if iso {
		r, err = m.LongestCommonIsomorphism(seq1, seq2)
	} else {
		r, err = m.LongestCommonEmbedding(seq1, seq2)
	}
	if err != nil {
		return Common[L]{}, err
	}
	return Common[L]{
		Score: r.Score,
		A:     Decode(r.A, nodes1),
		B:     Decode(r.B, nodes2),
	}, nil
}
