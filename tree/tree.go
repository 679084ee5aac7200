// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tree provides ordered rooted trees and algorithms for finding
// the largest common ordered subtree of two trees, under either
// embedding (ancestry preserving) or isomorphism (adjacency preserving)
// rules. Trees are encoded as balanced token sequences and the heavy
// lifting is done by cloudeng.io/subtree/balanced.
package tree

import "errors"

// ErrEmptyTree is returned when an operation that requires a non-empty
// tree is given a nil root or a node count of zero.
var ErrEmptyTree = errors.New("empty tree")

// Node is a node in an ordered rooted tree. The order of Children is
// significant.
type Node[L comparable] struct {
	Label    L
	Children []*Node[L]
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node[L]) Size() int {
	if n == nil {
		return 0
	}
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

// Encode returns the balanced sequence encoding of the supplied forest.
// Nodes are numbered in depth first pre-order; node i contributes the
// open token 2i and the close token 2i+1, so every node has a token
// pair of its own and the returned pairing is injective by
// construction. The returned node slice maps serial numbers back to
// nodes: nodes[t/2] is the node that contributed token t.
func Encode[L comparable](roots ...*Node[L]) ([]int32, []*Node[L], map[int32]int32) {
	var seq []int32
	var nodes []*Node[L]
	pairs := map[int32]int32{}
	var visit func(n *Node[L])
	visit = func(n *Node[L]) {
		serial := int32(len(nodes))
		nodes = append(nodes, n)
		open, cl := 2*serial, 2*serial+1
		pairs[open] = cl
		seq = append(seq, open)
		for _, c := range n.Children {
			visit(c)
		}
		seq = append(seq, cl)
	}
	for _, r := range roots {
		if r != nil {
			visit(r)
		}
	}
	return seq, nodes, pairs
}

// Decode rebuilds a forest from a balanced sequence produced by Encode,
// or from any balanced subsequence of one, such as the outputs of the
// common subtree computations. The rebuilt nodes are fresh and carry
// the labels of the nodes the tokens were drawn from.
func Decode[L comparable](seq []int32, nodes []*Node[L]) []*Node[L] {
	var roots []*Node[L]
	var open []*Node[L]
	for _, tok := range seq {
		if tok%2 == 0 {
			n := &Node[L]{Label: nodes[tok/2].Label}
			if len(open) == 0 {
				roots = append(roots, n)
			} else {
				parent := open[len(open)-1]
				parent.Children = append(parent.Children, n)
			}
			open = append(open, n)
			continue
		}
		open = open[:len(open)-1]
	}
	return roots
}
