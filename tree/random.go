// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tree

import (
	"math/rand"

	"cloudeng.io/algo/container/heap"
)

type leaf int32

func (l leaf) Less(x leaf) bool { return l < x }

// Random returns a tree drawn uniformly at random from the set of all
// trees on n nodes, labeled 0 to n-1, rooted at node 0 and ordered by
// the traversal that discovered each child. The tree is generated by
// decoding a uniformly random Prüfer sequence; decoding always joins
// the smallest available leaf, so a seeded rng yields a reproducible
// tree.
func Random(n int, rng *rand.Rand) (*Node[int], error) {
	if n <= 0 {
		return nil, ErrEmptyTree
	}
	nodes := make([]*Node[int], n)
	for i := range nodes {
		nodes[i] = &Node[int]{Label: i}
	}
	if n == 1 {
		return nodes[0], nil
	}

	prufer := make([]int32, n-2)
	for i := range prufer {
		prufer[i] = int32(rng.Intn(n))
	}
	degree := make([]int32, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, s := range prufer {
		degree[s]++
	}
	var leaves heap.Heap[leaf]
	for i := 0; i < n; i++ {
		if degree[i] == 1 {
			leaves.Push(leaf(i))
		}
	}
	adj := make([][]int32, n)
	addEdge := func(u, v int32) {
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for _, s := range prufer {
		l := int32(leaves.Pop())
		addEdge(l, s)
		degree[s]--
		if degree[s] == 1 {
			leaves.Push(leaf(s))
		}
	}
	u := int32(leaves.Pop())
	v := int32(leaves.Pop())
	addEdge(u, v)

	// Orient the edges away from node 0.
	visited := make([]bool, n)
	var orient func(i int32)
	orient = func(i int32) {
		visited[i] = true
		for _, j := range adj[i] {
			if !visited[j] {
				nodes[i].Children = append(nodes[i].Children, nodes[j])
				orient(j)
			}
		}
	}
	orient(0)
	return nodes[0], nil
}
