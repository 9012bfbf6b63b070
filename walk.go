// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// Walk visits every node of the tree depth first, parents before
// children and children in Quadrant order. If fn returns false the
// children of the node it was called with are skipped.
//
// fn must not modify the tree.
func (t *Tree) Walk(fn func(n *Node) bool) {
	walk(t.root, fn)
}

func walk(n *Node, fn func(n *Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		walk(c, fn)
	}
}

// Stats summarises the shape of a Tree.
type Stats struct {
	// Nodes is the total number of nodes, including the root.
	Nodes int `json:"nodes"`
	// Leaves is the number of nodes without children.
	Leaves int `json:"leaves"`
	// Items is the number of item references held across all nodes.
	Items int `json:"items"`
	// Depth is the largest node level present.
	Depth int `json:"depth"`
	// Occupancy holds, for each level from 0 to Depth, the number of
	// item references held by nodes at that level.
	Occupancy []int `json:"occupancy"`
}

// Stats walks the tree and returns a summary of its shape.
func (t *Tree) Stats() Stats {
	var s Stats
	t.Walk(func(n *Node) bool {
		s.Nodes++
		if n.IsLeaf() {
			s.Leaves++
		}
		s.Items += len(n.items)
		for len(s.Occupancy) <= n.level {
			s.Occupancy = append(s.Occupancy, 0)
		}
		s.Occupancy[n.level] += len(n.items)
		if n.level > s.Depth {
			s.Depth = n.level
		}
		return true
	})
	return s
}
