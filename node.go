// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// A Node is a single node of a Tree. It governs a region of the plane,
// holds the items which could not be pushed further down, and has
// either no children or exactly four, one per Quadrant.
//
// Nodes are created and destroyed by their Tree. The exported methods
// only read a node's state.
type Node struct {
	level  int
	region Region
	// items are the items held at this exact node, in insertion order.
	items []Item
	// children is nil for a leaf, otherwise it has exactly
	// numQuadrants entries indexed by Quadrant.
	children []*Node
	// cfg is shared with the owning Tree so that policy changes apply
	// to the next insert.
	cfg *Config
}

func newNode(level int, region Region, cfg *Config) *Node {
	return &Node{
		level:  level,
		region: region,
		cfg:    cfg,
	}
}

// Level returns the depth of the node. The root is at level 0.
func (n *Node) Level() int {
	return n.level
}

// Region returns the region the node governs.
func (n *Node) Region() Region {
	return n.region
}

// Items returns a copy of the items held at this exact node, in the
// order they arrived. Items held by descendants are not included.
func (n *Node) Items() []Item {
	return append([]Item(nil), n.items...)
}

// NumItems returns the number of items held at this exact node.
func (n *Node) NumItems() int {
	return len(n.items)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Children returns the node's four children indexed by Quadrant, or nil
// if the node is a leaf.
func (n *Node) Children() []*Node {
	if n.children == nil {
		return nil
	}
	return append([]*Node(nil), n.children...)
}

// Child returns the child in quadrant q, or nil if the node is a leaf.
// Panics if q is None or not a valid Quadrant.
func (n *Node) Child(q Quadrant) *Node {
	if q < TopRight || q > BottomRight {
		fmtPanic("invalid child quadrant %s", q)
	}
	if n.children == nil {
		return nil
	}
	return n.children[q]
}

// insert places item in the subtree rooted at n.
//
// If n is already split and the item fits a child, the child takes it.
// Otherwise n holds it, and if n is now over capacity and above the
// depth limit, n splits if necessary and hands every item it holds
// which fits a child down to that child.
func (n *Node) insert(item Item) {
	if n.children != nil {
		if q := Classify(n.region, item.Region()); q != None {
			n.children[q].insert(item)
			return
		}
	}

	n.items = append(n.items, item)

	if len(n.items) > n.cfg.ObjectPerQuad && n.level < n.cfg.MaxDepth {
		if n.children == nil {
			n.split()
		}
		n.redistribute()
	}
}

// A move is an item which redistribute hands down to a child.
type move struct {
	q    Quadrant
	item Item
}

// redistribute pushes down every item held at n which fits strictly
// inside one of n's children. The remaining items keep their relative
// order, and moved items reach each child in their original order.
func (n *Node) redistribute() {
	kept := make([]Item, 0, len(n.items))
	var moves []move
	for _, item := range n.items {
		if q := Classify(n.region, item.Region()); q != None {
			moves = append(moves, move{q, item})
		} else {
			kept = append(kept, item)
		}
	}

	if len(moves) == 0 {
		return
	}

	n.items = kept
	for _, m := range moves {
		n.children[m.q].insert(m.item)
	}
}

// split creates the four children of n, each governing one quarter of
// n's region at the next level down. Panics if n is already split,
// since replacing the children would lose the items they hold.
func (n *Node) split() {
	if n.children != nil {
		textPanic("node is already split")
	}
	n.children = make([]*Node, numQuadrants)
	for i := range n.children {
		n.children[i] = newNode(n.level+1, n.region.quarter(Quadrant(i)), n.cfg)
	}
}

// clear drops every item held in the subtree rooted at n and discards
// all of n's descendants, leaving n an empty leaf.
func (n *Node) clear() {
	for i := range n.items {
		n.items[i] = nil
	}
	n.items = n.items[:0]
	for _, c := range n.children {
		c.clear()
	}
	n.children = nil
}

// retrieve appends to dst the candidates for r held in the subtree
// rooted at n: every stored item whose region overlaps r, plus items
// held along the way which may not. Only children r can reach are
// searched, so a region fitting strictly inside one quadrant visits a
// single child. Deeper candidates come first, followed by the items
// held at n, which are always candidates since they may reach into any
// quadrant.
func (n *Node) retrieve(dst []Item, r Region) []Item {
	if n.children != nil {
		reached := reach(n.region, r)
		for i, c := range n.children {
			if reached[i] {
				dst = c.retrieve(dst, r)
			}
		}
	}
	return append(dst, n.items...)
}

// retrievePath appends to dst the candidates for r found along the
// single path from n down through the children r fits strictly inside.
// Items in children r straddles are not visited.
func (n *Node) retrievePath(dst []Item, r Region) []Item {
	if n.children != nil {
		if q := Classify(n.region, r); q != None {
			dst = n.children[q].retrievePath(dst, r)
		}
	}
	return append(dst, n.items...)
}
