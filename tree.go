// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// Tree is a region quadtree over a fixed root region.
//
// The typical use is to Clear the tree, or Rebuild it, once per time
// step, inserting every item at its current position, and then to call
// Retrieve once per item to obtain its collision candidates. Items
// cannot be removed or moved individually.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root *Node
	cfg  *Config
	n    int
}

// New creates an empty tree over the root region using the given
// subdivision policy. Panics if cfg is invalid.
func New(root Region, cfg Config) *Tree {
	cfg.mustValidate()
	c := cfg
	return &Tree{
		root: newNode(0, root, &c),
		cfg:  &c,
	}
}

// NewDefault creates an empty tree over the root region using
// DefaultConfig.
func NewDefault(root Region) *Tree {
	return New(root, DefaultConfig())
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Bounds returns the region governed by the root node.
func (t *Tree) Bounds() Region {
	return t.root.region
}

// Len returns the number of items inserted since the tree was created
// or last cleared. An item inserted twice is counted twice.
func (t *Tree) Len() int {
	return t.n
}

// Config returns the tree's current subdivision policy.
func (t *Tree) Config() Config {
	return *t.cfg
}

// SetObjectPerQuad changes the soft node capacity. The change applies
// to subsequent inserts only; existing structure is left as it is until
// the tree is cleared and refilled. Panics if n is less than 1.
func (t *Tree) SetObjectPerQuad(n int) {
	c := *t.cfg
	c.ObjectPerQuad = n
	c.mustValidate()
	*t.cfg = c
}

// SetMaxDepth changes the maximum node level. The change applies to
// subsequent inserts only: nodes already deeper than d are not removed
// until the tree is cleared. Panics if d is negative.
func (t *Tree) SetMaxDepth(d int) {
	c := *t.cfg
	c.MaxDepth = d
	c.mustValidate()
	*t.cfg = c
}

// Insert adds a reference to item to the tree. Inserting the same item
// twice stores two references to it.
func (t *Tree) Insert(item Item) {
	if item == nil {
		textPanic("nil item")
	}
	t.root.insert(item)
	t.n++
}

// InsertAll inserts each of the items in order.
func (t *Tree) InsertAll(items ...Item) {
	for _, item := range items {
		t.Insert(item)
	}
}

// Retrieve appends to dst the items which could overlap query's region
// and returns the extended slice.
//
// The result is a candidate set, not a collision set: it contains every
// stored item whose region overlaps query's region, plus items held at
// coarser nodes along the way which may not. Where query fits strictly
// inside a quadrant only that quadrant is searched; where it straddles
// a midline, every quadrant it overlaps is searched. The result may
// contain query itself, if it is stored in the tree, and repeats an
// item once per time it was inserted. Callers should re-test the
// candidates exactly, for example with Region.Intersects.
func (t *Tree) Retrieve(dst []Item, query Item) []Item {
	return t.root.retrieve(dst, query.Region())
}

// RetrieveRegion is like Retrieve but takes the query region directly.
func (t *Tree) RetrieveRegion(dst []Item, r Region) []Item {
	return t.root.retrieve(dst, r)
}

// RetrievePath appends to dst the items held along the single path from
// the root down through the quadrants query fits strictly inside, and
// returns the extended slice.
//
// RetrievePath visits at most MaxDepth+1 nodes. The price is precision:
// when query straddles a midline, items stored purely inside the
// quadrants on either side are not returned even if they overlap
// query. Use Retrieve unless that trade-off is acceptable.
func (t *Tree) RetrievePath(dst []Item, query Item) []Item {
	return t.root.retrievePath(dst, query.Region())
}

// Clear removes every item from the tree and discards all nodes below
// the root, leaving the root an empty leaf. References previously
// returned by Retrieve remain valid as caller data.
func (t *Tree) Clear() {
	t.root.clear()
	t.n = 0
}

// Rebuild clears the tree and inserts items in order. It is the
// wholesale refresh to use after items have moved or after the policy
// has changed.
func (t *Tree) Rebuild(items []Item) {
	t.Clear()
	t.InsertAll(items...)
}
