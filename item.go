// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// An Item is anything which can report the region it occupies.
//
// A Tree holds Item values as non-owning references: it never copies
// or inspects anything other than the Region. Implement Item on a
// pointer type so that the tree refers to the caller's value rather
// than a copy of it. Region is consulted whenever the tree classifies
// the item, so an item must not move while it is stored; rebuild the
// tree after moving items instead.
type Item interface {
	Region() Region
}
