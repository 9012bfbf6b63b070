// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a region quadtree which narrows the set of
// items that could plausibly collide with a query region.
//
// The tree stores references to caller-owned items, each of which
// exposes an axis-aligned Region. Nodes subdivide lazily into four
// equal quadrants once they hold more than a configured number of
// items, and an item only moves into a quadrant when it fits strictly
// inside it. Items straddling a midline stay at the coarser node, so a
// retrieval never misses an overlapping item, at the cost of returning
// extra candidates. Retrieval results are candidates, not collisions:
// callers re-test them geometrically.
//
// A Tree is not safe for concurrent use. Wrap it in a Locked if more
// than one goroutine needs it.
package quadtree
