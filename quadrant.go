// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// A Quadrant identifies one of the four children of a split node, or
// None for a region which does not fit strictly inside any of them.
//
// The numeric value of each quadrant other than None is the index of
// the corresponding child. "Top" refers to the half with the smaller Y
// coordinates.
type Quadrant int

const (
	// None means the region straddles a midline of the node, or lies
	// exactly on one, and therefore stays at the node itself.
	None Quadrant = iota - 1
	// TopRight is the quadrant with larger X and smaller Y.
	TopRight
	// TopLeft is the quadrant with smaller X and smaller Y.
	TopLeft
	// BottomLeft is the quadrant with smaller X and larger Y.
	BottomLeft
	// BottomRight is the quadrant with larger X and larger Y.
	BottomRight
)

const numQuadrants = 4

// Classify returns the quadrant of node that r fits strictly inside, or
// None if there is no such quadrant.
//
// A region fits the left half of node only if both its left and right
// edges are strictly less than the vertical midline, and fits the right
// half only if its left edge is strictly greater than the midline. The
// top and bottom halves are decided in the same way against the
// horizontal midline using the Y extent. Touching a midline is enough
// to disqualify a region from both halves.
func Classify(node, r Region) Quadrant {
	vmid, hmid := node.midX(), node.midY()

	top := r.Y < hmid && r.Y+r.h < hmid
	bottom := r.Y > hmid

	if r.X < vmid && r.X+r.w < vmid {
		if top {
			return TopLeft
		} else if bottom {
			return BottomLeft
		}
	} else if r.X > vmid {
		if top {
			return TopRight
		} else if bottom {
			return BottomRight
		}
	}

	return None
}

// reach reports, for each quadrant of node, whether r could overlap an
// item which Classify assigned to that quadrant. The halves are treated
// as unbounded, so items lying outside node's region are accounted for.
func reach(node, r Region) (q [numQuadrants]bool) {
	vmid, hmid := node.midX(), node.midY()

	left := r.X < vmid
	right := r.X+r.w > vmid
	top := r.Y < hmid
	bottom := r.Y+r.h > hmid

	q[TopRight] = right && top
	q[TopLeft] = left && top
	q[BottomLeft] = left && bottom
	q[BottomRight] = right && bottom
	return
}
