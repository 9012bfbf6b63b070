// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// Point is a position on the plane.
type Point struct {
	X float64
	Y float64
}

// Region is an axis-aligned rectangle given by its corner (X, Y) and
// its extent. The extent is fixed at construction, but the position
// fields may be changed directly so that the same Region can track a
// moving item.
//
// Regions serve both as the spatial partitions of a Tree and as the
// bounding boxes of the items stored in it. Zero-area regions are
// allowed.
type Region struct {
	// X is the horizontal coordinate of the region's corner.
	X float64
	// Y is the vertical coordinate of the region's corner.
	Y float64

	w, h float64
}

// NewRegion returns the region with corner (x, y) and the given width
// and height.
func NewRegion(x, y, width, height float64) Region {
	return Region{X: x, Y: y, w: width, h: height}
}

// NewRegionAt returns the region with corner p and the given width and
// height.
func NewRegionAt(p Point, width, height float64) Region {
	return NewRegion(p.X, p.Y, width, height)
}

// Width returns the region's horizontal extent.
func (r Region) Width() float64 {
	return r.w
}

// Height returns the region's vertical extent.
func (r Region) Height() float64 {
	return r.h
}

// Position returns the region's corner.
func (r Region) Position() Point {
	return Point{r.X, r.Y}
}

// Translate moves the region by (dx, dy) without changing its extent.
func (r *Region) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Corners returns the four corners of the region in clockwise order
// starting from the bottom-left corner, with Y increasing upward:
// (X, Y), (X, Y+Height), (X+Width, Y+Height), (X+Width, Y).
func (r Region) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X, r.Y + r.h},
		{r.X + r.w, r.Y + r.h},
		{r.X + r.w, r.Y},
	}
}

// Intersects reports whether r and o overlap. Regions which only touch
// along an edge or at a corner are considered to overlap.
//
// Intersects is the exact test callers apply to the candidates returned
// by Tree.Retrieve.
func (r Region) Intersects(o Region) bool {
	return r.X <= o.X+o.w && o.X <= r.X+r.w &&
		r.Y <= o.Y+o.h && o.Y <= r.Y+r.h
}

func (r Region) midX() float64 {
	return r.X + r.w/2
}

func (r Region) midY() float64 {
	return r.Y + r.h/2
}

// quarter returns the quadrant q of r, each quarter having half the
// width and half the height of r.
func (r Region) quarter(q Quadrant) Region {
	w, h := r.w/2, r.h/2
	switch q {
	case TopRight:
		return Region{X: r.X + w, Y: r.Y, w: w, h: h}
	case TopLeft:
		return Region{X: r.X, Y: r.Y, w: w, h: h}
	case BottomLeft:
		return Region{X: r.X, Y: r.Y + h, w: w, h: h}
	case BottomRight:
		return Region{X: r.X + w, Y: r.Y + h, w: w, h: h}
	default:
		fmtPanic("no quarter for quadrant %s", q)
		return Region{}
	}
}
