// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"fmt"
	"strconv"
)

func appendFloat(b []byte, f float64) []byte {
	return strconv.AppendFloat(b, f, 'g', 8, 64)
}

// String returns the point formatted as "(X,Y)".
func (p Point) String() string {
	b := make([]byte, 0, 24)
	b = append(b, '(')
	b = appendFloat(b, p.X)
	b = append(b, ',')
	b = appendFloat(b, p.Y)
	b = append(b, ')')
	return string(b)
}

// String returns the region formatted as "[X,Y,Width,Height]".
func (r Region) String() string {
	b := make([]byte, 0, 48)
	b = append(b, '[')
	b = appendFloat(b, r.X)
	b = append(b, ',')
	b = appendFloat(b, r.Y)
	b = append(b, ',')
	b = appendFloat(b, r.w)
	b = append(b, ',')
	b = appendFloat(b, r.h)
	b = append(b, ']')
	return string(b)
}

var quadrantNames = [...]string{"None", "TopRight", "TopLeft", "BottomLeft", "BottomRight"}

func (q Quadrant) String() string {
	if q >= None && q <= BottomRight {
		return quadrantNames[q+1]
	}
	return "Quadrant(" + strconv.Itoa(int(q)) + ")"
}

// String returns a summary description of the node.
func (n *Node) String() string {
	return fmt.Sprintf("Node{Level:%d,Region:%s,Items:%d,Leaf:%t}", n.level, n.region, len(n.items), n.IsLeaf())
}

// String returns a summary description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{Bounds:%s,Len:%d,ObjectPerQuad:%d,MaxDepth:%d}", t.root.region, t.n, t.cfg.ObjectPerQuad, t.cfg.MaxDepth)
}
