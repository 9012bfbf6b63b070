// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree_test

import (
	"fmt"

	"github.com/gogama/quadtree"
)

// A Body is a caller-owned item. The tree only ever sees its Region.
type Body struct {
	Name string
	Rect quadtree.Region
}

func (b *Body) Region() quadtree.Region {
	return b.Rect
}

func (b *Body) String() string {
	return b.Name
}

func ExampleNew() {
	tree := quadtree.New(quadtree.NewRegion(0, 0, 100, 100), quadtree.Config{ObjectPerQuad: 1, MaxDepth: 10})

	fmt.Println(tree)
	// Output: Tree{Bounds:[0,0,100,100],Len:0,ObjectPerQuad:1,MaxDepth:10}
}

func ExampleTree_Retrieve() {
	tree := quadtree.NewDefault(quadtree.NewRegion(0, 0, 100, 100))
	a := &Body{"A", quadtree.NewRegion(10, 10, 5, 5)}
	b := &Body{"B", quadtree.NewRegion(80, 80, 5, 5)}
	c := &Body{"C", quadtree.NewRegion(45, 10, 20, 5)} // Straddles x=50.
	tree.InsertAll(a, b, c)

	query := &Body{"Q", quadtree.NewRegion(8, 8, 4, 4)}
	candidates := tree.Retrieve(nil, query)
	fmt.Println("Candidates:", candidates)

	// Candidates must be re-tested to find real collisions.
	for _, item := range candidates {
		if item.Region().Intersects(query.Region()) {
			fmt.Println("Collides:", item)
		}
	}
	// Output: Candidates: [A C]
	// Collides: A
}

func ExampleTree_Rebuild() {
	tree := quadtree.NewDefault(quadtree.NewRegion(0, 0, 100, 100))
	a := &Body{"A", quadtree.NewRegion(5, 10, 5, 5)}
	b := &Body{"B", quadtree.NewRegion(80, 80, 5, 5)}
	bodies := []quadtree.Item{a, b}

	for step := 0; step < 3; step++ {
		a.Rect.Translate(20, 0)
		b.Rect.Translate(20, 0)
		tree.Rebuild(bodies)

		root := tree.Root()
		fmt.Println(step, root.Items(), root.Child(quadtree.TopLeft).Items(), root.Child(quadtree.TopRight).Items())
	}
	// Output: 0 [] [A] []
	// 1 [A] [] []
	// 2 [] [] [A]
}

func ExampleTree_Stats() {
	tree := quadtree.New(quadtree.NewRegion(0, 0, 100, 100), quadtree.Config{ObjectPerQuad: 1, MaxDepth: 3})
	for i := 0; i < 5; i++ {
		tree.Insert(&Body{fmt.Sprint(i), quadtree.NewRegion(1, 1, 0, 0)})
	}

	fmt.Printf("%+v\n", tree.Stats())
	// Output: {Nodes:13 Leaves:10 Items:5 Depth:3 Occupancy:[0 0 0 5]}
}

func ExampleRegion_Corners() {
	r := quadtree.NewRegion(0, 0, 2, 1)

	fmt.Println(r.Corners())
	// Output: [(0,0) (0,1) (2,1) (2,0)]
}
