// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"sort"

	"github.com/gogama/quadtree"
)

// A Pair is an unordered pair of distinct bodies which the tree named
// as collision candidates. A is the body that comes first in the scene.
type Pair struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Colliding bool   `json:"colliding"`
}

// Pairs queries t once per body of s and returns every distinct pair of
// bodies the tree reports as candidates, each exactly once, ordered by
// the scene position of A and then of B. Colliding is set by testing
// the pair's rectangles exactly.
//
// t must have been built from s's bodies; candidates which are not
// bodies of s are ignored.
func (s *Scene) Pairs(t *quadtree.Tree) []Pair {
	index := make(map[*Body]int, len(s.Bodies))
	for i, b := range s.Bodies {
		index[b] = i
	}

	type key struct{ i, j int }
	seen := make(map[key]bool)
	var keys []key
	var buf []quadtree.Item
	for i, b := range s.Bodies {
		buf = t.Retrieve(buf[:0], b)
		for _, c := range buf {
			o, ok := c.(*Body)
			if !ok {
				continue
			}
			j, ok := index[o]
			if !ok || j == i {
				continue
			}
			k := key{i, j}
			if j < i {
				k = key{j, i}
			}
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	sort.Slice(keys, func(x, y int) bool {
		if keys[x].i != keys[y].i {
			return keys[x].i < keys[y].i
		}
		return keys[x].j < keys[y].j
	})

	pairs := make([]Pair, len(keys))
	for n, k := range keys {
		a, b := s.Bodies[k.i], s.Bodies[k.j]
		pairs[n] = Pair{A: a.ID, B: b.ID, Colliding: a.Rect.Intersects(b.Rect)}
	}
	return pairs
}

// Report summarises one evaluation of a scene.
type Report struct {
	// Bodies is the number of bodies in the scene.
	Bodies int `json:"bodies"`
	// BruteForce is the number of pairs an all-pairs test would check.
	BruteForce int `json:"bruteForce"`
	// Candidates is the number of distinct candidate pairs.
	Candidates int `json:"candidates"`
	// Collisions is the number of candidate pairs which really overlap.
	Collisions int `json:"collisions"`
	// Tree describes the shape of the tree the scene was indexed with.
	Tree quadtree.Stats `json:"tree"`
	// Pairs lists the candidate pairs.
	Pairs []Pair `json:"pairs,omitempty"`
}

// Evaluate builds a tree from s and reports its candidate pairs.
func (s *Scene) Evaluate() Report {
	t := s.Build()
	pairs := s.Pairs(t)
	n := len(s.Bodies)
	r := Report{
		Bodies:     n,
		BruteForce: n * (n - 1) / 2,
		Candidates: len(pairs),
		Tree:       t.Stats(),
		Pairs:      pairs,
	}
	for _, p := range pairs {
		if p.Colliding {
			r.Collisions++
		}
	}
	return r
}
