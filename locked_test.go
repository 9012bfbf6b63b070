// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLocked(t *testing.T) {
	assert.PanicsWithValue(t, "quadtree: nil tree", func() {
		NewLocked(nil)
	})
}

func TestLocked(t *testing.T) {
	l := NewLocked(New(NewRegion(0, 0, 100, 100), Config{ObjectPerQuad: 2, MaxDepth: 6}))

	var items []Item
	for i := 0; i < 40; i++ {
		items = append(items, newBox(fmt.Sprint(i), float64(i*2), float64(100-i*2-1), 1, 1))
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for step := 0; step < 25; step++ {
				l.Rebuild(items)
				for _, item := range items[:5] {
					r := l.Retrieve(nil, item)
					assert.Contains(t, r, item)
				}
			}
		}()
	}
	wg.Wait()

	l.Do(func(tree *Tree) {
		assert.Equal(t, len(items), tree.Len())
		assert.Equal(t, len(items), tree.Stats().Items)
	})
}
