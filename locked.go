// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "sync"

// Locked guards a Tree with a single exclusive lock.
//
// An insert may restructure any number of nodes below the one it
// starts at, so the lock covers the whole tree rather than individual
// nodes. Hold it for a complete rebuild-then-query cycle with Do.
type Locked struct {
	mu   sync.Mutex
	tree *Tree
}

// NewLocked wraps t. The caller must not use t directly afterwards.
func NewLocked(t *Tree) *Locked {
	if t == nil {
		textPanic("nil tree")
	}
	return &Locked{tree: t}
}

// Do calls fn with the tree while holding the lock. fn must not retain
// the tree after it returns.
func (l *Locked) Do(fn func(t *Tree)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.tree)
}

// Rebuild clears the tree and inserts items while holding the lock.
func (l *Locked) Rebuild(items []Item) {
	l.Do(func(t *Tree) { t.Rebuild(items) })
}

// Retrieve appends the candidates for query to dst while holding the
// lock.
func (l *Locked) Retrieve(dst []Item, query Item) []Item {
	l.Do(func(t *Tree) { dst = t.Retrieve(dst, query) })
	return dst
}
