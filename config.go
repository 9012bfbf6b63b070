// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

const (
	// DefaultObjectPerQuad is the default soft capacity of a node.
	DefaultObjectPerQuad = 1
	// DefaultMaxDepth is the default maximum node level.
	DefaultMaxDepth = 10
)

// Config holds the subdivision policy of a Tree.
type Config struct {
	// ObjectPerQuad is the number of items a node may hold before it
	// attempts to split and push items down into its children. It is a
	// soft limit: items which straddle a midline, and items held at
	// MaxDepth, stay put regardless. Must be at least 1.
	ObjectPerQuad int
	// MaxDepth is the deepest level a node may have. The root is at
	// level 0, and nodes at MaxDepth never split. Must not be negative.
	MaxDepth int
}

// DefaultConfig returns a Config with ObjectPerQuad set to
// DefaultObjectPerQuad and MaxDepth set to DefaultMaxDepth.
func DefaultConfig() Config {
	return Config{
		ObjectPerQuad: DefaultObjectPerQuad,
		MaxDepth:      DefaultMaxDepth,
	}
}

// Validate returns an error if the configuration cannot be used to
// build a Tree.
func (c Config) Validate() error {
	if c.ObjectPerQuad < 1 {
		return fmtErr("object per quad must be at least 1, got %d", c.ObjectPerQuad)
	} else if c.MaxDepth < 0 {
		return fmtErr("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

func (c Config) mustValidate() {
	if err := c.Validate(); err != nil {
		panic(err.Error())
	}
}
