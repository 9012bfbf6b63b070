// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package scene loads sets of rectangular bodies and runs them through
// a quadtree to find collision candidates and actual collisions.
package scene

import (
	"io"
	"os"

	"github.com/gogama/quadtree"
	"github.com/segmentio/encoding/json"
)

// RegionDoc is the serialized form of a quadtree.Region.
type RegionDoc struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BodyDoc is the serialized form of a Body.
type BodyDoc struct {
	ID string `json:"id"`
	RegionDoc
}

// Document is the serialized form of a Scene. ObjectPerQuad and
// MaxDepth fall back to the quadtree defaults when absent.
type Document struct {
	Bounds        RegionDoc `json:"bounds"`
	ObjectPerQuad *int      `json:"objectPerQuad,omitempty"`
	MaxDepth      *int      `json:"maxDepth,omitempty"`
	Bodies        []BodyDoc `json:"bodies"`
}

// A Body is a named rectangle. *Body implements quadtree.Item.
type Body struct {
	ID   string
	Rect quadtree.Region
}

// Region returns the body's bounding rectangle.
func (b *Body) Region() quadtree.Region {
	return b.Rect
}

func (b *Body) String() string {
	return b.ID + b.Rect.String()
}

// Scene is a validated set of bodies inside a bounding region, together
// with the subdivision policy to index them with.
type Scene struct {
	Bounds quadtree.Region
	Config quadtree.Config
	Bodies []*Body
}

func (d RegionDoc) region() quadtree.Region {
	return quadtree.NewRegion(d.X, d.Y, d.Width, d.Height)
}

func (d RegionDoc) validate(what string) error {
	if d.Width < 0 || d.Height < 0 {
		return fmtErr("%s has negative size %gx%g", what, d.Width, d.Height)
	}
	return nil
}

// New validates d and converts it into a Scene.
func New(d *Document) (*Scene, error) {
	if err := d.Bounds.validate("bounds"); err != nil {
		return nil, err
	}

	cfg := quadtree.DefaultConfig()
	if d.ObjectPerQuad != nil {
		cfg.ObjectPerQuad = *d.ObjectPerQuad
	}
	if d.MaxDepth != nil {
		cfg.MaxDepth = *d.MaxDepth
	}
	if err := cfg.Validate(); err != nil {
		return nil, wrapErr("invalid tree config", err)
	}

	s := &Scene{
		Bounds: d.Bounds.region(),
		Config: cfg,
		Bodies: make([]*Body, 0, len(d.Bodies)),
	}
	seen := make(map[string]int, len(d.Bodies))
	for i := range d.Bodies {
		bd := &d.Bodies[i]
		if bd.ID == "" {
			return nil, fmtErr("body %d has no id", i)
		} else if j, ok := seen[bd.ID]; ok {
			return nil, fmtErr("body %d has the same id %q as body %d", i, bd.ID, j)
		}
		seen[bd.ID] = i
		if err := bd.validate("body " + bd.ID); err != nil {
			return nil, err
		}
		s.Bodies = append(s.Bodies, &Body{ID: bd.ID, Rect: bd.region()})
	}

	return s, nil
}

// Load decodes a JSON Document from r and converts it into a Scene.
// Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	if r == nil {
		return nil, textErr("nil reader")
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, wrapErr("failed to decode document", err)
	}
	return New(&d)
}

// LoadFile loads the Scene stored in the named JSON file.
func LoadFile(name string) (*Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapErr("failed to open %q", err, name)
	}
	defer f.Close()
	return Load(f)
}

// Document converts s back into its serialized form.
func (s *Scene) Document() *Document {
	opq, depth := s.Config.ObjectPerQuad, s.Config.MaxDepth
	d := &Document{
		Bounds:        regionDoc(s.Bounds),
		ObjectPerQuad: &opq,
		MaxDepth:      &depth,
		Bodies:        make([]BodyDoc, len(s.Bodies)),
	}
	for i, b := range s.Bodies {
		d.Bodies[i] = BodyDoc{ID: b.ID, RegionDoc: regionDoc(b.Rect)}
	}
	return d
}

func regionDoc(r quadtree.Region) RegionDoc {
	return RegionDoc{X: r.X, Y: r.Y, Width: r.Width(), Height: r.Height()}
}

// Items returns the scene's bodies as quadtree items, in order.
func (s *Scene) Items() []quadtree.Item {
	items := make([]quadtree.Item, len(s.Bodies))
	for i, b := range s.Bodies {
		items[i] = b
	}
	return items
}

// Build creates a tree over the scene's bounds using its Config and
// inserts every body.
func (s *Scene) Build() *quadtree.Tree {
	t := quadtree.New(s.Bounds, s.Config)
	t.Rebuild(s.Items())
	return t
}
