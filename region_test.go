// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegion(t *testing.T) {
	r := NewRegion(1, 2, 3, 4)

	assert.Equal(t, 1.0, r.X)
	assert.Equal(t, 2.0, r.Y)
	assert.Equal(t, 3.0, r.Width())
	assert.Equal(t, 4.0, r.Height())
	assert.Equal(t, Point{1, 2}, r.Position())
}

func TestNewRegionAt(t *testing.T) {
	assert.Equal(t, NewRegion(-5, 7.5, 0, 2), NewRegionAt(Point{-5, 7.5}, 0, 2))
}

func TestRegion_Translate(t *testing.T) {
	r := NewRegion(10, 10, 5, 6)

	r.Translate(2.5, -4)

	assert.Equal(t, NewRegion(12.5, 6, 5, 6), r)
}

func TestRegion_Corners(t *testing.T) {
	testCases := []struct {
		name     string
		input    Region
		expected [4]Point
	}{
		{"Zero", Region{}, [4]Point{{0, 0}, {0, 0}, {0, 0}, {0, 0}}},
		{"Unit", NewRegion(0, 0, 1, 1), [4]Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}},
		{"Offset", NewRegion(-2, 3, 4, 5), [4]Point{{-2, 3}, {-2, 8}, {2, 8}, {2, 3}}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Corners()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestRegion_Intersects(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Region
		expected bool
	}{
		{"Same", NewRegion(0, 0, 10, 10), NewRegion(0, 0, 10, 10), true},
		{"Overlap", NewRegion(0, 0, 10, 10), NewRegion(5, 5, 10, 10), true},
		{"Contained", NewRegion(0, 0, 10, 10), NewRegion(2, 2, 1, 1), true},
		{"TouchingEdge", NewRegion(0, 0, 10, 10), NewRegion(10, 0, 10, 10), true},
		{"TouchingCorner", NewRegion(0, 0, 10, 10), NewRegion(10, 10, 1, 1), true},
		{"ZeroAreaInside", NewRegion(0, 0, 10, 10), NewRegion(3, 3, 0, 0), true},
		{"LeftOf", NewRegion(0, 0, 10, 10), NewRegion(-5, 0, 4.9, 10), false},
		{"Above", NewRegion(0, 0, 10, 10), NewRegion(0, -5, 10, 4.9), false},
		{"Right", NewRegion(0, 0, 10, 10), NewRegion(10.1, 0, 1, 1), false},
		{"Below", NewRegion(0, 0, 10, 10), NewRegion(0, 10.1, 1, 1), false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.a.Intersects(testCase.b))
			assert.Equal(t, testCase.expected, testCase.b.Intersects(testCase.a))
		})
	}
}

func TestRegion_quarter(t *testing.T) {
	r := NewRegion(10, 20, 100, 50)

	t.Run("Quadrants", func(t *testing.T) {
		testCases := []struct {
			q        Quadrant
			expected Region
		}{
			{TopRight, NewRegion(60, 20, 50, 25)},
			{TopLeft, NewRegion(10, 20, 50, 25)},
			{BottomLeft, NewRegion(10, 45, 50, 25)},
			{BottomRight, NewRegion(60, 45, 50, 25)},
		}

		for _, testCase := range testCases {
			t.Run(testCase.q.String(), func(t *testing.T) {
				assert.Equal(t, testCase.expected, r.quarter(testCase.q))
			})
		}
	})

	t.Run("Panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "quadtree: no quarter for quadrant None", func() {
			r.quarter(None)
		})
	})
}

func TestRegion_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Region
		expected string
	}{
		{"Zero", Region{}, "[0,0,0,0]"},
		{"Integers", NewRegion(-1, 2, 3, 4), "[-1,2,3,4]"},
		{"Exact", NewRegion(-100.5, -200.25, 1234.125, 5678.0625), "[-100.5,-200.25,1234.125,5678.0625]"},
		{"Rounded", NewRegion(-100000.0625, 123.015625, 99.0078125, 2.001953125), "[-100000.06,123.01562,99.007812,2.0019531]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.String())
		})
	}
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1.5,-2)", Point{1.5, -2}.String())
}
