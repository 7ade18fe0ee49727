// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"golang.org/x/exp/constraints"
)

// Plane is the set of points p with Normal·p + D == 0.
type Plane[T constraints.Float] struct {
	Normal Vector3[T]
	D      T
}

// PlaneFromPoints returns the plane through a, b and c, with a normal
// following the counter-clockwise winding of the three points.
func PlaneFromPoints[T constraints.Float](a, b, c Vector3[T]) Plane[T] {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane[T]{Normal: n, D: -n.Dot(a)}
}

// Normalize returns p scaled so that its normal is of unit length.
func (p Plane[T]) Normalize() Plane[T] {
	f := 1 / p.Normal.Len()
	return Plane[T]{Normal: p.Normal.Scale(f), D: p.D * f}
}

// DotCoordinate returns Normal·v + D, the signed distance of the point v from
// a normalized plane.
func (p Plane[T]) DotCoordinate(v Vector3[T]) T {
	return p.Normal.Dot(v) + p.D
}

// DotNormal returns Normal·v.
func (p Plane[T]) DotNormal(v Vector3[T]) T {
	return p.Normal.Dot(v)
}

// Viewport is a rectangle on the projection plane. Only its edges are
// consumed.
type Viewport[T constraints.Float] interface {
	Left() T
	Right() T
	Top() T
	Bottom() T
}

// Rectangle is an axis-aligned rectangle whose Y axis grows downwards, so
// that Bottom is Y+Height. It implements Viewport.
type Rectangle[T constraints.Float] struct {
	X, Y, Width, Height T
}

// Left returns the X coordinate of the left edge.
func (r Rectangle[T]) Left() T { return r.X }

// Right returns the X coordinate of the right edge, X+Width.
func (r Rectangle[T]) Right() T { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rectangle[T]) Top() T { return r.Y }

// Bottom returns the Y coordinate of the bottom edge, Y+Height.
func (r Rectangle[T]) Bottom() T { return r.Y + r.Height }
