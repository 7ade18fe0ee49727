// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vector3 is a 3-element vector. Any IEEE-754 value, including NaN and Inf,
// is a valid component.
type Vector3[T constraints.Float] struct {
	X, Y, Z T
}

// Vec3 returns the vector (x, y, z).
func Vec3[T constraints.Float](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Splat returns the vector (s, s, s).
func Splat[T constraints.Float](s T) Vector3[T] {
	return Vector3[T]{s, s, s}
}

// Zero returns the vector (0, 0, 0).
func Zero[T constraints.Float]() Vector3[T] { return Vector3[T]{} }

// One returns the vector (1, 1, 1).
func One[T constraints.Float]() Vector3[T] { return Vector3[T]{1, 1, 1} }

// UnitX returns the vector (1, 0, 0).
func UnitX[T constraints.Float]() Vector3[T] { return Vector3[T]{1, 0, 0} }

// UnitY returns the vector (0, 1, 0).
func UnitY[T constraints.Float]() Vector3[T] { return Vector3[T]{0, 1, 0} }

// UnitZ returns the vector (0, 0, 1).
func UnitZ[T constraints.Float]() Vector3[T] { return Vector3[T]{0, 0, 1} }

// Up returns the vector (0, 1, 0).
func Up[T constraints.Float]() Vector3[T] { return Vector3[T]{0, 1, 0} }

// Down returns the vector (0, -1, 0).
func Down[T constraints.Float]() Vector3[T] { return Vector3[T]{0, -1, 0} }

// Right returns the vector (1, 0, 0).
func Right[T constraints.Float]() Vector3[T] { return Vector3[T]{1, 0, 0} }

// Left returns the vector (-1, 0, 0).
func Left[T constraints.Float]() Vector3[T] { return Vector3[T]{-1, 0, 0} }

// Forward returns the vector (0, 0, -1). The kernel is right-handed, so
// forward is -Z.
func Forward[T constraints.Float]() Vector3[T] { return Vector3[T]{0, 0, -1} }

// Backward returns the vector (0, 0, 1).
func Backward[T constraints.Float]() Vector3[T] { return Vector3[T]{0, 0, 1} }

// Add returns v+o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the component-wise product of v and o.
func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Scale returns v*s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the component-wise quotient of v and o.
func (v Vector3[T]) Div(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// DivScalar returns v/s. It multiplies by the reciprocal of s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	f := 1 / s
	return Vector3[T]{v.X * f, v.Y * f, v.Z * f}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Abs returns v with every component replaced by its absolute value.
func (v Vector3[T]) Abs() Vector3[T] {
	return Vector3[T]{abs(v.X), abs(v.Y), abs(v.Z)}
}

// Dot returns the dot product of v and o.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v×o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*o.Z - o.Y*v.Z,
		Y: -(v.X*o.Z - o.X*v.Z),
		Z: v.X*o.Y - o.X*v.Y,
	}
}

// Len returns the Euclidean length of v.
func (v Vector3[T]) Len() T {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LenSquared returns the squared Euclidean length of v.
func (v Vector3[T]) LenSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between v and o.
func (v Vector3[T]) Distance(o Vector3[T]) T {
	return v.Sub(o).Len()
}

// DistanceSquared returns the squared distance between v and o.
func (v Vector3[T]) DistanceSquared(o Vector3[T]) T {
	return v.Sub(o).LenSquared()
}

// Normalize returns the unit vector in the direction of v.
//
// Only a length of exactly zero is special cased, returning the zero vector.
// Vectors whose length underflows or overflows are not detected and yield
// NaN or Inf components.
func (v Vector3[T]) Normalize() Vector3[T] {
	l := v.Len()
	if l == 0 {
		return Vector3[T]{}
	}
	f := 1 / l
	return Vector3[T]{v.X * f, v.Y * f, v.Z * f}
}

// Min returns the component-wise minimum of v and o.
func (v Vector3[T]) Min(o Vector3[T]) Vector3[T] {
	return Vector3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3[T]) Max(o Vector3[T]) Vector3[T] {
	return Vector3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Clamp restricts every component of v to the range given by lo and hi.
func (v Vector3[T]) Clamp(lo, hi Vector3[T]) Vector3[T] {
	return Vector3[T]{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
	}
}

// Lerp linearly interpolates between v and o by t.
func (v Vector3[T]) Lerp(o Vector3[T], t T) Vector3[T] {
	return Vector3[T]{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

// SmoothStep interpolates between v and o with a cubic ease on t.
func (v Vector3[T]) SmoothStep(o Vector3[T], t T) Vector3[T] {
	return Vector3[T]{SmoothStep(v.X, o.X, t), SmoothStep(v.Y, o.Y, t), SmoothStep(v.Z, o.Z, t)}
}

// Reflect returns v reflected about the surface with the given normal.
func (v Vector3[T]) Reflect(normal Vector3[T]) Vector3[T] {
	d := 2 * v.Dot(normal)
	return Vector3[T]{v.X - normal.X*d, v.Y - normal.Y*d, v.Z - normal.Z*d}
}

// Transform returns the point v transformed by m, treating v as a row vector
// with an implicit w of 1.
func (v Vector3[T]) Transform(m Matrix[T]) Vector3[T] {
	return Vector3[T]{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformNormal returns the direction v transformed by m. The translation
// row of m is ignored.
func (v Vector3[T]) TransformNormal(m Matrix[T]) Vector3[T] {
	return Vector3[T]{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// Rotate returns v rotated by q. It is equivalent to q.Rotate(v).
func (v Vector3[T]) Rotate(q Quaternion[T]) Vector3[T] {
	return q.Rotate(v)
}

// ApproxEqual reports whether every component of v and o is within eps.
func (v Vector3[T]) ApproxEqual(o Vector3[T], eps T) bool {
	return ApproxEqual(v.X, o.X, eps) && ApproxEqual(v.Y, o.Y, eps) && ApproxEqual(v.Z, o.Z, eps)
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Barycentric3 returns the point with barycentric weights w2 and w3 relative
// to the triangle (a, b, c).
func Barycentric3[T constraints.Float](a, b, c Vector3[T], w2, w3 T) Vector3[T] {
	return Vector3[T]{
		Barycentric(a.X, b.X, c.X, w2, w3),
		Barycentric(a.Y, b.Y, c.Y, w2, w3),
		Barycentric(a.Z, b.Z, c.Z, w2, w3),
	}
}

// CatmullRom3 performs a Catmull-Rom interpolation between b and c, using a
// and d as the outer control points.
func CatmullRom3[T constraints.Float](a, b, c, d Vector3[T], t T) Vector3[T] {
	return Vector3[T]{
		CatmullRom(a.X, b.X, c.X, d.X, t),
		CatmullRom(a.Y, b.Y, c.Y, d.Y, t),
		CatmullRom(a.Z, b.Z, c.Z, d.Z, t),
	}
}

// Hermite3 performs a Hermite spline interpolation between the positions a
// and b, with tangents ta and tb.
func Hermite3[T constraints.Float](a, ta, b, tb Vector3[T], t T) Vector3[T] {
	return Vector3[T]{
		Hermite(a.X, ta.X, b.X, tb.X, t),
		Hermite(a.Y, ta.Y, b.Y, tb.Y, t),
		Hermite(a.Z, ta.Z, b.Z, tb.Z, t),
	}
}
