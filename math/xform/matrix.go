// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xform implements 3-D affine and projective transform algebra:
// vectors, quaternions and 4x4 matrices, generic over the scalar width.
//
// All types are plain values and every operation returns a new value, so
// independent values may be used concurrently without synchronization.
//
// Conventions follow the row-vector, right-handed style: a point p is
// transformed as p·M, cameras look down -Z and the product a.Mul(b) applies a
// first. The packages golang.org/x/spatial/math/f32 and
// golang.org/x/spatial/math/f64 provide the single- and double-precision
// instantiations.
//
// Errors are only reported by the projection constructors, which reject
// invalid near, far and field of view arguments. Every other numerically
// degenerate input, such as a singular matrix passed to Invert or a zero
// quaternion passed to Normalize, is not checked and yields NaN or Inf
// results that propagate through later computation.
package xform // import "golang.org/x/spatial/math/xform"

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Matrix is a 4x4 matrix in row major order. Mrc is the element in the r'th
// row and c'th column, counting from 1.
//
// Points are row vectors and are transformed as p·M, so the translation of an
// affine transform lives in row 4 and the product a.Mul(b) applies a first and
// then b. An affine transform has (0, 0, 0, 1) as its fourth column;
// projection matrices do not.
type Matrix[T constraints.Float] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

// Identity returns the identity matrix.
func Identity[T constraints.Float]() Matrix[T] {
	return Matrix[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatrixFromArray returns the matrix whose elements, in row major order, are
// a. It is the inverse of Flatten.
func MatrixFromArray[T constraints.Float](a [16]T) Matrix[T] {
	return Matrix[T]{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
}

// Flatten returns the elements of m in row major order: M11, M12, M13, M14,
// M21, ..., M44. Consumers that expect column major storage must transpose m
// first.
func (m Matrix[T]) Flatten() [16]T {
	return [16]T{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// At returns the element in row r and column c, counting from 0.
func (m Matrix[T]) At(r, c int) T {
	a := m.Flatten()
	return a[4*r+c]
}

// Row returns the first three elements of row r, counting from 0.
func (m Matrix[T]) Row(r int) Vector3[T] {
	a := m.Flatten()
	return Vector3[T]{a[4*r], a[4*r+1], a[4*r+2]}
}

// Right returns row 1 of m.
func (m Matrix[T]) Right() Vector3[T] { return Vector3[T]{m.M11, m.M12, m.M13} }

// Left returns the negated row 1 of m.
func (m Matrix[T]) Left() Vector3[T] { return Vector3[T]{-m.M11, -m.M12, -m.M13} }

// Up returns row 2 of m.
func (m Matrix[T]) Up() Vector3[T] { return Vector3[T]{m.M21, m.M22, m.M23} }

// Down returns the negated row 2 of m.
func (m Matrix[T]) Down() Vector3[T] { return Vector3[T]{-m.M21, -m.M22, -m.M23} }

// Backward returns row 3 of m.
func (m Matrix[T]) Backward() Vector3[T] { return Vector3[T]{m.M31, m.M32, m.M33} }

// Forward returns the negated row 3 of m.
func (m Matrix[T]) Forward() Vector3[T] { return Vector3[T]{-m.M31, -m.M32, -m.M33} }

// Translation returns the translation row of m.
func (m Matrix[T]) Translation() Vector3[T] {
	return Vector3[T]{m.M41, m.M42, m.M43}
}

// WithTranslation returns m with its translation row replaced by v.
func (m Matrix[T]) WithTranslation(v Vector3[T]) Matrix[T] {
	m.M41, m.M42, m.M43 = v.X, v.Y, v.Z
	return m
}

// Add returns the element-wise sum m+o.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] {
	return Matrix[T]{
		m.M11 + o.M11, m.M12 + o.M12, m.M13 + o.M13, m.M14 + o.M14,
		m.M21 + o.M21, m.M22 + o.M22, m.M23 + o.M23, m.M24 + o.M24,
		m.M31 + o.M31, m.M32 + o.M32, m.M33 + o.M33, m.M34 + o.M34,
		m.M41 + o.M41, m.M42 + o.M42, m.M43 + o.M43, m.M44 + o.M44,
	}
}

// Sub returns the element-wise difference m-o.
func (m Matrix[T]) Sub(o Matrix[T]) Matrix[T] {
	return Matrix[T]{
		m.M11 - o.M11, m.M12 - o.M12, m.M13 - o.M13, m.M14 - o.M14,
		m.M21 - o.M21, m.M22 - o.M22, m.M23 - o.M23, m.M24 - o.M24,
		m.M31 - o.M31, m.M32 - o.M32, m.M33 - o.M33, m.M34 - o.M34,
		m.M41 - o.M41, m.M42 - o.M42, m.M43 - o.M43, m.M44 - o.M44,
	}
}

// Mul returns the matrix product m·o. It is not commutative: as a transform
// the result applies m first and then o.
func (m Matrix[T]) Mul(o Matrix[T]) Matrix[T] {
	return Matrix[T]{
		M11: m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31 + m.M14*o.M41,
		M12: m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32 + m.M14*o.M42,
		M13: m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33 + m.M14*o.M43,
		M14: m.M11*o.M14 + m.M12*o.M24 + m.M13*o.M34 + m.M14*o.M44,

		M21: m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31 + m.M24*o.M41,
		M22: m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32 + m.M24*o.M42,
		M23: m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33 + m.M24*o.M43,
		M24: m.M21*o.M14 + m.M22*o.M24 + m.M23*o.M34 + m.M24*o.M44,

		M31: m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31 + m.M34*o.M41,
		M32: m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32 + m.M34*o.M42,
		M33: m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33 + m.M34*o.M43,
		M34: m.M31*o.M14 + m.M32*o.M24 + m.M33*o.M34 + m.M34*o.M44,

		M41: m.M41*o.M11 + m.M42*o.M21 + m.M43*o.M31 + m.M44*o.M41,
		M42: m.M41*o.M12 + m.M42*o.M22 + m.M43*o.M32 + m.M44*o.M42,
		M43: m.M41*o.M13 + m.M42*o.M23 + m.M43*o.M33 + m.M44*o.M43,
		M44: m.M41*o.M14 + m.M42*o.M24 + m.M43*o.M34 + m.M44*o.M44,
	}
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix[T]) MulScalar(s T) Matrix[T] {
	return Matrix[T]{
		m.M11 * s, m.M12 * s, m.M13 * s, m.M14 * s,
		m.M21 * s, m.M22 * s, m.M23 * s, m.M24 * s,
		m.M31 * s, m.M32 * s, m.M33 * s, m.M34 * s,
		m.M41 * s, m.M42 * s, m.M43 * s, m.M44 * s,
	}
}

// Div returns the element-wise quotient of m and o.
func (m Matrix[T]) Div(o Matrix[T]) Matrix[T] {
	return Matrix[T]{
		m.M11 / o.M11, m.M12 / o.M12, m.M13 / o.M13, m.M14 / o.M14,
		m.M21 / o.M21, m.M22 / o.M22, m.M23 / o.M23, m.M24 / o.M24,
		m.M31 / o.M31, m.M32 / o.M32, m.M33 / o.M33, m.M34 / o.M34,
		m.M41 / o.M41, m.M42 / o.M42, m.M43 / o.M43, m.M44 / o.M44,
	}
}

// DivScalar returns m with every element multiplied by 1/s.
func (m Matrix[T]) DivScalar(s T) Matrix[T] {
	return m.MulScalar(1 / s)
}

// Neg returns -m.
func (m Matrix[T]) Neg() Matrix[T] {
	return Matrix[T]{
		-m.M11, -m.M12, -m.M13, -m.M14,
		-m.M21, -m.M22, -m.M23, -m.M24,
		-m.M31, -m.M32, -m.M33, -m.M34,
		-m.M41, -m.M42, -m.M43, -m.M44,
	}
}

// Transpose returns the transpose of m.
func (m Matrix[T]) Transpose() Matrix[T] {
	return Matrix[T]{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// Lerp linearly interpolates every element of m towards o by t.
func (m Matrix[T]) Lerp(o Matrix[T], t T) Matrix[T] {
	return Matrix[T]{
		m.M11 + (o.M11-m.M11)*t, m.M12 + (o.M12-m.M12)*t, m.M13 + (o.M13-m.M13)*t, m.M14 + (o.M14-m.M14)*t,
		m.M21 + (o.M21-m.M21)*t, m.M22 + (o.M22-m.M22)*t, m.M23 + (o.M23-m.M23)*t, m.M24 + (o.M24-m.M24)*t,
		m.M31 + (o.M31-m.M31)*t, m.M32 + (o.M32-m.M32)*t, m.M33 + (o.M33-m.M33)*t, m.M34 + (o.M34-m.M34)*t,
		m.M41 + (o.M41-m.M41)*t, m.M42 + (o.M42-m.M42)*t, m.M43 + (o.M43-m.M43)*t, m.M44 + (o.M44-m.M44)*t,
	}
}

// ApproxEqual reports whether every element of m and o is within eps.
func (m Matrix[T]) ApproxEqual(o Matrix[T], eps T) bool {
	a, b := m.Flatten(), o.Flatten()
	for i := range a {
		if !ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func (m Matrix[T]) String() string {
	var sb strings.Builder
	a := m.Flatten()
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", a[4*r], a[4*r+1], a[4*r+2], a[4*r+3])
	}
	return sb.String()
}
