// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

// Det returns the determinant of m, expanded along row 1.
func (m Matrix[T]) Det() T {
	// 2x2 minors of rows 3 and 4.
	a := m.M33*m.M44 - m.M34*m.M43
	b := m.M32*m.M44 - m.M34*m.M42
	c := m.M32*m.M43 - m.M33*m.M42
	d := m.M31*m.M44 - m.M34*m.M41
	e := m.M31*m.M43 - m.M33*m.M41
	f := m.M31*m.M42 - m.M32*m.M41

	return m.M11*(m.M22*a-m.M23*b+m.M24*c) -
		m.M12*(m.M21*a-m.M23*d+m.M24*e) +
		m.M13*(m.M21*b-m.M22*d+m.M24*f) -
		m.M14*(m.M21*c-m.M22*e+m.M23*f)
}

// Invert returns the inverse of m, computed by cofactor expansion.
//
// A singular m is not detected: the reciprocal of its zero determinant makes
// every element of the result Inf or NaN. Callers that need to know must
// check m.Det() != 0 first.
func (m Matrix[T]) Invert() Matrix[T] {
	// 2x2 minors of rows 3 and 4, shared by the cofactors of rows 1 and 2.
	a := m.M33*m.M44 - m.M34*m.M43
	b := m.M32*m.M44 - m.M34*m.M42
	c := m.M32*m.M43 - m.M33*m.M42
	d := m.M31*m.M44 - m.M34*m.M41
	e := m.M31*m.M43 - m.M33*m.M41
	f := m.M31*m.M42 - m.M32*m.M41

	c11 := m.M22*a - m.M23*b + m.M24*c
	c12 := -(m.M21*a - m.M23*d + m.M24*e)
	c13 := m.M21*b - m.M22*d + m.M24*f
	c14 := -(m.M21*c - m.M22*e + m.M23*f)

	inv := 1 / (m.M11*c11 + m.M12*c12 + m.M13*c13 + m.M14*c14)

	var r Matrix[T]
	r.M11 = c11 * inv
	r.M21 = c12 * inv
	r.M31 = c13 * inv
	r.M41 = c14 * inv

	r.M12 = -(m.M12*a - m.M13*b + m.M14*c) * inv
	r.M22 = (m.M11*a - m.M13*d + m.M14*e) * inv
	r.M32 = -(m.M11*b - m.M12*d + m.M14*f) * inv
	r.M42 = (m.M11*c - m.M12*e + m.M13*f) * inv

	// 2x2 minors of rows 2 and 4.
	a = m.M23*m.M44 - m.M24*m.M43
	b = m.M22*m.M44 - m.M24*m.M42
	c = m.M22*m.M43 - m.M23*m.M42
	d = m.M21*m.M44 - m.M24*m.M41
	e = m.M21*m.M43 - m.M23*m.M41
	f = m.M21*m.M42 - m.M22*m.M41

	r.M13 = (m.M12*a - m.M13*b + m.M14*c) * inv
	r.M23 = -(m.M11*a - m.M13*d + m.M14*e) * inv
	r.M33 = (m.M11*b - m.M12*d + m.M14*f) * inv
	r.M43 = -(m.M11*c - m.M12*e + m.M13*f) * inv

	// 2x2 minors of rows 2 and 3.
	a = m.M23*m.M34 - m.M24*m.M33
	b = m.M22*m.M34 - m.M24*m.M32
	c = m.M22*m.M33 - m.M23*m.M32
	d = m.M21*m.M34 - m.M24*m.M31
	e = m.M21*m.M33 - m.M23*m.M31
	f = m.M21*m.M32 - m.M22*m.M31

	r.M14 = -(m.M12*a - m.M13*b + m.M14*c) * inv
	r.M24 = (m.M11*a - m.M13*d + m.M14*e) * inv
	r.M34 = -(m.M11*b - m.M12*d + m.M14*f) * inv
	r.M44 = (m.M11*c - m.M12*e + m.M13*f) * inv

	return r
}

// Decompose splits the affine transform m into a scale, a rotation and a
// translation. For affine transforms with positive scales,
// Compose(scale, rotation, translation) reproduces m.
//
// The translation is row 4 and each axis scale is the length of the
// corresponding row of the upper-left 3x3 block. The sign of an axis scale is
// negative only when the product of all four elements of its row is
// negative. Since affine transforms have zero in column 4 that product is
// zero for them, so negative scales are reported as positive with the
// reflection folded into the rotation. This heuristic is kept for
// compatibility; it does not detect mirroring, for which the sign of the
// upper-left 3x3 determinant would be needed.
//
// If any axis scale is zero, ok is false and rotation is the identity.
func (m Matrix[T]) Decompose() (scale Vector3[T], rotation Quaternion[T], translation Vector3[T], ok bool) {
	translation = Vector3[T]{m.M41, m.M42, m.M43}

	sx, sy, sz := T(1), T(1), T(1)
	if Sign(m.M11*m.M12*m.M13*m.M14) < 0 {
		sx = -1
	}
	if Sign(m.M21*m.M22*m.M23*m.M24) < 0 {
		sy = -1
	}
	if Sign(m.M31*m.M32*m.M33*m.M34) < 0 {
		sz = -1
	}
	scale = Vector3[T]{
		sx * sqrt(m.M11*m.M11+m.M12*m.M12+m.M13*m.M13),
		sy * sqrt(m.M21*m.M21+m.M22*m.M22+m.M23*m.M23),
		sz * sqrt(m.M31*m.M31+m.M32*m.M32+m.M33*m.M33),
	}
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return scale, QuaternionIdentity[T](), translation, false
	}

	r := Matrix[T]{
		m.M11 / scale.X, m.M12 / scale.X, m.M13 / scale.X, 0,
		m.M21 / scale.Y, m.M22 / scale.Y, m.M23 / scale.Y, 0,
		m.M31 / scale.Z, m.M32 / scale.Z, m.M33 / scale.Z, 0,
		0, 0, 0, 1,
	}
	return scale, QuaternionFromRotationMatrix(r), translation, true
}
