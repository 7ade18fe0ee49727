// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package f32 implements float32 vector, quaternion and matrix types.
//
// Vector3, Quaternion and Matrix are the float32 instantiations of the
// transform kernel in golang.org/x/spatial/math/xform. Vec3, Vec4, Mat3 and
// Mat4 are flat buffers in the layout expected by rendering APIs.
package f32 // import "golang.org/x/spatial/math/f32"

import "golang.org/x/spatial/math/xform"

// Vec3 is a 3-element vector.
type Vec3 [3]float32

// Vec4 is a 4-element vector.
type Vec4 [4]float32

// Mat3 is a 3x3 matrix in row major order.
//
// m[3*r + c] is the element in the r'th row and c'th column.
type Mat3 [9]float32

// Mat4 is a 4x4 matrix in row major order.
//
// m[4*r + c] is the element in the r'th row and c'th column.
type Mat4 [16]float32

// The kernel types instantiated with float32. Their methods are documented
// in package xform.
type (
	Vector3    = xform.Vector3[float32]
	Quaternion = xform.Quaternion[float32]
	Matrix     = xform.Matrix[float32]
	Plane      = xform.Plane[float32]
	Rectangle  = xform.Rectangle[float32]
)

var (
	// Identity is the identity matrix.
	Identity = xform.Identity[float32]()

	// QuaternionIdentity is the identity rotation.
	QuaternionIdentity = xform.QuaternionIdentity[float32]()

	// Named vectors. Forward is -Z.
	Zero     = xform.Zero[float32]()
	One      = xform.One[float32]()
	UnitX    = xform.UnitX[float32]()
	UnitY    = xform.UnitY[float32]()
	UnitZ    = xform.UnitZ[float32]()
	Up       = xform.Up[float32]()
	Down     = xform.Down[float32]()
	Right    = xform.Right[float32]()
	Left     = xform.Left[float32]()
	Forward  = xform.Forward[float32]()
	Backward = xform.Backward[float32]()
)

// Flatten returns m as a row major buffer: M11, M12, M13, M14, M21, ..., M44.
func Flatten(m Matrix) Mat4 {
	return Mat4(m.Flatten())
}

// Matrix returns the matrix stored in the row major buffer a.
func (a Mat4) Matrix() Matrix {
	return xform.MatrixFromArray([16]float32(a))
}

// Mat3 returns the upper-left 3x3 block of a, which holds the rotation and
// scale of an affine transform.
func (a Mat4) Mat3() Mat3 {
	return Mat3{
		a[0], a[1], a[2],
		a[4], a[5], a[6],
		a[8], a[9], a[10],
	}
}

// Transform returns the row vector v multiplied by a. Unlike
// Vector3.Transform it keeps the w component, so it can carry points into
// clip space.
func (a Mat4) Transform(v Vec4) Vec4 {
	return Vec4{
		v[0]*a[0] + v[1]*a[4] + v[2]*a[8] + v[3]*a[12],
		v[0]*a[1] + v[1]*a[5] + v[2]*a[9] + v[3]*a[13],
		v[0]*a[2] + v[1]*a[6] + v[2]*a[10] + v[3]*a[14],
		v[0]*a[3] + v[1]*a[7] + v[2]*a[11] + v[3]*a[15],
	}
}

// Vector3 returns v as a Vector3.
func (v Vec3) Vector3() Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Point returns v extended with w == 1.
func (v Vec3) Point() Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// PerspectiveDivide returns the xyz components of v divided by w.
func (v Vec4) PerspectiveDivide() Vec3 {
	f := 1 / v[3]
	return Vec3{v[0] * f, v[1] * f, v[2] * f}
}

// Pack returns v as a flat buffer.
func Pack(v Vector3) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
