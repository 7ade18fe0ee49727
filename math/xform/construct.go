// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"golang.org/x/exp/constraints"
)

// Translation returns a matrix that translates by (x, y, z).
func Translation[T constraints.Float](x, y, z T) Matrix[T] {
	return Matrix[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// TranslationV returns a matrix that translates by v.
func TranslationV[T constraints.Float](v Vector3[T]) Matrix[T] {
	return Translation(v.X, v.Y, v.Z)
}

// Scaling returns a matrix that scales uniformly by s.
func Scaling[T constraints.Float](s T) Matrix[T] {
	return ScalingXYZ(s, s, s)
}

// ScalingXYZ returns a matrix that scales by x, y and z along the respective
// axes.
func ScalingXYZ[T constraints.Float](x, y, z T) Matrix[T] {
	return Matrix[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// ScalingV returns a matrix that scales by the components of v.
func ScalingV[T constraints.Float](v Vector3[T]) Matrix[T] {
	return ScalingXYZ(v.X, v.Y, v.Z)
}

// ScalingAround returns a matrix that scales by the components of v, keeping
// center fixed.
func ScalingAround[T constraints.Float](v, center Vector3[T]) Matrix[T] {
	m := ScalingV(v)
	m.M41 = center.X * (1 - v.X)
	m.M42 = center.Y * (1 - v.Y)
	m.M43 = center.Z * (1 - v.Z)
	return m
}

// RotationX returns a matrix that rotates by radians around the X axis.
func RotationX[T constraints.Float](radians T) Matrix[T] {
	s, c := sin(radians), cos(radians)
	return Matrix[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a matrix that rotates by radians around the Y axis.
func RotationY[T constraints.Float](radians T) Matrix[T] {
	s, c := sin(radians), cos(radians)
	return Matrix[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a matrix that rotates by radians around the Z axis.
func RotationZ[T constraints.Float](radians T) Matrix[T] {
	s, c := sin(radians), cos(radians)
	return Matrix[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationXAround is like RotationX but rotates around the axis through
// center that is parallel to X.
func RotationXAround[T constraints.Float](radians T, center Vector3[T]) Matrix[T] {
	m := RotationX(radians)
	m.M42 = center.Y*(1-m.M22) + center.Z*m.M23
	m.M43 = center.Z*(1-m.M22) - center.Y*m.M23
	return m
}

// RotationYAround is like RotationY but rotates around the axis through
// center that is parallel to Y.
func RotationYAround[T constraints.Float](radians T, center Vector3[T]) Matrix[T] {
	m := RotationY(radians)
	m.M41 = center.X*(1-m.M11) - center.Z*m.M31
	m.M43 = center.Z*(1-m.M11) + center.X*m.M31
	return m
}

// RotationZAround is like RotationZ but rotates around the axis through
// center that is parallel to Z.
func RotationZAround[T constraints.Float](radians T, center Vector3[T]) Matrix[T] {
	m := RotationZ(radians)
	m.M41 = center.X*(1-m.M11) + center.Y*m.M12
	m.M42 = center.Y*(1-m.M11) - center.X*m.M12
	return m
}

// FromAxisAngle returns a matrix that rotates by angle radians around axis,
// which must be of unit length.
func FromAxisAngle[T constraints.Float](axis Vector3[T], angle T) Matrix[T] {
	x, y, z := axis.X, axis.Y, axis.Z
	s, c := sin(angle), cos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	return Matrix[T]{
		M11: xx + c*(1-xx),
		M12: xy - c*xy + s*z,
		M13: xz - c*xz - s*y,
		M21: xy - c*xy - s*z,
		M22: yy + c*(1-yy),
		M23: yz - c*yz + s*x,
		M31: xz - c*xz + s*y,
		M32: yz - c*yz - s*x,
		M33: zz + c*(1-zz),
		M44: 1,
	}
}

// FromQuaternion returns the rotation matrix of the unit quaternion q.
func FromQuaternion[T constraints.Float](q Quaternion[T]) Matrix[T] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, zw, zx := q.X*q.Y, q.Z*q.W, q.Z*q.X
	yw, yz, xw := q.Y*q.W, q.Y*q.Z, q.X*q.W
	return Matrix[T]{
		M11: 1 - 2*(yy+zz),
		M12: 2 * (xy + zw),
		M13: 2 * (zx - yw),
		M21: 2 * (xy - zw),
		M22: 1 - 2*(zz+xx),
		M23: 2 * (yz + xw),
		M31: 2 * (zx + yw),
		M32: 2 * (yz - xw),
		M33: 1 - 2*(yy+xx),
		M44: 1,
	}
}

// FromYawPitchRoll returns a matrix that rotates by roll around Z, then pitch
// around X, then yaw around Y.
func FromYawPitchRoll[T constraints.Float](yaw, pitch, roll T) Matrix[T] {
	return FromQuaternion(QuaternionFromYawPitchRoll(yaw, pitch, roll))
}

// Compose returns the affine transform that scales by scale, rotates by
// rotation and then translates by translation. It is the inverse of
// Decompose for positive scales.
func Compose[T constraints.Float](scale Vector3[T], rotation Quaternion[T], translation Vector3[T]) Matrix[T] {
	m := FromQuaternion(rotation)
	m.M11, m.M12, m.M13 = m.M11*scale.X, m.M12*scale.X, m.M13*scale.X
	m.M21, m.M22, m.M23 = m.M21*scale.Y, m.M22*scale.Y, m.M23*scale.Y
	m.M31, m.M32, m.M33 = m.M31*scale.Z, m.M32*scale.Z, m.M33*scale.Z
	m.M41, m.M42, m.M43 = translation.X, translation.Y, translation.Z
	return m
}

// LookAt returns a view matrix for a camera at eye looking at target.
//
// The camera looks down its own -Z axis. up must not be parallel to
// eye-target; no fallback is taken if it is.
func LookAt[T constraints.Float](eye, target, up Vector3[T]) Matrix[T] {
	z := eye.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Matrix[T]{
		M11: x.X, M12: y.X, M13: z.X,
		M21: x.Y, M22: y.Y, M23: z.Y,
		M31: x.Z, M32: y.Z, M33: z.Z,
		M41: -x.Dot(eye),
		M42: -y.Dot(eye),
		M43: -z.Dot(eye),
		M44: 1,
	}
}

// World returns a world matrix placing an object at position, facing
// forward with the given up direction.
func World[T constraints.Float](position, forward, up Vector3[T]) Matrix[T] {
	z := forward.Normalize()
	x := forward.Cross(up).Normalize()
	y := x.Cross(forward).Normalize()
	return Matrix[T]{
		M11: x.X, M12: x.Y, M13: x.Z,
		M21: y.X, M22: y.Y, M23: y.Z,
		M31: -z.X, M32: -z.Y, M33: -z.Z,
		M41: position.X, M42: position.Y, M43: position.Z,
		M44: 1,
	}
}

// Shadow returns a matrix that flattens geometry onto plane, as a shadow cast
// by a directional light shining along lightDirection.
//
// The plane must be normalized. The result is degenerate, though free of
// division, when lightDirection is parallel to the plane.
func Shadow[T constraints.Float](lightDirection Vector3[T], plane Plane[T]) Matrix[T] {
	l := lightDirection
	d := plane.Normal.Dot(l)
	x, y, z, w := -plane.Normal.X, -plane.Normal.Y, -plane.Normal.Z, -plane.D
	return Matrix[T]{
		x*l.X + d, x * l.Y, x * l.Z, 0,
		y * l.X, y*l.Y + d, y * l.Z, 0,
		z * l.X, z * l.Y, z*l.Z + d, 0,
		w * l.X, w * l.Y, w * l.Z, d,
	}
}

// Reflection returns a matrix that mirrors geometry about plane. The plane is
// normalized first.
func Reflection[T constraints.Float](plane Plane[T]) Matrix[T] {
	p := plane.Normalize()
	x, y, z := p.Normal.X, p.Normal.Y, p.Normal.Z
	a, b, c := -2*x, -2*y, -2*z
	return Matrix[T]{
		a*x + 1, b * x, c * x, 0,
		a * y, b*y + 1, c * y, 0,
		a * z, b * z, c*z + 1, 0,
		a * p.D, b * p.D, c * p.D, 1,
	}
}
