// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Quaternion is a rotation represented as x·i + y·j + z·k + w.
//
// Only unit quaternions represent rotations, but unit length is not
// enforced: Add, Scale and the Lerp blend step all produce non-unit values
// that callers must renormalize. q and -q represent the same rotation.
type Quaternion[T constraints.Float] struct {
	X, Y, Z, W T
}

// QuaternionIdentity returns the identity rotation (0, 0, 0, 1).
func QuaternionIdentity[T constraints.Float]() Quaternion[T] {
	return Quaternion[T]{0, 0, 0, 1}
}

// QuaternionFromAxisAngle returns the rotation by angle radians around axis.
// The axis must already be of unit length; it is not normalized.
func QuaternionFromAxisAngle[T constraints.Float](axis Vector3[T], angle T) Quaternion[T] {
	half := angle * 0.5
	s, c := sin(half), cos(half)
	return Quaternion[T]{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuaternionFromYawPitchRoll returns the rotation by yaw around the Y axis,
// pitch around the X axis and roll around the Z axis, applied in the order
// roll, pitch, yaw.
func QuaternionFromYawPitchRoll[T constraints.Float](yaw, pitch, roll T) Quaternion[T] {
	sr, cr := sin(roll*0.5), cos(roll*0.5)
	sp, cp := sin(pitch*0.5), cos(pitch*0.5)
	sy, cy := sin(yaw*0.5), cos(yaw*0.5)
	return Quaternion[T]{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuaternionFromRotationMatrix returns the rotation encoded in the upper-left
// 3x3 block of m, which must be orthonormal.
//
// The component with the largest magnitude is recovered first and the others
// are derived from it, so the divisor never approaches zero, including for
// rotations by angles close to π.
func QuaternionFromRotationMatrix[T constraints.Float](m Matrix[T]) Quaternion[T] {
	var q Quaternion[T]
	if trace := m.M11 + m.M22 + m.M33; trace > 0 {
		s := sqrt(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m.M23 - m.M32) * s
		q.Y = (m.M31 - m.M13) * s
		q.Z = (m.M12 - m.M21) * s
	} else if m.M11 >= m.M22 && m.M11 >= m.M33 {
		s := sqrt(1 + m.M11 - m.M22 - m.M33)
		inv := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m.M12 + m.M21) * inv
		q.Z = (m.M13 + m.M31) * inv
		q.W = (m.M23 - m.M32) * inv
	} else if m.M22 > m.M33 {
		s := sqrt(1 + m.M22 - m.M11 - m.M33)
		inv := 0.5 / s
		q.X = (m.M21 + m.M12) * inv
		q.Y = 0.5 * s
		q.Z = (m.M32 + m.M23) * inv
		q.W = (m.M31 - m.M13) * inv
	} else {
		s := sqrt(1 + m.M33 - m.M11 - m.M22)
		inv := 0.5 / s
		q.X = (m.M31 + m.M13) * inv
		q.Y = (m.M32 + m.M23) * inv
		q.Z = 0.5 * s
		q.W = (m.M12 - m.M21) * inv
	}
	return q
}

// Add returns the component-wise sum q+o.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

// Sub returns the component-wise difference q-o.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

// Scale returns q with every component multiplied by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Neg returns -q, which represents the same rotation as q.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// Mul returns the Hamilton product q·o. It is not commutative: rotating a
// vector by the result applies o first and then q.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: q.X*o.W + o.X*q.W + (q.Y*o.Z - q.Z*o.Y),
		Y: q.Y*o.W + o.Y*q.W + (q.Z*o.X - q.X*o.Z),
		Z: q.Z*o.W + o.Z*q.W + (q.X*o.Y - q.Y*o.X),
		W: q.W*o.W - (q.X*o.X + q.Y*o.Y + q.Z*o.Z),
	}
}

// Div returns q·o⁻¹.
func (q Quaternion[T]) Div(o Quaternion[T]) Quaternion[T] {
	inv := 1 / o.LenSquared()
	ox, oy, oz, ow := -o.X*inv, -o.Y*inv, -o.Z*inv, o.W*inv
	return Quaternion[T]{
		X: q.X*ow + ox*q.W + (q.Y*oz - q.Z*oy),
		Y: q.Y*ow + oy*q.W + (q.Z*ox - q.X*oz),
		Z: q.Z*ow + oz*q.W + (q.X*oy - q.Y*ox),
		W: q.W*ow - (q.X*ox + q.Y*oy + q.Z*oz),
	}
}

// Concatenate returns the rotation that applies q and then o. It is o·q.
func (q Quaternion[T]) Concatenate(o Quaternion[T]) Quaternion[T] {
	return o.Mul(q)
}

// Conjugate returns q with its vector part negated. For a unit quaternion it
// is the inverse rotation.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the multiplicative inverse of q: its conjugate divided by
// its squared length. The zero quaternion yields NaN components.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	inv := 1 / q.LenSquared()
	return Quaternion[T]{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

// Dot returns the four-dimensional dot product of q and o.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Len returns the length of q.
func (q Quaternion[T]) Len() T {
	return sqrt(q.LenSquared())
}

// LenSquared returns the squared length of q.
func (q Quaternion[T]) LenSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Normalize returns q scaled to unit length.
//
// There is no zero guard: normalizing the zero quaternion yields NaN
// components.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	return q.Scale(1 / q.Len())
}

// Lerp linearly interpolates between q and o by t and renormalizes the
// result. When q and o lie in opposite hemispheres, o is negated first so
// that the blend follows the shorter arc.
func (q Quaternion[T]) Lerp(o Quaternion[T], t T) Quaternion[T] {
	s := 1 - t
	var r Quaternion[T]
	if q.Dot(o) >= 0 {
		r = Quaternion[T]{
			s*q.X + t*o.X,
			s*q.Y + t*o.Y,
			s*q.Z + t*o.Z,
			s*q.W + t*o.W,
		}
	} else {
		r = Quaternion[T]{
			s*q.X - t*o.X,
			s*q.Y - t*o.Y,
			s*q.Z - t*o.Z,
			s*q.W - t*o.W,
		}
	}
	return r.Scale(1 / sqrt(r.LenSquared()))
}

// Slerp spherically interpolates between the unit quaternions q and o by t,
// following the shorter arc.
//
// When q and o are within slerpLinearDot of each other sin(θ) is too small to
// divide by and the weights fall back to a plain linear blend, which is not
// renormalized.
func (q Quaternion[T]) Slerp(o Quaternion[T], t T) Quaternion[T] {
	d := q.Dot(o)
	flip := false
	if d < 0 {
		flip = true
		d = -d
	}

	var wq, wo T
	if d > slerpLinearDot {
		wq = 1 - t
		wo = t
	} else {
		theta := acos(d)
		inv := 1 / sin(theta)
		wq = sin((1-t)*theta) * inv
		wo = sin(t*theta) * inv
	}
	if flip {
		wo = -wo
	}
	return Quaternion[T]{
		wq*q.X + wo*o.X,
		wq*q.Y + wo*o.Y,
		wq*q.Z + wo*o.Z,
		wq*q.W + wo*o.W,
	}
}

// Rotate returns v rotated by the unit quaternion q.
//
// It evaluates v + w·t + q×t with t = 2·(q×v), which is cheaper than
// converting q to a matrix.
func (q Quaternion[T]) Rotate(v Vector3[T]) Vector3[T] {
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)
	return Vector3[T]{
		X: v.X + tx*q.W + (q.Y*tz - q.Z*ty),
		Y: v.Y + ty*q.W + (q.Z*tx - q.X*tz),
		Z: v.Z + tz*q.W + (q.X*ty - q.Y*tx),
	}
}

// ToAxisAngle returns the axis and angle, in [0, 2π], of the unit quaternion
// q. A rotation by zero returns the X axis.
func (q Quaternion[T]) ToAxisAngle() (axis Vector3[T], angle T) {
	w := Clamp(q.W, -1, 1)
	angle = 2 * acos(w)
	s := sqrt(1 - w*w)
	if s == 0 {
		return UnitX[T](), angle
	}
	return Vector3[T]{q.X / s, q.Y / s, q.Z / s}, angle
}

// ApproxEqual reports whether every component of q and o is within eps. It
// does not treat q and -q as equal.
func (q Quaternion[T]) ApproxEqual(o Quaternion[T], eps T) bool {
	return ApproxEqual(q.X, o.X, eps) && ApproxEqual(q.Y, o.Y, eps) &&
		ApproxEqual(q.Z, o.Z, eps) && ApproxEqual(q.W, o.W, eps)
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
