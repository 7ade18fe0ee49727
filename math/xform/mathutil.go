// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"golang.org/x/exp/constraints"
)

// Common mathematical constants, untyped so that they convert exactly to
// either scalar width.
const (
	E       = 2.71828182845904523536028747135266249775724709369995957496696763
	Log10E  = 0.43429448190325182765112891891660508229439700580366656611445378
	Log2E   = 1.44269504088896340735992468100189213742664595415298593413544940
	Pi      = 3.14159265358979323846264338327950288419716939937510582097494459
	PiOver2 = Pi / 2
	PiOver4 = Pi / 4
	TwoPi   = Pi * 2
)

// Thresholds below which the general formulas become numerically unstable
// and a fallback branch is taken. Their values are part of the observable
// behavior and must not be recalibrated casually.
const (
	// billboardMinDistanceSquared is the squared object-to-camera distance
	// under which Billboard and ConstrainedBillboard stop normalizing the
	// view direction and use the camera forward vector instead.
	billboardMinDistanceSquared = 0.0001

	// billboardParallelDot is |cos| of roughly 3 degrees: a rotate axis this
	// close to the view direction yields a degenerate cross product.
	billboardParallelDot = 0.9982547

	// slerpLinearDot is the |dot| above which Slerp blends linearly because
	// sin(θ) is too close to zero to divide by.
	slerpLinearDot = 0.999999
)

// Clamp restricts v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
//
// It is the fast form a + (b-a)*t, which may not return exactly b at t == 1
// when a and b differ greatly in magnitude. See LerpPrecise.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// LerpPrecise linearly interpolates between a and b by t, returning exactly
// b when t == 1.
func LerpPrecise[T constraints.Float](a, b, t T) T {
	return (1-t)*a + b*t
}

// Hermite performs a Hermite spline interpolation between the positions a
// and b, with tangents ta and tb.
func Hermite[T constraints.Float](a, ta, b, tb, t T) T {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	t2 := t * t
	t3 := t2 * t
	return (2*a-2*b+tb+ta)*t3 + (3*b-3*a-2*ta-tb)*t2 + ta*t + a
}

// SmoothStep interpolates between a and b using a cubic equation. t is
// clamped to [0, 1].
func SmoothStep[T constraints.Float](a, b, t T) T {
	return Hermite(a, 0, b, 0, Clamp(t, 0, 1))
}

// CatmullRom performs a Catmull-Rom interpolation between v2 and v3, using v1
// and v4 as the outer control points.
func CatmullRom[T constraints.Float](v1, v2, v3, v4, t T) T {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*v2 +
		(v3-v1)*t +
		(2*v1-5*v2+4*v3-v4)*t2 +
		(3*v2-v1-3*v3+v4)*t3)
}

// Barycentric returns the coordinate, along one axis, of a point given by
// the barycentric weights w2 and w3 relative to the triangle (v1, v2, v3).
func Barycentric[T constraints.Float](v1, v2, v3, w2, w3 T) T {
	return v1 + (v2-v1)*w2 + (v3-v1)*w3
}

// Distance returns the absolute difference of a and b.
func Distance[T constraints.Float](a, b T) T {
	return abs(a - b)
}

// Sign returns -1, 0 or +1 according to the sign of x. NaN yields 0.
func Sign[T constraints.Float](x T) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// ToRadians converts degrees to radians.
func ToRadians[T constraints.Float](degrees T) T {
	return degrees * (Pi / 180)
}

// ToDegrees converts radians to degrees.
func ToDegrees[T constraints.Float](radians T) T {
	return radians * (180 / Pi)
}

// WrapAngle reduces angle to the range (-π, π].
func WrapAngle[T constraints.Float](angle T) T {
	if angle > -Pi && angle <= Pi {
		return angle
	}
	angle = mod(angle, TwoPi)
	if angle <= -Pi {
		return angle + TwoPi
	}
	if angle > Pi {
		return angle - TwoPi
	}
	return angle
}

// ApproxEqual reports whether a and b differ by no more than eps, either
// absolutely or relative to the larger magnitude.
func ApproxEqual[T constraints.Float](a, b, eps T) bool {
	if a == b {
		return true
	}
	d := abs(a - b)
	if d <= eps {
		return true
	}
	m := abs(a)
	if n := abs(b); n > m {
		m = n
	}
	return d <= eps*m
}
