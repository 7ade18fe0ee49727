// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// These tests check the kernel against mathgl, which uses column vectors and
// column major storage. A transform therefore has the same 16 elements in
// both libraries, but products are written in the opposite order.
//
// Results are converted back and compared with ApproxEqual, which accepts an
// absolute error; mathgl's own threshold comparison is relative only.

func toMgl64(m Matrix[float64]) mgl64.Mat4 { return mgl64.Mat4(m.Flatten()) }
func toMgl32(m Matrix[float32]) mgl32.Mat4 { return mgl32.Mat4(m.Flatten()) }

func fromMgl64(m mgl64.Mat4) Matrix[float64] { return MatrixFromArray([16]float64(m)) }
func fromMgl32(m mgl32.Mat4) Matrix[float32] { return MatrixFromArray([16]float32(m)) }

func toMglVec(v Vector3[float64]) mgl64.Vec3   { return mgl64.Vec3{v.X, v.Y, v.Z} }
func fromMglVec(v mgl64.Vec3) Vector3[float64] { return Vector3[float64]{v[0], v[1], v[2]} }

func toMglQuat(q Quaternion[float64]) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func fromMglQuat(q mgl64.Quat) Quaternion[float64] {
	return Quaternion[float64]{q.V[0], q.V[1], q.V[2], q.W}
}

func TestReferenceConstructors(t *testing.T) {
	axis := Vec3(1.0, -2.0, 0.5).Normalize()
	eye, target := Vec3(3.0, 4.0, 5.0), Vec3(-1.0, 0.0, 2.0)
	testCases := []struct {
		desc string
		got  Matrix[float64]
		want mgl64.Mat4
	}{
		{"Translation", Translation(1.0, -2.0, 3.0), mgl64.Translate3D(1, -2, 3)},
		{"ScalingXYZ", ScalingXYZ(2.0, 3.0, 4.0), mgl64.Scale3D(2, 3, 4)},
		{"RotationX", RotationX(0.3), mgl64.HomogRotate3DX(0.3)},
		{"RotationY", RotationY(0.3), mgl64.HomogRotate3DY(0.3)},
		{"RotationZ", RotationZ(0.3), mgl64.HomogRotate3DZ(0.3)},
		{"FromAxisAngle", FromAxisAngle(axis, 1.7), mgl64.HomogRotate3D(1.7, toMglVec(axis))},
		{"LookAt", LookAt(eye, target, Up[float64]()), mgl64.LookAtV(toMglVec(eye), toMglVec(target), mgl64.Vec3{0, 1, 0})},
	}
	for _, tc := range testCases {
		if want := fromMgl64(tc.want); !tc.got.ApproxEqual(want, 1e-14) {
			t.Errorf("%s: got %v, want %v", tc.desc, tc.got, want)
		}
	}
}

func TestReferenceProducts(t *testing.T) {
	r := newRNG(15)
	for i := 0; i < 100; i++ {
		a, b := randDominant[float64](r), randDominant[float64](r)
		want := fromMgl64(toMgl64(b).Mul4(toMgl64(a)))
		if got := a.Mul(b); !got.ApproxEqual(want, 1e-12) {
			t.Fatalf("i=%d: Mul: got %v, want %v", i, got, want)
		}
		if got, want := a.Det(), toMgl64(a).Det(); !ApproxEqual(got, want, 1e-12) {
			t.Fatalf("i=%d: Det: got %v, want %v", i, got, want)
		}
		if got, want := a.Invert(), fromMgl64(toMgl64(a).Inv()); !got.ApproxEqual(want, 1e-12) {
			t.Fatalf("i=%d: Invert: got %v, want %v", i, got, want)
		}
	}
}

func TestReferenceQuaternion(t *testing.T) {
	r := newRNG(16)
	for i := 0; i < 100; i++ {
		axis := randVector[float64](r, -1, 1).Normalize()
		angle := r.in(-3, 3)
		q := QuaternionFromAxisAngle(axis, angle)
		if want := fromMglQuat(mgl64.QuatRotate(angle, toMglVec(axis))); !q.ApproxEqual(want, 1e-14) {
			t.Fatalf("i=%d: QuaternionFromAxisAngle: got %v, want %v", i, q, want)
		}
		if got, want := FromQuaternion(q), fromMgl64(toMglQuat(q).Mat4()); !got.ApproxEqual(want, 1e-14) {
			t.Fatalf("i=%d: FromQuaternion: got %v, want %v", i, got, want)
		}

		v := randVector[float64](r, -5, 5)
		if got, want := q.Rotate(v), fromMglVec(toMglQuat(q).Rotate(toMglVec(v))); !got.ApproxEqual(want, 1e-12) {
			t.Fatalf("i=%d: Rotate: got %v, want %v", i, got, want)
		}

		p := randRotation[float64](r)
		if got, want := p.Mul(q), fromMglQuat(toMglQuat(p).Mul(toMglQuat(q))); !got.ApproxEqual(want, 1e-14) {
			t.Fatalf("i=%d: Mul: got %v, want %v", i, got, want)
		}
	}
}

func TestReferenceSlerp(t *testing.T) {
	r := newRNG(17)
	for n := 0; n < 100; {
		p, q := randRotation[float64](r), randRotation[float64](r)
		if p.Dot(q) < 0 {
			q = q.Neg()
		}
		// mathgl switches to a normalized lerp above this dot product.
		if p.Dot(q) > 0.9995 {
			continue
		}
		n++
		tt := r.unit()
		got := p.Slerp(q, tt)
		want := fromMglQuat(mgl64.QuatSlerp(toMglQuat(p), toMglQuat(q), tt))
		if !got.ApproxEqual(want, 1e-12) {
			t.Fatalf("n=%d: t=%v: got %v, want %v", n, tt, got, want)
		}
	}
}

func TestReferenceFloat32(t *testing.T) {
	r := newRNG(18)
	for i := 0; i < 100; i++ {
		a, b := randAffine[float32](r), randAffine[float32](r)
		want := fromMgl32(toMgl32(b).Mul4(toMgl32(a)))
		if got := a.Mul(b); !got.ApproxEqual(want, 1e-4) {
			t.Fatalf("i=%d: Mul: got %v, want %v", i, got, want)
		}
		if got, want := a.Invert(), fromMgl32(toMgl32(a).Inv()); !got.ApproxEqual(want, 1e-4) {
			t.Fatalf("i=%d: Invert: got %v, want %v", i, got, want)
		}
	}

	got := RotationZ[float32](1.2).Mul(Translation[float32](1, 2, 3))
	want := fromMgl32(mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DZ(1.2)))
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("rotate then translate: got %v, want %v", got, want)
	}
}
