// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// The transcendental functions below evaluate in the scalar's own width:
// float32 kernels go through math32 so that single-precision results are not
// rounded twice via float64.

func is32[T constraints.Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

func sqrt[T constraints.Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func sin[T constraints.Float](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

func cos[T constraints.Float](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

func tan[T constraints.Float](x T) T {
	if is32[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

func acos[T constraints.Float](x T) T {
	if is32[T]() {
		return T(math32.Acos(float32(x)))
	}
	return T(math.Acos(float64(x)))
}

func abs[T constraints.Float](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

func mod[T constraints.Float](x, y T) T {
	if is32[T]() {
		return T(math32.Mod(float32(x), float32(y)))
	}
	return T(math.Mod(float64(x), float64(y)))
}

func isPosInf[T constraints.Float](x T) bool {
	if is32[T]() {
		return math32.IsInf(float32(x), 1)
	}
	return math.IsInf(float64(x), 1)
}
