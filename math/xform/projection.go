// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument is wrapped by every error returned from the projection
// constructors.
var ErrInvalidArgument = errors.New("xform: invalid argument")

// ArgumentError records a projection parameter that was rejected.
type ArgumentError struct {
	Func   string // constructor that rejected the argument
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return "xform: " + e.Func + ": invalid " + e.Param + ": " + e.Reason
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func checkDepth[T constraints.Float](fn string, near, far T) error {
	if near <= 0 {
		return &ArgumentError{fn, "near plane distance", "must be positive"}
	}
	if far <= 0 {
		return &ArgumentError{fn, "far plane distance", "must be positive"}
	}
	if near >= far {
		return &ArgumentError{fn, "near plane distance", "must be less than the far plane distance"}
	}
	return nil
}

// negFarRange returns far/(near-far), or -1 for an infinitely distant far
// plane, where the quotient would be Inf/Inf.
func negFarRange[T constraints.Float](near, far T) T {
	if isPosInf(far) {
		return -1
	}
	return far / (near - far)
}

// Orthographic returns an orthographic projection of a view volume width wide
// and height high, centered on the view axis.
func Orthographic[T constraints.Float](width, height, near, far T) (Matrix[T], error) {
	if err := checkDepth("Orthographic", near, far); err != nil {
		return Matrix[T]{}, err
	}
	return Matrix[T]{
		M11: 2 / width,
		M22: 2 / height,
		M33: 1 / (near - far),
		M43: near / (near - far),
		M44: 1,
	}, nil
}

// OrthographicOffCenter returns an orthographic projection of the view volume
// bounded by left, right, bottom and top.
func OrthographicOffCenter[T constraints.Float](left, right, bottom, top, near, far T) (Matrix[T], error) {
	if err := checkDepth("OrthographicOffCenter", near, far); err != nil {
		return Matrix[T]{}, err
	}
	return orthographicOffCenter(left, right, bottom, top, near, far), nil
}

// OrthographicRect is like OrthographicOffCenter with the bounds taken from v.
func OrthographicRect[T constraints.Float](v Viewport[T], near, far T) (Matrix[T], error) {
	if err := checkDepth("OrthographicRect", near, far); err != nil {
		return Matrix[T]{}, err
	}
	return orthographicOffCenter(v.Left(), v.Right(), v.Bottom(), v.Top(), near, far), nil
}

func orthographicOffCenter[T constraints.Float](left, right, bottom, top, near, far T) Matrix[T] {
	return Matrix[T]{
		M11: 2 / (right - left),
		M22: 2 / (top - bottom),
		M33: 1 / (near - far),
		M41: (left + right) / (left - right),
		M42: (top + bottom) / (bottom - top),
		M43: near / (near - far),
		M44: 1,
	}
}

// Perspective returns a perspective projection whose near plane is width
// wide and height high. far may be +Inf.
func Perspective[T constraints.Float](width, height, near, far T) (Matrix[T], error) {
	if err := checkDepth("Perspective", near, far); err != nil {
		return Matrix[T]{}, err
	}
	r := negFarRange(near, far)
	return Matrix[T]{
		M11: 2 * near / width,
		M22: 2 * near / height,
		M33: r,
		M34: -1,
		M43: near * r,
	}, nil
}

// PerspectiveFieldOfView returns a perspective projection with the vertical
// field of view fov, in radians, and the given width/height aspect ratio.
// fov must lie strictly between 0 and π, where π is rounded to T. far may be
// +Inf.
func PerspectiveFieldOfView[T constraints.Float](fov, aspect, near, far T) (Matrix[T], error) {
	if fov <= 0 || fov >= Pi {
		return Matrix[T]{}, &ArgumentError{"PerspectiveFieldOfView", "field of view", "must be in (0, π)"}
	}
	if err := checkDepth("PerspectiveFieldOfView", near, far); err != nil {
		return Matrix[T]{}, err
	}
	y := 1 / tan(fov*0.5)
	r := negFarRange(near, far)
	return Matrix[T]{
		M11: y / aspect,
		M22: y,
		M33: r,
		M34: -1,
		M43: near * r,
	}, nil
}

// PerspectiveOffCenter returns a perspective projection of the view volume
// whose near plane is bounded by left, right, bottom and top. far may be
// +Inf.
func PerspectiveOffCenter[T constraints.Float](left, right, bottom, top, near, far T) (Matrix[T], error) {
	if err := checkDepth("PerspectiveOffCenter", near, far); err != nil {
		return Matrix[T]{}, err
	}
	return perspectiveOffCenter(left, right, bottom, top, near, far), nil
}

// PerspectiveRect is like PerspectiveOffCenter with the bounds taken from v.
func PerspectiveRect[T constraints.Float](v Viewport[T], near, far T) (Matrix[T], error) {
	if err := checkDepth("PerspectiveRect", near, far); err != nil {
		return Matrix[T]{}, err
	}
	return perspectiveOffCenter(v.Left(), v.Right(), v.Bottom(), v.Top(), near, far), nil
}

func perspectiveOffCenter[T constraints.Float](left, right, bottom, top, near, far T) Matrix[T] {
	r := negFarRange(near, far)
	return Matrix[T]{
		M11: 2 * near / (right - left),
		M22: 2 * near / (top - bottom),
		M31: (left + right) / (right - left),
		M32: (top + bottom) / (top - bottom),
		M33: r,
		M34: -1,
		M43: near * r,
	}
}
