// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"golang.org/x/exp/constraints"
)

// viewDirection returns the unit direction from the camera to the object.
// When the two nearly coincide the direction is undefined, and the reverse of
// cameraForward (or Forward, if nil) is used instead.
func viewDirection[T constraints.Float](objectPos, cameraPos Vector3[T], cameraForward *Vector3[T]) Vector3[T] {
	d := objectPos.Sub(cameraPos)
	n := d.LenSquared()
	if n < billboardMinDistanceSquared {
		if cameraForward != nil {
			return cameraForward.Neg()
		}
		return Forward[T]()
	}
	return d.Scale(1 / sqrt(n))
}

// Billboard returns a world matrix that places geometry at objectPos and
// turns it to face a camera at cameraPos.
//
// cameraForward is optional and only consulted when the object and camera
// are closer than 0.01 units; the result never contains NaN on that account.
func Billboard[T constraints.Float](objectPos, cameraPos, cameraUp Vector3[T], cameraForward *Vector3[T]) Matrix[T] {
	dir := viewDirection(objectPos, cameraPos, cameraForward)
	right := cameraUp.Cross(dir).Normalize()
	up := dir.Cross(right)
	return Matrix[T]{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		dir.X, dir.Y, dir.Z, 0,
		objectPos.X, objectPos.Y, objectPos.Z, 1,
	}
}

// ConstrainedBillboard is like Billboard, but the geometry only turns around
// rotateAxis, as a tree or a column would.
//
// When rotateAxis is within about 3 degrees of the view direction the
// rotation is ill-defined; the basis is then built from objectForward, or
// from Forward or Right when objectForward is nil or also parallel to the
// axis. Both cameraForward and objectForward are optional.
func ConstrainedBillboard[T constraints.Float](objectPos, cameraPos, rotateAxis Vector3[T], cameraForward, objectForward *Vector3[T]) Matrix[T] {
	dir := viewDirection(objectPos, cameraPos, cameraForward)

	var right, forward Vector3[T]
	if abs(rotateAxis.Dot(dir)) > billboardParallelDot {
		forward = fallbackForward(rotateAxis, objectForward)
		right = rotateAxis.Cross(forward).Normalize()
		forward = right.Cross(rotateAxis).Normalize()
	} else {
		right = rotateAxis.Cross(dir).Normalize()
		forward = right.Cross(rotateAxis).Normalize()
	}
	return Matrix[T]{
		right.X, right.Y, right.Z, 0,
		rotateAxis.X, rotateAxis.Y, rotateAxis.Z, 0,
		forward.X, forward.Y, forward.Z, 0,
		objectPos.X, objectPos.Y, objectPos.Z, 1,
	}
}

// fallbackForward picks the first of objectForward, Forward and Right that is
// not parallel to axis. Right is returned unchecked.
func fallbackForward[T constraints.Float](axis Vector3[T], objectForward *Vector3[T]) Vector3[T] {
	if objectForward != nil && abs(axis.Dot(*objectForward)) <= billboardParallelDot {
		return *objectForward
	}
	if abs(axis.Dot(Forward[T]())) > billboardParallelDot {
		return Right[T]()
	}
	return Forward[T]()
}
