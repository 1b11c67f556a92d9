// Package geom implements 2D affine transformations in homogeneous
// coordinates: a 3x3 matrix factory for the elementary transforms
// (translation, scaling, rotation, reflection, shear) and an immutable
// Shape value that applies them to ordered point sets.
package geom

import "errors"

// ErrInvalidArgument reports a malformed input: an unknown reflection
// axis or shear direction, or a point row that is not an (x, y) pair.
// It is always propagated, never recovered from.
var ErrInvalidArgument = errors.New("invalid argument")

// Point is a 2D point.
type Point struct {
	X, Y float64
}
