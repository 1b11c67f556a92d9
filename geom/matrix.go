package geom

import (
	"fmt"
	"math"
)

// Matrix is a 3x3 homogeneous transformation matrix, row-major. Points
// transform as column vectors (m acting on (x, y, 1)), so in a product
// the rightmost factor applies first. Factory-produced matrices always
// have bottom row (0, 0, 1).
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns m * o. Applying the product to a point is equivalent to
// applying o first, then m.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Apply maps p through m, treating p as the column vector (x, y, 1).
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Translation returns the matrix moving points by (dx, dy).
func Translation(dx, dy float64) Matrix {
	return Matrix{
		{1, 0, dx},
		{0, 1, dy},
		{0, 0, 1},
	}
}

// Scaling returns a uniform scale about the world origin.
func Scaling(s float64) Matrix {
	return ScalingXY(s, s)
}

// ScalingXY returns a per-axis scale about the world origin. Zero factors
// are legal and collapse geometry onto a line or point.
func ScalingXY(sx, sy float64) Matrix {
	return Matrix{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// ScalingAbout returns a per-axis scale about an arbitrary origin:
// T(origin) * S(sx, sy) * T(-origin).
func ScalingAbout(sx, sy float64, origin Point) Matrix {
	if origin == (Point{}) {
		return ScalingXY(sx, sy)
	}
	return Translation(origin.X, origin.Y).
		Mul(ScalingXY(sx, sy)).
		Mul(Translation(-origin.X, -origin.Y))
}

// Rotation returns a counter-clockwise rotation about the world origin.
// The angle is in degrees; negative angles rotate clockwise.
func Rotation(degrees float64) Matrix {
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotationAbout returns a rotation about an arbitrary origin:
// T(origin) * R(deg) * T(-origin).
func RotationAbout(degrees float64, origin Point) Matrix {
	if origin == (Point{}) {
		return Rotation(degrees)
	}
	return Translation(origin.X, origin.Y).
		Mul(Rotation(degrees)).
		Mul(Translation(-origin.X, -origin.Y))
}

// Reflection returns the mirror matrix for the given axis: AxisX flips y
// across the x-axis, AxisY flips x across the y-axis.
func Reflection(axis Axis) (Matrix, error) {
	switch axis {
	case AxisX:
		return ScalingXY(1, -1), nil
	case AxisY:
		return ScalingXY(-1, 1), nil
	}
	return Matrix{}, fmt.Errorf("%w: unknown reflection axis %v", ErrInvalidArgument, axis)
}

// Shear returns a shear with factor k. Horizontal shear offsets x
// proportionally to y; vertical shear offsets y proportionally to x.
func Shear(k float64, dir ShearDirection) (Matrix, error) {
	switch dir {
	case ShearHorizontal:
		return Matrix{
			{1, k, 0},
			{0, 1, 0},
			{0, 0, 1},
		}, nil
	case ShearVertical:
		return Matrix{
			{1, 0, 0},
			{k, 1, 0},
			{0, 0, 1},
		}, nil
	}
	return Matrix{}, fmt.Errorf("%w: unknown shear direction %v", ErrInvalidArgument, dir)
}
