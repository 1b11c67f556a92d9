package geom

import "fmt"

// Shape is an ordered, immutable set of points under a descriptive label.
// Points are stored in homogeneous form (x, y, 1); the unit third
// coordinate is established on construction and never changes. Every
// transformation returns a fresh Shape, leaving the receiver intact, so
// shapes are safe to share across goroutines.
type Shape struct {
	label string
	rows  [][3]float64
}

// NewShape builds a shape from one or more points.
func NewShape(points []Point, label string) (Shape, error) {
	if len(points) == 0 {
		return Shape{}, fmt.Errorf("%w: shape needs at least one point", ErrInvalidArgument)
	}
	rows := make([][3]float64, len(points))
	for i, p := range points {
		rows[i] = [3]float64{p.X, p.Y, 1}
	}
	return Shape{label: label, rows: rows}, nil
}

// ShapeFromRows builds a shape from raw coordinate rows, the boundary for
// untyped callers (scripts, decoded input). Every row must be an (x, y)
// pair.
func ShapeFromRows(rows [][]float64, label string) (Shape, error) {
	if len(rows) == 0 {
		return Shape{}, fmt.Errorf("%w: shape needs at least one point", ErrInvalidArgument)
	}
	points := make([]Point, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return Shape{}, fmt.Errorf("%w: point %d has %d coordinates, want 2", ErrInvalidArgument, i, len(row))
		}
		points[i] = Point{X: row[0], Y: row[1]}
	}
	return NewShape(points, label)
}

// Label returns the shape's descriptive label.
func (s Shape) Label() string { return s.label }

// Len returns the number of points.
func (s Shape) Len() int { return len(s.rows) }

// Points returns the points in construction order, stripped of the
// homogeneous coordinate. The returned slice is a copy.
func (s Shape) Points() []Point {
	points := make([]Point, len(s.rows))
	for i, row := range s.rows {
		points[i] = Point{X: row[0], Y: row[1]}
	}
	return points
}

// Apply maps every point through m and returns the result as a new shape
// with the given label. Point count and ordering are preserved.
func (s Shape) Apply(m Matrix, label string) Shape {
	rows := make([][3]float64, len(s.rows))
	for i, row := range s.rows {
		p := m.Apply(Point{X: row[0], Y: row[1]})
		rows[i] = [3]float64{p.X, p.Y, 1}
	}
	return Shape{label: label, rows: rows}
}

func (s Shape) tagged(tag string) string { return s.label + " " + tag }

// Translate moves the shape by (dx, dy).
func (s Shape) Translate(dx, dy float64) Shape {
	return s.Apply(Translation(dx, dy), s.tagged("translated"))
}

// Scale scales uniformly by factor about origin.
func (s Shape) Scale(factor float64, origin Point) Shape {
	return s.Apply(ScalingAbout(factor, factor, origin), s.tagged("scaled"))
}

// ScaleXY scales per-axis about origin.
func (s Shape) ScaleXY(sx, sy float64, origin Point) Shape {
	return s.Apply(ScalingAbout(sx, sy, origin), s.tagged("scaled"))
}

// Rotate rotates by degrees (counter-clockwise positive) about origin.
func (s Shape) Rotate(degrees float64, origin Point) Shape {
	return s.Apply(RotationAbout(degrees, origin), s.tagged("rotated"))
}

// Reflect mirrors the shape across the given axis.
func (s Shape) Reflect(axis Axis) (Shape, error) {
	m, err := Reflection(axis)
	if err != nil {
		return Shape{}, err
	}
	return s.Apply(m, s.tagged("reflected")), nil
}

// ShearBy shears the shape with factor k in the given direction.
func (s Shape) ShearBy(k float64, dir ShearDirection) (Shape, error) {
	m, err := Shear(k, dir)
	if err != nil {
		return Shape{}, err
	}
	return s.Apply(m, s.tagged("sheared")), nil
}
