// Package exercises defines the ten fixed transformation exercises the
// demo program walks through. Each exercise is a pure data producer: it
// builds a shape, applies a scripted transformation sequence, and returns
// every stage so plotting and reporting can consume them.
package exercises

import (
	"fmt"

	"transform2d/geom"
)

// Exercise is one worked transformation example. Steps[0] is the original
// shape; each later entry is the result of one more transformation.
// Composed, when set, is the pre-multiplied matrix equivalent to the whole
// sequence, for the compose-once-apply-once path.
type Exercise struct {
	Number    int
	Title     string
	Narrative string
	Steps     []geom.Shape
	Composed  *geom.Matrix
}

// Original returns the untransformed shape.
func (e Exercise) Original() geom.Shape { return e.Steps[0] }

// Final returns the fully transformed shape.
func (e Exercise) Final() geom.Shape { return e.Steps[len(e.Steps)-1] }

// All returns the ten exercises in presentation order.
func All() ([]Exercise, error) {
	builders := []func() (Exercise, error){
		SimpleTranslation,
		UniformScale,
		NonUniformScale,
		PointRotation,
		PolygonRotation,
		PointReflection,
		TriangleReflection,
		HorizontalShear,
		ComposedPointSequence,
		ComposedPolygonSequence,
	}
	out := make([]Exercise, 0, len(builders))
	for i, build := range builders {
		ex, err := build()
		if err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i+1, err)
		}
		ex.Number = i + 1
		out = append(out, ex)
	}
	return out, nil
}

// SimpleTranslation moves the point (2,3) by the vector (4,-2).
func SimpleTranslation() (Exercise, error) {
	p, err := geom.NewShape([]geom.Point{{X: 2, Y: 3}}, "P(2, 3)")
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Title:     "Simple translation",
		Narrative: "The point P(2, 3) is translated by the vector (4, -2).",
		Steps:     []geom.Shape{p, p.Translate(4, -2)},
	}, nil
}

// UniformScale doubles the triangle A(1,1) B(3,1) C(2,4) about the origin.
func UniformScale() (Exercise, error) {
	tri, err := geom.NewShape([]geom.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 4}}, "triangle")
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Title:     "Uniform scale",
		Narrative: "The triangle A(1,1), B(3,1), C(2,4) is scaled by a uniform factor of 2 about the origin.",
		Steps:     []geom.Shape{tri, tri.Scale(2, geom.Point{})},
	}, nil
}

// NonUniformScale scales the same triangle by (2, 0.5).
func NonUniformScale() (Exercise, error) {
	tri, err := geom.NewShape([]geom.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 4}}, "triangle")
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Title:     "Non-uniform scale",
		Narrative: "The same triangle is scaled with per-axis factors (x=2, y=0.5).",
		Steps:     []geom.Shape{tri, tri.ScaleXY(2, 0.5, geom.Point{})},
	}, nil
}

// PointRotation rotates the point (1,0) by 90 degrees counter-clockwise.
func PointRotation() (Exercise, error) {
	p, err := geom.NewShape([]geom.Point{{X: 1, Y: 0}}, "P(1, 0)")
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Title:     "Rotation about the origin",
		Narrative: "The point P(1, 0) is rotated 90 degrees counter-clockwise.",
		Steps:     []geom.Shape{p, p.Rotate(90, geom.Point{})},
	}, nil
}

// PolygonRotation rotates a square 45 degrees clockwise.
func PolygonRotation() (Exercise, error) {
	sq, err := geom.NewShape([]geom.Point{{X: 1, Y: 1}, {X: 1, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 1}}, "square")
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Title:     "Polygon rotation",
		Narrative: "A square is rotated 45 degrees clockwise (negative angle).",
		Steps:     []geom.Shape{sq, sq.Rotate(-45, geom.Point{})},
	}, nil
}

// PointReflection mirrors the point (2,5) across the y-axis.
func PointReflection() (Exercise, error) {
	p, err := geom.NewShape([]geom.Point{{X: 2, Y: 5}}, "P(2, 5)")
	if err != nil {
		return Exercise{}, err
	}
	refl, err := p.Reflect(geom.AxisY)
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Title:     "Simple reflection",
		Narrative: "The point P(2, 5) is reflected across the y-axis.",
		Steps:     []geom.Shape{p, refl},
	}, nil
}

// TriangleReflection mirrors the triangle A(2,3) B(4,3) C(3,5) across the
// x-axis.
func TriangleReflection() (Exercise, error) {
	tri, err := geom.NewShape([]geom.Point{{X: 2, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 5}}, "triangle")
	if err != nil {
		return Exercise{}, err
	}
	refl, err := tri.Reflect(geom.AxisX)
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Title:     "Triangle reflection",
		Narrative: "The triangle A(2,3), B(4,3), C(3,5) is reflected across the x-axis.",
		Steps:     []geom.Shape{tri, refl},
	}, nil
}

// HorizontalShear applies a horizontal shear with k=2 to the point (2,3).
func HorizontalShear() (Exercise, error) {
	p, err := geom.NewShape([]geom.Point{{X: 2, Y: 3}}, "P(2, 3)")
	if err != nil {
		return Exercise{}, err
	}
	sheared, err := p.ShearBy(2, geom.ShearHorizontal)
	if err != nil {
		return Exercise{}, err
	}
	return Exercise{
		Title:     "Horizontal shear",
		Narrative: "A horizontal shear with factor k=2 is applied to the point P(2, 3).",
		Steps:     []geom.Shape{p, sheared},
	}, nil
}

// ComposedPointSequence chains translate, rotate and scale on the point
// (3,2), keeping every intermediate stage.
func ComposedPointSequence() (Exercise, error) {
	p, err := geom.NewShape([]geom.Point{{X: 3, Y: 2}}, "P(3, 2)")
	if err != nil {
		return Exercise{}, err
	}
	step1 := p.Translate(1, -1)
	step2 := step1.Rotate(90, geom.Point{})
	step3 := step2.Scale(2, geom.Point{})
	return Exercise{
		Title:     "Composition of transformations",
		Narrative: "The point P(3, 2) is translated by (1, -1), rotated 90 degrees counter-clockwise, then scaled by 2.",
		Steps:     []geom.Shape{p, step1, step2, step3},
	}, nil
}

// ComposedPolygonSequence chains translate, scale and reflect on a
// rectangle, and additionally carries the single pre-composed matrix so
// callers can verify both paths produce the same geometry.
func ComposedPolygonSequence() (Exercise, error) {
	rect, err := geom.NewShape([]geom.Point{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 3}, {X: 1, Y: 3}}, "rectangle")
	if err != nil {
		return Exercise{}, err
	}
	step1 := rect.Translate(-2, 3)
	step2 := step1.ScaleXY(1.5, 0.5, geom.Point{})
	step3, err := step2.Reflect(geom.AxisY)
	if err != nil {
		return Exercise{}, err
	}

	mirror, err := geom.Reflection(geom.AxisY)
	if err != nil {
		return Exercise{}, err
	}
	composed := mirror.
		Mul(geom.ScalingXY(1.5, 0.5)).
		Mul(geom.Translation(-2, 3))

	return Exercise{
		Title:     "Combined transformations",
		Narrative: "The rectangle A(1,1), B(5,1), C(5,3), D(1,3) is translated by (-2, 3), scaled by (1.5, 0.5), then reflected across the y-axis. The same result is obtained in one step from the pre-composed matrix.",
		Steps:     []geom.Shape{rect, step1, step2, step3},
		Composed:  &composed,
	}, nil
}
