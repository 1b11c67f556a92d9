package geom

import (
	"errors"
	"testing"
)

func mustShape(t *testing.T, points []Point, label string) Shape {
	t.Helper()
	s, err := NewShape(points, label)
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	return s
}

func TestShapeConstruction(t *testing.T) {
	s := mustShape(t, []Point{{1, 1}, {3, 1}, {2, 4}}, "triangle")
	if s.Label() != "triangle" {
		t.Fatalf("label = %q", s.Label())
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d", s.Len())
	}
	got := s.Points()
	want := []Point{{1, 1}, {3, 1}, {2, 4}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := NewShape(nil, "empty"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty shape: error = %v, want ErrInvalidArgument", err)
	}
}

func TestShapeFromRows(t *testing.T) {
	s, err := ShapeFromRows([][]float64{{2, 3}}, "P")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Points()[0]; got != (Point{2, 3}) {
		t.Fatalf("point = %v", got)
	}

	_, err = ShapeFromRows([][]float64{{1, 2, 3}}, "bad")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("3-coordinate row: error = %v, want ErrInvalidArgument", err)
	}
	_, err = ShapeFromRows([][]float64{{1}}, "bad")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("1-coordinate row: error = %v, want ErrInvalidArgument", err)
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	s := mustShape(t, []Point{{2, 3}}, "P")
	moved := s.Translate(4, -2)
	if got := s.Points()[0]; got != (Point{2, 3}) {
		t.Fatalf("receiver mutated: %v", got)
	}
	if got := moved.Points()[0]; got != (Point{6, 1}) {
		t.Fatalf("translated point = %v, want (6,1)", got)
	}
	if moved.Label() != "P translated" {
		t.Fatalf("label = %q", moved.Label())
	}
}

func TestUniformScaleTriangle(t *testing.T) {
	tri := mustShape(t, []Point{{1, 1}, {3, 1}, {2, 4}}, "triangle")
	scaled := tri.Scale(2, Point{})
	want := []Point{{2, 2}, {6, 2}, {4, 8}}
	got := scaled.Points()
	if len(got) != len(want) {
		t.Fatalf("point count changed: %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOrderingPreserved(t *testing.T) {
	square := mustShape(t, []Point{{1, 1}, {1, 4}, {4, 4}, {4, 1}}, "square")
	refl, err := square.Reflect(AxisX)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{1, -1}, {1, -4}, {4, -4}, {4, -1}}
	got := refl.Points()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v (order not preserved)", i, got[i], want[i])
		}
	}
}

func TestShapeErrorPropagation(t *testing.T) {
	s := mustShape(t, []Point{{1, 2}}, "P")
	if _, err := s.Reflect(Axis(7)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Reflect bad axis: error = %v", err)
	}
	if _, err := s.ShearBy(1, ShearDirection(7)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ShearBy bad direction: error = %v", err)
	}
}

func TestShapeCompositionEquivalence(t *testing.T) {
	rect := mustShape(t, []Point{{1, 1}, {5, 1}, {5, 3}, {1, 3}}, "rect")

	stepwise := rect.Translate(-2, 3).ScaleXY(1.5, 0.5, Point{})
	refl, err := stepwise.Reflect(AxisY)
	if err != nil {
		t.Fatal(err)
	}

	mirror, err := Reflection(AxisY)
	if err != nil {
		t.Fatal(err)
	}
	composed := mirror.Mul(ScalingXY(1.5, 0.5)).Mul(Translation(-2, 3))
	once := rect.Apply(composed, "rect composed")

	a, b := refl.Points(), once.Points()
	for i := range a {
		if !approxEq(a[i], b[i]) {
			t.Fatalf("point %d: stepwise %v != composed %v", i, a[i], b[i])
		}
	}
}

func TestLabelAccumulation(t *testing.T) {
	s := mustShape(t, []Point{{3, 2}}, "P")
	out := s.Translate(1, -1).Rotate(90, Point{}).Scale(2, Point{})
	if out.Label() != "P translated rotated scaled" {
		t.Fatalf("label = %q", out.Label())
	}
}
