package exercises

import (
	"math"
	"testing"

	"transform2d/geom"
)

const eps = 1e-9

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestAllReturnsTenNumberedExercises(t *testing.T) {
	exs, err := All()
	if err != nil {
		t.Fatal(err)
	}
	if len(exs) != 10 {
		t.Fatalf("got %d exercises, want 10", len(exs))
	}
	for i, ex := range exs {
		if ex.Number != i+1 {
			t.Fatalf("exercise %d numbered %d", i, ex.Number)
		}
		if len(ex.Steps) < 2 {
			t.Fatalf("exercise %d has %d steps", ex.Number, len(ex.Steps))
		}
		if ex.Original().Len() != ex.Final().Len() {
			t.Fatalf("exercise %d changed point count", ex.Number)
		}
	}
}

func TestFinalCoordinates(t *testing.T) {
	exs, err := All()
	if err != nil {
		t.Fatal(err)
	}
	finals := map[int][]geom.Point{
		1: {{X: 6, Y: 1}},
		2: {{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 4, Y: 8}},
		3: {{X: 2, Y: 0.5}, {X: 6, Y: 0.5}, {X: 4, Y: 2}},
		4: {{X: 0, Y: 1}},
		6: {{X: -2, Y: 5}},
		7: {{X: 2, Y: -3}, {X: 4, Y: -3}, {X: 3, Y: -5}},
		8: {{X: 8, Y: 3}},
	}
	for num, want := range finals {
		got := exs[num-1].Final().Points()
		if len(got) != len(want) {
			t.Fatalf("exercise %d: %d points, want %d", num, len(got), len(want))
		}
		for i := range want {
			if !near(got[i], want[i]) {
				t.Fatalf("exercise %d point %d = %v, want %v", num, i, got[i], want[i])
			}
		}
	}
}

func TestClockwiseSquareRotation(t *testing.T) {
	ex, err := PolygonRotation()
	if err != nil {
		t.Fatal(err)
	}
	// First vertex (1,1) under a -45 degree rotation: x = (1+1)*cos45... spelled
	// out: (x cos + y sin, -x sin + y cos) with cos = sin = sqrt(2)/2.
	r := math.Sqrt2 / 2
	want := geom.Point{X: 2 * r, Y: 0}
	if got := ex.Final().Points()[0]; !near(got, want) {
		t.Fatalf("first vertex = %v, want %v", got, want)
	}
}

func TestComposedPointSequenceSteps(t *testing.T) {
	ex, err := ComposedPointSequence()
	if err != nil {
		t.Fatal(err)
	}
	if len(ex.Steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(ex.Steps))
	}
	wantSteps := [][]geom.Point{
		{{X: 3, Y: 2}},
		{{X: 4, Y: 1}},
		{{X: -1, Y: 4}},
		{{X: -2, Y: 8}},
	}
	for i, want := range wantSteps {
		if got := ex.Steps[i].Points()[0]; !near(got, want[0]) {
			t.Fatalf("step %d = %v, want %v", i, got, want[0])
		}
	}
}

func TestComposedMatrixMatchesStepwise(t *testing.T) {
	ex, err := ComposedPolygonSequence()
	if err != nil {
		t.Fatal(err)
	}
	if ex.Composed == nil {
		t.Fatal("no composed matrix")
	}
	once := ex.Original().Apply(*ex.Composed, "one step")
	a, b := once.Points(), ex.Final().Points()
	for i := range a {
		if !near(a[i], b[i]) {
			t.Fatalf("point %d: composed %v != stepwise %v", i, a[i], b[i])
		}
	}
	// Spot-check the first vertex: (1,1) -> (-1,4) -> (-1.5,2) -> (1.5,2).
	if got := b[0]; !near(got, geom.Point{X: 1.5, Y: 2}) {
		t.Fatalf("final first vertex = %v, want (1.5, 2)", got)
	}
}
