package backtest

import "testing"

// TestParamGridExpand tests deterministic Cartesian expansion
func TestParamGridExpand(t *testing.T) {
	grid := ParamGrid{
		"b": {"x", "y"},
		"a": {1, 2},
	}

	points := grid.Expand()
	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}

	want := []string{
		"{a: 1, b: x}",
		"{a: 1, b: y}",
		"{a: 2, b: x}",
		"{a: 2, b: y}",
	}
	for i, point := range points {
		if point.String() != want[i] {
			t.Errorf("point %d: expected %s, got %s", i, want[i], point.String())
		}
	}
}

// TestParamGridExpandEmpty tests the empty grid
func TestParamGridExpandEmpty(t *testing.T) {
	points := ParamGrid{}.Expand()
	if len(points) != 1 {
		t.Fatalf("expected the single empty point, got %d", len(points))
	}
	if points[0].String() != "{}" {
		t.Errorf("expected {}, got %s", points[0].String())
	}

	points = ParamGrid{"a": nil}.Expand()
	if len(points) != 1 || len(points[0]) != 0 {
		t.Errorf("expected a key with no values to be skipped, got %v", points)
	}
}

// TestParamsStringCanonical tests order-stable rendering
func TestParamsStringCanonical(t *testing.T) {
	p := Params{"classifier__strategy": "prior", "classifier__constant": "H"}
	want := "{classifier__constant: H, classifier__strategy: prior}"
	if p.String() != want {
		t.Errorf("expected %s, got %s", want, p.String())
	}
}
