package bettor

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

const epsilon = 1e-9

// TestDummyClassifierClasses tests lexicographic class ordering
func TestDummyClassifierClasses(t *testing.T) {
	c := NewDummyClassifier(StrategyPrior)
	if err := c.Fit(nil, []string{"b", "a", "b"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	classes := c.Classes()
	if len(classes) != 2 || classes[0] != "a" || classes[1] != "b" {
		t.Errorf("expected [a b], got %v", classes)
	}
}

// TestDummyClassifierPrior tests empirical frequency probabilities
func TestDummyClassifierPrior(t *testing.T) {
	c := NewDummyClassifier(StrategyPrior)
	if err := c.Fit(nil, []string{"b", "a", "b"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	proba, err := c.PredictProba(make([][]float64, 2))
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	for i, row := range proba {
		if math.Abs(row[0]-1.0/3) > epsilon || math.Abs(row[1]-2.0/3) > epsilon {
			t.Errorf("row %d: expected [1/3 2/3], got %v", i, row)
		}
	}
}

// TestDummyClassifierMostFrequent tests mode prediction
func TestDummyClassifierMostFrequent(t *testing.T) {
	c := NewDummyClassifier(StrategyMostFrequent)
	if err := c.Fit(nil, []string{"b", "a", "b"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	labels, err := c.Predict(make([][]float64, 3))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i, label := range labels {
		if label != "b" {
			t.Errorf("sample %d: expected b, got %q", i, label)
		}
	}
}

// TestDummyClassifierConstant tests the fixed-class strategy
func TestDummyClassifierConstant(t *testing.T) {
	c := NewDummyClassifier(StrategyConstant)
	if err := c.SetParams(map[string]any{"constant": "a"}); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	if err := c.Fit(nil, []string{"b", "a", "b"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	labels, err := c.Predict(make([][]float64, 2))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for _, label := range labels {
		if label != "a" {
			t.Errorf("expected a, got %q", label)
		}
	}
}

// TestDummyClassifierConstantMissing tests a constant absent from training
func TestDummyClassifierConstantMissing(t *testing.T) {
	c := NewDummyClassifier(StrategyConstant)
	if err := c.SetParams(map[string]any{"constant": "z"}); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	if err := c.Fit(nil, []string{"a", "b"}); err == nil {
		t.Error("expected error for constant class missing from training labels")
	}
}

// TestDummyClassifierStratifiedDeterminism tests reproducibility under a fixed seed
func TestDummyClassifierStratifiedDeterminism(t *testing.T) {
	y := []string{"a", "b", "b", "c", "b", "a", "b", "c"}
	X := make([][]float64, 20)

	first := NewDummyClassifier(StrategyStratified)
	first.SetSeed(7)
	if err := first.Fit(nil, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	second := NewDummyClassifier(StrategyStratified)
	second.SetSeed(7)
	if err := second.Fit(nil, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	a, err := first.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	b, err := second.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d: %q vs %q under identical seeds", i, a[i], b[i])
		}
	}
}

// TestDummyClassifierNotFitted tests prediction before fitting
func TestDummyClassifierNotFitted(t *testing.T) {
	c := NewDummyClassifier(StrategyPrior)
	if _, err := c.PredictProba(make([][]float64, 1)); !errors.Is(err, markets.ErrNotFitted) {
		t.Errorf("expected ErrNotFitted, got %v", err)
	}
}

// TestDummyClassifierUnknownParams tests parameter validation
func TestDummyClassifierUnknownParams(t *testing.T) {
	c := NewDummyClassifier(StrategyPrior)
	if err := c.SetParams(map[string]any{"bogus": "x"}); err == nil {
		t.Error("expected error for unknown parameter")
	}
	if err := c.SetParams(map[string]any{"strategy": 3}); err == nil {
		t.Error("expected error for non-string parameter value")
	}
}

// TestDummyClassifierClone tests that clones start unfitted with shared parameters
func TestDummyClassifierClone(t *testing.T) {
	c := NewDummyClassifier(StrategyMostFrequent)
	c.SetSeed(3)
	if err := c.Fit(nil, []string{"a", "a", "b"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	clone := c.Clone()
	if _, err := clone.PredictProba(make([][]float64, 1)); !errors.Is(err, markets.ErrNotFitted) {
		t.Errorf("expected clone to be unfitted, got %v", err)
	}
	if err := clone.Fit(nil, []string{"b", "b", "a"}); err != nil {
		t.Fatalf("clone Fit: %v", err)
	}
	labels, err := clone.Predict(make([][]float64, 1))
	if err != nil {
		t.Fatalf("clone Predict: %v", err)
	}
	if labels[0] != "b" {
		t.Errorf("expected clone to keep strategy, got %q", labels[0])
	}
}
