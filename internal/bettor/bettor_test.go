package bettor

import (
	"errors"
	"testing"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

func fitTrainingData() (score1, score2 []int, odds [][]float64) {
	score1 = []int{2, 2, 2, 1}
	score2 = []int{0, 1, 0, 1}
	odds = [][]float64{
		{2.0, 3.0},
		{2.0, 3.0},
		{2.0, 3.0},
		{2.0, 3.0},
	}
	return score1, score2, odds
}

// TestBettorFitPredict tests the single-stage model end to end
func TestBettorFitPredict(t *testing.T) {
	score1, score2, odds := fitTrainingData()
	b := NewBettor(NewDummyClassifier(StrategyPrior), []string{"H", "D"}, nil)

	if err := b.Fit(nil, score1, score2, odds); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// Class labels are H,H,H,D so the prior for H is 0.75 against a
	// training breakeven of 1/2.0 = 0.5.
	tests := []struct {
		riskFactor float64
		want       string
	}{
		{0.0, "H"},
		{1.0, "H"},
		{1.4, "H"},
		{1.6, markets.NoBet},
	}
	for _, tt := range tests {
		decisions, err := b.Predict(make([][]float64, 2), tt.riskFactor)
		if err != nil {
			t.Fatalf("Predict(rf=%g): %v", tt.riskFactor, err)
		}
		for i, decision := range decisions {
			if decision != tt.want {
				t.Errorf("rf=%g sample %d: expected %q, got %q", tt.riskFactor, i, tt.want, decision)
			}
		}
	}
}

// TestBettorTargetsResolvedAtFit tests full-registry fallback and deferred validation
func TestBettorTargetsResolvedAtFit(t *testing.T) {
	score1 := []int{2, 1}
	score2 := []int{0, 1}
	odds := [][]float64{
		{2.0, 3.2, 4.0, 1.5, 2.8, 1.9, 2.0, 3.0, 1.3},
		{2.0, 3.2, 4.0, 1.5, 2.8, 1.9, 2.0, 3.0, 1.3},
	}

	b := NewBettor(NewDummyClassifier(StrategyMostFrequent), nil, nil)
	if err := b.Fit(nil, score1, score2, odds); err != nil {
		t.Fatalf("Fit with defaulted targets: %v", err)
	}
	if got := len(b.Targets()); got != len(markets.Default().Targets()) {
		t.Errorf("expected full registry targets, got %d", got)
	}

	bad := NewBettor(NewDummyClassifier(StrategyMostFrequent), []string{"bogus"}, nil)
	if err := bad.Fit(nil, score1, score2, [][]float64{{2}, {2}}); !errors.Is(err, markets.ErrInvalidTargets) {
		t.Errorf("expected ErrInvalidTargets at fit time, got %v", err)
	}
}

// TestBettorNotFitted tests prediction before fitting
func TestBettorNotFitted(t *testing.T) {
	b := NewBettor(NewDummyClassifier(StrategyPrior), []string{"H"}, nil)
	if _, err := b.Predict(make([][]float64, 1), 0); !errors.Is(err, markets.ErrNotFitted) {
		t.Errorf("expected ErrNotFitted, got %v", err)
	}
}

// TestBettorNoBetLabelAlwaysStands tests that the sentinel bypasses the risk rule
func TestBettorNoBetLabelAlwaysStands(t *testing.T) {
	// Only draws in training with an H-only book, so every label is the
	// no-bet sentinel and the constant classifier reproduces it.
	b := NewBettor(NewDummyClassifier(StrategyMostFrequent), []string{"H"}, nil)
	if err := b.Fit(nil, []int{1, 0}, []int{1, 0}, [][]float64{{2.0}, {2.0}}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	decisions, err := b.Predict(make([][]float64, 2), 5.0)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i, decision := range decisions {
		if decision != markets.NoBet {
			t.Errorf("sample %d: expected no-bet, got %q", i, decision)
		}
	}
}

// TestBettorSetParams tests nested parameter routing
func TestBettorSetParams(t *testing.T) {
	b := NewBettor(NewDummyClassifier(StrategyPrior), []string{"H", "D"}, nil)

	if err := b.SetParams(map[string]any{"classifier__strategy": StrategyMostFrequent}); err != nil {
		t.Fatalf("SetParams: %v", err)
	}

	if err := b.SetParams(map[string]any{"strategy": StrategyPrior}); err == nil {
		t.Error("expected error for bare parameter key")
	}
	if err := b.SetParams(map[string]any{"meta_classifier__strategy": StrategyPrior}); err == nil {
		t.Error("expected error for unknown component prefix")
	}
}

// TestBettorClone tests that clones are unfitted and independent
func TestBettorClone(t *testing.T) {
	score1, score2, odds := fitTrainingData()
	b := NewBettor(NewDummyClassifier(StrategyPrior), []string{"H", "D"}, nil)
	if err := b.Fit(nil, score1, score2, odds); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	clone := b.Clone()
	if _, err := clone.Predict(make([][]float64, 1), 0); !errors.Is(err, markets.ErrNotFitted) {
		t.Errorf("expected unfitted clone, got %v", err)
	}
	if err := clone.Fit(nil, score1, score2, odds); err != nil {
		t.Fatalf("clone Fit: %v", err)
	}
}
