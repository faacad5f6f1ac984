package outcome

import (
	"errors"
	"testing"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

// TestExtractClassLabels tests collapsing scores and odds into class labels
func TestExtractClassLabels(t *testing.T) {
	registry := markets.Default()

	score1 := []int{0, 2, 3}
	score2 := []int{1, 1, 3}
	odds := [][]float64{
		{3, 1.5, 2},
		{4, 2, 3},
		{2.5, 2.5, 2},
	}
	targets := []string{"D", "H", "over_2.5"}

	labels, err := ExtractClassLabels(score1, score2, odds, targets, registry)
	if err != nil {
		t.Fatalf("ExtractClassLabels: %v", err)
	}

	want := []string{"-", "over_2.5", "D"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("sample %d: expected %q, got %q", i, want[i], labels[i])
		}
	}
}

// TestExtractClassLabelsTieBreak tests that equal odds favor the earlier target
func TestExtractClassLabelsTieBreak(t *testing.T) {
	registry := markets.Default()

	// 2-1: both H and over_2.5 realized at identical odds
	labels, err := ExtractClassLabels(
		[]int{2}, []int{1},
		[][]float64{{2.0, 2.0}},
		[]string{"H", "over_2.5"},
		registry,
	)
	if err != nil {
		t.Fatalf("ExtractClassLabels: %v", err)
	}
	if labels[0] != "H" {
		t.Errorf("expected tie to resolve to H, got %q", labels[0])
	}
}

// TestExtractMultiLabels tests the per-target boolean matrix
func TestExtractMultiLabels(t *testing.T) {
	registry := markets.Default()

	multi, err := ExtractMultiLabels([]int{2, 0}, []int{0, 0}, []string{"H", "D", "over_1.5"}, registry)
	if err != nil {
		t.Fatalf("ExtractMultiLabels: %v", err)
	}

	want := [][]bool{
		{true, false, true},
		{false, true, false},
	}
	for i := range want {
		for j := range want[i] {
			if multi[i][j] != want[i][j] {
				t.Errorf("sample %d target %d: expected %v", i, j, want[i][j])
			}
		}
	}
}

// TestExtractClassLabelsErrors tests shape and target validation
func TestExtractClassLabelsErrors(t *testing.T) {
	registry := markets.Default()

	_, err := ExtractClassLabels([]int{1}, []int{1, 2}, [][]float64{{2}}, []string{"D"}, registry)
	if !errors.Is(err, markets.ErrShapeMismatch) {
		t.Errorf("score mismatch: expected ErrShapeMismatch, got %v", err)
	}

	_, err = ExtractClassLabels([]int{1}, []int{1}, [][]float64{{2, 3}}, []string{"D"}, registry)
	if !errors.Is(err, markets.ErrShapeMismatch) {
		t.Errorf("odds width mismatch: expected ErrShapeMismatch, got %v", err)
	}

	_, err = ExtractClassLabels([]int{1}, []int{1}, [][]float64{{2}}, []string{"bogus"}, registry)
	if !errors.Is(err, markets.ErrUnknownMarket) {
		t.Errorf("unknown target: expected ErrUnknownMarket, got %v", err)
	}
}
