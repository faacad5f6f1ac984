package split

import "testing"

// TestSplitFoldLayout tests test block tiling and train windows
func TestSplitFoldLayout(t *testing.T) {
	s, err := NewTimeSeriesSplit(3, 0.1)
	if err != nil {
		t.Fatalf("NewTimeSeriesSplit: %v", err)
	}

	folds, err := s.Split(100)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(folds) != 3 {
		t.Fatalf("expected 3 folds, got %d", len(folds))
	}

	wantTestStarts := []int{70, 80, 90}
	for k, fold := range folds {
		if len(fold.Test) != 10 {
			t.Errorf("fold %d: expected 10 test rows, got %d", k, len(fold.Test))
		}
		if fold.Test[0] != wantTestStarts[k] {
			t.Errorf("fold %d: expected test start %d, got %d", k, wantTestStarts[k], fold.Test[0])
		}
		if len(fold.Train) != wantTestStarts[k] {
			t.Errorf("fold %d: expected %d train rows, got %d", k, wantTestStarts[k], len(fold.Train))
		}
	}
}

// TestSplitTemporalOrder tests that training never includes future samples
func TestSplitTemporalOrder(t *testing.T) {
	s, err := NewTimeSeriesSplit(4, 0.15)
	if err != nil {
		t.Fatalf("NewTimeSeriesSplit: %v", err)
	}

	folds, err := s.Split(200)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	for k, fold := range folds {
		if len(fold.Train) == 0 || len(fold.Test) == 0 {
			t.Fatalf("fold %d: empty train or test", k)
		}
		lastTrain := fold.Train[len(fold.Train)-1]
		if lastTrain >= fold.Test[0] {
			t.Errorf("fold %d: train index %d not before test start %d", k, lastTrain, fold.Test[0])
		}
	}
	if folds[len(folds)-1].Test[len(folds[len(folds)-1].Test)-1] != 199 {
		t.Error("last fold should end at the final sample")
	}
}

// TestSplitSmallSampleFloor tests the one-row test block floor
func TestSplitSmallSampleFloor(t *testing.T) {
	s, err := NewTimeSeriesSplit(2, 0.01)
	if err != nil {
		t.Fatalf("NewTimeSeriesSplit: %v", err)
	}

	folds, err := s.Split(10)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	for k, fold := range folds {
		if len(fold.Test) != 1 {
			t.Errorf("fold %d: expected floored test length 1, got %d", k, len(fold.Test))
		}
	}
}

// TestSplitErrors tests parameter and sample-count validation
func TestSplitErrors(t *testing.T) {
	if _, err := NewTimeSeriesSplit(0, 0.1); err == nil {
		t.Error("expected error for zero splits")
	}
	if _, err := NewTimeSeriesSplit(3, 0); err == nil {
		t.Error("expected error for zero test fraction")
	}
	if _, err := NewTimeSeriesSplit(3, 1); err == nil {
		t.Error("expected error for test fraction of 1")
	}

	s, err := NewTimeSeriesSplit(5, 0.2)
	if err != nil {
		t.Fatalf("NewTimeSeriesSplit: %v", err)
	}
	if _, err := s.Split(10); err == nil {
		t.Error("expected error when folds leave no training window")
	}
}
