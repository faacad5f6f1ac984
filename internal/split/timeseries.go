// Package split generates time-respecting train/test index pairs for
// backtesting. Samples are assumed ordered by match date.
package split

import "fmt"

// Fold is one ordered train/test split. Train indices always precede every
// test index, so a model never sees the future of the slice it predicts.
type Fold struct {
	Train []int
	Test  []int
}

// TimeSeriesSplit produces a fixed number of folds whose test blocks tile
// the tail of the sample range in time order. Each test block holds
// testFraction of the samples; training uses everything before the block, so
// later folds train on strictly more history.
type TimeSeriesSplit struct {
	nSplits      int
	testFraction float64
}

// NewTimeSeriesSplit validates and builds a splitter.
func NewTimeSeriesSplit(nSplits int, testFraction float64) (*TimeSeriesSplit, error) {
	if nSplits < 1 {
		return nil, fmt.Errorf("n_splits must be at least 1, got %d", nSplits)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, fmt.Errorf("test fraction must be in (0, 1), got %g", testFraction)
	}
	return &TimeSeriesSplit{nSplits: nSplits, testFraction: testFraction}, nil
}

// Split returns the folds for n ordered samples, earliest fold first.
func (s *TimeSeriesSplit) Split(n int) ([]Fold, error) {
	testLen := int(float64(n) * s.testFraction)
	if testLen < 1 {
		testLen = 1
	}
	if n <= s.nSplits*testLen {
		return nil, fmt.Errorf("not enough samples: %d samples cannot host %d folds of %d test rows with a non-empty train window", n, s.nSplits, testLen)
	}

	folds := make([]Fold, s.nSplits)
	for k := 0; k < s.nSplits; k++ {
		testEnd := n - (s.nSplits-1-k)*testLen
		testStart := testEnd - testLen
		folds[k] = Fold{
			Train: indexRange(0, testStart),
			Test:  indexRange(testStart, testEnd),
		}
	}
	return folds, nil
}

func indexRange(start, end int) []int {
	indices := make([]int, end-start)
	for i := range indices {
		indices[i] = start + i
	}
	return indices
}
