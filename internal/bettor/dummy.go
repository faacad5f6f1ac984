package bettor

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/yourusername/soccer-bettor/internal/markets"
)

// Dummy strategies. They ignore the feature matrix entirely, which makes them
// useful as deterministic baselines and as substitutable test doubles.
const (
	StrategyConstant     = "constant"
	StrategyMostFrequent = "most_frequent"
	StrategyPrior        = "prior"
	StrategyUniform      = "uniform"
	StrategyStratified   = "stratified"
)

// DummyClassifier predicts from class frequencies or fixed rules without
// looking at features. Classes are reported in lexicographic order.
type DummyClassifier struct {
	strategy string
	constant string
	seed     int64

	classes []string
	priors  []float64
	rng     *rand.Rand
	fitted  bool
}

// NewDummyClassifier creates a dummy classifier with the given strategy.
func NewDummyClassifier(strategy string) *DummyClassifier {
	return &DummyClassifier{strategy: strategy}
}

// SetParams accepts "strategy" and "constant".
func (c *DummyClassifier) SetParams(params map[string]any) error {
	for key, value := range params {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("parameter %q: want string, got %T", key, value)
		}
		switch key {
		case "strategy":
			c.strategy = s
		case "constant":
			c.constant = s
		default:
			return fmt.Errorf("unknown parameter %q", key)
		}
	}
	return nil
}

// SetSeed fixes the random source used by the stochastic strategies.
func (c *DummyClassifier) SetSeed(seed int64) {
	c.seed = seed
}

// Clone returns an unfitted copy with the same parameters and seed.
func (c *DummyClassifier) Clone() Classifier {
	return &DummyClassifier{strategy: c.strategy, constant: c.constant, seed: c.seed}
}

// Fit records the observed classes and their empirical frequencies.
func (c *DummyClassifier) Fit(X [][]float64, y []string) error {
	if len(y) == 0 {
		return fmt.Errorf("empty training labels")
	}
	if len(X) != 0 && len(X) != len(y) {
		return fmt.Errorf("%w: %d feature rows vs %d labels", markets.ErrShapeMismatch, len(X), len(y))
	}

	counts := make(map[string]int)
	for _, label := range y {
		counts[label]++
	}
	classes := make([]string, 0, len(counts))
	for label := range counts {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	priors := make([]float64, len(classes))
	for i, label := range classes {
		priors[i] = float64(counts[label]) / float64(len(y))
	}

	if c.strategy == StrategyConstant {
		if _, ok := counts[c.constant]; !ok {
			return fmt.Errorf("constant class %q not present in training labels", c.constant)
		}
	}

	c.classes = classes
	c.priors = priors
	c.rng = rand.New(rand.NewSource(c.seed))
	c.fitted = true
	return nil
}

// Classes returns the distinct labels observed at fit time, sorted.
func (c *DummyClassifier) Classes() []string {
	classes := make([]string, len(c.classes))
	copy(classes, c.classes)
	return classes
}

// Predict returns one label per sample according to the strategy.
func (c *DummyClassifier) Predict(X [][]float64) ([]string, error) {
	proba, err := c.PredictProba(X)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(proba))
	for i, row := range proba {
		best := 0
		for j := 1; j < len(row); j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		labels[i] = c.classes[best]
	}
	return labels, nil
}

// PredictProba returns one probability row per sample, columns in Classes
// order. The stochastic strategies emit one-hot draws, so repeated calls
// advance the random stream.
func (c *DummyClassifier) PredictProba(X [][]float64) ([][]float64, error) {
	if !c.fitted {
		return nil, markets.ErrNotFitted
	}

	proba := make([][]float64, len(X))
	for i := range X {
		row := make([]float64, len(c.classes))
		switch c.strategy {
		case StrategyConstant:
			row[c.classIndex(c.constant)] = 1
		case StrategyMostFrequent:
			row[c.modeIndex()] = 1
		case StrategyPrior:
			copy(row, c.priors)
		case StrategyUniform:
			for j := range row {
				row[j] = 1 / float64(len(row))
			}
		case StrategyStratified:
			row[c.sampleIndex()] = 1
		default:
			return nil, fmt.Errorf("unknown strategy %q", c.strategy)
		}
		proba[i] = row
	}
	return proba, nil
}

func (c *DummyClassifier) classIndex(label string) int {
	for j, class := range c.classes {
		if class == label {
			return j
		}
	}
	return 0
}

func (c *DummyClassifier) modeIndex() int {
	best := 0
	for j := 1; j < len(c.priors); j++ {
		if c.priors[j] > c.priors[best] {
			best = j
		}
	}
	return best
}

func (c *DummyClassifier) sampleIndex() int {
	u := c.rng.Float64()
	cumulative := 0.0
	for j, p := range c.priors {
		cumulative += p
		if u < cumulative {
			return j
		}
	}
	return len(c.priors) - 1
}
