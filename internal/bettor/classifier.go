// Package bettor turns classifier output into bet/no-bet decisions. It wraps
// external classification models behind a small capability interface and adds
// a risk-threshold filter on top of their probabilistic output.
package bettor

import "fmt"

// Classifier is the contract an external classification model must satisfy.
// Labels are opaque strings; probability columns follow the order reported by
// Classes after a fit. Implementations must tolerate being re-parameterized
// and re-seeded before each fit, and Clone must return an unfitted copy
// carrying the same parameters.
type Classifier interface {
	Fit(X [][]float64, y []string) error
	Predict(X [][]float64) ([]string, error)
	PredictProba(X [][]float64) ([][]float64, error)
	Classes() []string
	SetParams(params map[string]any) error
	SetSeed(seed int64)
	Clone() Classifier
}

// Model is the decision-model surface the backtest runner drives. Fit derives
// training labels from raw scores and odds; Predict applies the risk-factor
// filter to produce a class label or the no-bet sentinel per sample.
type Model interface {
	Fit(X [][]float64, score1, score2 []int, odds [][]float64) error
	Predict(X [][]float64, riskFactor float64) ([]string, error)
	PredictProba(X [][]float64) ([][]float64, error)
	Targets() []string
	SetParams(params map[string]any) error
	SetSeed(seed int64)
	Clone() Model
}

// splitParamKey splits a nested parameter key like "classifier__strategy"
// into its component prefix and the parameter name the component understands.
func splitParamKey(key string) (component, param string, ok bool) {
	for i := 0; i+2 <= len(key); i++ {
		if key[i] == '_' && key[i+1] == '_' {
			return key[:i], key[i+2:], true
		}
	}
	return "", "", false
}

// routeParams groups nested parameter keys by component prefix. A key without
// a prefix is an error: decision models own no bare hyperparameters.
func routeParams(params map[string]any, components ...string) (map[string]map[string]any, error) {
	known := make(map[string]bool, len(components))
	for _, c := range components {
		known[c] = true
	}
	routed := make(map[string]map[string]any)
	for key, value := range params {
		component, param, ok := splitParamKey(key)
		if !ok || !known[component] {
			return nil, fmt.Errorf("unknown parameter %q", key)
		}
		if routed[component] == nil {
			routed[component] = make(map[string]any)
		}
		routed[component][param] = value
	}
	return routed, nil
}
