package backtest

// RawResult is the unreduced output of one unit of work for one risk factor.
// Yields are deliberately kept as a sequence so the final reduction can pool
// them across folds and seeds before computing statistics.
type RawResult struct {
	Params     Params
	Seed       int64
	RiskFactor float64
	Yields     []float64
}

// Result is one aggregated row of the backtest table, keyed by parameter set
// and risk factor.
type Result struct {
	Parameters   string  `json:"parameters"`
	RiskFactor   float64 `json:"risk_factor"`
	Coverage     float64 `json:"coverage"`
	MeanYield    float64 `json:"mean_yield"`
	StdYield     float64 `json:"std_yield"`
	StdMeanYield float64 `json:"std_mean_yield"`
}
