package markets

import "errors"

// Validation errors shared by the encoder, bettors and the backtest runner.
var (
	ErrUnknownMarket  = errors.New("unknown market")
	ErrInvalidTargets = errors.New("invalid targets")
	ErrNotFitted      = errors.New("model is not fitted")
	ErrShapeMismatch  = errors.New("shape mismatch")
)
