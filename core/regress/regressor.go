// Package regress implements the two ensemble regressors behind the traffic
// forecaster: a bagged forest of regression trees and a least-squares
// gradient boosted ensemble. Both expose the same Regressor interface so
// the forecaster can treat them uniformly.
package regress

import "errors"

// ErrNoSamples is returned when Fit is called without training data.
var ErrNoSamples = errors.New("regress: no training samples")

// ModelKind identifies one of the two ensemble members. The set is closed:
// the forecaster switches over kinds exhaustively instead of looking models
// up by name.
type ModelKind int

const (
	// KindForest is the bagged tree ensemble, fit on raw features.
	KindForest ModelKind = iota
	// KindBoost is the gradient boosted ensemble, fit on scaled features.
	KindBoost
)

func (k ModelKind) String() string {
	switch k {
	case KindForest:
		return "random_forest"
	case KindBoost:
		return "gradient_boosting"
	default:
		return "unknown"
	}
}

// Regressor is the uniform interface both ensemble members implement.
type Regressor interface {
	Fit(X [][]float64, y []float64) error
	Predict(x []float64) float64
}
