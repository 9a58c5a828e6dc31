package regress

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// EvalMetrics summarizes held-out accuracy for one model.
type EvalMetrics struct {
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
}

// Evaluate computes MSE, RMSE and R² of predictions against the truth. A
// constant truth yields R²=1 on a perfect fit and 0 otherwise, keeping the
// metrics finite.
func Evaluate(pred, truth []float64) EvalMetrics {
	if len(pred) == 0 || len(pred) != len(truth) {
		return EvalMetrics{}
	}
	var sse float64
	for i := range pred {
		d := pred[i] - truth[i]
		sse += d * d
	}
	mse := sse / float64(len(pred))

	m := stat.Mean(truth, nil)
	var sst float64
	for _, v := range truth {
		d := v - m
		sst += d * d
	}
	var r2 float64
	switch {
	case sst > 0:
		r2 = 1 - sse/sst
	case sse == 0:
		r2 = 1
	default:
		r2 = 0
	}
	return EvalMetrics{MSE: mse, RMSE: math.Sqrt(mse), R2: r2}
}
