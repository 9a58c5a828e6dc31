package features

import (
	"math"
	"testing"
)

func TestScalerFitTransform(t *testing.T) {
	X := [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}}
	var s StandardScaler
	if err := s.Fit(X); err != nil {
		t.Fatalf("fit: %v", err)
	}
	scaled := s.TransformAll(X)

	for j := 0; j < 2; j++ {
		var sum float64
		for _, row := range scaled {
			sum += row[j]
		}
		if mean := sum / float64(len(scaled)); math.Abs(mean) > 1e-12 {
			t.Errorf("column %d mean = %v", j, mean)
		}
	}
}

func TestScalerConstantColumn(t *testing.T) {
	X := [][]float64{{5, 1}, {5, 2}, {5, 3}}
	var s StandardScaler
	if err := s.Fit(X); err != nil {
		t.Fatalf("fit: %v", err)
	}
	out := s.Transform([]float64{5, 2})
	if math.IsNaN(out[0]) || math.IsInf(out[0], 0) {
		t.Errorf("constant column produced %v", out[0])
	}
	if out[0] != 0 {
		t.Errorf("constant column should center to 0, got %v", out[0])
	}
}

func TestScalerEmpty(t *testing.T) {
	var s StandardScaler
	if err := s.Fit(nil); err == nil {
		t.Fatalf("expected error on empty fit")
	}
	if s.Fitted() {
		t.Errorf("scaler reports fitted")
	}
}
