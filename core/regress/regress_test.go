package regress

import (
	"encoding/json"
	"math"
	"testing"
)

// stepData returns a simple piecewise-constant target over one feature.
func stepData() ([][]float64, []float64) {
	var X [][]float64
	var y []float64
	for i := 0; i < 60; i++ {
		v := float64(i)
		X = append(X, []float64{v})
		if v < 30 {
			y = append(y, 100)
		} else {
			y = append(y, 400)
		}
	}
	return X, y
}

func TestTreeFitsStepFunction(t *testing.T) {
	X, y := stepData()
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	root := buildTree(X, y, idx, 0, treeConfig{maxDepth: 3, minLeaf: 2})
	if got := root.predict([]float64{10}); math.Abs(got-100) > 1 {
		t.Errorf("left region: got %v", got)
	}
	if got := root.predict([]float64{50}); math.Abs(got-400) > 1 {
		t.Errorf("right region: got %v", got)
	}
}

func TestForestDeterministicAndBounded(t *testing.T) {
	X, y := stepData()
	a := NewForest(10, 5, 42)
	b := NewForest(10, 5, 42)
	if err := a.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}
	probe := []float64{15}
	if a.Predict(probe) != b.Predict(probe) {
		t.Errorf("same seed produced different predictions")
	}
	if p := a.Predict(probe); p < 100 || p > 400 {
		t.Errorf("prediction %v outside target range", p)
	}
}

func TestBoostingImprovesOnMean(t *testing.T) {
	X, y := stepData()
	b := NewBoosting(50, 3, 0.1)
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}
	var meanErr, boostErr float64
	m := 0.0
	for _, v := range y {
		m += v
	}
	m /= float64(len(y))
	for i := range X {
		meanErr += math.Abs(y[i] - m)
		boostErr += math.Abs(y[i] - b.Predict(X[i]))
	}
	if boostErr >= meanErr {
		t.Errorf("boosting (%v) no better than mean baseline (%v)", boostErr, meanErr)
	}
}

func TestFitEmpty(t *testing.T) {
	if err := NewForest(5, 3, 1).Fit(nil, nil); err != ErrNoSamples {
		t.Errorf("forest: expected ErrNoSamples, got %v", err)
	}
	if err := NewBoosting(5, 3, 0.1).Fit(nil, nil); err != ErrNoSamples {
		t.Errorf("boosting: expected ErrNoSamples, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	perfect := Evaluate([]float64{1, 2, 3}, []float64{1, 2, 3})
	if perfect.MSE != 0 || perfect.R2 != 1 {
		t.Errorf("perfect fit: %+v", perfect)
	}

	m := Evaluate([]float64{2, 2, 2}, []float64{1, 2, 3})
	if m.R2 >= 1 || math.IsNaN(m.R2) {
		t.Errorf("mean fit R2 = %v", m.R2)
	}
	if math.Abs(m.RMSE-math.Sqrt(m.MSE)) > 1e-12 {
		t.Errorf("rmse %v does not match mse %v", m.RMSE, m.MSE)
	}

	// Constant truth must not produce NaN.
	c := Evaluate([]float64{1, 2}, []float64{5, 5})
	if math.IsNaN(c.R2) || math.IsInf(c.R2, 0) {
		t.Errorf("constant truth R2 = %v", c.R2)
	}
	if c.R2 != 0 {
		t.Errorf("imperfect fit on constant truth should score 0, got %v", c.R2)
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	X, y := stepData()

	f := NewForest(8, 4, 7)
	if err := f.Fit(X, y); err != nil {
		t.Fatalf("fit forest: %v", err)
	}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var f2 Forest
	if err := json.Unmarshal(data, &f2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	b := NewBoosting(8, 3, 0.1)
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("fit boosting: %v", err)
	}
	data, err = json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var b2 Boosting
	if err := json.Unmarshal(data, &b2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, probe := range [][]float64{{0}, {29}, {31}, {59}} {
		if f.Predict(probe) != f2.Predict(probe) {
			t.Errorf("forest round trip differs at %v", probe)
		}
		if b.Predict(probe) != b2.Predict(probe) {
			t.Errorf("boosting round trip differs at %v", probe)
		}
	}
}

func TestModelKindString(t *testing.T) {
	if KindForest.String() != "random_forest" || KindBoost.String() != "gradient_boosting" {
		t.Errorf("unexpected kind names: %s, %s", KindForest, KindBoost)
	}
}
