package policy

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	coremetrics "github.com/campusflow/trafficq/core/metrics"
	"github.com/campusflow/trafficq/core/model"
	"github.com/campusflow/trafficq/infra/logger"
)

type failRiskSink struct{ coremetrics.NopSink }

func (failRiskSink) RecordRisk(coremetrics.RiskEvent) error {
	return errors.New("sink unavailable")
}

type warnLogger struct {
	logger.NopLogger
	warns []string
}

func (l *warnLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func newTestClassifier() *Classifier {
	return NewClassifier(Config{Layers: 2, Seed: 42}, coremetrics.NopSink{}, logger.NopLogger{})
}

func TestClassifyWellFormed(t *testing.T) {
	c := newTestClassifier()
	out := c.Classify(450, 17)

	if out.ActionIndex < 0 || out.ActionIndex > 3 {
		t.Errorf("action index %d out of range", out.ActionIndex)
	}
	if out.RiskLabel != model.RiskLevel(out.ActionIndex).String() {
		t.Errorf("label %s does not match index %d", out.RiskLabel, out.ActionIndex)
	}
	if len(out.Probabilities) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(out.Probabilities))
	}
	var sum float64
	for label, p := range out.Probabilities {
		if p < 0 {
			t.Errorf("label %s has negative probability %v", label, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("probabilities sum to %v", sum)
	}
	if out.Probabilities[out.RiskLabel] < max3(out.Probabilities) {
		t.Errorf("selected label %s is not the argmax", out.RiskLabel)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	a := newTestClassifier().Classify(450, 17)
	b := newTestClassifier().Classify(450, 17)
	if a.RiskLabel != b.RiskLabel || a.ActionIndex != b.ActionIndex {
		t.Errorf("classification not reproducible: %+v vs %+v", a, b)
	}
	for label, p := range a.Probabilities {
		if b.Probabilities[label] != p {
			t.Errorf("label %s probability differs: %v vs %v", label, p, b.Probabilities[label])
		}
	}
}

func TestClassifySinkErrorLoggedNotFatal(t *testing.T) {
	log := &warnLogger{}
	c := NewClassifier(Config{Layers: 2, Seed: 42}, failRiskSink{}, log)

	out := c.Classify(450, 17)
	if out.RiskLabel == "" {
		t.Fatalf("classification failed on sink error: %+v", out)
	}
	found := false
	for _, w := range log.warns {
		if strings.Contains(w, "sink unavailable") {
			found = true
		}
	}
	if !found {
		t.Errorf("sink failure not logged: %q", log.warns)
	}
}

func TestClassifyClampsInputs(t *testing.T) {
	c := newTestClassifier()
	over := c.Classify(5000, 17)
	atMax := c.Classify(800, 17)
	if over.RiskLabel != atMax.RiskLabel || over.ActionIndex != atMax.ActionIndex {
		t.Errorf("volume above bound not clamped: %+v vs %+v", over, atMax)
	}

	neg := c.Classify(-10, -5)
	zero := c.Classify(0, 0)
	if neg.RiskLabel != zero.RiskLabel {
		t.Errorf("negative inputs not clamped: %+v vs %+v", neg, zero)
	}
}

func max3(m map[string]float64) float64 {
	best := math.Inf(-1)
	for _, v := range m {
		if v > best {
			best = v
		}
	}
	return best
}
