package policy

import (
	"time"

	"gonum.org/v1/gonum/floats"

	corelogger "github.com/campusflow/trafficq/core/logger"
	coremetrics "github.com/campusflow/trafficq/core/metrics"
	"github.com/campusflow/trafficq/core/model"
)

// maxVolume mirrors the forecaster's upper clamp bound; volumes are
// normalized against it before entering the circuit.
const maxVolume = 800

// Classifier normalizes a (volume, hour) pair into the circuit's input
// domain and maps the four-outcome distribution onto risk levels. Out-of-
// range inputs are clamped rather than rejected, favoring availability over
// strict validation.
type Classifier struct {
	circuit *Circuit
	sink    coremetrics.PipelineSink
	log     corelogger.Logger
}

// NewClassifier builds a classifier around a freshly initialized circuit.
func NewClassifier(cfg Config, sink coremetrics.PipelineSink, log corelogger.Logger) *Classifier {
	return &Classifier{circuit: NewCircuit(cfg), sink: sink, log: log}
}

// Classify returns the risk assessment for a predicted volume and an hour
// of day. The most probable outcome wins; ties break toward the lower
// (less severe) index.
func (c *Classifier) Classify(volume float64, hour int) model.RiskAssessment {
	nv := clamp01(volume / maxVolume)
	nh := clamp01(float64(hour) / 23)

	probs := c.circuit.Probabilities([2]float64{nv, nh})
	idx := floats.MaxIdx(probs[:])

	dist := make(map[string]float64, NumOutcomes)
	for i, level := range model.RiskLevels() {
		dist[level.String()] = probs[i]
	}
	label := model.RiskLevel(idx).String()

	c.log.Debugw("risk classified", map[string]any{
		"volume": volume,
		"hour":   hour,
		"label":  label,
	})
	if err := c.sink.RecordRisk(coremetrics.RiskEvent{
		Label:       label,
		Probability: probs[idx],
		Time:        time.Now(),
	}); err != nil {
		c.log.Warnf("record risk event: %v", err)
	}

	return model.RiskAssessment{
		RiskLabel:     label,
		ActionIndex:   idx,
		Probabilities: dist,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
