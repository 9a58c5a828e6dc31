package metrics

import (
	"errors"

	coremetrics "github.com/campusflow/trafficq/core/metrics"
)

// MultiSink forwards every pipeline event to each wrapped sink. Errors are
// collected rather than short-circuiting, so one failing sink cannot starve
// the others.
type MultiSink struct {
	Sinks []coremetrics.PipelineSink
}

// NewMultiSink wraps the given sinks.
func NewMultiSink(sinks ...coremetrics.PipelineSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

func (m *MultiSink) RecordTraining(ev coremetrics.TrainingEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordTraining(ev))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordForecast(ev coremetrics.ForecastEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordForecast(ev))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordRisk(ev coremetrics.RiskEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordRisk(ev))
	}
	return errors.Join(errs...)
}
