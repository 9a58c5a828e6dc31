package metrics

import (
	coremetrics "github.com/campusflow/trafficq/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records pipeline events in Prometheus metrics.
type PromSink struct {
	trainings  prometheus.Counter
	forecasts  *prometheus.CounterVec
	risks      *prometheus.CounterVec
	confidence prometheus.Histogram
}

// NewPromSink registers pipeline metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.PipelineSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.PipelineSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	trainings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "training_runs_total",
		Help: "Total number of completed model training runs",
	})
	forecasts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_queries_total",
		Help: "Total number of forecast queries",
	}, []string{"segment_id"})
	risks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "risk_classifications_total",
		Help: "Total number of risk classifications by label",
	}, []string{"label"})
	confidence := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_confidence",
		Help:    "First-horizon forecast confidence",
		Buckets: prometheus.LinearBuckets(0.6, 0.05, 8),
	})

	if err := reg.Register(trainings); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			trainings = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(forecasts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			forecasts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(risks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			risks = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(confidence); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			confidence = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{trainings: trainings, forecasts: forecasts, risks: risks, confidence: confidence}, nil
}

// RecordTraining increments the training counter.
func (s *PromSink) RecordTraining(ev coremetrics.TrainingEvent) error {
	s.trainings.Inc()
	return nil
}

// RecordForecast counts the query and observes its confidence.
func (s *PromSink) RecordForecast(ev coremetrics.ForecastEvent) error {
	s.forecasts.WithLabelValues(ev.SegmentID).Inc()
	s.confidence.Observe(ev.Confidence)
	return nil
}

// RecordRisk counts the classification under its label.
func (s *PromSink) RecordRisk(ev coremetrics.RiskEvent) error {
	s.risks.WithLabelValues(ev.Label).Inc()
	return nil
}
