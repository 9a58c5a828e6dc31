// Package app wires the forecaster and the risk classifier behind one
// explicit service handle, replacing process-wide singletons. Construct the
// Service once at startup, call Init, then share it across callers.
package app

import (
	"context"

	"github.com/campusflow/trafficq/config"
	"github.com/campusflow/trafficq/core/forecast"
	coremetrics "github.com/campusflow/trafficq/core/metrics"
	"github.com/campusflow/trafficq/core/model"
	"github.com/campusflow/trafficq/core/policy"
	"github.com/campusflow/trafficq/infra/logger"
	"github.com/campusflow/trafficq/infra/metrics"
	"github.com/campusflow/trafficq/infra/store"
)

// Service owns the prediction pipeline. Both members are safe for
// concurrent read use once Init has run.
type Service struct {
	Forecaster *forecast.EnsembleForecaster
	Classifier *policy.Classifier

	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.PipelineSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.PipelineSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	st := store.NewFileStore(cfg.Store, logger.New("model-store"))
	fc := forecast.New(cfg.Forecaster, st, sink, logger.New("forecaster"))
	cl := policy.NewClassifier(cfg.Circuit, sink, logger.New("risk"))

	return &Service{
		Forecaster:  fc,
		Classifier:  cl,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Init makes the pipeline ready to serve: the persisted bundle is loaded,
// or a synthetic training run fills in for it. Running this once at startup
// keeps the query paths free of first-call training latency.
func (s *Service) Init(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	return s.Forecaster.EnsureTrained()
}

// Reload replaces the resident model bundle with the persisted one.
func (s *Service) Reload() error {
	return s.Forecaster.Reload()
}

// SegmentStatus combines the first-horizon forecast for a segment with its
// risk classification. It always returns a structured payload: when the
// forecast yields no points the Error field is set instead.
func (s *Service) SegmentStatus(segmentID string, hoursAhead int) model.SegmentStatus {
	points, err := s.Forecaster.Predict(segmentID, hoursAhead)
	if err != nil || len(points) == 0 {
		if err != nil {
			s.log.Warnf("forecast %s: %v", segmentID, err)
		}
		return model.SegmentStatus{SegmentID: segmentID, Error: "No predictions available"}
	}

	first := points[0]
	risk := s.Classifier.Classify(float64(first.PredictedVolume), first.Timestamp.Hour())

	return model.SegmentStatus{
		SegmentID: segmentID,
		Timestamp: first.Timestamp,
		Forecast: &model.StatusForecast{
			PredictedVolume: first.PredictedVolume,
			Confidence:      first.Confidence,
			RFPrediction:    first.RFPrediction,
			GBPrediction:    first.GBPrediction,
		},
		Risk: &risk,
	}
}
