// Package forecast implements the two-model traffic volume ensemble. The
// forest is fit on raw feature vectors and the boosted model on
// standardized ones; their predictions are combined with R²-weighted
// averaging and clamped to the plausible volume range.
package forecast

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campusflow/trafficq/core/features"
	corelogger "github.com/campusflow/trafficq/core/logger"
	coremetrics "github.com/campusflow/trafficq/core/metrics"
	"github.com/campusflow/trafficq/core/model"
	"github.com/campusflow/trafficq/core/regress"
	"github.com/campusflow/trafficq/core/synth"
)

const (
	minVolume = 10
	maxVolume = 800

	minConfidence = 0.6
	maxConfidence = 0.95

	// minWeight floors the ensemble weights so two non-positive R² models
	// cannot divide by zero.
	minWeight = 1e-6
)

var (
	// ErrNoRecords is returned by Train when no training data is supplied.
	ErrNoRecords = errors.New("forecast: no training records")
	// ErrNotTrained is returned by Predict before a bundle is resident.
	ErrNotTrained = errors.New("forecast: no trained models available")
	// ErrEmptyHorizon is returned for a non-positive hours-ahead horizon.
	ErrEmptyHorizon = errors.New("forecast: horizon must be at least one hour")
)

// Config holds forecaster training parameters.
type Config struct {
	// SyntheticDays is the window generated when training without a dataset.
	SyntheticDays int `json:"synthetic_days"`
	// Estimators is the number of trees per ensemble member.
	Estimators int `json:"estimators"`
	// BoostDepth bounds the boosted trees; the forest uses ForestDepth.
	ForestDepth int     `json:"forest_depth"`
	BoostDepth  int     `json:"boost_depth"`
	LearnRate   float64 `json:"learn_rate"`
	// Seed drives the train/test shuffle, tree bagging and the synthetic
	// generator.
	Seed int64 `json:"seed"`
}

// SetDefaults applies the standard training parameters.
func (c *Config) SetDefaults() {
	if c.SyntheticDays == 0 {
		c.SyntheticDays = 90
	}
	if c.Estimators == 0 {
		c.Estimators = 100
	}
	if c.ForestDepth == 0 {
		c.ForestDepth = 10
	}
	if c.BoostDepth == 0 {
		c.BoostDepth = 6
	}
	if c.LearnRate == 0 {
		c.LearnRate = 0.1
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
}

// Validate checks the training parameters.
func (c Config) Validate() error {
	if c.SyntheticDays < 1 {
		return fmt.Errorf("synthetic_days must be positive, got %d", c.SyntheticDays)
	}
	if c.Estimators < 1 {
		return fmt.Errorf("estimators must be positive, got %d", c.Estimators)
	}
	if c.LearnRate <= 0 || c.LearnRate > 1 {
		return fmt.Errorf("learn_rate must be in (0,1], got %v", c.LearnRate)
	}
	return nil
}

// TrainResult reports held-out metrics for both ensemble members.
type TrainResult struct {
	BundleID string              `json:"bundle_id"`
	Forest   regress.EvalMetrics `json:"random_forest"`
	Boost    regress.EvalMetrics `json:"gradient_boosting"`
}

// Performance summarizes the resident models.
type Performance struct {
	Models            map[string]regress.EvalMetrics `json:"models"`
	BestModel         string                         `json:"best_model"`
	EnsembleAvailable bool                           `json:"ensemble_available"`
}

// EnsembleForecaster trains and serves the two-model volume ensemble. The
// resident bundle is swapped atomically under a write lock; concurrent
// inference only takes the read lock, so readers never observe a
// half-updated bundle.
type EnsembleForecaster struct {
	cfg   Config
	store ModelStore
	sink  coremetrics.PipelineSink
	log   corelogger.Logger
	now   func() time.Time

	mu     sync.RWMutex
	bundle *ModelBundle
}

// New creates a forecaster. The store may not be nil; pass metrics.NopSink
// to discard events.
func New(cfg Config, store ModelStore, sink coremetrics.PipelineSink, log corelogger.Logger) *EnsembleForecaster {
	cfg.SetDefaults()
	return &EnsembleForecaster{cfg: cfg, store: store, sink: sink, log: log, now: time.Now}
}

// Train fits both models on the records, evaluates them on a held-out
// split, publishes the new bundle and persists it. A successful train
// replaces the prior bundle and metrics wholesale.
func (f *EnsembleForecaster) Train(records []model.TrafficRecord) (TrainResult, error) {
	if len(records) == 0 {
		return TrainResult{}, ErrNoRecords
	}
	start := f.now()

	X := make([][]float64, len(records))
	y := make([]float64, len(records))
	for i, r := range records {
		X[i] = features.Encode(r.Timestamp)
		y[i] = float64(r.Volume)
	}
	trainX, trainY, testX, testY := splitShuffle(X, y, 0.2, f.cfg.Seed)

	forest := regress.NewForest(f.cfg.Estimators, f.cfg.ForestDepth, f.cfg.Seed)
	if err := forest.Fit(trainX, trainY); err != nil {
		return TrainResult{}, fmt.Errorf("fit forest: %w", err)
	}

	scaler := &features.StandardScaler{}
	if err := scaler.Fit(trainX); err != nil {
		return TrainResult{}, fmt.Errorf("fit scaler: %w", err)
	}
	boost := regress.NewBoosting(f.cfg.Estimators, f.cfg.BoostDepth, f.cfg.LearnRate)
	if err := boost.Fit(scaler.TransformAll(trainX), trainY); err != nil {
		return TrainResult{}, fmt.Errorf("fit boosting: %w", err)
	}

	forestPred := make([]float64, len(testX))
	boostPred := make([]float64, len(testX))
	for i, x := range testX {
		forestPred[i] = forest.Predict(x)
		boostPred[i] = boost.Predict(scaler.Transform(x))
	}
	forestMetrics := regress.Evaluate(forestPred, testY)
	boostMetrics := regress.Evaluate(boostPred, testY)

	bundle := &ModelBundle{
		ID:            uuid.NewString(),
		Forest:        forest,
		Boost:         boost,
		Scaler:        scaler,
		ForestMetrics: forestMetrics,
		BoostMetrics:  boostMetrics,
		Trained:       true,
		TrainedAt:     f.now(),
	}

	f.mu.Lock()
	f.bundle = bundle
	f.mu.Unlock()

	if !f.store.Save(bundle) {
		f.log.Warnf("model bundle %s not persisted", bundle.ID)
	}
	f.log.Infof("trained on %d records: %s r2=%.4f, %s r2=%.4f",
		len(records), regress.KindForest, forestMetrics.R2, regress.KindBoost, boostMetrics.R2)
	if err := f.sink.RecordTraining(coremetrics.TrainingEvent{
		BundleID: bundle.ID,
		Records:  len(records),
		ForestR2: forestMetrics.R2,
		BoostR2:  boostMetrics.R2,
		Duration: f.now().Sub(start),
		Time:     bundle.TrainedAt,
	}); err != nil {
		f.log.Warnf("record training event: %v", err)
	}

	return TrainResult{BundleID: bundle.ID, Forest: forestMetrics, Boost: boostMetrics}, nil
}

// TrainSynthetic trains on freshly generated records covering the given
// number of days (the configured window when days <= 0).
func (f *EnsembleForecaster) TrainSynthetic(days int) (TrainResult, error) {
	if days <= 0 {
		days = f.cfg.SyntheticDays
	}
	gen := synth.New(f.cfg.Seed)
	records := gen.Generate(days)
	f.log.Infof("generated %d synthetic records over %d days", len(records), days)
	return f.Train(records)
}

// EnsureTrained makes a bundle resident: an already resident bundle wins,
// then a persisted one, then a fresh synthetic training run.
func (f *EnsembleForecaster) EnsureTrained() error {
	f.mu.RLock()
	resident := f.bundle != nil
	f.mu.RUnlock()
	if resident {
		return nil
	}
	if b := f.store.Load(); b != nil && b.Trained {
		f.mu.Lock()
		f.bundle = b
		f.mu.Unlock()
		f.log.Infof("loaded model bundle %s (trained %s)", b.ID, b.TrainedAt.Format(time.RFC3339))
		return nil
	}
	f.log.Infof("no persisted models, training on synthetic data")
	_, err := f.TrainSynthetic(0)
	return err
}

// Reload replaces the resident bundle with the persisted one.
func (f *EnsembleForecaster) Reload() error {
	b := f.store.Load()
	if b == nil || !b.Trained {
		return ErrNotTrained
	}
	f.mu.Lock()
	f.bundle = b
	f.mu.Unlock()
	return nil
}

// Predict returns one ForecastPoint per hour offset in [1, hoursAhead] from
// the current time. The segment id is echoed into the recorded metrics; the
// model itself is network-wide.
func (f *EnsembleForecaster) Predict(segmentID string, hoursAhead int) ([]model.ForecastPoint, error) {
	if hoursAhead < 1 {
		return nil, ErrEmptyHorizon
	}
	f.mu.RLock()
	bundle := f.bundle
	f.mu.RUnlock()
	if bundle == nil || !bundle.Trained {
		return nil, ErrNotTrained
	}

	wForest := math.Max(bundle.ForestMetrics.R2, minWeight)
	wBoost := math.Max(bundle.BoostMetrics.R2, minWeight)

	now := f.now()
	points := make([]model.ForecastPoint, 0, hoursAhead)
	for h := 1; h <= hoursAhead; h++ {
		future := now.Add(time.Duration(h) * time.Hour)
		x := features.Encode(future)

		predForest := bundle.Forest.Predict(x)
		predBoost := bundle.Boost.Predict(bundle.Scaler.Transform(x))

		ensemble := (predForest*wForest + predBoost*wBoost) / (wForest + wBoost)
		volume := int(clamp(ensemble, minVolume, maxVolume))

		agreement := 1 - math.Abs(predForest-predBoost)/math.Max(math.Max(predForest, predBoost), 1)
		confidence := clamp(agreement*0.9, minConfidence, maxConfidence)

		points = append(points, model.ForecastPoint{
			Timestamp:       future,
			HourAhead:       h,
			PredictedVolume: volume,
			Confidence:      round3(confidence),
			RFPrediction:    int(predForest),
			GBPrediction:    int(predBoost),
		})
	}

	if err := f.sink.RecordForecast(coremetrics.ForecastEvent{
		SegmentID:  segmentID,
		Horizon:    hoursAhead,
		Points:     len(points),
		Confidence: points[0].Confidence,
		Time:       now,
	}); err != nil {
		f.log.Warnf("record forecast event: %v", err)
	}
	return points, nil
}

// Performance reports held-out metrics, the best model by R² and whether
// the ensemble is usable.
func (f *EnsembleForecaster) Performance() (Performance, error) {
	f.mu.RLock()
	bundle := f.bundle
	f.mu.RUnlock()
	if bundle == nil || !bundle.Trained {
		return Performance{}, ErrNotTrained
	}
	best := regress.KindForest
	if bundle.BoostMetrics.R2 > bundle.ForestMetrics.R2 {
		best = regress.KindBoost
	}
	return Performance{
		Models: map[string]regress.EvalMetrics{
			regress.KindForest.String(): bundle.ForestMetrics,
			regress.KindBoost.String():  bundle.BoostMetrics,
		},
		BestModel:         best.String(),
		EnsembleAvailable: true,
	}, nil
}

// Bundle returns a copy of the resident bundle, nil when untrained. The
// copy shares the fitted models but owns its metadata, so callers cannot
// mutate the published bundle through it.
func (f *EnsembleForecaster) Bundle() *ModelBundle {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.bundle == nil {
		return nil
	}
	b := *f.bundle
	return &b
}

// SetNow overrides the clock, for tests.
func (f *EnsembleForecaster) SetNow(now func() time.Time) { f.now = now }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
