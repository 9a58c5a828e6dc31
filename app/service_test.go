package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/campusflow/trafficq/config"
	"github.com/campusflow/trafficq/core/forecast"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := config.Default()
	cfg.Forecaster = forecast.Config{
		SyntheticDays: 7,
		Estimators:    8,
		ForestDepth:   6,
		BoostDepth:    3,
		LearnRate:     0.1,
		Seed:          42,
	}
	cfg.Store.Path = filepath.Join(t.TempDir(), "models.json")

	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return svc
}

func TestSegmentStatus(t *testing.T) {
	svc := newTestService(t)
	status := svc.SegmentStatus("fgcu_blvd", 1)

	if status.Error != "" {
		t.Fatalf("unexpected error payload: %s", status.Error)
	}
	if status.SegmentID != "fgcu_blvd" {
		t.Errorf("segment id = %s", status.SegmentID)
	}
	if status.Forecast == nil || status.Risk == nil {
		t.Fatalf("incomplete payload: %+v", status)
	}
	if status.Forecast.PredictedVolume < 10 || status.Forecast.PredictedVolume > 800 {
		t.Errorf("volume %d out of range", status.Forecast.PredictedVolume)
	}
	if status.Risk.RiskLabel == "" || len(status.Risk.Probabilities) != 4 {
		t.Errorf("malformed risk assessment: %+v", status.Risk)
	}
}

func TestSegmentStatusUnknownSegment(t *testing.T) {
	svc := newTestService(t)
	status := svc.SegmentStatus("nonexistent_rd", 1)
	if status.Error != "" {
		t.Fatalf("unknown segment should still forecast: %s", status.Error)
	}
	if status.SegmentID != "nonexistent_rd" {
		t.Errorf("segment id not echoed: %s", status.SegmentID)
	}
}

func TestSegmentStatusEmptyHorizon(t *testing.T) {
	svc := newTestService(t)
	status := svc.SegmentStatus("fgcu_blvd", 0)
	if status.Error != "No predictions available" {
		t.Errorf("expected error payload, got %+v", status)
	}
	if status.SegmentID != "fgcu_blvd" {
		t.Errorf("segment id missing from error payload")
	}
	if status.Forecast != nil || status.Risk != nil {
		t.Errorf("error payload carries forecast or risk data")
	}
}

func TestReloadAfterInit(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Reload(); err != nil {
		t.Errorf("reload of persisted bundle: %v", err)
	}
}
