package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/campusflow/trafficq/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}

	now := time.Now()
	if err := sink.RecordTraining(coremetrics.TrainingEvent{BundleID: "b1", Records: 100, Time: now}); err != nil {
		t.Fatalf("training: %v", err)
	}
	if err := sink.RecordForecast(coremetrics.ForecastEvent{SegmentID: "fgcu_blvd", Horizon: 24, Points: 24, Confidence: 0.85, Time: now}); err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if err := sink.RecordRisk(coremetrics.RiskEvent{Label: "WATCH", Probability: 0.4, Time: now}); err != nil {
		t.Fatalf("risk: %v", err)
	}

	expected := `
# HELP forecast_queries_total Total number of forecast queries
# TYPE forecast_queries_total counter
forecast_queries_total{segment_id="fgcu_blvd"} 1
`
	if err := testutil.CollectAndCompare(sink.forecasts, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}

	expected = `
# HELP risk_classifications_total Total number of risk classifications by label
# TYPE risk_classifications_total counter
risk_classifications_total{label="WATCH"} 1
`
	if err := testutil.CollectAndCompare(sink.risks, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}

	if c := testutil.CollectAndCount(sink.confidence); c == 0 {
		t.Errorf("confidence not recorded")
	}
	if v := testutil.ToFloat64(sink.trainings); v != 1 {
		t.Errorf("training counter = %v", v)
	}
}

func TestMultiSinkFansOut(t *testing.T) {
	regA := prometheus.NewRegistry()
	regB := prometheus.NewRegistry()
	a, err := NewPromSinkWithRegistry(coremetrics.Config{}, regA)
	if err != nil {
		t.Fatalf("sink a: %v", err)
	}
	b, err := NewPromSinkWithRegistry(coremetrics.Config{}, regB)
	if err != nil {
		t.Fatalf("sink b: %v", err)
	}

	multi := NewMultiSink(a, b)
	if err := multi.RecordRisk(coremetrics.RiskEvent{Label: "NORMAL", Probability: 0.7, Time: time.Now()}); err != nil {
		t.Fatalf("record: %v", err)
	}
	for name, s := range map[string]coremetrics.PipelineSink{"a": a, "b": b} {
		ps := s.(*PromSink)
		if v := testutil.ToFloat64(ps.risks.WithLabelValues("NORMAL")); v != 1 {
			t.Errorf("sink %s counter = %v", name, v)
		}
	}
}
