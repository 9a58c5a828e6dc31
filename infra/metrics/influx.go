package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/campusflow/trafficq/core/metrics"
	"github.com/campusflow/trafficq/infra/logger"
)

const influxTimeout = 5 * time.Second

// InfluxSink persists pipeline events as time-series points through the
// blocking write API.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink connects to the configured InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	client := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: influxTimeout}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback health-checks the endpoint first and degrades
// to a NopSink when it is unreachable, keeping the pipeline available
// without an InfluxDB instance.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.PipelineSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), influxTimeout)
	defer cancel()
	health, err := sink.client.Health(ctx)
	switch {
	case err != nil:
		sink.log.Errorf("influx health check: %v", err)
	case health.Status != "pass":
		sink.log.Errorf("influx health status: %s", health.Status)
	default:
		return sink
	}
	sink.client.Close()
	return coremetrics.NopSink{}
}

// RecordTraining writes one training_run point tagged by bundle id.
func (s *InfluxSink) RecordTraining(ev coremetrics.TrainingEvent) error {
	p := write.NewPointWithMeasurement("training_run").
		AddTag("bundle_id", ev.BundleID).
		AddField("records", ev.Records).
		AddField("forest_r2", round3(ev.ForestR2)).
		AddField("boost_r2", round3(ev.BoostR2)).
		AddField("duration_ms", ev.Duration.Milliseconds()).
		SetTime(ev.Time)
	return s.write(p)
}

// RecordForecast writes one forecast_query point tagged by segment and
// horizon.
func (s *InfluxSink) RecordForecast(ev coremetrics.ForecastEvent) error {
	p := write.NewPointWithMeasurement("forecast_query").
		AddTag("segment_id", ev.SegmentID).
		AddTag("horizon", strconv.Itoa(ev.Horizon)).
		AddField("points", ev.Points).
		AddField("confidence", round3(ev.Confidence)).
		SetTime(ev.Time)
	return s.write(p)
}

// RecordRisk writes one risk_classification point tagged by label.
func (s *InfluxSink) RecordRisk(ev coremetrics.RiskEvent) error {
	p := write.NewPointWithMeasurement("risk_classification").
		AddTag("label", ev.Label).
		AddField("probability", round3(ev.Probability)).
		SetTime(ev.Time)
	return s.write(p)
}

func (s *InfluxSink) write(p *write.Point) error {
	ctx, cancel := context.WithTimeout(context.Background(), influxTimeout)
	defer cancel()
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
