package metrics

import "time"

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":2112"
	}
}

// TrainingEvent captures one completed training run.
type TrainingEvent struct {
	BundleID string
	Records  int
	ForestR2 float64
	BoostR2  float64
	Duration time.Duration
	Time     time.Time
}

// ForecastEvent captures one forecast query.
type ForecastEvent struct {
	SegmentID  string
	Horizon    int
	Points     int
	Confidence float64 // first-horizon confidence
	Time       time.Time
}

// RiskEvent captures one risk classification.
type RiskEvent struct {
	Label       string
	Probability float64 // probability of the selected label
	Time        time.Time
}

// PipelineSink records pipeline events for observability purposes.
type PipelineSink interface {
	RecordTraining(ev TrainingEvent) error
	RecordForecast(ev ForecastEvent) error
	RecordRisk(ev RiskEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordTraining(TrainingEvent) error { return nil }
func (NopSink) RecordForecast(ForecastEvent) error { return nil }
func (NopSink) RecordRisk(RiskEvent) error         { return nil }
