package model

import "time"

// ForecastPoint is one hour of the predicted horizon. PredictedVolume is
// clamped to [10, 800] and Confidence to [0.6, 0.95] by the forecaster.
type ForecastPoint struct {
	Timestamp       time.Time `json:"timestamp"`
	HourAhead       int       `json:"hour_ahead"`
	PredictedVolume int       `json:"predicted_volume"`
	Confidence      float64   `json:"confidence"`
	RFPrediction    int       `json:"rf_prediction"`
	GBPrediction    int       `json:"gb_prediction"`
}

// StatusForecast is the first-horizon slice of a forecast embedded in a
// SegmentStatus payload.
type StatusForecast struct {
	PredictedVolume int     `json:"predicted_volume"`
	Confidence      float64 `json:"confidence"`
	RFPrediction    int     `json:"rf_prediction"`
	GBPrediction    int     `json:"gb_prediction"`
}

// SegmentStatus combines the next-hour forecast with its risk classification.
// When no forecast is available only Error and SegmentID are populated, so
// callers always receive a structured payload.
type SegmentStatus struct {
	SegmentID string          `json:"segment_id"`
	Timestamp time.Time       `json:"timestamp,omitzero"`
	Forecast  *StatusForecast `json:"forecast,omitempty"`
	Risk      *RiskAssessment `json:"qrl_risk,omitempty"`
	Error     string          `json:"error,omitempty"`
}
