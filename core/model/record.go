package model

import "time"

// KnownSegments lists the road segments of the campus network. The
// forecasting model is not keyed on segment identity; the set is used by the
// synthetic generator and echoed back on query results.
var KnownSegments = []string{"bh_griffin_pkwy", "fgcu_blvd", "campus_loop"}

// TrafficRecord is one observed (or synthesized) hour of traffic on a
// segment. Records are immutable once produced and consumed only for
// training.
type TrafficRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Hour      int       `json:"hour"`        // 0-23
	DayOfWeek int       `json:"day_of_week"` // 0=Monday .. 6=Sunday
	Month     int       `json:"month"`       // 1-12
	IsWeekend bool      `json:"is_weekend"`
	IsHoliday bool      `json:"is_holiday"`
	Volume    int       `json:"volume"`  // vehicles per hour
	Speed     float64   `json:"speed"`   // mph
	Density   float64   `json:"density"` // volume / speed
	SegmentID string    `json:"segment_id"`
}
