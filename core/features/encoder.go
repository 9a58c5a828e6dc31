// Package features turns timestamps into the fixed-length numeric vectors the
// ensemble regressors are trained on. Cyclical fields (hour, day of week,
// month) are expanded into sin/cos pairs over their full period so midnight
// sits next to 23:00 and December next to January.
package features

import (
	"math"
	"time"
)

// Dim is the length of encoded feature vectors.
const Dim = 11

// holidays are matched on month and day only, year-independent.
var holidays = map[[2]int]bool{
	{1, 1}:   true, // New Year's Day
	{7, 4}:   true, // Independence Day
	{12, 25}: true, // Christmas Day
}

// IsHoliday reports whether t falls on one of the fixed calendar holidays.
func IsHoliday(t time.Time) bool {
	return holidays[[2]int{int(t.Month()), t.Day()}]
}

// DayOfWeek returns the weekday of t with Monday=0 .. Sunday=6.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return DayOfWeek(t) >= 5
}

// Encode maps a timestamp to its feature vector:
//
//	[hour, day_of_week, month, is_weekend, is_holiday,
//	 sin(hour), cos(hour), sin(dow), cos(dow), sin(month), cos(month)]
//
// Encode is deterministic and side-effect free.
func Encode(t time.Time) []float64 {
	hour := float64(t.Hour())
	dow := float64(DayOfWeek(t))
	month := float64(int(t.Month()))

	weekend := 0.0
	if IsWeekend(t) {
		weekend = 1
	}
	holiday := 0.0
	if IsHoliday(t) {
		holiday = 1
	}

	return []float64{
		hour, dow, month, weekend, holiday,
		math.Sin(2 * math.Pi * hour / 24), math.Cos(2 * math.Pi * hour / 24),
		math.Sin(2 * math.Pi * dow / 7), math.Cos(2 * math.Pi * dow / 7),
		math.Sin(2 * math.Pi * month / 12), math.Cos(2 * math.Pi * month / 12),
	}
}
