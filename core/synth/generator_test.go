package synth

import (
	"testing"
	"time"
)

func TestGenerateOneDay(t *testing.T) {
	now := time.Date(2025, 9, 16, 23, 0, 0, 0, time.UTC)
	recs := New(1).GenerateFrom(now, 1)
	if len(recs) != 24 {
		t.Fatalf("expected 24 records, got %d", len(recs))
	}
	seen := map[int]int{}
	for _, r := range recs {
		seen[r.Hour]++
		if r.Volume < 10 {
			t.Errorf("hour %d: volume %d below floor", r.Hour, r.Volume)
		}
		if r.Speed <= 0 {
			t.Errorf("hour %d: speed %v", r.Hour, r.Speed)
		}
		if r.Month < 1 || r.Month > 12 {
			t.Errorf("hour %d: month %d", r.Hour, r.Month)
		}
		if r.SegmentID == "" {
			t.Errorf("hour %d: empty segment", r.Hour)
		}
	}
	for h := 0; h < 24; h++ {
		if seen[h] != 1 {
			t.Errorf("hour %d appears %d times", h, seen[h])
		}
	}
	if got := recs[len(recs)-1].Timestamp; !got.Equal(now) {
		t.Errorf("window does not end at now: %v", got)
	}
}

func TestGenerateReproducible(t *testing.T) {
	now := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	a := New(42).GenerateFrom(now, 2)
	b := New(42).GenerateFrom(now, 2)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	now := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	a := New(1).GenerateFrom(now, 2)
	b := New(2).GenerateFrom(now, 2)
	same := true
	for i := range a {
		if a[i].Volume != b[i].Volume {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different seeds produced identical volumes")
	}
}

func TestGenerateInvalidDays(t *testing.T) {
	if recs := New(1).Generate(0); recs != nil {
		t.Errorf("expected nil for 0 days, got %d records", len(recs))
	}
	if recs := New(1).Generate(-3); recs != nil {
		t.Errorf("expected nil for negative days")
	}
}
