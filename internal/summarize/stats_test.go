package summarize

import (
	"testing"
	"time"
)

func TestStats_EmptySnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.AvgMs != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestStats_Aggregates(t *testing.T) {
	s := NewStats(time.Hour)
	for _, ms := range []int64{100, 200, 300} {
		s.Record(ms)
	}
	snap := s.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("count = %d, want 3", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 300 {
		t.Errorf("min/max = %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 200 {
		t.Errorf("avg = %f, want 200", snap.AvgMs)
	}
	if snap.P50Ms != 200 {
		t.Errorf("p50 = %f, want 200", snap.P50Ms)
	}
}

func TestStats_NegativeClampedToZero(t *testing.T) {
	s := NewStats(time.Hour)
	s.Record(-5)
	snap := s.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("min = %d, want 0", snap.MinMs)
	}
}

func TestStats_Percentile(t *testing.T) {
	values := []int64{10, 20, 30, 40}
	if got := percentile(values, 0); got != 10 {
		t.Errorf("p0 = %f", got)
	}
	if got := percentile(values, 100); got != 40 {
		t.Errorf("p100 = %f", got)
	}
	if got := percentile(values, 50); got != 25 {
		t.Errorf("p50 = %f, want 25 (interpolated)", got)
	}
}
