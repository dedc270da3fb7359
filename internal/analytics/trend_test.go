package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/nazma5979/moodlog/internal/model"
)

func TestTrendSeries_Empty(t *testing.T) {
	if got := testEngine().TrendSeries(nil); got != nil {
		t.Errorf("expected nil series, got %v", got)
	}
}

func TestTrendSeries_BucketsByDayAscending(t *testing.T) {
	e := testEngine()

	// Deliberately out of order; components must sort internally.
	checkIns := []model.CheckIn{
		withIntensity(checkIn(26, "joyful"), 3), // day 2
		withIntensity(checkIn(0, "worried"), 1), // day 1
		withIntensity(checkIn(3, "annoyed"), 3), // day 1
	}

	series := e.TrendSeries(checkIns)
	if len(series) != 2 {
		t.Fatalf("expected 2 days, got %d", len(series))
	}
	if series[0].Date != "2025-06-01" || series[1].Date != "2025-06-02" {
		t.Errorf("unexpected dates: %s, %s", series[0].Date, series[1].Date)
	}
	if series[0].MeanIntensity != 2 {
		t.Errorf("day 1 mean: %v, want 2", series[0].MeanIntensity)
	}
	if series[0].IntensityMin != 1 || series[0].IntensityMax != 3 {
		t.Errorf("day 1 range: [%v, %v], want [1, 3]", series[0].IntensityMin, series[0].IntensityMax)
	}
}

func TestTrendSeries_SingleEntryBand(t *testing.T) {
	e := testEngine()

	series := e.TrendSeries([]model.CheckIn{withIntensity(checkIn(0, "joyful"), 2)})
	if len(series) != 1 {
		t.Fatalf("expected 1 day, got %d", len(series))
	}
	p := series[0]
	if math.Abs(p.IntensityMin-1.9) > 1e-9 || math.Abs(p.IntensityMax-2.1) > 1e-9 {
		t.Errorf("band [%v, %v], want [1.9, 2.1]", p.IntensityMin, p.IntensityMax)
	}

	// Band clamps to [1, 3] at the edges.
	series = e.TrendSeries([]model.CheckIn{withIntensity(checkIn(0, "joyful"), 3)})
	if series[0].IntensityMax != 3 {
		t.Errorf("max %v, want clamped 3", series[0].IntensityMax)
	}
}

func TestTrendSeries_NilIntensityDefaultsToTwo(t *testing.T) {
	e := testEngine()

	series := e.TrendSeries([]model.CheckIn{checkIn(0, "joyful")})
	if series[0].MeanIntensity != 2 {
		t.Errorf("mean %v, want default 2", series[0].MeanIntensity)
	}
}

func TestTrendSeries_ScaleMeansExcludeMissing(t *testing.T) {
	e := testEngine()

	checkIns := []model.CheckIn{
		withScales(checkIn(0, "joyful"), map[string]float64{"energy": 8}),
		withScales(checkIn(1, "joyful"), map[string]float64{"energy": 4, "sleep": 3}),
		checkIn(2, "joyful"), // reports nothing
	}

	series := e.TrendSeries(checkIns)
	if len(series) != 1 {
		t.Fatalf("expected 1 day, got %d", len(series))
	}
	// energy averaged over the two reporters, not three entries.
	if got := series[0].ScaleMeans["energy"]; got != 6 {
		t.Errorf("energy mean %v, want 6", got)
	}
	if got := series[0].ScaleMeans["sleep"]; got != 3 {
		t.Errorf("sleep mean %v, want 3", got)
	}
}

func TestTrendSeries_TimezoneShiftsBucket(t *testing.T) {
	e := testEngine()

	// 00:30 UTC with a 120-minute offset (two hours behind UTC) lands
	// on the previous local day.
	c := checkIn(0, "joyful")
	c.Timestamp = time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC).UnixMilli()
	c.TimezoneOffset = 120

	series := e.TrendSeries([]model.CheckIn{c})
	if series[0].Date != "2025-05-31" {
		t.Errorf("date %s, want 2025-05-31", series[0].Date)
	}
}
