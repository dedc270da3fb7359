package analytics

import (
	"time"

	"github.com/nazma5979/moodlog/internal/model"
)

// TrendPoint is one calendar day of aggregated check-ins.
type TrendPoint struct {
	Date          string             `json:"date"` // YYYY-MM-DD
	MeanIntensity float64            `json:"mean_intensity"`
	IntensityMin  float64            `json:"intensity_min"`
	IntensityMax  float64            `json:"intensity_max"`
	ScaleMeans    map[string]float64 `json:"scale_means,omitempty"`
}

// localDay renders the check-in's calendar date in its own timezone.
// TimezoneOffset follows the getTimezoneOffset convention: minutes
// behind UTC, so local time is UTC minus the offset.
func localDay(c model.CheckIn) string {
	t := c.Time().UTC().Add(-time.Duration(c.TimezoneOffset) * time.Minute)
	return t.Format("2006-01-02")
}

// TrendSeries buckets check-ins by calendar day, ascending, and reports
// per-day intensity statistics and per-scale means. Unreported
// intensity counts as 2. Days with a single entry get a narrow
// synthetic [v-0.1, v+0.1] band (clamped to [1,3]) so chart rendering
// always has a non-degenerate range. Scale means cover only the entries
// that reported the scale; missing values are excluded, not zeroed.
func (e *Engine) TrendSeries(checkIns []model.CheckIn) []TrendPoint {
	if len(checkIns) == 0 {
		return nil
	}

	type bucket struct {
		date        string
		intensities []float64
		scaleSums   map[string]float64
		scaleCounts map[string]int
	}

	var order []*bucket
	byDate := make(map[string]*bucket)

	for _, c := range sortedByTime(checkIns) {
		day := localDay(c)
		b, ok := byDate[day]
		if !ok {
			b = &bucket{
				date:        day,
				scaleSums:   make(map[string]float64),
				scaleCounts: make(map[string]int),
			}
			byDate[day] = b
			order = append(order, b)
		}
		b.intensities = append(b.intensities, intensityOf(c))
		for id, v := range c.ScaleValues {
			b.scaleSums[id] += v
			b.scaleCounts[id]++
		}
	}

	series := make([]TrendPoint, 0, len(order))
	for _, b := range order {
		p := TrendPoint{Date: b.date}

		sum, min, max := 0.0, b.intensities[0], b.intensities[0]
		for _, v := range b.intensities {
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		p.MeanIntensity = sum / float64(len(b.intensities))
		if len(b.intensities) >= 2 {
			p.IntensityMin, p.IntensityMax = min, max
		} else {
			v := b.intensities[0]
			p.IntensityMin = clamp(1, 3, v-0.1)
			p.IntensityMax = clamp(1, 3, v+0.1)
		}

		if len(b.scaleSums) > 0 {
			p.ScaleMeans = make(map[string]float64, len(b.scaleSums))
			for id, s := range b.scaleSums {
				p.ScaleMeans[id] = s / float64(b.scaleCounts[id])
			}
		}
		series = append(series, p)
	}
	return series
}
