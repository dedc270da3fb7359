package analytics

import (
	"time"

	"github.com/nazma5979/moodlog/internal/model"
	"github.com/nazma5979/moodlog/internal/taxonomy"
)

// baseTime anchors test timestamps.
var baseTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return NewWithClock(taxonomy.Default(), func() time.Time { return baseTime.Add(30 * 24 * time.Hour) })
}

// checkIn builds a test record with a primary emotion at an hour offset
// from baseTime.
func checkIn(hoursAfter int, primaryID string, tags ...string) model.CheckIn {
	return model.CheckIn{
		ID:        primaryID + "-" + time.Duration(hoursAfter).String(),
		Timestamp: baseTime.Add(time.Duration(hoursAfter) * time.Hour).UnixMilli(),
		Emotions:  []model.SelectedEmotion{{NodeID: primaryID, Primary: true}},
		Tags:      tags,
	}
}

func withIntensity(c model.CheckIn, intensity int) model.CheckIn {
	c.Intensity = &intensity
	return c
}

func withScales(c model.CheckIn, values map[string]float64) model.CheckIn {
	c.ScaleValues = values
	return c
}

var testTags = []model.ContextTag{
	{ID: "work", Category: "activity", Label: "Work"},
	{ID: "nature", Category: "place", Label: "Outdoors"},
	{ID: "caffeine", Category: "body", Label: "Caffeine"},
}
