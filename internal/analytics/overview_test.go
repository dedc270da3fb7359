package analytics

import (
	"testing"

	"github.com/nazma5979/moodlog/internal/model"
)

func TestOverview_Empty(t *testing.T) {
	got := testEngine().Overview(nil)
	if got.TotalCheckIns != 0 || got.DaysActive != 0 || len(got.TopEmotions) != 0 {
		t.Errorf("got %+v, want zero overview", got)
	}
}

func TestOverview_DaysActiveUsesClock(t *testing.T) {
	// Engine clock is pinned 30 days after baseTime.
	e := testEngine()

	got := e.Overview([]model.CheckIn{checkIn(0, "joyful"), checkIn(24, "joyful")})
	if got.DaysActive != 31 {
		t.Errorf("days active %d, want 31", got.DaysActive)
	}
	if !got.FirstCheckIn.Equal(baseTime) {
		t.Errorf("first %v, want %v", got.FirstCheckIn, baseTime)
	}
}

func TestOverview_TopEmotionsTieBreak(t *testing.T) {
	e := testEngine()

	checkIns := []model.CheckIn{
		checkIn(0, "grief"),   // Sad
		checkIn(1, "joyful"),  // Happy
		checkIn(2, "annoyed"), // Angry
		checkIn(3, "annoyed"), // Angry
	}

	got := e.Overview(checkIns)
	if len(got.TopEmotions) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got.TopEmotions))
	}
	if got.TopEmotions[0].Label != "Angry" || got.TopEmotions[0].Count != 2 {
		t.Errorf("top entry %+v", got.TopEmotions[0])
	}
	// Happy and Sad tie on count; alphabetical order breaks it.
	if got.TopEmotions[1].Label != "Happy" || got.TopEmotions[2].Label != "Sad" {
		t.Errorf("tie-break order: %+v", got.TopEmotions)
	}
}
