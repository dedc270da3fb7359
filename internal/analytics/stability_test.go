package analytics

import (
	"testing"

	"github.com/nazma5979/moodlog/internal/model"
)

func TestStability_BelowMinimum(t *testing.T) {
	e := testEngine()

	got := e.Stability([]model.CheckIn{checkIn(0, "joyful"), checkIn(1, "joyful")})
	if got.Score != 50 || got.Label != "Calculating..." {
		t.Errorf("got %+v, want the calculating sentinel", got)
	}
}

func TestStability_UniformValenceIsVeryStable(t *testing.T) {
	e := testEngine()

	var checkIns []model.CheckIn
	for i := 0; i < 6; i++ {
		checkIns = append(checkIns, checkIn(i*24, "joyful"))
	}

	got := e.Stability(checkIns)
	if got.Score != 100 {
		t.Errorf("score %v, want 100 for zero variance", got.Score)
	}
	if got.Label != "Very Stable" {
		t.Errorf("label %q", got.Label)
	}
	if got.Volatility != 0 {
		t.Errorf("volatility %v, want 0", got.Volatility)
	}
}

func TestStability_SwingsScoreLower(t *testing.T) {
	e := testEngine()

	// Alternating happy (+0.8) and sad (-0.7) valence.
	var checkIns []model.CheckIn
	for i := 0; i < 8; i++ {
		id := "joyful"
		if i%2 == 1 {
			id = "grief"
		}
		checkIns = append(checkIns, checkIn(i*12, id))
	}

	got := e.Stability(checkIns)
	// sd = 0.75, score = (1 - 1.125) * 100 clamped to 0.
	if got.Score != 0 {
		t.Errorf("score %v, want 0", got.Score)
	}
	if got.Label != "High Volatility" {
		t.Errorf("label %q", got.Label)
	}
}

func TestStability_ScoreWithinBounds(t *testing.T) {
	e := testEngine()

	ids := []string{"joyful", "grief", "worried", "annoyed", "free", "sleepy", "eager"}
	var checkIns []model.CheckIn
	for i, id := range ids {
		checkIns = append(checkIns, checkIn(i*6, id))
	}

	got := e.Stability(checkIns)
	if got.Score < 0 || got.Score > 100 {
		t.Errorf("score %v outside [0, 100]", got.Score)
	}
}
