package analytics

import (
	"testing"

	"github.com/nazma5979/moodlog/internal/model"
)

func TestGranularity_Empty(t *testing.T) {
	got := testEngine().Granularity(nil)
	if got.Score != 0 || got.Level != "Low" || got.Message != "No data yet." {
		t.Errorf("got %+v, want the no-data sentinel", got)
	}
}

func TestGranularity_AllLeaves(t *testing.T) {
	e := testEngine()

	checkIns := []model.CheckIn{
		checkIn(0, "annoyed"),
		checkIn(1, "joyful"),
		checkIn(2, "worried"),
	}

	got := e.Granularity(checkIns)
	if got.Score != 100 {
		t.Errorf("score %v, want 100 for all leaf selections", got.Score)
	}
	if got.Level != "Very High" {
		t.Errorf("level %q", got.Level)
	}
}

func TestGranularity_AllRoots(t *testing.T) {
	e := testEngine()

	checkIns := []model.CheckIn{
		checkIn(0, "happy"),
		checkIn(1, "sad"),
	}

	got := e.Granularity(checkIns)
	if got.Score != 0 {
		t.Errorf("score %v, want 0 for all root selections", got.Score)
	}
	if got.Level != "Low" {
		t.Errorf("level %q", got.Level)
	}
}

func TestGranularity_MixedDepths(t *testing.T) {
	e := testEngine()

	// One root (1 point), one mid (2), one leaf (3): avg 2, score 50.
	checkIns := []model.CheckIn{
		checkIn(0, "happy"),
		checkIn(1, "frustrated"),
		checkIn(2, "worried"),
	}

	got := e.Granularity(checkIns)
	if got.Score != 50 {
		t.Errorf("score %v, want 50", got.Score)
	}
	if got.Level != "Moderate" {
		t.Errorf("level %q", got.Level)
	}
}

func TestGranularity_SkipsUnresolvable(t *testing.T) {
	e := testEngine()

	checkIns := []model.CheckIn{
		checkIn(0, "annoyed"),
		checkIn(1, "ghost-emotion"),
	}

	got := e.Granularity(checkIns)
	if got.Score != 100 {
		t.Errorf("score %v, want 100 with the unresolvable entry skipped", got.Score)
	}

	// History with nothing resolvable degrades to the sentinel.
	got = e.Granularity([]model.CheckIn{checkIn(0, "ghost-emotion")})
	if got.Message != "No data yet." {
		t.Errorf("got %+v, want the no-data sentinel", got)
	}
}
