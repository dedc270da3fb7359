package analytics

import (
	"math"
	"testing"

	"github.com/nazma5979/moodlog/internal/model"
)

func TestMood_IntensityModulatesArousalOnly(t *testing.T) {
	e := testEngine()

	// fearful base: valence -0.7, arousal 0.65, dominance -0.5
	for _, tc := range []struct {
		intensity   int
		wantArousal float64
	}{
		{1, 0.325},
		{2, 0.65},
		{3, 0.975},
	} {
		m := e.Mood(withIntensity(checkIn(0, "worried"), tc.intensity))
		if math.Abs(m.Arousal-tc.wantArousal) > 1e-9 {
			t.Errorf("intensity %d: arousal %v, want %v", tc.intensity, m.Arousal, tc.wantArousal)
		}
		if m.Valence != -0.7 || m.Dominance != -0.5 {
			t.Errorf("intensity %d: valence/dominance changed: %+v", tc.intensity, m)
		}
		if m.Label != "Fearful" {
			t.Errorf("intensity %d: label %q, want Fearful", tc.intensity, m.Label)
		}
	}
}

func TestMood_NilIntensityDefaultsToFullArousal(t *testing.T) {
	e := testEngine()

	m := e.Mood(checkIn(0, "joyful")) // no intensity set
	if math.Abs(m.Arousal-0.5) > 1e-9 {
		t.Errorf("expected base arousal 0.5 at default intensity, got %v", m.Arousal)
	}
}

func TestMood_UnresolvablePrimary(t *testing.T) {
	e := testEngine()

	zero := MoodPoint{Label: "Unknown"}

	// Unknown node id.
	if m := e.Mood(checkIn(0, "not-a-feeling")); m != zero {
		t.Errorf("unknown id: got %+v", m)
	}
	// No primary flag at all.
	c := model.CheckIn{Emotions: []model.SelectedEmotion{{NodeID: "joyful"}}}
	if m := e.Mood(c); m != zero {
		t.Errorf("no primary: got %+v", m)
	}
	// No emotions.
	if m := e.Mood(model.CheckIn{}); m != zero {
		t.Errorf("empty check-in: got %+v", m)
	}
}
