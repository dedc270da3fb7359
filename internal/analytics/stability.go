package analytics

import (
	"math"

	"github.com/nazma5979/moodlog/internal/model"
)

// minStabilitySamples is the smallest history a stability score is
// computed for.
const minStabilitySamples = 5

// StabilityResult scores how steady the valence axis has been.
// Volatility is the population standard deviation of per-check-in
// valence.
type StabilityResult struct {
	Score      float64 `json:"score"` // 0-100
	Label      string  `json:"label"`
	Volatility float64 `json:"volatility"`
}

// Stability measures emotional volatility over the whole history. Every
// check-in contributes its valence individually, regardless of how many
// fall on the same day. The 1.5 normalization multiplier is a tuned
// constant; changing it shifts every historical score.
func (e *Engine) Stability(checkIns []model.CheckIn) StabilityResult {
	if len(checkIns) < minStabilitySamples {
		return StabilityResult{Score: 50, Label: "Calculating..."}
	}

	valences := make([]float64, len(checkIns))
	var sum float64
	for i, c := range checkIns {
		valences[i] = e.Mood(c).Valence
		sum += valences[i]
	}
	mean := sum / float64(len(valences))

	var variance float64
	for _, v := range valences {
		d := v - mean
		variance += d * d
	}
	sd := math.Sqrt(variance / float64(len(valences)))

	score := clamp(0, 100, (1-sd*1.5)*100)
	label := "Variable"
	switch {
	case score > 80:
		label = "Very Stable"
	case score > 60:
		label = "Steady"
	case score < 30:
		label = "High Volatility"
	}
	return StabilityResult{Score: score, Label: label, Volatility: sd}
}
