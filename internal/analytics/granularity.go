package analytics

import "github.com/nazma5979/moodlog/internal/model"

// GranularityResult scores how specific the user's emotion selections
// are: leaves score higher than roots.
type GranularityResult struct {
	Score   float64 `json:"score"` // 0-100
	Level   string  `json:"level"`
	Message string  `json:"message"`
}

// Granularity averages the hierarchy depth of selected primary emotions
// across the history. A root selection earns 1 point, a mid-level 2, a
// leaf 3; the average maps linearly onto 0-100. Check-ins without a
// resolvable primary are skipped, and a history with none yields the
// no-data sentinel.
func (e *Engine) Granularity(checkIns []model.CheckIn) GranularityResult {
	var points, counted float64
	for _, c := range checkIns {
		sel, ok := c.Primary()
		if !ok {
			continue
		}
		depth := e.tax.Depth(sel.NodeID)
		if depth < 0 {
			continue
		}
		points += float64(depth + 1)
		counted++
	}
	if counted == 0 {
		return GranularityResult{Score: 0, Level: "Low", Message: "No data yet."}
	}

	avg := points / counted
	score := clamp(0, 100, (avg-1)/2*100)

	level, message := "Low", "Start by asking which flavor of the broad feeling fits best."
	switch {
	case score > 80:
		level, message = "Very High", "You name emotions with real precision. Keep it up."
	case score > 50:
		level, message = "High", "You often reach past the obvious word to a more specific one."
	case score > 20:
		level, message = "Moderate", "Try drilling one level deeper when an emotion feels familiar."
	}
	return GranularityResult{Score: score, Level: level, Message: message}
}
