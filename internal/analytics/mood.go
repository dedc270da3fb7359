package analytics

import "github.com/nazma5979/moodlog/internal/model"

// unknownLabel is returned when a check-in's primary emotion does not
// resolve against the taxonomy.
const unknownLabel = "Unknown"

// MoodPoint is a check-in projected into valence/arousal/dominance
// space, labeled with its root category.
type MoodPoint struct {
	Valence   float64 `json:"valence"`
	Arousal   float64 `json:"arousal"`
	Dominance float64 `json:"dominance"`
	Label     string  `json:"label"`
}

// Mood projects a check-in onto the dimensional space of its primary
// emotion's root category. Arousal alone is modulated by reported
// intensity (1 → 0.5x, 2 → 1.0x, 3 → 1.5x; unreported counts as 2).
// The scaled arousal is deliberately left unclamped, so a high-arousal
// root at intensity 3 can exceed 1. Unresolvable primaries map to the
// zero vector.
func (e *Engine) Mood(c model.CheckIn) MoodPoint {
	sel, ok := c.Primary()
	if !ok {
		return MoodPoint{Label: unknownLabel}
	}
	root, ok := e.tax.Root(sel.NodeID)
	if !ok {
		return MoodPoint{Label: unknownLabel}
	}
	base, ok := e.tax.VAD(root.ID)
	if !ok {
		return MoodPoint{Label: unknownLabel}
	}
	mod := intensityOf(c) / 2
	return MoodPoint{
		Valence:   base.Valence,
		Arousal:   base.Arousal * mod,
		Dominance: base.Dominance,
		Label:     root.Label,
	}
}
