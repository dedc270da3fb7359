package analytics

import (
	"fmt"
	"math"

	"github.com/nazma5979/moodlog/internal/model"
)

// minCorrelationSamples is the smallest qualifying sample a Pearson
// coefficient is reported for.
const minCorrelationSamples = 5

// ScatterPoint is a deduplicated (x, y) observation; N counts how many
// check-ins landed on the same point, for bubble sizing.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	N int     `json:"n"`
}

// Correlation relates two scales across the history.
type Correlation struct {
	R       float64        `json:"r"`
	Message string         `json:"message"`
	Points  []ScatterPoint `json:"points,omitempty"`
}

// Correlate computes the Pearson coefficient between two scales over the
// check-ins reporting both. Fewer than five qualifying entries, or a
// zero-variance axis, yields r=0 rather than an error or NaN.
func (e *Engine) Correlate(checkIns []model.CheckIn, a, b model.Scale) Correlation {
	var xs, ys []float64
	var points []ScatterPoint
	seen := make(map[[2]float64]int)

	for _, c := range checkIns {
		x, okX := c.ScaleValues[a.ID]
		y, okY := c.ScaleValues[b.ID]
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)

		key := [2]float64{x, y}
		if i, dup := seen[key]; dup {
			points[i].N++
		} else {
			seen[key] = len(points)
			points = append(points, ScatterPoint{X: x, Y: y, N: 1})
		}
	}

	if len(xs) < minCorrelationSamples {
		return Correlation{Message: "Not enough data"}
	}

	r := pearson(xs, ys)
	msg := "No correlation."
	switch {
	case r > 0.5:
		msg = fmt.Sprintf("%s increases with %s", a.Label, b.Label)
	case r < -0.5:
		msg = fmt.Sprintf("%s drains your %s", a.Label, b.Label)
	}
	return Correlation{R: r, Message: msg, Points: points}
}

// pearson computes the sample Pearson coefficient. Zero variance on
// either axis short-circuits to 0.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}
	den := math.Sqrt(n*sumX2-sumX*sumX) * math.Sqrt(n*sumY2-sumY*sumY)
	if den == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / den
}
