// Package analytics derives statistical views from check-in history:
// trend series, scale correlations, lift-based pattern candidates,
// stability and granularity scores. Every function is pure over its
// inputs: no I/O, no mutation of the caller's slice, no panics on
// empty input or dangling references.
package analytics

import (
	"sort"
	"time"

	"github.com/nazma5979/moodlog/internal/model"
	"github.com/nazma5979/moodlog/internal/taxonomy"
)

// defaultIntensity substitutes for check-ins that did not report one.
const defaultIntensity = 2

// Engine evaluates analytics over check-in snapshots. The taxonomy is
// injected once at construction; the clock is injectable for tests.
type Engine struct {
	tax *taxonomy.Taxonomy
	now func() time.Time
}

// New creates an engine using the wall clock.
func New(tax *taxonomy.Taxonomy) *Engine {
	return NewWithClock(tax, time.Now)
}

// NewWithClock creates an engine with an explicit clock. Only the
// overview's days-active figure depends on it.
func NewWithClock(tax *taxonomy.Taxonomy, now func() time.Time) *Engine {
	return &Engine{tax: tax, now: now}
}

// sortedByTime returns a time-ascending copy. The input is never mutated.
func sortedByTime(checkIns []model.CheckIn) []model.CheckIn {
	out := make([]model.CheckIn, len(checkIns))
	copy(out, checkIns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}

// intensityOf returns the reported intensity, defaulting when absent.
func intensityOf(c model.CheckIn) float64 {
	if c.Intensity == nil {
		return defaultIntensity
	}
	return float64(*c.Intensity)
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
