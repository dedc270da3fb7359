package analytics

import (
	"sort"
	"time"

	"github.com/nazma5979/moodlog/internal/model"
)

// LabelCount pairs a label with an occurrence count.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// OverviewResult summarizes the journal at a glance.
type OverviewResult struct {
	TotalCheckIns int          `json:"total_check_ins"`
	DaysActive    int          `json:"days_active"`
	FirstCheckIn  time.Time    `json:"first_check_in,omitzero"`
	LastCheckIn   time.Time    `json:"last_check_in,omitzero"`
	TopEmotions   []LabelCount `json:"top_emotions,omitempty"`
}

// topEmotionCount bounds the overview's emotion leaderboard.
const topEmotionCount = 5

// Overview reports journal totals, the days elapsed since the first
// check-in (inclusive, against the engine's clock), and the most
// frequent root emotions. Ties break alphabetically so output is
// deterministic.
func (e *Engine) Overview(checkIns []model.CheckIn) OverviewResult {
	if len(checkIns) == 0 {
		return OverviewResult{}
	}

	ordered := sortedByTime(checkIns)
	first := ordered[0].Time()
	last := ordered[len(ordered)-1].Time()

	days := int(e.now().Sub(first).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	counts := make(map[string]int)
	for _, c := range ordered {
		if root, ok := e.rootOf(c); ok {
			counts[root.Label]++
		}
	}
	top := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		top = append(top, LabelCount{Label: label, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Label < top[j].Label
	})
	if len(top) > topEmotionCount {
		top = top[:topEmotionCount]
	}

	return OverviewResult{
		TotalCheckIns: len(checkIns),
		DaysActive:    days,
		FirstCheckIn:  first,
		LastCheckIn:   last,
		TopEmotions:   top,
	}
}
