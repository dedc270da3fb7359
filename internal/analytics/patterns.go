package analytics

import (
	"fmt"
	"sort"

	"github.com/nazma5979/moodlog/internal/model"
)

// Pattern types. Predictive patterns pair a check-in with tags logged up
// to twelve hours earlier; concurrent patterns pair it with its own tags.
const (
	PatternConcurrent = "concurrent"
	PatternPredictive = "predictive"
)

// Mining thresholds. A (tag, emotion) pair surfaces only when the tag
// has enough observations, appeared jointly at least twice, and lifts
// the emotion's base rate by more than 30%.
const (
	minPatternSamples = 5
	minTagCount       = 3
	minJointCount     = 2
	minLift           = 1.3
	highConfidence    = 0.6
	maxPatterns       = 10
	lagWindowHours    = 12
	lagWindowMillis   = int64(lagWindowHours) * 60 * 60 * 1000
)

// archivedTagLabel stands in for tag ids whose definition was deleted.
const archivedTagLabel = "Archived Tag"

// negativeRoots are the root categories read as unwelcome when phrasing
// a pattern. Happy and surprised are treated as positive or neutral.
var negativeRoots = map[string]bool{
	"sad":       true,
	"angry":     true,
	"fearful":   true,
	"bad":       true,
	"disgusted": true,
}

// Pattern is a candidate association between a context tag and a root
// emotion. Lift is an approximation over the user's own history, not
// validated causality, and the message text hedges accordingly.
type Pattern struct {
	Type       string  `json:"type"`
	Trigger    string  `json:"trigger"`
	Emotion    string  `json:"emotion"`
	Lift       float64 `json:"lift"`
	Confidence float64 `json:"confidence"`
	Sentiment  string  `json:"sentiment"`
	Message    string  `json:"message"`
	Advice     string  `json:"advice"`
	LagHours   int     `json:"lag_hours,omitempty"` // predictive only
}

// rootTally keeps a joint count together with the root's id, so
// sentiment can be resolved without re-walking the taxonomy.
type rootTally struct {
	count  int
	rootID string
}

type tallyMap map[string]map[string]*rootTally // tag id -> root label -> tally

func (m tallyMap) bump(tagID, rootLabel, rootID string) {
	byRoot, ok := m[tagID]
	if !ok {
		byRoot = make(map[string]*rootTally)
		m[tagID] = byRoot
	}
	t, ok := byRoot[rootLabel]
	if !ok {
		t = &rootTally{rootID: rootID}
		byRoot[rootLabel] = t
	}
	t.count++
}

// MinePatterns surfaces tag-to-emotion associations by statistical lift,
// in two passes over the time-ascending history: tags on the same
// check-in (concurrent) and tags logged within the preceding twelve
// hours (predictive). A single check-in pairs with every earlier
// check-in inside the window, not just the nearest. Results are ranked
// predictive-first then by descending lift, deduplicated per
// (trigger, emotion) pair, and capped at ten.
func (e *Engine) MinePatterns(checkIns []model.CheckIn, tags []model.ContextTag) []Pattern {
	if len(checkIns) < minPatternSamples {
		return nil
	}

	tagLabels := make(map[string]string, len(tags))
	for _, t := range tags {
		tagLabels[t.ID] = t.Label
	}

	ordered := sortedByTime(checkIns)

	joint := make(tallyMap)
	tagCount := make(map[string]int)
	emotionCount := make(map[string]int)
	total := 0

	temporalJoint := make(tallyMap)
	temporalTagCount := make(map[string]int)

	// Concurrent pass: a check-in's own tags against its root emotion.
	for _, c := range ordered {
		root, ok := e.rootOf(c)
		if !ok {
			continue
		}
		total++
		emotionCount[root.Label]++
		for _, tagID := range c.Tags {
			tagCount[tagID]++
			joint.bump(tagID, root.Label, root.ID)
		}
	}
	if total == 0 {
		return nil
	}

	// Predictive pass: tags on earlier check-ins inside the lag window
	// against the current check-in's root emotion.
	for i, cur := range ordered {
		root, ok := e.rootOf(cur)
		if !ok {
			continue
		}
		for j := i - 1; j >= 0 && cur.Timestamp-ordered[j].Timestamp <= lagWindowMillis; j-- {
			for _, tagID := range ordered[j].Tags {
				temporalTagCount[tagID]++
				temporalJoint.bump(tagID, root.Label, root.ID)
			}
		}
	}

	var patterns []Pattern
	emit := func(ptype string, counts tallyMap, perTag map[string]int) {
		for _, tagID := range sortedKeys(counts) {
			for _, rootLabel := range sortedTallyKeys(counts[tagID]) {
				tally := counts[tagID][rootLabel]
				n := perTag[tagID]
				if n < minTagCount || tally.count < minJointCount {
					continue
				}
				support := float64(tally.count) / float64(n)
				base := float64(emotionCount[rootLabel]) / float64(total)
				if base == 0 {
					continue
				}
				lift := support / base
				if lift <= minLift {
					continue
				}
				trigger := tagLabels[tagID]
				if trigger == "" {
					trigger = archivedTagLabel
				}
				p := Pattern{
					Type:       ptype,
					Trigger:    trigger,
					Emotion:    rootLabel,
					Lift:       lift,
					Confidence: support,
					Sentiment:  sentimentOf(tally.rootID),
				}
				if ptype == PatternPredictive {
					p.LagHours = lagWindowHours
				}
				p.Message, p.Advice = phrase(p)
				patterns = append(patterns, p)
			}
		}
	}

	emit(PatternPredictive, temporalJoint, temporalTagCount)
	emit(PatternConcurrent, joint, tagCount)

	// Predictive before concurrent, higher lift first within each type.
	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Type != patterns[j].Type {
			return patterns[i].Type == PatternPredictive
		}
		return patterns[i].Lift > patterns[j].Lift
	})

	seen := make(map[string]bool)
	out := patterns[:0]
	for _, p := range patterns {
		key := p.Trigger + "\x00" + p.Emotion
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
		if len(out) == maxPatterns {
			break
		}
	}
	return out
}

func (e *Engine) rootOf(c model.CheckIn) (rootNode, bool) {
	sel, ok := c.Primary()
	if !ok {
		return rootNode{}, false
	}
	n, ok := e.tax.Root(sel.NodeID)
	if !ok {
		return rootNode{}, false
	}
	return rootNode{ID: n.ID, Label: n.Label}, true
}

type rootNode struct {
	ID    string
	Label string
}

func sentimentOf(rootID string) string {
	if negativeRoots[rootID] {
		return "negative"
	}
	return "positive"
}

// phrase renders the hedged, confidence-graded message and advice for a
// pattern. These are observations about correlation in the user's own
// log, so the wording stays tentative even at high confidence.
func phrase(p Pattern) (message, advice string) {
	strong := p.Confidence > highConfidence
	switch {
	case p.Type == PatternPredictive && strong:
		message = fmt.Sprintf("Within about %d hours of logging %s, you very often report feeling %s.", p.LagHours, p.Trigger, p.Emotion)
	case p.Type == PatternPredictive:
		message = fmt.Sprintf("%s tends to be followed by feeling %s within about %d hours.", p.Trigger, p.Emotion, p.LagHours)
	case strong:
		message = fmt.Sprintf("When %s shows up in your day, you almost always log feeling %s.", p.Trigger, p.Emotion)
	default:
		message = fmt.Sprintf("Days with %s often come with feeling %s.", p.Trigger, p.Emotion)
	}

	switch {
	case p.Type == PatternPredictive && p.Sentiment == "negative":
		advice = fmt.Sprintf("If the timing keeps holding, planning something restorative after %s could soften it. This is a pattern in your log, not a proven cause.", p.Trigger)
	case p.Type == PatternPredictive:
		advice = fmt.Sprintf("The lift from %s seems to carry for a while. It may be worth noticing when it works best.", p.Trigger)
	case p.Sentiment == "negative":
		advice = fmt.Sprintf("It could be worth looking at what about %s is weighing on you. Correlation in your own data is a hint, not a verdict.", p.Trigger)
	default:
		advice = fmt.Sprintf("Whatever %s is doing for you, it seems worth keeping around.", p.Trigger)
	}
	return message, advice
}

func sortedKeys(m tallyMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTallyKeys(m map[string]*rootTally) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
