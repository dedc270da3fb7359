// Package model defines the core journal data types.
package model

import "time"

// SelectedEmotion is one emotion picked on a check-in. Exactly one
// selection per check-in should have Primary set.
type SelectedEmotion struct {
	NodeID  string `json:"node_id"`
	Primary bool   `json:"primary"`
}

// CheckIn represents a single journaled emotional check-in.
type CheckIn struct {
	ID             string             `json:"id"`
	Timestamp      int64              `json:"ts"` // epoch ms, user-editable (backdating allowed)
	TimezoneOffset int                `json:"tz_offset,omitempty"`
	Emotions       []SelectedEmotion  `json:"emotions"`
	Note           string             `json:"note,omitempty"`
	Intensity      *int               `json:"intensity,omitempty"` // 1..3, nil when not reported
	ScaleValues    map[string]float64 `json:"scale_values,omitempty"`
	Tags           []string           `json:"tags,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	ModifiedAt     *time.Time         `json:"modified_at,omitempty"`
}

// Time converts the epoch-ms timestamp to a time.Time.
func (c CheckIn) Time() time.Time {
	return time.UnixMilli(c.Timestamp)
}

// Primary returns the primary emotion selection. Falls back to ok=false
// when no selection is marked primary.
func (c CheckIn) Primary() (SelectedEmotion, bool) {
	for _, e := range c.Emotions {
		if e.Primary {
			return e, true
		}
	}
	return SelectedEmotion{}, false
}

// ContextTag is a user-attachable context label. Tags are deletable;
// check-ins may carry ids of tags that no longer resolve.
type ContextTag struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	UserCreated bool   `json:"user_created,omitempty"`
}

// Scale is a user-configured numeric dimension reported on check-ins.
// Scale ids are opaque; any number of scales (including zero) may be active.
type Scale struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// ValidTagCategories are the allowed tag categories.
var ValidTagCategories = map[string]bool{
	"activity": true,
	"social":   true,
	"place":    true,
	"body":     true,
	"other":    true,
}

// ValidIntensities are the allowed intensity levels.
var ValidIntensities = map[int]bool{
	1: true,
	2: true,
	3: true,
}
