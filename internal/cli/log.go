package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nazma5979/moodlog/internal/model"
	"github.com/nazma5979/moodlog/internal/taxonomy"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a check-in",
		Long:  "Record an emotional check-in. The first emotion listed is primary unless --primary is given.",
		Run:   runLog,
	}

	cmd.Flags().StringP("emotions", "e", "", "Comma-separated emotion ids (required)")
	cmd.Flags().String("primary", "", "Emotion id to mark primary (default: first listed)")
	cmd.Flags().IntP("intensity", "i", 0, "Intensity 1-3 (0 = unreported)")
	cmd.Flags().StringP("note", "m", "", "Free-text note")
	cmd.Flags().StringArrayP("tag", "t", nil, "Context tag id (repeatable)")
	cmd.Flags().StringArrayP("scale", "s", nil, "Scale value as id=value (repeatable)")
	cmd.Flags().String("at", "", "Timestamp, RFC3339 (default: now; backdating allowed)")

	cmd.MarkFlagRequired("emotions")

	RootCmd.AddCommand(cmd)
}

func runLog(cmd *cobra.Command, args []string) {
	emotionsStr, _ := cmd.Flags().GetString("emotions")
	primary, _ := cmd.Flags().GetString("primary")
	intensity, _ := cmd.Flags().GetInt("intensity")
	note, _ := cmd.Flags().GetString("note")
	tags, _ := cmd.Flags().GetStringArray("tag")
	scalePairs, _ := cmd.Flags().GetStringArray("scale")
	at, _ := cmd.Flags().GetString("at")

	cfg := loadConfig()
	tax := taxonomy.Default()

	c := model.CheckIn{Note: note, Tags: tags}

	for _, id := range strings.Split(emotionsStr, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := tax.Node(id); !ok {
			exitErr("log", fmt.Errorf("unknown emotion id %q", id))
		}
		c.Emotions = append(c.Emotions, model.SelectedEmotion{NodeID: id})
	}
	if len(c.Emotions) == 0 {
		exitErr("log", fmt.Errorf("at least one emotion is required"))
	}
	markPrimary(&c, primary)

	if intensity != 0 {
		if !model.ValidIntensities[intensity] {
			exitErr("log", fmt.Errorf("intensity must be 1-3, got %d", intensity))
		}
		c.Intensity = &intensity
	}

	if len(scalePairs) > 0 {
		c.ScaleValues = make(map[string]float64, len(scalePairs))
		for _, pair := range scalePairs {
			id, raw, ok := strings.Cut(pair, "=")
			if !ok {
				exitErr("log", fmt.Errorf("scale must be id=value, got %q", pair))
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				exitErr("log", fmt.Errorf("scale %q: %v", id, err))
			}
			if _, known := cfg.ScaleByID(id); !known {
				exitErr("log", fmt.Errorf("unknown scale id %q", id))
			}
			c.ScaleValues[id] = v
		}
	}

	// Unknown tags are stored anyway: tag definitions are deletable and
	// check-ins must tolerate orphaned ids.
	for _, t := range tags {
		if _, known := cfg.TagByID(t); !known {
			logger.Debug("tag has no definition", zap.String("tag", t))
		}
	}

	if at != "" {
		ts, err := time.Parse(time.RFC3339, at)
		if err != nil {
			exitErr("log", fmt.Errorf("invalid --at: %v", err))
		}
		c.Timestamp = ts.UnixMilli()
		_, offset := ts.Zone()
		c.TimezoneOffset = -offset / 60
	} else {
		now := time.Now()
		c.Timestamp = now.UnixMilli()
		_, offset := now.Zone()
		c.TimezoneOffset = -offset / 60
	}

	s := openStore(cfg)
	defer s.Close()

	saved, err := s.Save(cmd.Context(), c)
	if err != nil {
		exitErr("log", err)
	}

	if jsonOut() {
		b, _ := json.Marshal(saved)
		fmt.Println(string(b))
		return
	}
	fmt.Printf("logged %s (%s)\n", saved.ID, saved.Time().Format(time.RFC3339))
}

// markPrimary flags the requested emotion as primary, defaulting to the
// first selection.
func markPrimary(c *model.CheckIn, primaryID string) {
	if primaryID != "" {
		for i := range c.Emotions {
			if c.Emotions[i].NodeID == primaryID {
				c.Emotions[i].Primary = true
				return
			}
		}
		exitErr("log", fmt.Errorf("--primary %q is not among the selected emotions", primaryID))
	}
	c.Emotions[0].Primary = true
}
