package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nazma5979/moodlog/internal/model"
	"github.com/nazma5979/moodlog/internal/taxonomy"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a check-in in place",
		Long:  "Edit a check-in. Only the given flags change; the record keeps its id and gets a modified_at stamp.",
		Args:  cobra.ExactArgs(1),
		Run:   runEdit,
	}

	cmd.Flags().StringP("emotions", "e", "", "Replace emotions (comma-separated ids, first is primary)")
	cmd.Flags().IntP("intensity", "i", -1, "Replace intensity 1-3 (0 clears it)")
	cmd.Flags().StringP("note", "m", "", "Replace note")
	cmd.Flags().StringArrayP("tag", "t", nil, "Replace tags (repeatable)")
	cmd.Flags().StringArrayP("scale", "s", nil, "Replace scale values as id=value (repeatable)")
	cmd.Flags().String("at", "", "Replace timestamp, RFC3339")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	c, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("edit", err)
	}

	if cmd.Flags().Changed("emotions") {
		emotionsStr, _ := cmd.Flags().GetString("emotions")
		tax := taxonomy.Default()
		c.Emotions = nil
		for _, id := range strings.Split(emotionsStr, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := tax.Node(id); !ok {
				exitErr("edit", fmt.Errorf("unknown emotion id %q", id))
			}
			c.Emotions = append(c.Emotions, model.SelectedEmotion{NodeID: id})
		}
		if len(c.Emotions) == 0 {
			exitErr("edit", fmt.Errorf("at least one emotion is required"))
		}
		c.Emotions[0].Primary = true
	}
	if cmd.Flags().Changed("intensity") {
		intensity, _ := cmd.Flags().GetInt("intensity")
		switch {
		case intensity == 0:
			c.Intensity = nil
		case model.ValidIntensities[intensity]:
			c.Intensity = &intensity
		default:
			exitErr("edit", fmt.Errorf("intensity must be 1-3 (or 0 to clear), got %d", intensity))
		}
	}
	if cmd.Flags().Changed("note") {
		c.Note, _ = cmd.Flags().GetString("note")
	}
	if cmd.Flags().Changed("tag") {
		c.Tags, _ = cmd.Flags().GetStringArray("tag")
	}
	if cmd.Flags().Changed("scale") {
		scalePairs, _ := cmd.Flags().GetStringArray("scale")
		c.ScaleValues = make(map[string]float64, len(scalePairs))
		for _, pair := range scalePairs {
			id, raw, ok := strings.Cut(pair, "=")
			if !ok {
				exitErr("edit", fmt.Errorf("scale must be id=value, got %q", pair))
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				exitErr("edit", fmt.Errorf("scale %q: %v", id, err))
			}
			c.ScaleValues[id] = v
		}
	}
	if cmd.Flags().Changed("at") {
		at, _ := cmd.Flags().GetString("at")
		ts, err := time.Parse(time.RFC3339, at)
		if err != nil {
			exitErr("edit", fmt.Errorf("invalid --at: %v", err))
		}
		c.Timestamp = ts.UnixMilli()
		_, offset := ts.Zone()
		c.TimezoneOffset = -offset / 60
	}

	saved, err := s.Save(cmd.Context(), c)
	if err != nil {
		exitErr("edit", err)
	}

	b, _ := json.Marshal(saved)
	fmt.Println(string(b))
}
