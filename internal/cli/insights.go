package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nazma5979/moodlog/internal/analytics"
)

func init() {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Mined tag-to-emotion patterns",
		Long:  "Surface context tags that co-occur with, or precede, particular emotions more often than chance. These are lifts in your own log, not proven causes.",
		Run:   runInsights,
	}

	RootCmd.AddCommand(cmd)
}

func runInsights(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	checkIns, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("insights", err)
	}

	patterns := newEngine().MinePatterns(checkIns, cfg.Tags)

	if jsonOut() {
		if patterns == nil {
			patterns = []analytics.Pattern{}
		}
		b, _ := json.MarshalIndent(patterns, "", "  ")
		fmt.Println(string(b))
		return
	}

	if len(patterns) == 0 {
		fmt.Println(dimStyle.Render("not enough data for patterns yet, keep logging"))
		return
	}

	fmt.Println(titleStyle.Render("Patterns"))
	for _, p := range patterns {
		head := fmt.Sprintf("%s -> %s", p.Trigger, p.Emotion)
		meta := fmt.Sprintf("(%s, lift %.2f)", p.Type, p.Lift)
		fmt.Printf("%s %s\n", sentimentStyle(p.Sentiment).Render(head), dimStyle.Render(meta))
		fmt.Printf("  %s\n", p.Message)
		fmt.Printf("  %s\n", dimStyle.Render(p.Advice))
	}
}
