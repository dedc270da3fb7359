package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nazma5979/moodlog/internal/model"
	"github.com/nazma5979/moodlog/internal/taxonomy"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent check-ins",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 20, "Maximum entries to show (0 = all)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	checkIns, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("list", err)
	}

	// Newest first for display.
	for i, j := 0, len(checkIns)-1; i < j; i, j = i+1, j-1 {
		checkIns[i], checkIns[j] = checkIns[j], checkIns[i]
	}
	if limit > 0 && len(checkIns) > limit {
		checkIns = checkIns[:limit]
	}

	if jsonOut() {
		b, _ := json.MarshalIndent(checkIns, "", "  ")
		fmt.Println(string(b))
		return
	}

	tax := taxonomy.Default()
	for _, c := range checkIns {
		fmt.Println(formatCheckIn(c, tax))
	}
}

func formatCheckIn(c model.CheckIn, tax *taxonomy.Taxonomy) string {
	var labels []string
	for _, e := range c.Emotions {
		label := e.NodeID
		if n, ok := tax.Node(e.NodeID); ok {
			label = n.Label
		}
		if e.Primary {
			label = label + "*"
		}
		labels = append(labels, label)
	}

	line := fmt.Sprintf("%s  %s  %s",
		c.ID, c.Time().Format(time.RFC3339), strings.Join(labels, ", "))
	if c.Intensity != nil {
		line += fmt.Sprintf("  intensity=%d", *c.Intensity)
	}
	if len(c.Tags) > 0 {
		line += "  [" + strings.Join(c.Tags, " ") + "]"
	}
	return line
}
