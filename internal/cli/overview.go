package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Journal summary",
		Run:   runOverview,
	}

	RootCmd.AddCommand(cmd)
}

func runOverview(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	checkIns, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("overview", err)
	}

	result := newEngine().Overview(checkIns)

	if jsonOut() {
		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(b))
		return
	}

	if result.TotalCheckIns == 0 {
		fmt.Println(dimStyle.Render("no check-ins yet"))
		return
	}

	fmt.Println(titleStyle.Render("Journal overview"))
	fmt.Printf("check-ins: %d over %d days\n", result.TotalCheckIns, result.DaysActive)
	fmt.Printf("first: %s  last: %s\n",
		result.FirstCheckIn.Format(time.DateOnly), result.LastCheckIn.Format(time.DateOnly))
	for _, e := range result.TopEmotions {
		fmt.Printf("  %-12s %d\n", e.Label, e.Count)
	}
}
