package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "granularity",
		Short: "Emotional granularity score",
		Long:  "Score how specific your emotion selections are: leaves in the hierarchy count more than broad roots.",
		Run:   runGranularity,
	}

	RootCmd.AddCommand(cmd)
}

func runGranularity(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	checkIns, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("granularity", err)
	}

	result := newEngine().Granularity(checkIns)

	if jsonOut() {
		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("%s %s\n%s\n",
		scoreStyle.Render(fmt.Sprintf("%.0f/100", result.Score)),
		titleStyle.Render(result.Level),
		result.Message)
}
