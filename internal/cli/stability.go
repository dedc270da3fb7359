package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stability",
		Short: "Emotional stability score",
		Run:   runStability,
	}

	RootCmd.AddCommand(cmd)
}

func runStability(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	checkIns, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("stability", err)
	}

	result := newEngine().Stability(checkIns)

	if jsonOut() {
		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("%s %s  %s\n",
		scoreStyle.Render(fmt.Sprintf("%.0f/100", result.Score)),
		titleStyle.Render(result.Label),
		dimStyle.Render(fmt.Sprintf("volatility %.3f", result.Volatility)))
}
