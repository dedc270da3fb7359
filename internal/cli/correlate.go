package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "correlate <scale-a> <scale-b>",
		Short: "Correlate two scales",
		Args:  cobra.ExactArgs(2),
		Run:   runCorrelate,
	}

	RootCmd.AddCommand(cmd)
}

func runCorrelate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	a, ok := cfg.ScaleByID(args[0])
	if !ok {
		exitErr("correlate", fmt.Errorf("unknown scale id %q", args[0]))
	}
	b, ok := cfg.ScaleByID(args[1])
	if !ok {
		exitErr("correlate", fmt.Errorf("unknown scale id %q", args[1]))
	}

	s := openStore(cfg)
	defer s.Close()

	checkIns, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("correlate", err)
	}

	result := newEngine().Correlate(checkIns, a, b)

	if jsonOut() {
		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
		return
	}

	fmt.Printf("%s %s\n", titleStyle.Render(fmt.Sprintf("%s vs %s:", a.Label, b.Label)),
		fmt.Sprintf("r=%.3f", result.R))
	fmt.Println(result.Message)
}
