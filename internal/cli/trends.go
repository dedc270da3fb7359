package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Daily intensity and scale trends",
		Run:   runTrends,
	}

	RootCmd.AddCommand(cmd)
}

func runTrends(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	checkIns, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("trends", err)
	}

	series := newEngine().TrendSeries(checkIns)

	if jsonOut() {
		b, _ := json.MarshalIndent(series, "", "  ")
		fmt.Println(string(b))
		return
	}

	if len(series) == 0 {
		fmt.Println(dimStyle.Render("no check-ins yet"))
		return
	}

	fmt.Println(titleStyle.Render("Daily trends"))
	for _, p := range series {
		line := fmt.Sprintf("%s  intensity %.2f  [%.1f-%.1f]",
			p.Date, p.MeanIntensity, p.IntensityMin, p.IntensityMax)

		ids := make([]string, 0, len(p.ScaleMeans))
		for id := range p.ScaleMeans {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			label := id
			if sc, ok := cfg.ScaleByID(id); ok {
				label = sc.Label
			}
			line += fmt.Sprintf("  %s %.1f", label, p.ScaleMeans[id])
		}
		fmt.Println(line)
	}
}
