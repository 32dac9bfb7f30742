package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"systemz/internal/export"
	"systemz/pkg/logic"
)

var (
	rankPair int
	rankCSV  bool
)

var rankCmd = &cobra.Command{
	Use:   "rank <file>",
	Short: "Build the ranking function from a discovered tolerance pair",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fp, err := findPair(args[0], rankPair)
		if err != nil {
			return err
		}
		if rankCSV {
			return export.Ranking(os.Stdout, fp.Ranking)
		}
		for wi := range fp.Ranking.WS.Worlds {
			fmt.Printf("world %d: rank %s\n", wi, rankString(fp.Ranking.RankWorld(wi)))
		}
		return nil
	},
}

func init() {
	rankCmd.Flags().IntVar(&rankPair, "pair", 0, "index into the discovered tolerance-pair list")
	rankCmd.Flags().BoolVar(&rankCSV, "csv", false, "export the ranking as CSV")
	rootCmd.AddCommand(rankCmd)
}

// findPair loads file, searches with the configured default strategy, and
// returns the pair at index idx shared by rank and query.
func findPair(file string, idx int) (logic.FoundPair, error) {
	kb, err := loadKBFile(file)
	if err != nil {
		return logic.FoundPair{}, err
	}
	ws, err := logic.BuildWorlds(kb, limits.MaxInterpretables)
	if err != nil {
		return logic.FoundPair{}, err
	}
	strategy, err := parseStrategy(limits.Strategy())
	if err != nil {
		return logic.FoundPair{}, err
	}
	result, err := logic.SearchTolerancePairs(context.Background(), kb, ws, strategy, nil)
	if err != nil {
		return logic.FoundPair{}, err
	}
	if len(result.Pairs) == 0 {
		return logic.FoundPair{}, &logic.InconsistentKBError{}
	}
	if idx < 0 || idx >= len(result.Pairs) {
		return logic.FoundPair{}, fmt.Errorf("pair index %d out of range [0,%d)", idx, len(result.Pairs))
	}
	return result.Pairs[idx], nil
}

func rankString(k int) string {
	if k >= logic.Infinity {
		return "inf"
	}
	return fmt.Sprintf("%d", k)
}
