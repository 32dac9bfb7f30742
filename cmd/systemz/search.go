package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"systemz/internal/parallel"
	"systemz/pkg/logic"
)

var searchStrategy string

var searchCmd = &cobra.Command{
	Use:   "search <file>",
	Short: "Search for tolerance pairs over a KB",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := loadKBFile(args[0])
		if err != nil {
			return err
		}
		ws, err := logic.BuildWorlds(kb, limits.MaxInterpretables)
		if err != nil {
			return err
		}

		name := searchStrategy
		if !cmd.Flags().Changed("strategy") {
			name = limits.Strategy()
		}
		strategy, err := parseStrategy(name)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		progress := func(p float64) bool {
			fmt.Fprintf(os.Stderr, "\rsearching... %5.1f%%", p*100)
			return ctx.Err() == nil
		}

		result, err := parallel.Offload(ctx, func(ctx context.Context) (*logic.SearchResult, error) {
			return logic.SearchTolerancePairs(ctx, kb, ws, strategy, progress)
		})
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}

		if len(result.Pairs) == 0 {
			fmt.Println("inconsistent knowledge base: no valid tolerance pair")
			return nil
		}
		for i, fp := range result.Pairs {
			fmt.Printf("[%d] %d subset(s):", i, len(fp.Pair.Subsets))
			for si, s := range fp.Pair.Subsets {
				fmt.Printf(" R%d={%v} D%d={%v}", si, s.RIdx, si, s.DIdx)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchStrategy, "strategy", "search-min", "search strategy: brute, search-all, search-min (when omitted, the config's default_strategy)")
	rootCmd.AddCommand(searchCmd)
}

func parseStrategy(s string) (logic.Strategy, error) {
	switch s {
	case "brute":
		return logic.Brute, nil
	case "search-all":
		return logic.SearchAll, nil
	case "search-min":
		return logic.SearchMin, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want brute, search-all, or search-min)", s)
	}
}
