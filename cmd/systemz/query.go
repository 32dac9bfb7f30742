package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"systemz/internal/explain"
	"systemz/internal/kbparse"
)

var (
	queryPair    int
	queryExplain bool
)

var queryCmd = &cobra.Command{
	Use:   "query <file> <query>",
	Short: "Evaluate a formula or conditional query against a discovered ranking",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, src := args[0], args[1]
		fp, err := findPair(file, queryPair)
		if err != nil {
			return err
		}
		q, err := kbparse.NewQueryParser(fp.Ranking.KB).Parse(src)
		if err != nil {
			return err
		}

		var col *explain.Collector
		if queryExplain {
			col = explain.New()
		}

		var accepted bool
		switch {
		case q.Conditional != nil:
			accepted = fp.Ranking.AcceptsConditional(*q.Conditional, col)
		default:
			accepted = fp.Ranking.AcceptsFormula(q.Formula, col)
		}

		fmt.Printf("accepted: %v\n", accepted)
		if queryExplain {
			printTree(col.Tree(), 0)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().IntVar(&queryPair, "pair", 0, "index into the discovered tolerance-pair list")
	queryCmd.Flags().BoolVar(&queryExplain, "explain", false, "print the evaluation tree")
	rootCmd.AddCommand(queryCmd)
}

func printTree(n *explain.Node, depth int) {
	if n == nil {
		return
	}
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	fmt.Printf("- %s: %s\n", n.Rule, n.Detail)
	for _, c := range n.Children {
		printTree(c, depth+1)
	}
}
