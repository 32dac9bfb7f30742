package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"systemz/internal/export"
	"systemz/pkg/logic"
)

var worldsCSV bool

var worldsCmd = &cobra.Command{
	Use:   "worlds <file>",
	Short: "Build the world space for a KB and report its size",
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
		if worldsCSV {
			return export.Worlds(os.Stdout, ws)
		}
		fmt.Printf("%d interpretable(s), %d world(s)\n", len(ws.Interpretables), len(ws.Worlds))
		return nil
	},
}

func init() {
	worldsCmd.Flags().BoolVar(&worldsCSV, "csv", false, "print the full canonical world table as CSV")
	rootCmd.AddCommand(worldsCmd)
}
