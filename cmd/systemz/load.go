package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"systemz/internal/kbparse"
	"systemz/pkg/logic"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Parse a KB file and report any input errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := loadKBFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("ok: %d conditional(s), %d fact(s), %d domain constant(s)\n",
			len(kb.Conditionals), len(kb.Facts), len(kb.Domain))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func loadKBFile(path string) (*logic.KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	kb, err := kbparse.ParseKB(string(data))
	if err != nil {
		logger.Error("failed to parse knowledge base", "file", path, "error", err)
		return nil, err
	}
	return kb, nil
}
