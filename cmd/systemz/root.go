// Command systemz is a CLI facade over pkg/logic's System-Z reasoning
// core: it parses a KB file, builds its world space, searches for
// tolerance pairs, builds a ranking function, and answers acceptance
// queries against it (spec.md §6).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"systemz/internal/config"
	"systemz/pkg/logic"
)

var (
	logLevel   string
	configPath string

	logger hclog.Logger
	limits *config.Limits
)

var rootCmd = &cobra.Command{
	Use:   "systemz",
	Short: "System-Z non-monotonic inference over a restricted first-order default knowledge base",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "systemz",
			Level: hclog.LevelFromString(logLevel),
		})

		l, err := config.Load(configPath)
		if err != nil {
			return err
		}
		limits = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "systemz.yaml", "path to a YAML limits file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a returned error to the process exit code documented in
// spec.md §6 / SPEC_FULL.md §6: 0 success, 1 InputError, 2 CapacityError,
// 3 InconsistentKBError, 4 CancelledError. Any other error (cobra usage
// errors, config-load errors, and so on) falls back to 1.
func exitCodeFor(err error) int {
	var inputErr *logic.InputError
	var capacityErr *logic.CapacityError
	var inconsistentErr *logic.InconsistentKBError
	var cancelledErr *logic.CancelledError
	switch {
	case errors.As(err, &capacityErr):
		return 2
	case errors.As(err, &inconsistentErr):
		return 3
	case errors.As(err, &cancelledErr):
		return 4
	case errors.As(err, &inputErr):
		return 1
	default:
		return 1
	}
}
