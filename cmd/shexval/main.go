// Package main provides the shexval binary entry point.
// Shexval parses ShEx-style schemas and validates candidate data
// records against their shapes.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/david4096/sparql-agent-sub003/config"
)

const (
	Version = "0.1.0"
	appName = "shexval"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Validate data records against ShEx-style shape schemas",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(inspectCmd())
	cmd.AddCommand(watchCmd())
	return cmd
}

// loadConfig layers the project config file under the given flag
// overrides.
func loadConfig(overrides *config.Config) (*config.Config, error) {
	cfg, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return nil, err
	}
	cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
