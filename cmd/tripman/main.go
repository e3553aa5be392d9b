// Package main is the entry point for the tripman binary.
// Its sole responsibility is wiring dependencies together and starting either
// the interactive menu or the HTTP server. No business logic belongs here.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/tripman/internal/config"
)

// configFile is set by the persistent --config flag.
var configFile string

var rootCmd = &cobra.Command{
	Use:   "tripman",
	Short: "tripman manages trip records in memory",
	Long: `tripman keeps a list of trips (destination, date, price) in memory.
Run it without a subcommand for the interactive menu, or use "serve" to expose
the same operations as a JSON API. Nothing is persisted between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error once
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (env vars override it)")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and builds the JSON logger writing to w.
// floor raises the minimum level above the configured one (the menu uses it
// to keep stderr quiet while an operator is typing).
func loadConfig(w io.Writer, floor slog.Level) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	// Load already validated the level.
	level, _ := cfg.SlogLevel()
	if level < floor {
		level = floor
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
