package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pkordes/tripman/internal/cli"
	"github.com/pkordes/tripman/internal/repo"
	"github.com/pkordes/tripman/internal/service"
)

var menuVerbose bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive trip menu (default)",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	// Registered on root too, since the menu is also root's default action.
	for _, c := range []*cobra.Command{rootCmd, menuCmd} {
		c.Flags().BoolVarP(&menuVerbose, "verbose", "v", false, "log at the configured level instead of warn and above")
	}
}

// runMenu drives the menu on stdin/stdout. Logs go to stderr so they never
// interleave with prompts on stdout.
func runMenu(cmd *cobra.Command, _ []string) error {
	floor := slog.LevelWarn
	if menuVerbose {
		floor = slog.LevelDebug
	}
	_, logger, err := loadConfig(os.Stderr, floor)
	if err != nil {
		return err
	}

	// Prompts wait on ctx, so an interrupt ends the session even mid-prompt.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	trips := service.NewTripService(repo.NewTripRepo(logger), logger)
	return cli.NewMenu(trips, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run(ctx)
}
