package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

// statsCmd is the statewide stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show statewide aggregates",
	Long: `Show statewide totals and enrollment-weighted averages computed
across every district in the loaded dataset.`,
	Example: `  $ lsctl stats`,
	RunE:    runStats,
}

func init() {
	statsCmd.SilenceUsage = true
}

func runStats(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, server, err := newClient()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("client creation failed")
	}

	stats, err := apiClient.StateStats(ctx)
	if err != nil {
		ui.PrintError("failed to fetch statewide stats: %v", err)
		return fmt.Errorf("stats operation failed")
	}
	cachePrefix(apiClient, cfg, server)

	fmt.Println()
	fmt.Println(ui.RenderStateStats(stats))

	return nil
}
