package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

// countiesCmd lists the distinct county names
var countiesCmd = &cobra.Command{
	Use:   "counties",
	Short: "list county names",
	Long: `List the distinct county names present in the district dataset,
alphabetically. Useful as input to 'lsctl districts --county'.`,
	Example: `  $ lsctl counties`,
	RunE:    runCounties,
}

func init() {
	countiesCmd.SilenceUsage = true
}

func runCounties(cmd *cobra.Command, args []string) error {
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

	counties, err := apiClient.Counties(ctx)
	if err != nil {
		ui.PrintError("failed to list counties: %v", err)
		return fmt.Errorf("list operation failed")
	}
	cachePrefix(apiClient, cfg, server)

	fmt.Println()
	for _, county := range counties.Counties {
		fmt.Println("  " + county)
	}
	fmt.Println(ui.RenderListSummary(len(counties.Counties), len(counties.Counties), 1))

	return nil
}
