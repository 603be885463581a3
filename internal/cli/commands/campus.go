package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

// campusCmd is the campus detail command
var campusCmd = &cobra.Command{
	Use:   "campus <id>",
	Short: "show one campus",
	Long: `Show one campus's accountability and staffing profile. The id is a
TEA campus number and is accepted in any of its common spellings.`,
	Example: `  # Alamo Heights High School
  $ lsctl campus 015901001`,
	Args: cobra.ExactArgs(1),
	RunE: runCampus,
}

func init() {
	campusCmd.SilenceUsage = true
}

func runCampus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, server, err := newClient()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("client creation failed")
	}

	campus, err := apiClient.GetCampus(ctx, args[0])
	if err != nil {
		ui.PrintError("failed to fetch campus: %v", err)
		return fmt.Errorf("get operation failed")
	}
	cachePrefix(apiClient, cfg, server)

	fmt.Println()
	fmt.Println(ui.RenderCampusDetail(campus))

	return nil
}
