package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

var districtNoCampuses bool

// districtCmd is the district detail command
var districtCmd = &cobra.Command{
	Use:   "district <id>",
	Short: "show one district with its campus roster",
	Long: `Show one district's finance profile and its campuses ranked by
accountability score. The id is a TEA district number and is accepted in
any of its common spellings (015901, '015901, 15901).`,
	Example: `  # Alamo Heights ISD
  $ lsctl district 015901

  # Profile only, skip the campus roster
  $ lsctl district 015901 --no-campuses`,
	Args: cobra.ExactArgs(1),
	RunE: runDistrict,
}

func init() {
	districtCmd.Flags().BoolVar(&districtNoCampuses, "no-campuses", false, "Skip the campus roster")

	districtCmd.SilenceUsage = true
}

func runDistrict(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, server, err := newClient()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("client creation failed")
	}

	district, err := apiClient.GetDistrict(ctx, args[0])
	if err != nil {
		ui.PrintError("failed to fetch district: %v", err)
		return fmt.Errorf("get operation failed")
	}
	cachePrefix(apiClient, cfg, server)

	fmt.Println()
	fmt.Println(ui.RenderDistrictDetail(district))

	if districtNoCampuses {
		return nil
	}

	roster, err := apiClient.DistrictCampuses(ctx, args[0])
	if err != nil {
		ui.PrintError("failed to fetch campuses: %v", err)
		return fmt.Errorf("get operation failed")
	}

	fmt.Println(ui.Styles.Header.Render("Campuses"))
	fmt.Println(ui.RenderCampusTable(roster.Items))

	return nil
}
