package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/client"
	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

var (
	districtsSearch   string
	districtsCounty   string
	districtsSort     string
	districtsDir      string
	districtsPage     int
	districtsPageSize int
)

// districtsCmd is the districts list command
var districtsCmd = &cobra.Command{
	Use:   "districts",
	Short: "list school districts",
	Long: `List Texas school districts with search, filtering, sorting, and
pagination. Searching by a district number matches exact districts first,
then falls back to substring matching on names and counties.`,
	Example: `  # First page of districts, sorted by name
  $ lsctl districts

  # Districts in Travis county, biggest first
  $ lsctl districts --county Travis --sort enrollment --dir desc

  # Search by name or district number
  $ lsctl districts --search "alamo heights"
  $ lsctl districts --search 015901

  # Page through results
  $ lsctl districts --page 3 --page-size 25`,
	RunE: runDistricts,
}

func init() {
	districtsCmd.Flags().StringVar(&districtsSearch, "search", "", "Search by name, county, or district number")
	districtsCmd.Flags().StringVar(&districtsCounty, "county", "", "Filter by county name")
	districtsCmd.Flags().StringVar(&districtsSort, "sort", "", "Sort key (name, county, enrollment, spending, debt, teacher_salary)")
	districtsCmd.Flags().StringVar(&districtsDir, "dir", "", "Sort direction (asc, desc)")
	districtsCmd.Flags().IntVar(&districtsPage, "page", 1, "Page number")
	districtsCmd.Flags().IntVar(&districtsPageSize, "page-size", 50, "Results per page")

	// Silence usage to avoid showing help on every error
	districtsCmd.SilenceUsage = true
}

func runDistricts(cmd *cobra.Command, args []string) error {
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

	list, err := apiClient.ListDistricts(ctx, client.ListOptions{
		Search:   districtsSearch,
		Category: districtsCounty,
		Sort:     districtsSort,
		Dir:      districtsDir,
		Page:     districtsPage,
		PageSize: districtsPageSize,
	})
	if err != nil {
		ui.PrintError("failed to list districts: %v", err)
		return fmt.Errorf("list operation failed")
	}
	cachePrefix(apiClient, cfg, server)

	fmt.Println()
	fmt.Println(ui.RenderDistrictTable(list.Items))
	fmt.Println(ui.RenderListSummary(len(list.Items), list.Total, list.Page))

	return nil
}
