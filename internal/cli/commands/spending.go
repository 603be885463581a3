package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/client"
	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

var (
	spendingCategory string
	spendingFrom     string
	spendingTo       string
	spendingSort     string
	spendingDir      string
	spendingPage     int
	spendingPageSize int
	spendingExport   string
)

// spendingCmd is the district spending command
var spendingCmd = &cobra.Command{
	Use:   "spending <district-id>",
	Short: "list a district's spending",
	Long: `List a district's spending line items with category and date range
filters. The date range is inclusive on both ends; records without a
parseable date are excluded whenever a range is given.

With --export, the filtered result set is written to a CSV file instead of
being printed (pagination does not apply to exports).`,
	Example: `  # Recent spending, newest first
  $ lsctl spending 015901 --sort date --dir desc

  # Instruction spending in a date range
  $ lsctl spending 015901 --category Instruction --from 2024-01-01 --to 2024-06-30

  # Export everything matching the filters
  $ lsctl spending 015901 --category Maintenance --export maintenance.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runSpending,
}

func init() {
	spendingCmd.Flags().StringVar(&spendingCategory, "category", "", "Filter by spending category")
	spendingCmd.Flags().StringVar(&spendingFrom, "from", "", "Start date (inclusive, e.g. 2024-01-01)")
	spendingCmd.Flags().StringVar(&spendingTo, "to", "", "End date (inclusive)")
	spendingCmd.Flags().StringVar(&spendingSort, "sort", "", "Sort key (amount, vendor, category, date)")
	spendingCmd.Flags().StringVar(&spendingDir, "dir", "", "Sort direction (asc, desc)")
	spendingCmd.Flags().IntVar(&spendingPage, "page", 1, "Page number")
	spendingCmd.Flags().IntVar(&spendingPageSize, "page-size", 50, "Results per page")
	spendingCmd.Flags().StringVar(&spendingExport, "export", "", "Write results to a CSV file instead of printing")

	spendingCmd.SilenceUsage = true
}

func runSpending(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, server, err := newClient()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("client creation failed")
	}

	opts := client.SpendingOptions{
		ListOptions: client.ListOptions{
			Category: spendingCategory,
			Sort:     spendingSort,
			Dir:      spendingDir,
			Page:     spendingPage,
			PageSize: spendingPageSize,
		},
		From: spendingFrom,
		To:   spendingTo,
	}

	if spendingExport != "" {
		body, err := apiClient.ExportSpending(ctx, args[0], opts)
		if err != nil {
			ui.PrintError("failed to export spending: %v", err)
			return fmt.Errorf("export operation failed")
		}
		cachePrefix(apiClient, cfg, server)

		if err := os.WriteFile(spendingExport, body, 0644); err != nil {
			ui.PrintError("failed to write %s: %v", spendingExport, err)
			return fmt.Errorf("export operation failed")
		}
		ui.PrintSuccess("wrote %s", spendingExport)
		return nil
	}

	list, err := apiClient.DistrictSpending(ctx, args[0], opts)
	if err != nil {
		ui.PrintError("failed to list spending: %v", err)
		return fmt.Errorf("list operation failed")
	}
	cachePrefix(apiClient, cfg, server)

	fmt.Println()
	fmt.Println(ui.RenderSpendingTable(list.Items))
	fmt.Println(ui.RenderListSummary(len(list.Items), list.Total, list.Page))

	return nil
}
