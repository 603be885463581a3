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
	campusesSearch   string
	campusesGrade    string
	campusesSort     string
	campusesDir      string
	campusesPage     int
	campusesPageSize int
)

// campusesCmd is the campuses list command
var campusesCmd = &cobra.Command{
	Use:   "campuses",
	Short: "list campuses",
	Long: `List campuses statewide with search, filtering, sorting, and
pagination.`,
	Example: `  # Highest scoring campuses
  $ lsctl campuses --sort score --dir desc

  # A-rated campuses only
  $ lsctl campuses --grade A

  # Search by name or campus number
  $ lsctl campuses --search "travis heights"`,
	RunE: runCampuses,
}

func init() {
	campusesCmd.Flags().StringVar(&campusesSearch, "search", "", "Search by name or campus number")
	campusesCmd.Flags().StringVar(&campusesGrade, "grade", "", "Filter by accountability grade (A-F)")
	campusesCmd.Flags().StringVar(&campusesSort, "sort", "", "Sort key (name, score, grade, teacher_count)")
	campusesCmd.Flags().StringVar(&campusesDir, "dir", "", "Sort direction (asc, desc)")
	campusesCmd.Flags().IntVar(&campusesPage, "page", 1, "Page number")
	campusesCmd.Flags().IntVar(&campusesPageSize, "page-size", 50, "Results per page")

	campusesCmd.SilenceUsage = true
}

func runCampuses(cmd *cobra.Command, args []string) error {
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

	list, err := apiClient.ListCampuses(ctx, client.ListOptions{
		Search:   campusesSearch,
		Category: campusesGrade,
		Sort:     campusesSort,
		Dir:      campusesDir,
		Page:     campusesPage,
		PageSize: campusesPageSize,
	})
	if err != nil {
		ui.PrintError("failed to list campuses: %v", err)
		return fmt.Errorf("list operation failed")
	}
	cachePrefix(apiClient, cfg, server)

	fmt.Println()
	fmt.Println(ui.RenderCampusTable(list.Items))
	fmt.Println(ui.RenderListSummary(len(list.Items), list.Total, list.Page))

	return nil
}
