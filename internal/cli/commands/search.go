package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/client"
	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

// searchCmd is the interactive district search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "interactively search for a district",
	Long: `Search for a district by name, county, or district number, pick one
from the matches, and show its profile with the campus roster.

If query is not provided, you will be prompted for one.`,
	Example: `  # Prompt for a query
  $ lsctl search

  # Search straight away
  $ lsctl search "alamo"
  $ lsctl search 015901`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.SilenceUsage = true
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	if query == "" {
		prompt := &survey.Input{
			Message: "Search districts:",
		}
		if err := survey.AskOne(prompt, &query, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read query: %v", err)
			return fmt.Errorf("input failed")
		}
	}

	apiClient, cfg, server, err := newClient()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("client creation failed")
	}

	list, err := apiClient.ListDistricts(ctx, client.ListOptions{
		Search:   query,
		PageSize: 20,
	})
	if err != nil {
		ui.PrintError("search failed: %v", err)
		return fmt.Errorf("search operation failed")
	}
	cachePrefix(apiClient, cfg, server)

	if len(list.Items) == 0 {
		ui.PrintWarning("no districts match %q", query)
		return nil
	}

	// Exact number matches come back first, so a single hit needs no menu.
	selected := list.Items[0]
	if len(list.Items) > 1 {
		options := make([]string, 0, len(list.Items))
		for _, d := range list.Items {
			label := fmt.Sprintf("%s  %s", d.CanonID, d.Name)
			if d.County != "" {
				label += fmt.Sprintf(" (%s)", d.County)
			}
			options = append(options, label)
		}

		var choice string
		prompt := &survey.Select{
			Message:  fmt.Sprintf("%d districts match:", list.Total),
			Options:  options,
			PageSize: 10,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			ui.PrintError("selection cancelled: %v", err)
			return fmt.Errorf("input failed")
		}
		for i, option := range options {
			if option == choice {
				selected = list.Items[i]
				break
			}
		}
	}

	district, err := apiClient.GetDistrict(ctx, selected.CanonID)
	if err != nil {
		ui.PrintError("failed to fetch district: %v", err)
		return fmt.Errorf("get operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderDistrictDetail(district))

	roster, err := apiClient.DistrictCampuses(ctx, selected.CanonID)
	if err != nil {
		ui.PrintError("failed to fetch campuses: %v", err)
		return fmt.Errorf("get operation failed")
	}

	fmt.Println(ui.Styles.Header.Render("Campuses"))
	fmt.Println(ui.RenderCampusTable(roster.Items))

	return nil
}
