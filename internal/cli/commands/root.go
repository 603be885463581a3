package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/client"
	"github.com/jab1897/LoneStarLedger5/internal/cli/config"
	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

const version = "0.1.0"

// rootServer overrides the configured server address for one invocation.
var rootServer string

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "lsctl",
	Short:   "Texas school finance CLI",
	Version: version,
	Long: `A command-line tool for exploring Texas public school finance data.
Browse districts and campuses, drill into per-district spending, and pull
statewide aggregates from a ledger API server.`,
	Example: `  # List districts in Bexar county
  $ lsctl districts --county Bexar

  # Show one district with its campus roster
  $ lsctl district 015901

  # Spending for a district, largest first
  $ lsctl spending 015901 --sort amount --dir desc

  # Interactive district search
  $ lsctl search

  # Statewide summary
  $ lsctl stats`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&rootServer, "server", "s", "", "API server address (overrides configured server)")

	// Add subcommands
	rootCmd.AddCommand(districtsCmd)
	rootCmd.AddCommand(districtCmd)
	rootCmd.AddCommand(campusesCmd)
	rootCmd.AddCommand(campusCmd)
	rootCmd.AddCommand(spendingCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(countiesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(configCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("lsctl version %s\n", version)
}

// newClient builds an API client from the saved config, honoring the
// --server override. The cached route prefix is only reused when talking
// to the server it was detected against.
func newClient() (*client.APIClient, *config.Config, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	server := cfg.Server
	cachedPrefix := cfg.APIPrefix
	if rootServer != "" && rootServer != cfg.Server {
		server = rootServer
		cachedPrefix = ""
	}

	apiClient, err := client.NewAPIClient(server, cachedPrefix)
	if err != nil {
		return nil, nil, "", err
	}
	return apiClient, cfg, server, nil
}

// cachePrefix persists the detected route prefix after a successful call so
// later invocations skip probing. Best effort.
func cachePrefix(apiClient *client.APIClient, cfg *config.Config, server string) {
	if server != cfg.Server || apiClient.Prefix() == cfg.APIPrefix {
		return
	}
	cfg.APIPrefix = apiClient.Prefix()
	_ = cfg.Save()
}
