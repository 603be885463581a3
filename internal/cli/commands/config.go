package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/cli/config"
	"github.com/jab1897/LoneStarLedger5/internal/cli/ui"
)

// configCmd shows or sets the saved CLI configuration
var configCmd = &cobra.Command{
	Use:   "config [server]",
	Short: "show or set the API server address",
	Long: `Show the saved configuration, or set the API server address when one
is given. The configuration lives in ~/.lsctl/config.json.

Changing the server clears the cached route prefix so it is re-detected on
the next request.`,
	Example: `  # Show current configuration
  $ lsctl config

  # Point the CLI at a different server
  $ lsctl config http://ledger.example.com:8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.SilenceUsage = true
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	if len(args) == 0 {
		configPath, _ := config.GetConfigPath()
		fmt.Println()
		fmt.Printf("  %s %s\n", ui.Styles.Key.Render(fmt.Sprintf("%-14s", "Server:")), ui.Styles.Value.Render(cfg.Server))
		prefix := cfg.APIPrefix
		if prefix == "" {
			prefix = "(not detected yet)"
		}
		fmt.Printf("  %s %s\n", ui.Styles.Key.Render(fmt.Sprintf("%-14s", "API prefix:")), ui.Styles.Value.Render(prefix))
		fmt.Printf("  %s %s\n", ui.Styles.Key.Render(fmt.Sprintf("%-14s", "Config file:")), ui.Styles.Value.Render(configPath))
		return nil
	}

	cfg.Server = args[0]
	cfg.APIPrefix = ""
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	ui.PrintSuccess("server set to %s", cfg.Server)
	return nil
}
