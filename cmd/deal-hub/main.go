/*
Package main is the entry point for the deal-hub CLI.

deal-hub is a pizza-deal personalization engine: it fetches live coupons
from the ordering API, scores them against your preferences and habits,
and tracks what you view, save and favorite in a local profile.

Usage:
  deal-hub [command]

Available Commands:
  setup       Write the config file
  deals       List current deals for a store
  recommend   Show personalized deal recommendations
  save        Save a deal for later
  saved       List, filter and remove saved deals
  favorites   Manage favorite stores
  history     Show recently viewed deals
  stats       Show personal deal statistics
  prefs       View and edit deal preferences
  search      Search saved deals by keyword
  email       Email saved deals to yourself
  reset       Delete all profile data
  help        Help about any command

Examples:
  # Point the tool at your local store
  deal-hub setup --store 8278

  # Browse and get recommendations
  deal-hub deals
  deal-hub recommend

  # Keep the good ones
  deal-hub save 9220 --tag dinner
  deal-hub saved --sort savings --order desc
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slicehub/deal-hub/internal/cli"
	"github.com/slicehub/deal-hub/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deal-hub",
		Short: "Personalized pizza-deal tracking and recommendations",
		Long: `deal-hub fetches live coupons from the ordering API, scores them with a
multi-factor heuristic (deal value, personal relevance, time of day),
and keeps a local profile of what you view, save and favorite.

Everything is stored locally in one profile database; the only network
traffic is fetching deals from the ordering API and optionally sending
deal digests over SMTP.`,
		Version: version.GetVersion(),
	}

	// Add subcommands
	rootCmd.AddCommand(cli.NewSetupCmd())
	rootCmd.AddCommand(cli.NewDealsCmd())
	rootCmd.AddCommand(cli.NewRecommendCmd())
	rootCmd.AddCommand(cli.NewSaveCmd())
	rootCmd.AddCommand(cli.NewSavedCmd())
	rootCmd.AddCommand(cli.NewFavoritesCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
	rootCmd.AddCommand(cli.NewStatsCmd())
	rootCmd.AddCommand(cli.NewPrefsCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewEmailCmd())
	rootCmd.AddCommand(cli.NewResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
