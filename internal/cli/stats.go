package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the 'stats' command showing aggregate usage stats.
func NewStatsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show personal deal statistics",
		Long: `Show aggregate statistics over your viewing history and saved deals:
totals, favorite category, most visited store and engagement rate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			container, closeStore, err := openContainer(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			stats := container.Stats()

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(stats)
			}

			fmt.Println("Personal stats:")
			fmt.Printf("  Deals viewed:     %d\n", stats.TotalViewed)
			fmt.Printf("  Deals saved:      %d\n", stats.TotalSaved)
			fmt.Printf("  Deals emailed:    %d (this session)\n", stats.TotalEmailed)
			fmt.Printf("  Total savings:    $%.2f\n", stats.TotalSavings)
			fmt.Printf("  Avg deal value:   $%.2f\n", stats.AverageOrderValue)
			fmt.Printf("  Engagement rate:  %.0f%%\n", stats.EngagementRate*100)
			if stats.FavoriteCategory != "" {
				fmt.Printf("  Top category:     %s\n", stats.FavoriteCategory)
			}
			if stats.MostVisitedStore != "" {
				fmt.Printf("  Top store:        %s\n", stats.MostVisitedStore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
