package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the 'history' command showing recently viewed deals.
func NewHistoryCmd() *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently viewed deals",
		Long: `Show the deal viewing history, newest first. Every deal listed by
'deal-hub deals' or 'deal-hub recommend' is recorded here along with
the score it had at view time.`,
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

			entries := container.History(limit)

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Println("No viewing history yet.")
				fmt.Println("Browse deals with 'deal-hub deals' to start building one.")
				return nil
			}

			fmt.Printf("Viewing history (%d entries):\n\n", len(entries))
			for _, e := range entries {
				fmt.Printf("  %s  %s (%s)\n", e.ViewedAt.Format("Jan 2 15:04"), e.CouponID, e.Category)
				fmt.Printf("    Store: %s  Savings: $%.2f  Score: %.2f\n",
					e.StoreID, e.EstimatedSavings, e.Score)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
