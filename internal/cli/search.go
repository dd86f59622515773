package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slicehub/deal-hub/internal/search"
)

// NewSearchCmd creates the 'search' command for keyword search over
// saved deals.
func NewSearchCmd() *cobra.Command {
	var (
		storeID    string
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search saved deals by keyword",
		Long: `Search saved deals with BM25 keyword ranking over deal names,
descriptions, tags, notes and categories.

Examples:
  deal-hub search "large pizza"
  deal-hub search wings --store 8278`,
		Args: cobra.MinimumNArgs(1),
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

			saved := container.SavedDeals()
			if len(saved) == 0 {
				fmt.Println("No saved deals to search.")
				fmt.Println("Save deals with 'deal-hub save <dealID>' first.")
				return nil
			}

			idx, err := search.NewIndex()
			if err != nil {
				return fmt.Errorf("failed to build search index: %w", err)
			}
			defer idx.Close()

			if err := idx.IndexDeals(saved); err != nil {
				return fmt.Errorf("failed to index saved deals: %w", err)
			}

			queryText := strings.Join(args, " ")

			var results []search.Result
			if storeID != "" {
				results, err = idx.SearchByStore(queryText, storeID, limit)
			} else {
				results, err = idx.Search(queryText, limit)
			}
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(results)
			}

			if len(results) == 0 {
				fmt.Printf("No saved deals match %q.\n", queryText)
				return nil
			}

			fmt.Printf("Found %d matching deal(s):\n\n", len(results))
			for i, r := range results {
				fmt.Printf("%d. %s (score %.2f)\n", i+1, r.Name, r.Score)
				if r.Description != "" {
					fmt.Printf("   %s\n", r.Description)
				}
				fmt.Printf("   ID: %s  Store: %s  Savings: $%s\n", r.DealID, r.StoreID, r.Savings)
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&storeID, "store", "s", "", "Limit results to one store")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum results")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
