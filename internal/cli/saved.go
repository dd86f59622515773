package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slicehub/deal-hub/internal/coupon"
	"github.com/slicehub/deal-hub/internal/profile"
)

// NewSavedCmd creates the 'saved' command for listing and managing the
// saved-deal collection.
func NewSavedCmd() *cobra.Command {
	var (
		jsonOutput    bool
		stores        []string
		categories    []string
		minSavings    float64
		maxSavings    float64
		expiresWithin int
		sortBy        string
		sortOrder     string
	)

	cmd := &cobra.Command{
		Use:     "saved",
		Aliases: []string{"ls"},
		Short:   "List your saved deals",
		Long: `Display the saved-deal collection, optionally filtered and sorted.

Filters are inclusive: --min/--max bound the estimated savings, and
--expires-within keeps deals expiring within N days (deals without an
expiration always pass). Sort by savings, expiration or date_added.`,
		Example: `  deal-hub saved
  deal-hub saved --store 4332 --category pizza
  deal-hub saved --min 5 --max 15 --sort savings --order desc
  deal-hub saved --expires-within 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := profile.SavedDealFilter{
				StoreIDs:  stores,
				SortBy:    profile.SortField(sortBy),
				SortOrder: profile.SortOrder(sortOrder),
			}
			for _, c := range categories {
				cat := coupon.Category(c)
				if !cat.Valid() {
					return fmt.Errorf("unknown category %q", c)
				}
				filter.Categories = append(filter.Categories, cat)
			}
			if cmd.Flags().Changed("min") {
				filter.MinSavings = &minSavings
			}
			if cmd.Flags().Changed("max") {
				filter.MaxSavings = &maxSavings
			}
			if cmd.Flags().Changed("expires-within") {
				filter.ExpiresWithinDays = &expiresWithin
			}

			return runSaved(filter, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().StringArrayVar(&stores, "store", nil, "Keep deals from this store id (repeatable)")
	cmd.Flags().StringArrayVar(&categories, "category", nil, "Keep deals in this category (repeatable)")
	cmd.Flags().Float64Var(&minSavings, "min", 0, "Minimum estimated savings, inclusive")
	cmd.Flags().Float64Var(&maxSavings, "max", 0, "Maximum estimated savings, inclusive")
	cmd.Flags().IntVar(&expiresWithin, "expires-within", 0, "Keep deals expiring within N days")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key: savings, expiration or date_added")
	cmd.Flags().StringVar(&sortOrder, "order", "asc", "Sort order: asc or desc")

	cmd.AddCommand(newSavedRemoveCmd())

	return cmd
}

func runSaved(filter profile.SavedDealFilter, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	container, closeStore, err := openContainer(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	deals := container.FilterSavedDeals(filter)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(deals)
	}

	if len(deals) == 0 {
		fmt.Println("No saved deals match.")
		fmt.Println("Save one with 'deal-hub save <couponID>'.")
		return nil
	}

	fmt.Printf("Saved deals (%d):\n\n", len(deals))
	for _, d := range deals {
		fmt.Printf("  %s\n", d.Coupon.Name)
		fmt.Printf("    ID:       %s\n", d.ID)
		line := fmt.Sprintf("    %s · store %s", d.Category(), d.Store.StoreID)
		if d.EstimatedSavings > 0 {
			line += fmt.Sprintf(" · $%.2f", d.EstimatedSavings)
		}
		fmt.Println(line)
		if d.ExpiresAt != nil {
			fmt.Printf("    Expires:  %s\n", d.ExpiresAt.Format("Jan 2, 2006"))
		}
		if len(d.Tags) > 0 {
			fmt.Printf("    Tags:     %v\n", d.Tags)
		}
		if d.Note != "" {
			fmt.Printf("    Note:     %s\n", d.Note)
		}
		fmt.Println()
	}

	return nil
}

// newSavedRemoveCmd creates the 'saved remove' subcommand.
func newSavedRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <dealID>",
		Aliases: []string{"rm"},
		Short:   "Remove a saved deal",
		Args:    cobra.ExactArgs(1),
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

			if _, ok := container.SavedDeal(args[0]); !ok {
				fmt.Printf("No saved deal %q (nothing removed).\n", args[0])
				return nil
			}

			container.RemoveSavedDeal(args[0])
			fmt.Printf("✓ Removed %s\n", args[0])
			return nil
		},
	}
}
