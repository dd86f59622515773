package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewRecommendCmd creates the 'recommend' command: ranked deals for a
// store based on the user's profile.
func NewRecommendCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "recommend [storeID]",
		Short: "Show deals ranked for you",
		Long: `Fetch a store's coupons and rank them against your preferences, view
history and favorite stores. Only deals clearing the relevance cutoff
are shown, best first, with the reasons each one was picked.`,
		Example: `  deal-hub recommend 4332
  deal-hub recommend        # uses the configured default store`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(args, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runRecommend(args []string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	storeID, err := resolveStoreID(cfg, args)
	if err != nil {
		return err
	}

	client := apiClient(cfg)
	ctx, cancel := apiContext(cfg)
	defer cancel()

	store, err := client.StoreProfile(ctx, storeID)
	if err != nil {
		return err
	}
	coupons, err := client.StoreCoupons(ctx, storeID)
	if err != nil {
		return err
	}

	container, closeStore, err := openContainer(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	recs := container.Recommendations(coupons, store)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Println("No deals clear the relevance cutoff right now.")
		return nil
	}

	fmt.Printf("Top deals for you at store %s:\n\n", store.StoreID)
	for i, rec := range recs {
		fmt.Printf("%2d. [%s] %s — score %.2f", i+1, rec.Coupon.Key(), rec.Coupon.Name, rec.Score.Overall)
		if rec.EstimatedSavings > 0 {
			fmt.Printf(" · $%.2f", rec.EstimatedSavings)
		}
		fmt.Println()

		if len(rec.Reasons) > 0 {
			descriptions := make([]string, len(rec.Reasons))
			for j, r := range rec.Reasons {
				descriptions[j] = r.Description
			}
			fmt.Printf("    %s\n", strings.Join(descriptions, " · "))
		}
	}

	return nil
}
