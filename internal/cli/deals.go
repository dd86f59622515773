package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slicehub/deal-hub/internal/coupon"
)

// NewDealsCmd creates the 'deals' command: fetch and show a store's
// current coupons.
func NewDealsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "deals [storeID]",
		Short: "Show the current coupons at a store",
		Long: `Fetch the coupon section of a store's menu and display it. Each shown
coupon is recorded in your view history, which feeds your stats and
recommendations.`,
		Example: `  deal-hub deals 4332
  deal-hub deals            # uses the configured default store
  deal-hub deals 4332 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeals(args, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runDeals(args []string, jsonOutput bool) error {
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

	for _, cp := range coupons {
		container.TrackView(cp, store)
	}
	container.MarkFavoriteChecked(storeID, coupons)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(coupons)
	}

	fmt.Printf("Store %s — %s\n", store.StoreID, store.Address)
	if store.HoursDescription != "" {
		fmt.Printf("Hours: %s\n", store.HoursDescription)
	}
	fmt.Printf("\n%d deals:\n\n", len(coupons))

	for _, cp := range coupons {
		printCoupon(cp)
	}

	return nil
}

func printCoupon(cp coupon.Coupon) {
	fmt.Printf("  [%s] %s\n", cp.Key(), cp.Name)
	if cp.Description != "" && cp.Description != cp.Name {
		fmt.Printf("      %s\n", cp.Description)
	}

	line := fmt.Sprintf("      %s", coupon.Categorize(cp))
	if savings := cp.EstimatedSavings(); savings > 0 {
		line += fmt.Sprintf(" · $%.2f", savings)
	}
	if cp.ServiceMethod != "" {
		line += " · " + cp.ServiceMethod + " only"
	}
	if exp, ok := cp.Expiration(); ok {
		line += " · expires " + exp.Format("Jan 2")
	}
	fmt.Println(line)
	fmt.Println()
}
