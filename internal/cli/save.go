package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSaveCmd creates the 'save' command: keep a deal for later.
func NewSaveCmd() *cobra.Command {
	var (
		storeID string
		tags    []string
		note    string
	)

	cmd := &cobra.Command{
		Use:   "save <couponID>",
		Short: "Save a deal for later",
		Long: `Look up a coupon on the store's current menu and add it to your saved
deals with the coupon and store snapshotted as they are now. The saved
collection keeps the 100 most recent deals.`,
		Example: `  deal-hub save 8569
  deal-hub save 8569 --store 4332 --tag friday --note "for game night"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(args[0], storeID, tags, note)
		},
	}

	cmd.Flags().StringVarP(&storeID, "store", "s", "", "Store id (default: configured store)")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Tag the saved deal (repeatable)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Attach a note")

	return cmd
}

func runSave(couponID, storeID string, tags []string, note string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var storeArgs []string
	if storeID != "" {
		storeArgs = []string{storeID}
	}
	resolvedStore, err := resolveStoreID(cfg, storeArgs)
	if err != nil {
		return err
	}

	client := apiClient(cfg)
	ctx, cancel := apiContext(cfg)
	defer cancel()

	store, err := client.StoreProfile(ctx, resolvedStore)
	if err != nil {
		return err
	}
	coupons, err := client.StoreCoupons(ctx, resolvedStore)
	if err != nil {
		return err
	}

	for _, cp := range coupons {
		if cp.Key() != couponID && cp.Code != couponID {
			continue
		}

		container, closeStore, err := openContainer(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		deal := container.SaveDeal(cp, store, tags, note)
		fmt.Printf("✓ Saved %q as %s\n", cp.Name, deal.ID)
		if deal.ExpiresAt != nil {
			fmt.Printf("  Expires %s\n", deal.ExpiresAt.Format("Jan 2, 2006"))
		}
		return nil
	}

	return fmt.Errorf("coupon %q not found on store %s's current menu", couponID, resolvedStore)
}
