package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewFavoritesCmd creates the 'favorites' command group for managing
// favorite stores.
func NewFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage your favorite stores",
		Long: `List, add and remove favorite stores. Deals from favorite stores get
an extra recommendation reason, and 'deal-hub deals' refreshes a
favorite's deal count whenever you browse it.`,
	}

	cmd.AddCommand(newFavoritesListCmd())
	cmd.AddCommand(newFavoritesAddCmd())
	cmd.AddCommand(newFavoritesRemoveCmd())

	return cmd
}

func newFavoritesListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List favorite stores",
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

			favs := container.Favorites()

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(favs)
			}

			if len(favs) == 0 {
				fmt.Println("No favorite stores yet.")
				fmt.Println("Add one with 'deal-hub favorites add <storeID>'.")
				return nil
			}

			fmt.Printf("Favorite stores (%d):\n\n", len(favs))
			for _, fav := range favs {
				fmt.Printf("  %s — %s\n", fav.StoreID, fav.Store.Address)
				fmt.Printf("    Added:        %s\n", fav.AddedAt.Format("Jan 2, 2006"))
				fmt.Printf("    Last checked: %s\n", fav.LastCheckedAt.Format("Jan 2, 2006"))
				if fav.DealCount > 0 {
					fmt.Printf("    Deals:        %d (avg $%.2f)\n", fav.DealCount, fav.AverageSavings)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func newFavoritesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <storeID>",
		Short: "Add a store to your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := apiClient(cfg)
			ctx, cancel := apiContext(cfg)
			defer cancel()

			store, err := client.StoreProfile(ctx, args[0])
			if err != nil {
				return err
			}

			container, closeStore, err := openContainer(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if container.IsFavorite(store.StoreID) {
				fmt.Printf("Store %s is already a favorite.\n", store.StoreID)
				return nil
			}

			container.AddFavorite(store)
			fmt.Printf("✓ Added store %s (%s) to favorites\n", store.StoreID, store.Address)
			return nil
		},
	}
}

func newFavoritesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <storeID>",
		Aliases: []string{"rm"},
		Short:   "Remove a store from your favorites",
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

			if !container.IsFavorite(args[0]) {
				fmt.Printf("Store %s is not a favorite (nothing removed).\n", args[0])
				return nil
			}

			container.RemoveFavorite(args[0])
			fmt.Printf("✓ Removed store %s from favorites\n", args[0])
			return nil
		},
	}
}
