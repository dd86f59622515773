package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewResetCmd creates the 'reset' command that wipes the local profile.
func NewResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all profile data",
		Long: `Delete the persisted profile: preferences, viewing history, saved deals
and favorite stores. The config file is left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if !force {
				fmt.Print("This deletes history, saved deals, favorites and preferences. Continue? [y/N] ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			container, closeStore, err := openContainer(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := container.Reset(); err != nil {
				return fmt.Errorf("failed to reset profile: %w", err)
			}

			fmt.Println("✓ Profile reset to defaults")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
