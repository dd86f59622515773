package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slicehub/deal-hub/internal/coupon"
	"github.com/slicehub/deal-hub/internal/profile"
)

// NewPrefsCmd creates the 'prefs' command group for viewing and editing
// user preferences.
func NewPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "View and edit deal preferences",
		Long: `View and edit the preferences that drive deal scoring: preferred
categories, budget range, order frequency, preferred times and
notification toggles.`,
	}

	cmd.AddCommand(newPrefsShowCmd())
	cmd.AddCommand(newPrefsSetCmd())

	return cmd
}

func newPrefsShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
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

			prefs := container.Preferences()

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(prefs)
			}

			fmt.Println("Preferences:")
			fmt.Printf("  Categories:      %s\n", joinCategories(prefs.PreferredCategories))
			fmt.Printf("  Budget range:    $%.2f - $%.2f\n", prefs.BudgetRange.Min, prefs.BudgetRange.Max)
			fmt.Printf("  Order frequency: %s\n", prefs.OrderFrequency)
			fmt.Printf("  Preferred times: %s\n", joinTimes(prefs.PreferredTimes))
			fmt.Printf("  Deal alerts:     %t\n", prefs.Notifications.DealAlerts)
			fmt.Printf("  Expiry reminders: %t\n", prefs.Notifications.ExpiryReminders)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func newPrefsSetCmd() *cobra.Command {
	var (
		categories []string
		budgetMin  float64
		budgetMax  float64
		frequency  string
		times      []string
		alerts     bool
		reminders  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update preferences",
		Long: `Update preferences. Only the flags you pass change; everything else
keeps its current value.

Examples:
  deal-hub prefs set --category pizza --category wings
  deal-hub prefs set --budget-min 5 --budget-max 30
  deal-hub prefs set --frequency weekly --time dinner`,
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

			var update profile.PreferencesUpdate

			if cmd.Flags().Changed("category") {
				cats := make([]coupon.Category, 0, len(categories))
				for _, raw := range categories {
					cat := coupon.Category(raw)
					if !cat.Valid() {
						return fmt.Errorf("unknown category %q (valid: %s)",
							raw, joinCategories(coupon.Categories))
					}
					cats = append(cats, cat)
				}
				update.PreferredCategories = &cats
			}

			if cmd.Flags().Changed("budget-min") || cmd.Flags().Changed("budget-max") {
				budget := container.Preferences().BudgetRange
				if cmd.Flags().Changed("budget-min") {
					budget.Min = budgetMin
				}
				if cmd.Flags().Changed("budget-max") {
					budget.Max = budgetMax
				}
				if budget.Min > budget.Max {
					return fmt.Errorf("budget min ($%.2f) exceeds max ($%.2f)", budget.Min, budget.Max)
				}
				update.BudgetRange = &budget
			}

			if cmd.Flags().Changed("frequency") {
				freq := profile.OrderFrequency(frequency)
				switch freq {
				case profile.OrderRarely, profile.OrderMonthly, profile.OrderWeekly, profile.OrderFrequent:
				default:
					return fmt.Errorf("unknown frequency %q (valid: rarely, monthly, weekly, frequent)", frequency)
				}
				update.OrderFrequency = &freq
			}

			if cmd.Flags().Changed("time") {
				prefTimes := make([]profile.TimeOfDay, 0, len(times))
				for _, raw := range times {
					t := profile.TimeOfDay(raw)
					switch t {
					case profile.TimeLunch, profile.TimeDinner, profile.TimeLateNight:
					default:
						return fmt.Errorf("unknown time %q (valid: lunch, dinner, late-night)", raw)
					}
					prefTimes = append(prefTimes, t)
				}
				update.PreferredTimes = &prefTimes
			}

			if cmd.Flags().Changed("alerts") || cmd.Flags().Changed("reminders") {
				notif := container.Preferences().Notifications
				if cmd.Flags().Changed("alerts") {
					notif.DealAlerts = alerts
				}
				if cmd.Flags().Changed("reminders") {
					notif.ExpiryReminders = reminders
				}
				update.Notifications = &notif
			}

			container.UpdatePreferences(update)
			fmt.Println("✓ Preferences updated")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&categories, "category", nil, "Preferred category (repeatable, replaces the set)")
	cmd.Flags().Float64Var(&budgetMin, "budget-min", 0, "Minimum savings of interest")
	cmd.Flags().Float64Var(&budgetMax, "budget-max", 0, "Maximum savings of interest")
	cmd.Flags().StringVar(&frequency, "frequency", "", "Order frequency (rarely, monthly, weekly, frequent)")
	cmd.Flags().StringArrayVar(&times, "time", nil, "Preferred time (repeatable, replaces the set)")
	cmd.Flags().BoolVar(&alerts, "alerts", false, "Enable or disable deal alerts")
	cmd.Flags().BoolVar(&reminders, "reminders", false, "Enable or disable expiry reminders")

	return cmd
}

func joinCategories(cats []coupon.Category) string {
	if len(cats) == 0 {
		return "(none)"
	}
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func joinTimes(times []profile.TimeOfDay) string {
	if len(times) == 0 {
		return "(none)"
	}
	parts := make([]string, len(times))
	for i, t := range times {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
