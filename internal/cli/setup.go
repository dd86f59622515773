package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slicehub/deal-hub/internal/config"
)

// NewSetupCmd creates the 'setup' command for writing ~/.deal-hub.json.
func NewSetupCmd() *cobra.Command {
	var (
		storeID  string
		apiURL   string
		dataDir  string
		smtpHost string
		smtpPort int
		smtpFrom string
		smtpTo   string
		smtpUser string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or update the deal-hub configuration",
		Long: `Write ~/.deal-hub.json with your default store and, optionally, the
SMTP settings used by 'deal-hub email'.

Existing settings are kept unless overridden by a flag; the previous
file is backed up to ~/.deal-hub.json.bak.`,
		Example: `  # Set the default store
  deal-hub setup --store 4332

  # Configure email delivery
  deal-hub setup --smtp-host smtp.example.com --smtp-port 587 \
    --from deals@example.com --to me@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("store") {
				cfg.DefaultStoreID = storeID
			}
			if cmd.Flags().Changed("api-url") {
				cfg.APIBaseURL = apiURL
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}

			if cmd.Flags().Changed("smtp-host") || cmd.Flags().Changed("smtp-port") ||
				cmd.Flags().Changed("from") || cmd.Flags().Changed("to") ||
				cmd.Flags().Changed("smtp-user") {
				if cfg.Email == nil {
					cfg.Email = &config.EmailConfig{Port: 587}
				}
				if cmd.Flags().Changed("smtp-host") {
					cfg.Email.Host = smtpHost
				}
				if cmd.Flags().Changed("smtp-port") {
					cfg.Email.Port = smtpPort
				}
				if cmd.Flags().Changed("from") {
					cfg.Email.From = smtpFrom
				}
				if cmd.Flags().Changed("to") {
					cfg.Email.To = smtpTo
				}
				if cmd.Flags().Changed("smtp-user") {
					cfg.Email.Username = smtpUser
				}
			}

			if err := config.Validate(cfg); err != nil {
				return err
			}

			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}

			fmt.Printf("✓ Configuration saved to %s\n", path)
			if cfg.DefaultStoreID != "" {
				fmt.Printf("  Default store: %s\n", cfg.DefaultStoreID)
			}
			if cfg.Email != nil {
				fmt.Printf("  Email: %s via %s:%d\n", cfg.Email.From, cfg.Email.Host, cfg.Email.Port)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&storeID, "store", "s", "", "Default store id")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Ordering API base URL override")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory for the profile database")
	cmd.Flags().StringVar(&smtpHost, "smtp-host", "", "SMTP server host")
	cmd.Flags().IntVar(&smtpPort, "smtp-port", 587, "SMTP server port")
	cmd.Flags().StringVar(&smtpFrom, "from", "", "Sender address for emailed deals")
	cmd.Flags().StringVar(&smtpTo, "to", "", "Default recipient for emailed deals")
	cmd.Flags().StringVar(&smtpUser, "smtp-user", "", "SMTP username (password via DEAL_HUB_SMTP_PASSWORD)")

	return cmd
}
