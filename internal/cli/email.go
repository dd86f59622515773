package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/slicehub/deal-hub/internal/email"
	"github.com/slicehub/deal-hub/internal/profile"
)

// smtpPasswordEnv supplies the SMTP password; passwords never live in
// the config file.
const smtpPasswordEnv = "DEAL_HUB_SMTP_PASSWORD"

// NewEmailCmd creates the 'email' command for mailing saved deals.
func NewEmailCmd() *cobra.Command {
	var (
		to      string
		subject string
	)

	cmd := &cobra.Command{
		Use:   "email <dealID>...",
		Short: "Email saved deals to yourself",
		Long: `Render the given saved deals as an HTML digest and send them over
SMTP. The recipient defaults to the 'to' address in the email section
of the config; override with --to. The SMTP password is read from the
` + smtpPasswordEnv + ` environment variable.

Examples:
  deal-hub email 9220-8278-1756500000000
  deal-hub email 9220-8278-1756500000000 5162-8278-1756500060000 --to me@example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.Email == nil {
				return fmt.Errorf("no email settings configured (run 'deal-hub setup' with --smtp-host, --from and --to)")
			}

			recipient := to
			if recipient == "" {
				recipient = cfg.Email.To
			}
			if recipient == "" {
				return fmt.Errorf("no recipient: pass --to or configure a default with 'deal-hub setup --to'")
			}

			container, closeStore, err := openContainer(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			deals := make([]profile.SavedDeal, 0, len(args))
			for _, id := range args {
				deal, ok := container.SavedDeal(id)
				if !ok {
					return fmt.Errorf("no saved deal with ID %q (see 'deal-hub saved')", id)
				}
				deals = append(deals, deal)
			}

			body, err := email.Render(deals, time.Now())
			if err != nil {
				return fmt.Errorf("failed to render email: %w", err)
			}

			if subject == "" {
				subject = fmt.Sprintf("Your pizza deals (%d)", len(deals))
			}

			sender := email.NewSender(email.Settings{
				Host:     cfg.Email.Host,
				Port:     cfg.Email.Port,
				From:     cfg.Email.From,
				Username: cfg.Email.Username,
				Password: os.Getenv(smtpPasswordEnv),
			})

			if err := sender.Send(recipient, subject, body); err != nil {
				return fmt.Errorf("failed to send email: %w", err)
			}

			container.TrackEmailed(len(deals))
			fmt.Printf("✓ Emailed %d deal(s) to %s\n", len(deals), recipient)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient address (defaults to the configured one)")
	cmd.Flags().StringVar(&subject, "subject", "", "Override the email subject")

	return cmd
}
