/*
Package email renders a saved-deal selection into an HTML email and
delivers it over SMTP.
*/
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/slicehub/deal-hub/internal/profile"
)

// dealTemplate is the email body: a header, one card per deal, and a
// plain footer. Inline styles only, since mail clients strip stylesheets.
var dealTemplate = template.Must(template.New("deals").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background: #f6f6f6; margin: 0; padding: 24px;">
  <div style="max-width: 560px; margin: 0 auto;">
    <h1 style="color: #b3202c;">Your saved pizza deals</h1>
    <p style="color: #444;">{{len .Deals}} deal{{if ne (len .Deals) 1}}s{{end}}, saved for later. Total estimated savings: ${{printf "%.2f" .TotalSavings}}.</p>
    {{range .Deals}}
    <div style="background: #fff; border-radius: 8px; padding: 16px; margin-bottom: 12px;">
      <h2 style="margin: 0 0 4px; font-size: 18px;">{{.Coupon.Name}}</h2>
      {{if .Coupon.Description}}<p style="margin: 0 0 8px; color: #555;">{{.Coupon.Description}}</p>{{end}}
      <p style="margin: 0; color: #222;">
        {{if .Coupon.Code}}Code <strong>{{.Coupon.Code}}</strong> &middot; {{end}}Store {{.Store.StoreID}}{{if gt .EstimatedSavings 0.0}} &middot; ${{printf "%.2f" .EstimatedSavings}}{{end}}
      </p>
      {{if .ExpiresAt}}<p style="margin: 4px 0 0; color: #b3202c; font-size: 13px;">Expires {{.ExpiresAt.Format "Jan 2, 2006"}}</p>{{end}}
      {{if .Note}}<p style="margin: 4px 0 0; color: #888; font-size: 13px;">Note: {{.Note}}</p>{{end}}
    </div>
    {{end}}
    <p style="color: #999; font-size: 12px;">Sent by deal-hub on {{.SentAt.Format "Jan 2, 2006 15:04"}}.</p>
  </div>
</body>
</html>
`))

// templateData is the input to dealTemplate.
type templateData struct {
	Deals        []profile.SavedDeal
	TotalSavings float64
	SentAt       time.Time
}

// Render produces the HTML body for a saved-deal selection.
func Render(deals []profile.SavedDeal, sentAt time.Time) (string, error) {
	if len(deals) == 0 {
		return "", fmt.Errorf("no deals to render")
	}

	data := templateData{Deals: deals, SentAt: sentAt}
	for _, d := range deals {
		data.TotalSavings += d.EstimatedSavings
	}

	var buf bytes.Buffer
	if err := dealTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}

	return buf.String(), nil
}
