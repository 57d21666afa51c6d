// README: Plain-text rendering of a price breakdown.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"limoquote/internal/types"
)

// FormatBreakdown renders a breakdown as aligned plain text for terminals
// and plaintext email bodies.
func FormatBreakdown(b *PriceBreakdown) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Quote %s\n", b.QuoteID)
	fmt.Fprintf(&sb, "  vehicle:  %s x%d\n", b.VehicleID, b.VehicleCount)
	fmt.Fprintf(&sb, "  service:  %s (%s)\n", b.ServiceType, b.Channel)
	if b.Hours > 0 {
		fmt.Fprintf(&sb, "  hours:    %g\n", b.Hours)
	}

	fmt.Fprintf(&sb, "  base:     %s\n", money(b.Currency, b.BasePrice))
	if b.ContractedRoute {
		fmt.Fprintf(&sb, "  contracted route rate, adjustments waived\n")
		fmt.Fprintf(&sb, "  total:    %s\n", money(b.Currency, b.Total))
		return sb.String()
	}
	if b.CorporatePremium.IsPositive() {
		fmt.Fprintf(&sb, "  premium:  %s\n", money(b.Currency, b.CorporatePremium))
	}

	for _, d := range b.Discounts {
		fmt.Fprintf(&sb, "  discount: %-22s -%s%%\n", d.Name, d.Rate.Mul(decimal.NewFromInt(100)).String())
	}
	for _, s := range b.Surcharges {
		fmt.Fprintf(&sb, "  surcharge: %-21s +%s\n", s.Name, money(b.Currency, s.Amount))
	}

	fmt.Fprintf(&sb, "  subtotal: %s\n", money(b.Currency, b.Subtotal))
	fmt.Fprintf(&sb, "  total:    %s\n", money(b.Currency, b.Total))
	if b.Commission != nil {
		fmt.Fprintf(&sb, "  partner commission (%s%%, informational): %s\n",
			b.Commission.Rate.Mul(decimal.NewFromInt(100)).String(),
			money(b.Currency, b.Commission.Amount))
	}
	return sb.String()
}

func money(currency string, v decimal.Decimal) string {
	return types.NewMoney(v, currency).Rounded().String()
}
