// internal/pkg/invoice/service.go
package invoice

import (
	"fmt"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service renders plain-text invoices. Rendering is a pure formatting
// function over the frozen order snapshot; it never touches live cart,
// coupon or catalog state.
type Service struct {
	config *config.Config
}

// NewService creates a new invoice service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// RenderText renders a downloadable plain-text invoice for an order
func (s *Service) RenderText(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", s.config.App.CompanyName)
	if s.config.App.CompanyAddress != "" {
		fmt.Fprintf(&b, "%s\n", s.config.App.CompanyAddress)
	}
	fmt.Fprintf(&b, "%s\n\n", s.config.App.CompanyEmail)

	fmt.Fprintf(&b, "INVOICE %s\n", o.Number)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Status: %s\n\n", o.Status)

	fmt.Fprintf(&b, "%-40s %5s %12s %12s\n", "Item", "Qty", "Unit", "Amount")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 72))
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%-40s %5d %12s %12s\n",
			truncate(item.Name, 40),
			item.Quantity,
			Money(item.Price, o.Currency),
			Money(item.TotalPrice, o.Currency),
		)
	}
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 72))

	fmt.Fprintf(&b, "%59s %12s\n", "Subtotal:", Money(o.SubtotalAmount, o.Currency))
	if o.DiscountAmount > 0 {
		label := "Discount:"
		if o.CouponCode != "" {
			label = fmt.Sprintf("Discount (%s):", o.CouponCode)
		}
		fmt.Fprintf(&b, "%59s %12s\n", label, "-"+Money(o.DiscountAmount, o.Currency))
	}
	fmt.Fprintf(&b, "%59s %12s\n", "Total:", Money(o.TotalAmount, o.Currency))

	fmt.Fprintf(&b, "\nThank you for shopping with %s!\n", s.config.App.CompanyName)

	return b.String()
}

// Money formats an amount in the smallest currency unit, e.g. 12999 USD
// becomes "129.99 USD".
func Money(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, currency)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
