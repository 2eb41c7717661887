// Package order assembles order records and keeps the per-session order caches.
package order

import (
	"strings"
	"time"

	"suite46-pickup/models"
	"suite46-pickup/pricing"
)

// Customer is the contact and pickup details typed into the order form
type Customer struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Pickup string `json:"pickup"`
	Notes  string `json:"notes"`
}

// Build freezes the cart into an OrderRecord. The kitchen fields are left
// blank for downstream tooling to fill in.
func Build(id string, now time.Time, c Customer, lines []models.CartLine, totals pricing.Totals, mode models.PayMode) models.OrderRecord {
	items := make([]models.LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.LineItem{
			ID:        l.ID,
			Name:      l.Name,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
			LineTotal: pricing.LineTotal(l),
		})
	}

	status := models.PaymentUnpaid
	if mode == models.PayPrepay {
		status = models.PaymentPending
	}

	return models.OrderRecord{
		TimestampUTC:  now.UTC().Format("2006-01-02T15:04:05.000Z"),
		OrderID:       id,
		CustomerName:  strings.TrimSpace(c.Name),
		Phone:         strings.TrimSpace(c.Phone),
		Email:         strings.TrimSpace(c.Email),
		PickupTime:    c.Pickup,
		Items:         items,
		Subtotal:      pricing.Round2(totals.Subtotal),
		Tax:           totals.Tax,
		Tip:           totals.Tip,
		Total:         totals.Total,
		Notes:         strings.TrimSpace(c.Notes),
		PaymentStatus: status,
		OrderStatus:   models.StatusQueued,
	}
}
