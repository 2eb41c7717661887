// Package returnflow decides what a customer sees when hosted checkout sends
// them back with ?paid=...&order_id=...
//
// The paid parameter is taken at face value. Nothing here asks the payment
// provider whether the order was actually paid, so a confirmation is only as
// trustworthy as the URL that produced it.
package returnflow

import (
	"net/url"

	"suite46-pickup/models"
)

const (
	paramPaid    = "paid"
	paramOrderID = "order_id"
)

// ViewKind selects the page to render
type ViewKind string

const (
	ViewMenu         ViewKind = "menu"
	ViewConfirmation ViewKind = "confirmation"
)

// View is the render model for a page load
type View struct {
	Kind ViewKind `json:"view"`

	// Confirmation fields
	OrderID    string            `json:"order_id,omitempty"`
	PickupTime string            `json:"pickup_time,omitempty"`
	Items      []models.LineItem `json:"items,omitempty"`
	Total      float64           `json:"total,omitempty"`
	// Itemized is false when the cached order was missing or belonged to a
	// different order; the page then only acknowledges the payment.
	Itemized bool `json:"itemized"`
	// Verified is always false: the payment was not confirmed server side.
	Verified bool `json:"verified"`

	// PaymentCancelled is set on the menu view after an abandoned checkout.
	PaymentCancelled bool `json:"payment_cancelled,omitempty"`
	Message          string `json:"message,omitempty"`
}

const (
	msgDegraded  = "We couldn't load item details, but your payment was received. Show your order number at pickup."
	msgCancelled = "Payment was cancelled. Your cart is still here."
)

// Resolve builds the view for the given query parameters and cached last order.
//
// The cached order is only itemised when its id matches order_id (or
// order_id is absent). A cache left over from a different checkout is
// ignored and the degraded confirmation is shown instead, so a customer is
// never shown another order's items as theirs.
func Resolve(q url.Values, last *models.OrderRecord) View {
	switch q.Get(paramPaid) {
	case "success":
	case "cancel":
		return View{Kind: ViewMenu, PaymentCancelled: true, Message: msgCancelled}
	default:
		return View{Kind: ViewMenu}
	}

	orderID := q.Get(paramOrderID)
	if last != nil && orderID != "" && last.OrderID != orderID {
		// cached order is from an earlier checkout
		last = nil
	}
	if orderID == "" && last != nil {
		orderID = last.OrderID
	}

	v := View{Kind: ViewConfirmation, OrderID: orderID}
	if last == nil || len(last.Items) == 0 {
		v.Message = msgDegraded
		return v
	}
	v.Itemized = true
	v.PickupTime = last.PickupTime
	v.Items = last.Items
	v.Total = last.Total
	return v
}

// MenuURL is u without the payment return parameters; following it is the
// only way out of the confirmation page.
func MenuURL(u *url.URL) string {
	out := *u
	q := out.Query()
	q.Del(paramPaid)
	q.Del(paramOrderID)
	out.RawQuery = q.Encode()
	return out.String()
}
