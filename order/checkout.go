package order

import (
	"net/url"

	"suite46-pickup/models"
	"suite46-pickup/pricing"
)

// CheckoutRequest builds the checkout-session body for a prepaid order. When
// every item has a price reference the payment system prices the lines
// itself; otherwise a single charge for the order total is requested.
func CheckoutRequest(rec models.OrderRecord, priceMap map[string]string, origin, storeName string) models.CheckoutSessionRequest {
	req := models.CheckoutSessionRequest{
		OrderID:      rec.OrderID,
		CustomerName: rec.CustomerName,
		Phone:        rec.Phone,
		PickupTime:   rec.PickupTime,
		Notes:        rec.Notes,
		Items:        rec.Items,
		Subtotal:     rec.Subtotal,
		Tax:          rec.Tax,
		Tip:          rec.Tip,
		Total:        rec.Total,
		SuccessURL:   ReturnURL(origin, "success", rec.OrderID),
		CancelURL:    ReturnURL(origin, "cancel", rec.OrderID),
	}

	lineItems := make([]models.CheckoutLineItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		ref, ok := priceMap[it.ID]
		if !ok {
			lineItems = nil
			break
		}
		lineItems = append(lineItems, models.CheckoutLineItem{Price: ref, Quantity: it.Qty})
	}

	if len(lineItems) > 0 {
		req.LineItems = lineItems
	} else {
		req.AmountTotal = pricing.MinorUnits(rec.Total)
		req.Currency = "usd"
		req.Description = storeName + " Order " + rec.OrderID
	}
	return req
}

// ReturnURL is where hosted checkout sends the customer back to
func ReturnURL(origin, paid, orderID string) string {
	return origin + "?paid=" + paid + "&order_id=" + url.QueryEscape(orderID)
}
