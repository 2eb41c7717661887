package returnflow

import (
	"net/url"
	"testing"

	"suite46-pickup/models"
)

func cached() *models.OrderRecord {
	return &models.OrderRecord{
		OrderID:    "S46-240101-1234",
		PickupTime: "1:15 PM",
		Items:      []models.LineItem{{ID: "tilapia_fries", Name: "Tilapia & Fries", Qty: 1, UnitPrice: 12, LineTotal: 12}},
		Total:      14.12,
	}
}

func query(raw string) url.Values {
	q, _ := url.ParseQuery(raw)
	return q
}

func TestResolveSuccessWithCachedOrder(t *testing.T) {
	v := Resolve(query("paid=success&order_id=S46-240101-1234"), cached())

	if v.Kind != ViewConfirmation || !v.Itemized {
		t.Fatalf("view %+v", v)
	}
	if v.OrderID != "S46-240101-1234" || v.PickupTime != "1:15 PM" || v.Total != 14.12 || len(v.Items) != 1 {
		t.Fatalf("view %+v", v)
	}
}

func TestResolveSuccessWithoutCachedOrder(t *testing.T) {
	v := Resolve(query("paid=success&order_id=S46-240101-1234"), nil)

	if v.Kind != ViewConfirmation || v.Itemized || len(v.Items) != 0 {
		t.Fatalf("expected degraded confirmation, got %+v", v)
	}
	if v.OrderID != "S46-240101-1234" || v.Message == "" {
		t.Fatalf("view %+v", v)
	}
}

func TestResolveFallsBackToCachedID(t *testing.T) {
	v := Resolve(query("paid=success"), cached())
	if v.OrderID != "S46-240101-1234" || !v.Itemized {
		t.Fatalf("view %+v", v)
	}
}

func TestResolveIgnoresStaleCache(t *testing.T) {
	v := Resolve(query("paid=success&order_id=S46-240202-9999"), cached())
	if v.Itemized || v.OrderID != "S46-240202-9999" {
		t.Fatalf("stale cached order shown: %+v", v)
	}
}

// The confirmation trusts the query string. This documents the gap rather
// than asserting it is safe.
func TestResolveIsNotVerified(t *testing.T) {
	v := Resolve(query("paid=success&order_id=anything"), nil)
	if v.Kind != ViewConfirmation || v.Verified {
		t.Fatalf("view %+v", v)
	}
}

func TestResolveCancelAndPlainLoad(t *testing.T) {
	v := Resolve(query("paid=cancel&order_id=S46-240101-1234"), cached())
	if v.Kind != ViewMenu || !v.PaymentCancelled {
		t.Fatalf("cancel view %+v", v)
	}
	if v := Resolve(query(""), cached()); v.Kind != ViewMenu || v.PaymentCancelled {
		t.Fatalf("plain view %+v", v)
	}
	if v := Resolve(query("paid=maybe"), cached()); v.Kind != ViewMenu {
		t.Fatalf("unknown paid value %+v", v)
	}
}

func TestMenuURL(t *testing.T) {
	u, _ := url.Parse("https://s46.example/?paid=success&order_id=S46-240101-1234&utm=flyer")
	if got := MenuURL(u); got != "https://s46.example/?utm=flyer" {
		t.Fatalf("got %s", got)
	}
	u, _ = url.Parse("https://s46.example?paid=success&order_id=x")
	if got := MenuURL(u); got != "https://s46.example" {
		t.Fatalf("got %s", got)
	}
}
