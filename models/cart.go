package models

// CartLine is one cart entry keyed by menu item id. Name and UnitPrice are
// copied from the catalog when the line is first created and never refreshed.
type CartLine struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Qty       int     `json:"qty"`
}
