package models

// PaymentStatus records how the customer intends to pay
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentUnpaid  PaymentStatus = "Unpaid"
)

// OrderStatus is the kitchen-side status. This service only ever writes the initial one.
type OrderStatus string

const (
	StatusQueued OrderStatus = "Queued"
)

// PayMode is the customer's payment choice at checkout
type PayMode string

const (
	PayAtPickup PayMode = "pickup"
	PayPrepay   PayMode = "prepay"
)

func (m PayMode) Valid() bool {
	return m == PayAtPickup || m == PayPrepay
}

// LineItem is a cart line frozen into an order, with its line total
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// OrderRecord is the snapshot sent to order intake. Field names follow the
// sheet columns the intake endpoint expects.
type OrderRecord struct {
	TimestampUTC    string        `json:"timestamp_utc"`
	OrderID         string        `json:"order_id"`
	CustomerName    string        `json:"customer_name"`
	Phone           string        `json:"phone_e164"`
	Email           string        `json:"email"`
	PickupTime      string        `json:"pickup_time_local"`
	Items           []LineItem    `json:"items_json"`
	Subtotal        float64       `json:"subtotal"`
	Tax             float64       `json:"tax"`
	Tip             float64       `json:"tip"`
	Total           float64       `json:"total"`
	Notes           string        `json:"notes"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	OrderStatus     OrderStatus   `json:"order_status"`
	KitchenAssigned string        `json:"kitchen_assigned"`
	ReadyTime       string        `json:"ready_time_local"`
	PickedUpTime    string        `json:"picked_up_time_local"`
	AdminComment    string        `json:"admin_private_comment"`
}

// CheckoutLineItem maps a cart line onto a pre-configured price in the payment system
type CheckoutLineItem struct {
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// CheckoutSessionRequest is the body posted to the checkout-session endpoint.
// Exactly one of LineItems or (AmountTotal, Currency, Description) is set.
type CheckoutSessionRequest struct {
	OrderID      string     `json:"order_id"`
	CustomerName string     `json:"customer_name"`
	Phone        string     `json:"phone_e164"`
	PickupTime   string     `json:"pickup_time_local"`
	Notes        string     `json:"notes"`
	Items        []LineItem `json:"items"`
	Subtotal     float64    `json:"subtotal"`
	Tax          float64    `json:"tax"`
	Tip          float64    `json:"tip"`
	Total        float64    `json:"total"`
	SuccessURL   string     `json:"success_url"`
	CancelURL    string     `json:"cancel_url"`

	LineItems   []CheckoutLineItem `json:"line_items,omitempty"`
	AmountTotal int64              `json:"amount_total,omitempty"`
	Currency    string             `json:"currency,omitempty"`
	Description string             `json:"description,omitempty"`
}
