package models

import "time"

// Delivery methods
const (
	DeliveryPickup  = "pickup"
	DeliveryCourier = "courier"
)

// Payment methods
const (
	PaymentComgate   = "comgate"
	PaymentDobirka   = "dobirka"
	PaymentCard      = "card"
	PaymentGooglePay = "googlepay"
)

// ErrorMap maps a form field name to a human-readable error. An empty map
// means the form is valid.
type ErrorMap map[string]string

// CheckoutForm is the raw state of the checkout form as submitted by the
// storefront.
type CheckoutForm struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DeliveryMethod string `json:"deliveryMethod"`
	PaymentMethod  string `json:"paymentMethod"`
	Address        string `json:"address"`
	City           string `json:"city"`
	PostalCode     string `json:"postalCode"`
	DeliveryNotes  string `json:"deliveryNotes"`
}

// OrderDraft is the in-memory, not-yet-persisted order. It exists for the
// duration of one checkout attempt.
type OrderDraft struct {
	CheckoutForm
	Items      []CartItem
	TotalPrice float64
}

// NewOrderDraft builds a draft from the submitted form and the current cart,
// recomputing the total.
func NewOrderDraft(form CheckoutForm, items []CartItem) OrderDraft {
	return OrderDraft{
		CheckoutForm: form,
		Items:        items,
		TotalPrice:   CartTotal(items),
	}
}

// PersistedOrder is the durable, store-assigned record of an order. Fields
// mirror the orders table columns.
type PersistedOrder struct {
	ID                 string     `json:"id"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	CustomerPhone      string     `json:"customer_phone"`
	DeliveryMethod     string     `json:"delivery_method"`
	PaymentMethod      string     `json:"payment_method"`
	DeliveryAddress    string     `json:"delivery_address"`
	DeliveryCity       string     `json:"delivery_city"`
	DeliveryPostalCode string     `json:"delivery_postal_code"`
	DeliveryNotes      string     `json:"delivery_notes"`
	Items              []CartItem `json:"mattress_configuration"`
	TotalPrice         float64    `json:"total_price"`
	TransactionID      string     `json:"transaction_id"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
}
