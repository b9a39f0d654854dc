package models

// CartItem is one configured product in the cart. The id identifies the
// configured combination (layer/cover + size), not a catalog row.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartTotal recomputes the total from the items. Checkout never trusts a
// total coming from the client.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
