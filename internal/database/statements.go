package database

// CQL for the hot order and catalog queries. gocql prepares a statement once
// per session the first time it runs and reuses the prepared id for every
// later Query with the same text, so each call site binds its values on its
// own per-call Query. A single bound *gocql.Query must never be shared
// between goroutines.
const (
	InsertOrderCQL = `INSERT INTO orders (order_id, customer_name, customer_email, customer_phone,
		delivery_method, payment_method, delivery_address, delivery_city, delivery_postal_code, delivery_notes,
		mattress_configuration, total_price, transaction_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	ListLayersCQL = `SELECT layer_id, layer_name, size, price, available_heights, icon_path, slug
		FROM mattress_layers`

	ListCoversCQL = `SELECT cover_id, cover_name, price, slug, icon_path
		FROM mattress_covers`
)
