package models

// LayerRow is one mattress_layers table row: a layer priced for one size.
type LayerRow struct {
	LayerID          int     `json:"layer_id"`
	LayerName        string  `json:"layer_name"`
	Size             string  `json:"size"`
	Price            float64 `json:"price"`
	AvailableHeights []int   `json:"available_heights"`
	IconPath         string  `json:"icon_path"`
	Slug             string  `json:"slug"`
}

// Layer is the storefront shape of a layer: prices keyed by size.
type Layer struct {
	ID               int                `json:"id"`
	Name             string             `json:"name"`
	Prices           map[string]float64 `json:"prices"`
	AvailableHeights []int              `json:"availableHeights"`
	Icon             string             `json:"icon"`
	Slug             string             `json:"slug"`
}

// Cover is a mattress cover option.
type Cover struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Slug  string  `json:"slug"`
	Icon  string  `json:"icon"`
}
