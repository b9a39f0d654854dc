package store

import (
	"context"
	"fmt"
	"sort"

	"matrace_backend/internal/database"
	"matrace_backend/internal/models"
)

// ListLayers reads every mattress_layers row (one row per layer+size).
func ListLayers(ctx context.Context) ([]models.LayerRow, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, fmt.Errorf("catalog session: %w", err)
	}

	iter := session.Query(database.ListLayersCQL).WithContext(ctx).Iter()

	var rows []models.LayerRow
	var r models.LayerRow
	for iter.Scan(&r.LayerID, &r.LayerName, &r.Size, &r.Price, &r.AvailableHeights, &r.IconPath, &r.Slug) {
		heights := make([]int, len(r.AvailableHeights))
		copy(heights, r.AvailableHeights)
		r.AvailableHeights = heights
		rows = append(rows, r)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("list layers: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].LayerID < rows[j].LayerID })
	return rows, nil
}

// GroupLayers reshapes per-size rows into the storefront layer shape: one
// entry per layer with prices keyed by size.
func GroupLayers(rows []models.LayerRow) []models.Layer {
	var layers []models.Layer
	index := make(map[int]int)

	for _, row := range rows {
		i, seen := index[row.LayerID]
		if !seen {
			layers = append(layers, models.Layer{
				ID:               row.LayerID,
				Name:             row.LayerName,
				Prices:           make(map[string]float64),
				AvailableHeights: row.AvailableHeights,
				Icon:             row.IconPath,
				Slug:             row.Slug,
			})
			i = len(layers) - 1
			index[row.LayerID] = i
		}
		layers[i].Prices[row.Size] = row.Price
	}

	return layers
}

// ListCovers reads the mattress_covers collection, ordered by cover id.
func ListCovers(ctx context.Context) ([]models.Cover, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, fmt.Errorf("catalog session: %w", err)
	}

	iter := session.Query(database.ListCoversCQL).WithContext(ctx).Iter()

	var covers []models.Cover
	var c models.Cover
	for iter.Scan(&c.ID, &c.Name, &c.Price, &c.Slug, &c.Icon) {
		covers = append(covers, c)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("list covers: %w", err)
	}

	sort.Slice(covers, func(i, j int) bool { return covers[i].ID < covers[j].ID })
	return covers, nil
}
