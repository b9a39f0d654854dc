package cache

import (
	"context"
	"encoding/json"
	"time"

	"matrace_backend/internal/database"
	"matrace_backend/internal/models"
	"matrace_backend/internal/store"
)

const (
	CatalogCacheTTL = 10 * time.Minute

	layersCacheKey = "catalog:layers"
	coversCacheKey = "catalog:covers"
)

// GetLayers returns the grouped layer catalog, from Redis when warm,
// falling through to ScyllaDB otherwise.
func GetLayers(ctx context.Context) ([]models.Layer, error) {
	data, err := database.Redis.Get(ctx, layersCacheKey).Result()
	if err == nil {
		var layers []models.Layer
		if json.Unmarshal([]byte(data), &layers) == nil {
			return layers, nil
		}
	}

	rows, err := store.ListLayers(ctx)
	if err != nil {
		return nil, err
	}
	layers := store.GroupLayers(rows)

	jsonData, _ := json.Marshal(layers)
	database.Redis.Set(ctx, layersCacheKey, jsonData, CatalogCacheTTL)

	return layers, nil
}

// GetCovers returns the cover catalog, Redis first.
func GetCovers(ctx context.Context) ([]models.Cover, error) {
	data, err := database.Redis.Get(ctx, coversCacheKey).Result()
	if err == nil {
		var covers []models.Cover
		if json.Unmarshal([]byte(data), &covers) == nil {
			return covers, nil
		}
	}

	covers, err := store.ListCovers(ctx)
	if err != nil {
		return nil, err
	}

	jsonData, _ := json.Marshal(covers)
	database.Redis.Set(ctx, coversCacheKey, jsonData, CatalogCacheTTL)

	return covers, nil
}

// InvalidateCatalog drops the cached catalog. The import tool calls this
// after reseeding.
func InvalidateCatalog(ctx context.Context) {
	database.Redis.Del(ctx, layersCacheKey, coversCacheKey)
}
