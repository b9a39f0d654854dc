package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"matrace_backend/internal/cache"
	"matrace_backend/internal/config"
	"matrace_backend/internal/database"
	"matrace_backend/internal/models"
	"matrace_backend/internal/services"
)

// catalogFile mirrors the storefront's layers-config.json: layers with
// per-size prices plus the cover list.
type catalogFile struct {
	MattressLayers []models.Layer `json:"mattressLayers"`
	Covers         []models.Cover `json:"covers"`
}

func main() {
	configPath := flag.String("config", "data/layers-config.json", "catalog JSON file")
	iconsDir := flag.String("icons", "", "directory with icon files to upload to MinIO (optional)")
	flag.Parse()

	config.Load()
	database.ConnectDatabases()

	ctx := context.Background()

	raw, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("❌ Could not read catalog file: %v", err)
	}

	var catalog catalogFile
	if err := json.Unmarshal(raw, &catalog); err != nil {
		log.Fatalf("❌ Invalid catalog JSON: %v", err)
	}

	log.Printf("📊 Found %d layer types", len(catalog.MattressLayers))
	log.Printf("🧵 Found %d cover types", len(catalog.Covers))

	if *iconsDir != "" {
		uploadIcons(ctx, *iconsDir)
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		log.Fatalf("❌ Catalog session unavailable: %v", err)
	}

	// Layers flatten to one row per size. The INSERTs are keyed, so a rerun
	// overwrites instead of duplicating.
	layerRows := 0
	for _, layer := range catalog.MattressLayers {
		for size, price := range layer.Prices {
			err := session.Query(`INSERT INTO mattress_layers (layer_id, layer_name, size, price, available_heights, icon_path, slug)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				layer.ID, layer.Name, size, price, layer.AvailableHeights, layer.Icon, layer.Slug,
			).WithContext(ctx).Exec()
			if err != nil {
				log.Fatalf("❌ Layer import failed (%s, %s): %v", layer.Slug, size, err)
			}
			layerRows++
		}
	}
	log.Printf("✅ Imported %d layer rows", layerRows)

	for _, cover := range catalog.Covers {
		err := session.Query(`INSERT INTO mattress_covers (cover_id, cover_name, price, slug, icon_path)
			VALUES (?, ?, ?, ?, ?)`,
			cover.ID, cover.Name, cover.Price, cover.Slug, cover.Icon,
		).WithContext(ctx).Exec()
		if err != nil {
			log.Fatalf("❌ Cover import failed (%s): %v", cover.Slug, err)
		}
	}
	log.Printf("✅ Imported %d covers", len(catalog.Covers))

	cache.InvalidateCatalog(ctx)
	log.Println("🎉 Catalog import finished")
}

func uploadIcons(ctx context.Context, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("❌ Could not read icons directory: %v", err)
	}

	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		key, err := services.UploadIcon(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Fatalf("❌ Icon upload failed (%s): %v", entry.Name(), err)
		}
		uploaded++
		log.Printf("📤 Uploaded icon %s", key)
	}
	log.Printf("✅ Uploaded %d icons", uploaded)
}
