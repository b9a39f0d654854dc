package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"matrace_backend/internal/database"

	"github.com/minio/minio-go/v7"
)

// IconURLTTL is how long a presigned catalog icon link stays valid.
const IconURLTTL = 1 * time.Hour

// UploadIcon stores one catalog icon in the configured bucket and returns
// its object key. Used by the import tool.
func UploadIcon(ctx context.Context, localPath string) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO is not configured")
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	key := "icons/" + path.Base(localPath)
	bucket := os.Getenv("MINIO_BUCKET")

	_, err = database.MinIO.PutObject(ctx, bucket, key, f, info.Size(),
		minio.PutObjectOptions{ContentType: contentTypeFor(key)})
	if err != nil {
		return "", err
	}

	return key, nil
}

// SignedIconURL turns a stored icon key into a presigned URL. When MinIO is
// not configured the raw path is returned unchanged so the storefront can
// still resolve bundled assets.
func SignedIconURL(ctx context.Context, iconPath string) string {
	if database.MinIO == nil || iconPath == "" {
		return iconPath
	}

	presigned, err := database.MinIO.PresignedGetObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		iconPath,
		IconURLTTL,
		url.Values{},
	)
	if err != nil {
		return iconPath
	}

	return presigned.String()
}

func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		return "image/png"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
