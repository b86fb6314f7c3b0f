package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the object store uploaded documents are delegated to.
type Storage interface {
	// Save writes the object under key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// URL returns the public URL clients use to fetch the object.
	URL(key string) string
}

type Config struct {
	Type      string // local, s3, cloudflare_r2
	BasePath  string // local root
	BaseURL   string // public URL prefix
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // R2 account endpoint or custom S3 endpoint
}

const (
	TypeLocal        = "local"
	TypeS3           = "s3"
	TypeCloudflareR2 = "cloudflare_r2"
)

// NewStorage builds the backend named by cfg.Type.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case TypeLocal, "":
		return NewLocalStorage(cfg)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeCloudflareR2:
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
