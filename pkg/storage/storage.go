package storage

import (
	"context"
	"io"
)

// Storage stores objects by key.
type Storage interface {
	// Put uploads size bytes from r under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (Object, error)
	// Get opens the object. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL of key.
	URL(key string) string
}

// Object describes a stored file.
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Config holds S3 connection settings.
type Config struct {
	Bucket    string `env:"S3_BUCKET"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	Endpoint  string `env:"S3_ENDPOINT"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	// PublicURL is a CDN prefix used instead of the bucket URL.
	PublicURL string `env:"S3_PUBLIC_URL"`
	// PathStyle is required by MinIO and most self-hosted S3 servers.
	PathStyle bool `env:"S3_PATH_STYLE"`
}

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// Enabled reports whether enough settings are present to build a client.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	return nil
}
