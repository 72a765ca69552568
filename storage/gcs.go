package storage

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Config selects how the GCS client authenticates.
// Empty CredentialsFile means ambient application default credentials.
// Endpoint points the client at an emulator and disables authentication.
type Config struct {
	CredentialsFile string
	Endpoint        string
}

// GCS writes blobs to Google Cloud Storage.
type GCS struct {
	client *gcs.Client
}

// ClientOptions translates cfg into client options.
func (cfg Config) ClientOptions() []option.ClientOption {
	switch {
	case cfg.Endpoint != "":
		return []option.ClientOption{option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication()}
	case cfg.CredentialsFile != "":
		return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}
	default:
		return nil
	}
}

// NewGCS creates a GCS client configured by cfg.
func NewGCS(ctx context.Context, cfg Config) (*GCS, error) {
	client, err := gcs.NewClient(ctx, cfg.ClientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCS{client: client}, nil
}

// WriteBlob uploads data to bucket/key with the given content type in a single attempt.
func (g *GCS) WriteBlob(ctx context.Context, bucket, key, contentType string, data []byte) error {
	w := g.client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object: %w", err)
	}

	return nil
}

// Close releases the underlying client.
func (g *GCS) Close() error {
	return g.client.Close()
}
