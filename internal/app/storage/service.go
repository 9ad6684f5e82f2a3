// Package storage abstracts the S3-compatible object store holding the
// shared resource files.
package storage

import (
	"context"
	"io"
	"time"
)

// ServiceConfig carries the credentials and location of the object store.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// StorageService is the interface the handlers program against; tests swap in
// an in-memory implementation.
type StorageService interface {
	// Upload stores the object under key with the given content type.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) error

	// PresignDownload returns a time-limited URL for fetching the object.
	PresignDownload(ctx context.Context, key string, duration time.Duration) (string, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// NewStorageService builds the S3-backed StorageService.
func NewStorageService(cfg ServiceConfig) (StorageService, error) {
	return newS3Client(cfg)
}
