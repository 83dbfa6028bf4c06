// Package storage wraps the MinIO S3 client used for intake photos and item
// images. The API never proxies image bytes; clients upload directly to
// object storage using short-lived presigned PUT URLs issued here.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/linenlady/inventory/pkg/config"
)

// ObjectStore wraps a MinIO client scoped to one bucket.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

// New connects to the object store and ensures the media bucket exists.
func New(ctx context.Context, cfg *config.Config) (*ObjectStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioRootUser, cfg.MinioRootPassword, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: new client: %w", err)
	}

	s := &ObjectStore{client: client, bucket: cfg.MinioBucket}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("storage: check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: create bucket %s: %w", cfg.MinioBucket, err)
		}
	}
	return s, nil
}

// Bucket returns the media bucket name.
func (s *ObjectStore) Bucket() string {
	return s.bucket
}

// PresignUpload returns a presigned PUT URL for objectPath, valid for expiry.
// The path namespace must already be validated by the caller.
func (s *ObjectStore) PresignUpload(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, expiry)
	if err != nil {
		return "", fmt.Errorf("storage: presign upload %s: %w", objectPath, err)
	}
	return u.String(), nil
}

// Remove deletes an object. Missing objects are not an error.
func (s *ObjectStore) Remove(ctx context.Context, objectPath string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: remove %s: %w", objectPath, err)
	}
	return nil
}

// Ping checks object store connectivity.
func (s *ObjectStore) Ping(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("storage: ping: %w", err)
	}
	return nil
}
