package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolioapi/internal/config"
)

// minioStore implements FileStore against an S3-compatible backend
// (MinIO, AWS S3, etc.). The bucket plays the role of the storage root;
// object keys are always generated stored names, so the containment
// question of the local driver does not arise here.
// It is safe for concurrent use by multiple goroutines.
type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates a FileStore backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (FileStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStore{client: cli, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

func (m *minioStore) Store(ctx context.Context, r io.Reader, originalFilename string) (StoredFile, error) {
	body, err := ensureNonEmpty(r)
	if err != nil {
		return StoredFile{}, err
	}

	sf, err := newStoredFile(originalFilename)
	if err != nil {
		return StoredFile{}, err
	}

	_, err = m.client.PutObject(ctx, m.bucket, sf.StoredName, body, -1, minio.PutObjectOptions{
		ContentType: ContentTypeFor(sf.StoredName),
		UserMetadata: map[string]string{
			"original-filename": sf.OriginalName,
		},
	})
	if err != nil {
		return StoredFile{}, fmt.Errorf("store file: %w", err)
	}
	return sf, nil
}

func (m *minioStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	if storedName == "" {
		return nil, ErrNotFound
	}

	obj, err := m.client.GetObject(ctx, m.bucket, storedName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	// GetObject is lazy; Stat forces the first request so a missing key
	// surfaces here instead of on the first Read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return obj, nil
}

func (m *minioStore) Exists(ctx context.Context, storedName string) (bool, error) {
	if storedName == "" {
		return false, nil
	}

	_, err := m.client.StatObject(ctx, m.bucket, storedName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("stat file: %w", err)
	}
	return true, nil
}

func (m *minioStore) Remove(ctx context.Context, storedName string) (RemoveResult, error) {
	if storedName == "" {
		return AlreadyAbsent, nil
	}

	if _, err := m.client.StatObject(ctx, m.bucket, storedName, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return AlreadyAbsent, nil
		}
		return AlreadyAbsent, fmt.Errorf("stat file: %w", err)
	}

	if err := m.client.RemoveObject(ctx, m.bucket, storedName, minio.RemoveObjectOptions{}); err != nil {
		return AlreadyAbsent, fmt.Errorf("delete file: %w", err)
	}
	return Removed, nil
}
