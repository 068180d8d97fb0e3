package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"file-portal-backend/internal/config"
)

// minioStore implements ObjectStore against an S3-compatible backend
// (MinIO, AWS S3, etc.). Safe for concurrent use.
type minioStore struct {
	core   *minio.Core
	bucket string
}

// NewMinIO creates the object-store client from configuration. It validates
// connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg *config.Config) (ObjectStore, error) {
	if cfg.StorageEndpoint == "" {
		return nil, fmt.Errorf("storage endpoint is required")
	}
	if cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" {
		return nil, fmt.Errorf("storage credentials are required")
	}
	if cfg.StorageBucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	core, err := minio.NewCore(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
		Region: cfg.StorageRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	ms := &minioStore{core: core, bucket: cfg.StorageBucket}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := core.Client.BucketExists(ctx, cfg.StorageBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := core.Client.MakeBucket(ctx, cfg.StorageBucket, minio.MakeBucketOptions{Region: cfg.StorageRegion}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

func (m *minioStore) InitiateMultipart(ctx context.Context, key, contentType string) (string, error) {
	uploadID, err := m.core.NewMultipartUpload(ctx, m.bucket, key, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("initiate multipart upload: %w", err)
	}
	return uploadID, nil
}

func (m *minioStore) UploadPart(ctx context.Context, key, uploadID string, partNumber int, data []byte) (Part, error) {
	objPart, err := m.core.PutObjectPart(ctx, m.bucket, key, uploadID, partNumber,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectPartOptions{})
	if err != nil {
		return Part{}, fmt.Errorf("upload part %d: %w", partNumber, err)
	}
	return Part{Number: objPart.PartNumber, ETag: objPart.ETag}, nil
}

func (m *minioStore) CompleteMultipart(ctx context.Context, key, uploadID string, parts []Part) (ObjectInfo, error) {
	completeParts := make([]minio.CompletePart, 0, len(parts))
	for _, p := range parts {
		completeParts = append(completeParts, minio.CompletePart{
			PartNumber: p.Number,
			ETag:       p.ETag,
		})
	}
	info, err := m.core.CompleteMultipartUpload(ctx, m.bucket, key, uploadID, completeParts, minio.PutObjectOptions{})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("complete multipart upload: %w", err)
	}
	return ObjectInfo{Key: key, Size: info.Size, ETag: info.ETag}, nil
}

func (m *minioStore) AbortMultipart(ctx context.Context, key, uploadID string) error {
	return m.core.AbortMultipartUpload(ctx, m.bucket, key, uploadID)
}

func (m *minioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (ObjectInfo, error) {
	info, err := m.core.Client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{Key: key, Size: info.Size, ETag: info.ETag}, nil
}

func (m *minioStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := m.core.Client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (m *minioStore) Copy(ctx context.Context, srcKey, dstKey string) error {
	_, err := m.core.Client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: m.bucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: m.bucket, Object: srcKey},
	)
	return err
}

func (m *minioStore) Delete(ctx context.Context, key string) error {
	return m.core.Client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

// DeletePrefix lists and removes every object under prefix. An empty prefix
// listing is not an error, so purging an already-empty namespace is safe.
func (m *minioStore) DeletePrefix(ctx context.Context, prefix string) error {
	keys, err := m.ListKeys(ctx, prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := m.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

func (m *minioStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for obj := range m.core.Client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (m *minioStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.core.Client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
