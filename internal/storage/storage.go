package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the object-store client used for uploaded files.
// Implementations are S3-compatible and must rely on streaming I/O only.

// Part identifies one completed part of a multipart upload. Parts are
// completed in part-number order, not completion order.
type Part struct {
	Number int
	ETag   string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// ObjectStore is the client interface for the namespaced object bucket.
type ObjectStore interface {
	// InitiateMultipart opens a resumable multipart upload session for key.
	InitiateMultipart(ctx context.Context, key, contentType string) (uploadID string, err error)
	// UploadPart uploads one part and returns its part-number/ETag pair.
	UploadPart(ctx context.Context, key, uploadID string, partNumber int, data []byte) (Part, error)
	// CompleteMultipart finishes the session with the ordered part list.
	CompleteMultipart(ctx context.Context, key, uploadID string, parts []Part) (ObjectInfo, error)
	// AbortMultipart discards an uncompleted session so no partial object leaks.
	AbortMultipart(ctx context.Context, key, uploadID string) error

	// Put uploads a small object in one shot.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Copy duplicates an object within the bucket.
	Copy(ctx context.Context, srcKey, dstKey string) error
	// Delete removes a single object.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every object under the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error
	// ListKeys returns the keys of all objects under the given prefix.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	// PresignGet returns a time-limited URL for downloading the object
	// without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
