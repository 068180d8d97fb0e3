package testutils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"file-portal-backend/internal/storage"

	"github.com/google/uuid"
)

// FakeObjectStore is an in-memory storage.ObjectStore for tests that need to
// observe real object state, such as multipart reassembly or the template
// prefix holding exactly one object after promotion. Mocks cover call
// verification; this covers behavior.
type FakeObjectStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	sessions map[string]*fakeSession
}

type fakeSession struct {
	key   string
	parts map[int][]byte
}

// NewFakeObjectStore creates an empty in-memory store
func NewFakeObjectStore() *FakeObjectStore {
	return &FakeObjectStore{
		objects:  make(map[string][]byte),
		sessions: make(map[string]*fakeSession),
	}
}

// Object returns a stored object's bytes and whether it exists
func (s *FakeObjectStore) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

// Keys returns every stored key, sorted
func (s *FakeObjectStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OpenSessions returns the number of multipart sessions not yet completed
// or aborted
func (s *FakeObjectStore) OpenSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Seed stores an object directly, bypassing the upload path
func (s *FakeObjectStore) Seed(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
}

// InitiateMultipart opens a multipart session
func (s *FakeObjectStore) InitiateMultipart(_ context.Context, key, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uploadID := uuid.New().String()
	s.sessions[uploadID] = &fakeSession{key: key, parts: make(map[int][]byte)}
	return uploadID, nil
}

// UploadPart stores one part inside the session
func (s *FakeObjectStore) UploadPart(_ context.Context, key, uploadID string, partNumber int, data []byte) (storage.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[uploadID]
	if !ok || session.key != key {
		return storage.Part{}, fmt.Errorf("unknown upload session %q", uploadID)
	}
	session.parts[partNumber] = append([]byte(nil), data...)
	return storage.Part{Number: partNumber, ETag: fmt.Sprintf("etag-%d", partNumber)}, nil
}

// CompleteMultipart reassembles the parts in part-number order
func (s *FakeObjectStore) CompleteMultipart(_ context.Context, key, uploadID string, parts []storage.Part) (storage.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[uploadID]
	if !ok || session.key != key {
		return storage.ObjectInfo{}, fmt.Errorf("unknown upload session %q", uploadID)
	}

	ordered := append([]storage.Part(nil), parts...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	var buf bytes.Buffer
	for _, p := range ordered {
		data, ok := session.parts[p.Number]
		if !ok {
			return storage.ObjectInfo{}, fmt.Errorf("part %d was never uploaded", p.Number)
		}
		buf.Write(data)
	}

	s.objects[key] = buf.Bytes()
	delete(s.sessions, uploadID)
	return storage.ObjectInfo{Key: key, Size: int64(buf.Len()), ETag: "etag-complete"}, nil
}

// AbortMultipart discards the session and its parts
func (s *FakeObjectStore) AbortMultipart(_ context.Context, key, uploadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[uploadID]
	if !ok || session.key != key {
		return fmt.Errorf("unknown upload session %q", uploadID)
	}
	delete(s.sessions, uploadID)
	return nil
}

// Put stores a small object in one shot
func (s *FakeObjectStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (storage.ObjectInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return storage.ObjectInfo{Key: key, Size: int64(len(data)), ETag: "etag-put"}, nil
}

// Get retrieves an object's content
func (s *FakeObjectStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %q not found", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Copy duplicates an object
func (s *FakeObjectStore) Copy(_ context.Context, srcKey, dstKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[srcKey]
	if !ok {
		return fmt.Errorf("object %q not found", srcKey)
	}
	s.objects[dstKey] = append([]byte(nil), data...)
	return nil
}

// Delete removes an object; deleting a missing key is not an error, matching
// S3 semantics
func (s *FakeObjectStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// DeletePrefix removes every object under the prefix
func (s *FakeObjectStore) DeletePrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			delete(s.objects, k)
		}
	}
	return nil
}

// ListKeys returns the keys under the prefix, sorted
func (s *FakeObjectStore) ListKeys(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// PresignGet returns a deterministic fake URL
func (s *FakeObjectStore) PresignGet(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/%s?expires=%d", key, int64(expiry.Seconds())), nil
}
