package blobstore

import (
	"context"
	"io"

	"github.com/hupe1980/vecstat/internal/resource"
)

// ThrottledStore wraps a BlobStore and admits reads through a resource
// controller, which limits read throughput and the bytes fetched into memory
// by ReadAll.
type ThrottledStore struct {
	inner BlobStore
	rc    *resource.Controller
}

// NewThrottledStore creates a ThrottledStore. A nil controller imposes no
// limits.
func NewThrottledStore(inner BlobStore, rc *resource.Controller) *ThrottledStore {
	return &ThrottledStore{inner: inner, rc: rc}
}

// Open implements BlobStore.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.rc.AcquireMemory(b.Size()); err != nil {
		_ = b.Close()
		return nil, err
	}
	return &throttledBlob{inner: b, rc: s.rc}, nil
}

// List implements BlobStore.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

type throttledBlob struct {
	inner Blob
	rc    *resource.Controller
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	n := len(p)
	if rest := b.inner.Size() - off; rest >= 0 && int64(n) > rest {
		n = int(rest)
	}
	if err := b.rc.AcquireRead(ctx, n); err != nil {
		return 0, err
	}
	return b.inner.ReadAt(ctx, p, off)
}

func (b *throttledBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	n := min(length, max(b.inner.Size()-off, 0))
	if err := b.rc.AcquireRead(ctx, int(n)); err != nil {
		return nil, err
	}
	return b.inner.ReadRange(ctx, off, length)
}

func (b *throttledBlob) Close() error {
	b.rc.ReleaseMemory(b.inner.Size())
	return b.inner.Close()
}

func (b *throttledBlob) Size() int64 {
	return b.inner.Size()
}
