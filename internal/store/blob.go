package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// BlobStore writes objects to a gocloud.dev bucket.
type BlobStore struct {
	bucket *blob.Bucket
	owned  bool
}

// OpenBucket opens the bucket at url and returns a BlobStore that closes it
// on Close. The driver for the URL scheme must be registered by the caller.
func OpenBucket(ctx context.Context, url string) (*BlobStore, error) {
	bkt, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open bucket: %w", err)
	}
	return &BlobStore{bucket: bkt, owned: true}, nil
}

// NewBlobStore wraps an already opened bucket. Close does not close it.
func NewBlobStore(bucket *blob.Bucket) *BlobStore {
	return &BlobStore{bucket: bucket}
}

// Key maps a destination path to an object key.
func Key(path string) string {
	return strings.TrimLeft(path, "/")
}

// Write uploads r to the object named by path. The object is only replaced
// when the whole body has been written.
func (s *BlobStore) Write(ctx context.Context, path string, r io.Reader) (int64, error) {
	key := Key(path)

	// Cancelling the writer's context aborts the upload on failure.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(wctx, key, &blob.WriterOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}

	n, err := io.Copy(w, r)
	if err != nil {
		cancel()
		w.Close()
		return n, fmt.Errorf("%w: write %s: %w", ErrStore, key, err)
	}

	if err := w.Close(); err != nil {
		return n, fmt.Errorf("%w: close %s: %w", ErrStore, key, err)
	}
	return n, nil
}

// Stat returns object attributes for path.
func (s *BlobStore) Stat(ctx context.Context, path string) (Info, error) {
	key := Key(path)
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return Info{}, fmt.Errorf("%w: %s", ErrNotExist, key)
		}
		return Info{}, err
	}
	return Info{Name: key, Size: attrs.Size, ModTime: attrs.ModTime}, nil
}

// Close closes the bucket if it was opened by OpenBucket.
func (s *BlobStore) Close() error {
	if s.owned {
		return s.bucket.Close()
	}
	return nil
}
