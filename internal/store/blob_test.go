package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func openMemStore(t *testing.T) (*BlobStore, *blob.Bucket) {
	t.Helper()
	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	if err != nil {
		t.Fatalf("open bucket: %v", err)
	}
	t.Cleanup(func() { bucket.Close() })
	return NewBlobStore(bucket), bucket
}

func TestBlobStoreWrite(t *testing.T) {
	ctx := context.Background()
	s, bucket := openMemStore(t)

	n, err := s.Write(ctx, "/data/processed/c083_g20_sov_data_by_g20_srprec.csv", strings.NewReader("a,b\n"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 bytes, got %d", n)
	}

	data, err := bucket.ReadAll(ctx, "data/processed/c083_g20_sov_data_by_g20_srprec.csv")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "a,b\n" {
		t.Errorf("unexpected content %q", string(data))
	}
}

func TestBlobStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	s, bucket := openMemStore(t)

	if _, err := s.Write(ctx, "out.csv", strings.NewReader("first version")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Write(ctx, "out.csv", strings.NewReader("second")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := bucket.ReadAll(ctx, "out.csv")
	if string(data) != "second" {
		t.Errorf("expected 'second', got %q", string(data))
	}
}

func TestBlobStoreFailedWriteKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	s, bucket := openMemStore(t)

	if _, err := s.Write(ctx, "out.csv", strings.NewReader("previous")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	_, err := s.Write(ctx, "out.csv", io.MultiReader(strings.NewReader("partial"), failingReader{}))
	if !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}

	data, _ := bucket.ReadAll(ctx, "out.csv")
	if string(data) != "previous" {
		t.Errorf("expected previous object to survive, got %q", string(data))
	}
}

func TestBlobStoreStat(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemStore(t)

	_, err := s.Stat(ctx, "/missing.csv")
	if !errors.Is(err, ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}

	s.Write(ctx, "/present.csv", strings.NewReader("123"))
	info, err := s.Stat(ctx, "/present.csv")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size != 3 || info.Name != "present.csv" {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestOpenBucket(t *testing.T) {
	ctx := context.Background()
	s, err := OpenBucket(ctx, "mem://")
	if err != nil {
		t.Fatalf("OpenBucket: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}

	if _, err := OpenBucket(ctx, "nosuchscheme://bucket"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/data/processed/a.csv", "data/processed/a.csv"},
		{"a.csv", "a.csv"},
		{"//a.csv", "a.csv"},
	}
	for _, tt := range tests {
		if got := Key(tt.input); got != tt.expected {
			t.Errorf("Key(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
