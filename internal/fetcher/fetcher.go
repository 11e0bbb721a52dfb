package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ligustah/sovfetch/internal/catalog"
	sovhttp "github.com/ligustah/sovfetch/internal/http"
	"github.com/ligustah/sovfetch/internal/progress"
	"github.com/ligustah/sovfetch/internal/store"
)

// Failure classes, matched with errors.Is.
var (
	ErrNetwork    = errors.New("fetcher: network failure")
	ErrFileSystem = errors.New("fetcher: file system failure")
)

// Op names the step of an entry that failed.
type Op string

const (
	OpGet   Op = "get"
	OpWrite Op = "write"
)

// Error reports the entry and step at which a run stopped.
//
// Use errors.As to extract it, and errors.Is with ErrNetwork or
// ErrFileSystem to classify it.
type Error struct {
	Entry catalog.Entry
	Op    Op
	Err   error
}

func (e *Error) Error() string {
	switch e.Op {
	case OpGet:
		return fmt.Sprintf("%s: get %s: %v", e.Entry.Pair, e.Entry.URL, e.Err)
	default:
		return fmt.Sprintf("%s: write %s: %v", e.Entry.Pair, e.Entry.Path, e.Err)
	}
}

func (e *Error) Unwrap() []error {
	class := ErrFileSystem
	if e.Op == OpGet {
		class = ErrNetwork
	}
	return []error{class, e.Err}
}

// File records one completed entry.
type File struct {
	catalog.Entry
	StatusCode int
	Bytes      int64
}

// Result lists completed entries in the order they were written.
type Result struct {
	Files []File
}

// Getter issues a single GET.
type Getter interface {
	Get(ctx context.Context, url string) (*sovhttp.Response, error)
}

// Fetcher downloads a catalog into a store.
type Fetcher struct {
	catalog  catalog.Catalog
	client   Getter
	store    store.Store
	reporter *progress.Reporter
}

// New creates a Fetcher. reporter may be nil.
func New(cat catalog.Catalog, client Getter, st store.Store, reporter *progress.Reporter) *Fetcher {
	return &Fetcher{
		catalog:  cat,
		client:   client,
		store:    st,
		reporter: reporter,
	}
}

// Run fetches every entry sequentially, years outer and counties inner.
// It stops at the first failure and returns the partial Result with an
// *Error. Result is never nil.
func (f *Fetcher) Run(ctx context.Context) (*Result, error) {
	entries := f.catalog.Entries()
	result := &Result{Files: make([]File, 0, len(entries))}

	f.reporter.Start(len(entries))
	defer f.reporter.Stop()
	if f.catalog.Source != catalog.DefaultSource || f.catalog.Dest != catalog.DefaultDest {
		f.reporter.Target(string(f.catalog.Source), string(f.catalog.Dest))
	}

	for _, e := range entries {
		file, err := f.fetchOne(ctx, e)
		if err != nil {
			f.reporter.FileFailed(err)
			return result, err
		}
		result.Files = append(result.Files, file)
	}

	return result, nil
}

// fetchOne downloads a single entry. The response is read in full before the
// destination is opened, so a failed or truncated response leaves it as it was.
func (f *Fetcher) fetchOne(ctx context.Context, e catalog.Entry) (File, error) {
	f.reporter.FileStarted(e.URL)

	resp, err := f.client.Get(ctx, e.URL)
	if err != nil {
		return File{}, &Error{Entry: e, Op: OpGet, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, &Error{Entry: e, Op: OpGet, Err: fmt.Errorf("%w: read body: %w", sovhttp.ErrRequest, err)}
	}

	n, err := f.store.Write(ctx, e.Path, bytes.NewReader(body))
	if err != nil {
		return File{}, &Error{Entry: e, Op: OpWrite, Err: err}
	}

	f.reporter.FileCompleted(e.Path, n, resp.Status, resp.OK())

	return File{Entry: e, StatusCode: resp.StatusCode, Bytes: n}, nil
}

