package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Options configures the progress reporter.
type Options struct {
	// Output is where to write progress output.
	// Default: os.Stderr
	Output io.Writer

	// Prefix is prepended to every line.
	// Default: "[sovfetch]"
	Prefix string

	// Now returns the current time. Default: time.Now
	Now func() time.Time
}

// Reporter outputs human-readable progress information.
type Reporter struct {
	opts Options

	mu             sync.Mutex
	total          int
	completedFiles atomic.Int32
	failedFiles    atomic.Int32
	nonOK          atomic.Int32
	completedBytes atomic.Int64
	startTime      time.Time
	stopped        bool
}

// NewReporter creates a new progress reporter.
func NewReporter(opts Options) *Reporter {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Prefix == "" {
		opts.Prefix = "[sovfetch]"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Reporter{opts: opts}
}

// Start prints the header for a run of total files.
func (r *Reporter) Start(total int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.total = total
	r.startTime = r.opts.Now()
	r.mu.Unlock()

	r.printf("Fetching %d files\n", total)
}

// Target prints the source and destination templates. Callers use it when
// they differ from the built-in archive layout.
func (r *Reporter) Target(source, dest string) {
	if r == nil {
		return
	}
	r.printf("Source: %s\n", source)
	r.printf("Destination: %s\n", dest)
}

// Bucket prints the bucket that destinations are written to.
func (r *Reporter) Bucket(url string) {
	if r == nil {
		return
	}
	r.printf("Bucket: %s\n", url)
}

// FileStarted marks the request for url as issued.
func (r *Reporter) FileStarted(url string) {
	if r == nil {
		return
	}
	r.printf("GET %s\n", url)
}

// FileCompleted records a written file. Responses that were not ok are
// flagged but counted as completed, since the body was written.
func (r *Reporter) FileCompleted(path string, size int64, status string, ok bool) {
	if r == nil {
		return
	}
	r.completedFiles.Add(1)
	r.completedBytes.Add(size)

	r.printf("Wrote %s to %s (%s)\n", FormatBytes(size), path, status)
	if !ok {
		r.nonOK.Add(1)
		r.printf("warning: %s was written from a non-success response (%s)\n", path, status)
	}
}

// FileFailed records a failure that aborts the run.
func (r *Reporter) FileFailed(err error) {
	if r == nil {
		return
	}
	r.failedFiles.Add(1)
	r.printf("Failed: %v\n", err)
}

// Stop prints the summary line. Further calls are no-ops.
func (r *Reporter) Stop() {
	if r == nil {
		return
	}
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	total := r.total
	elapsed := r.opts.Now().Sub(r.startTime)
	r.mu.Unlock()

	completed := int(r.completedFiles.Load())
	status := "Done"
	if r.failedFiles.Load() > 0 {
		status = "Aborted"
	}
	r.printf("%s: %d/%d files | %s | %s\n",
		status,
		completed,
		total,
		FormatBytes(r.completedBytes.Load()),
		formatDuration(elapsed),
	)
	if n := r.nonOK.Load(); n > 0 {
		r.printf("%d files were written from non-success responses\n", n)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.opts.Output, r.opts.Prefix, " ")
	fmt.Fprintf(r.opts.Output, format, args...)
}

// FormatBytes formats bytes as a human-readable string.
func FormatBytes(b int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case b >= GB:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(GB))
	case b >= MB:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(MB))
	case b >= KB:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(KB))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// formatDuration formats a duration as a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
