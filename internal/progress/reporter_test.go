package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{256 * 1024 * 1024, "256.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
	}

	for _, tt := range tests {
		result := FormatBytes(tt.input)
		if result != tt.expected {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{0, "0s"},
		{14 * time.Second, "14s"},
		{90 * time.Second, "1m 30s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.input); got != tt.expected {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func fixedClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func TestReporterRun(t *testing.T) {
	var buf bytes.Buffer
	start := time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)
	reporter := NewReporter(Options{
		Output: &buf,
		Now:    fixedClock(start, start.Add(14*time.Second)),
	})

	reporter.Start(2)
	reporter.FileStarted("https://example.com/a.csv")
	reporter.FileCompleted("/tmp/a.csv", 2048, "200 OK", true)
	reporter.FileStarted("https://example.com/b.csv")
	reporter.FileCompleted("/tmp/b.csv", 9, "404 Not Found", false)
	reporter.Stop()

	out := buf.String()
	for _, want := range []string{
		"[sovfetch] Fetching 2 files\n",
		"[sovfetch] GET https://example.com/a.csv\n",
		"[sovfetch] Wrote 2.00 KB to /tmp/a.csv (200 OK)\n",
		"[sovfetch] warning: /tmp/b.csv was written from a non-success response (404 Not Found)\n",
		"[sovfetch] Done: 2/2 files | 2.01 KB | 14s\n",
		"[sovfetch] 1 files were written from non-success responses\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Source:") || strings.Contains(out, "Bucket:") {
		t.Errorf("target lines printed without being requested:\n%s", out)
	}
}

func TestReporterAborted(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(Options{Output: &buf, Prefix: "[test]"})

	reporter.Start(3)
	reporter.FileCompleted("/tmp/a.csv", 1, "200 OK", true)
	reporter.FileFailed(errors.New("connection refused"))
	reporter.Stop()
	reporter.Stop()

	out := buf.String()
	if !strings.Contains(out, "[test] Failed: connection refused\n") {
		t.Errorf("missing failure line:\n%s", out)
	}
	if !strings.Contains(out, "[test] Aborted: 1/3 files") {
		t.Errorf("missing aborted summary:\n%s", out)
	}
	if strings.Count(out, "Aborted") != 1 {
		t.Errorf("summary printed more than once:\n%s", out)
	}
	if strings.Contains(out, "warning") {
		t.Errorf("ok response must not be flagged:\n%s", out)
	}
}

func TestNilReporter(t *testing.T) {
	var r *Reporter
	r.Start(1)
	r.FileStarted("x")
	r.Target("a", "b")
	r.Bucket("mem://")
	r.FileCompleted("x", 1, "200 OK", true)
	r.FileFailed(errors.New("x"))
	r.Stop()
}

func TestReporterTarget(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(Options{Output: &buf})

	reporter.Start(1)
	reporter.Target("http://localhost/{year}/{county}.csv", "/tmp/{year}_{county}.csv")
	reporter.Bucket("file:///tmp/bucket")

	out := buf.String()
	for _, want := range []string{
		"[sovfetch] Source: http://localhost/{year}/{county}.csv\n",
		"[sovfetch] Destination: /tmp/{year}_{county}.csv\n",
		"[sovfetch] Bucket: file:///tmp/bucket\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, out)
		}
	}
}
