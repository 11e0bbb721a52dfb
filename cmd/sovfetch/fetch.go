package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ligustah/sovfetch/internal/fetcher"
	sovhttp "github.com/ligustah/sovfetch/internal/http"
	"github.com/ligustah/sovfetch/internal/progress"
)

// runFetch downloads every catalog entry in order and stops at the first
// failure.
func runFetch(args []string) int {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)

	configPath := fs.String("config", "", "Path to YAML config file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: sovfetch fetch [options]

Download every catalog file and write the raw response body to its
destination, replacing existing files. Responses are written whatever
their status code. The first network or storage failure aborts the run.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitInvalidArgs
	}

	ctx, cancel := signalContext(func() {
		fmt.Fprintln(os.Stderr, "\n[sovfetch] Received interrupt, shutting down...")
	})
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitStorageError
	}
	defer st.Close()

	opts := sovhttp.DefaultOptions()
	opts.Timeout = cfg.Timeout
	client := sovhttp.NewClient(opts)
	defer client.CloseIdleConnections()

	var reporter *progress.Reporter
	if !cfg.Quiet {
		reporter = progress.NewReporter(progress.Options{Output: os.Stderr})
	}
	if cfg.Bucket != "" {
		reporter.Bucket(cfg.Bucket)
	}

	_, err = fetcher.New(cfg.Catalog(), client, st, reporter).Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		switch {
		case ctx.Err() != nil:
			return ExitGeneralError
		case errors.Is(err, fetcher.ErrNetwork):
			return ExitNetworkError
		case errors.Is(err, fetcher.ErrFileSystem):
			return ExitStorageError
		default:
			return ExitGeneralError
		}
	}

	return ExitSuccess
}
