package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ligustah/sovfetch/internal/progress"
	"github.com/ligustah/sovfetch/internal/store"
)

// runVerify checks that every catalog destination exists. File contents
// are not inspected.
func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)

	configPath := fs.String("config", "", "Path to YAML config file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: sovfetch verify [options]

Check that every catalog destination exists and report its size.
Does not download anything or inspect file contents.

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

	ctx, cancel := signalContext(nil)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitStorageError
	}
	defer st.Close()

	entries := cfg.Catalog().Entries()
	missing := 0
	for _, e := range entries {
		info, err := st.Stat(ctx, e.Path)
		switch {
		case errors.Is(err, store.ErrNotExist):
			missing++
			fmt.Fprintf(stdout, "MISSING  %s\n", e.Path)
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitStorageError
		default:
			fmt.Fprintf(stdout, "OK       %s (%s)\n", e.Path, progress.FormatBytes(info.Size))
		}
	}

	fmt.Fprintf(stdout, "Files: %d present, %d missing\n", len(entries)-missing, missing)
	if missing > 0 {
		fmt.Fprintln(stdout, "Status: INCOMPLETE")
		return ExitVerifyFailed
	}
	fmt.Fprintln(stdout, "Status: COMPLETE")
	return ExitSuccess
}
