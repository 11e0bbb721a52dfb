package main

import (
	"flag"
	"fmt"
	"os"
)

// runList prints the catalog in fetch order without touching the network
// or the destination.
func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	configPath := fs.String("config", "", "Path to YAML config file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: sovfetch list [options]

Print "URL -> destination" for every catalog file in fetch order.

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

	for _, e := range cfg.Catalog().Entries() {
		fmt.Fprintf(stdout, "%s -> %s\n", e.URL, e.Path)
	}
	return ExitSuccess
}
