// Package config defines configuration for the sovfetch CLI.
//
// With no configuration at all, sovfetch fetches the built-in catalog into
// /data/processed. Every value can be overridden via:
//   - YAML configuration file (-config or SOVFETCH_CONFIG)
//   - Environment variables (SOVFETCH_ prefix)
//
// Environment variables win over the file.
//
// # Structure
//
//	type Config struct {
//	    Years     []int
//	    Counties  []int
//	    SourceURL string
//	    DestPath  string
//	    Bucket    string
//	    Timeout   time.Duration
//	    Quiet     bool
//	}
package config
