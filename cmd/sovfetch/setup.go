package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/ligustah/sovfetch/internal/config"
	"github.com/ligustah/sovfetch/internal/store"
)

// loadConfig merges the config file (flag, then SOVFETCH_CONFIG) and then
// the environment over the defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv("SOVFETCH_CONFIG")
	}

	cfg := config.Default()
	if path != "" {
		fileCfg, err := config.LoadFromFile(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}

	var envCfg config.Config
	if err := envCfg.LoadFromEnv(); err != nil {
		return config.Config{}, err
	}
	cfg = cfg.Merge(envCfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore returns a bucket store when a bucket is configured, otherwise
// the local filesystem.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.Bucket != "" {
		return store.OpenBucket(ctx, cfg.Bucket)
	}
	return store.NewFileStore(), nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(onSignal func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			if onSignal != nil {
				onSignal()
			}
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
