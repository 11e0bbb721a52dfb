package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ligustah/sovfetch/internal/catalog"
)

// Config defines configuration for the sovfetch CLI.
type Config struct {
	Years     []int         `yaml:"years"`
	Counties  []int         `yaml:"counties"`
	SourceURL string        `yaml:"source_url"`
	DestPath  string        `yaml:"dest_path"`
	Bucket    string        `yaml:"bucket"`
	Timeout   time.Duration `yaml:"timeout"`
	Quiet     bool          `yaml:"quiet"`
}

// Default returns the built-in catalog with local file output.
func Default() Config {
	cfg := Config{
		SourceURL: string(catalog.DefaultSource),
		DestPath:  string(catalog.DefaultDest),
	}
	for _, y := range catalog.DefaultYears {
		cfg.Years = append(cfg.Years, int(y))
	}
	for _, c := range catalog.DefaultCounties {
		cfg.Counties = append(cfg.Counties, int(c))
	}
	return cfg
}

// yamlConfig is used for YAML unmarshaling with a string timeout.
type yamlConfig struct {
	Years     []int  `yaml:"years"`
	Counties  []int  `yaml:"counties"`
	SourceURL string `yaml:"source_url"`
	DestPath  string `yaml:"dest_path"`
	Bucket    string `yaml:"bucket"`
	Timeout   string `yaml:"timeout"`
	Quiet     bool   `yaml:"quiet"`
}

// LoadFromFile loads configuration from a YAML file on top of Default.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if len(yc.Years) > 0 {
		cfg.Years = yc.Years
	}
	if len(yc.Counties) > 0 {
		cfg.Counties = yc.Counties
	}
	if yc.SourceURL != "" {
		cfg.SourceURL = yc.SourceURL
	}
	if yc.DestPath != "" {
		cfg.DestPath = yc.DestPath
	}
	if yc.Bucket != "" {
		cfg.Bucket = yc.Bucket
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	cfg.Quiet = yc.Quiet

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the SOVFETCH_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("SOVFETCH_YEARS"); v != "" {
		years, err := parseInts(v)
		if err != nil {
			return fmt.Errorf("parse SOVFETCH_YEARS: %w", err)
		}
		c.Years = years
	}
	if v := os.Getenv("SOVFETCH_COUNTIES"); v != "" {
		counties, err := parseInts(v)
		if err != nil {
			return fmt.Errorf("parse SOVFETCH_COUNTIES: %w", err)
		}
		c.Counties = counties
	}
	if v := os.Getenv("SOVFETCH_SOURCE_URL"); v != "" {
		c.SourceURL = v
	}
	if v := os.Getenv("SOVFETCH_DEST_PATH"); v != "" {
		c.DestPath = v
	}
	if v := os.Getenv("SOVFETCH_BUCKET"); v != "" {
		c.Bucket = v
	}
	if v := os.Getenv("SOVFETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SOVFETCH_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("SOVFETCH_QUIET"); v != "" {
		c.Quiet = v == "true" || v == "1"
	}
	return nil
}

// parseInts parses a comma separated list such as "12,14,16".
func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Years) == 0 {
		return errors.New("config: at least one year is required")
	}
	if len(c.Counties) == 0 {
		return errors.New("config: at least one county is required")
	}
	if c.SourceURL == "" {
		return errors.New("config: source_url is required")
	}
	if c.DestPath == "" {
		return errors.New("config: dest_path is required")
	}
	if c.Timeout < 0 {
		return errors.New("config: timeout must not be negative")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if len(override.Years) > 0 {
		c.Years = override.Years
	}
	if len(override.Counties) > 0 {
		c.Counties = override.Counties
	}
	if override.SourceURL != "" {
		c.SourceURL = override.SourceURL
	}
	if override.DestPath != "" {
		c.DestPath = override.DestPath
	}
	if override.Bucket != "" {
		c.Bucket = override.Bucket
	}
	if override.Timeout != 0 {
		c.Timeout = override.Timeout
	}
	if override.Quiet {
		c.Quiet = override.Quiet
	}
	return c
}

// Catalog builds the fetch catalog described by c.
func (c Config) Catalog() catalog.Catalog {
	cat := catalog.Catalog{
		Source: catalog.Template(c.SourceURL),
		Dest:   catalog.Template(c.DestPath),
	}
	for _, y := range c.Years {
		cat.Years = append(cat.Years, catalog.Year(y))
	}
	for _, county := range c.Counties {
		cat.Counties = append(cat.Counties, catalog.County(county))
	}
	return cat
}
