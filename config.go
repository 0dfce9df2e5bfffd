package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPageSize  = 10
	defaultView      = "all"
	defaultHighlight = "4" // ANSI dark blue
	defaultMarker    = ">>> "

	// maxPageSize is far taller than any terminal; every page is padded to
	// its size, so the bound also caps the rows drawn per frame.
	maxPageSize = 10000
)

// config holds defaults read from an optional YAML file. Flags given on the
// command line take precedence over it.
type config struct {
	PageSize  *int    `yaml:"page_size"`
	View      string  `yaml:"view"`
	Reverse   bool    `yaml:"reverse"`
	Highlight string  `yaml:"highlight"`
	Marker    *string `yaml:"marker"`
}

func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg config) error {
	if cfg.PageSize != nil && *cfg.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", *cfg.PageSize)
	}
	if cfg.PageSize != nil && *cfg.PageSize > maxPageSize {
		return fmt.Errorf("page_size must be at most %d, got %d", maxPageSize, *cfg.PageSize)
	}
	if cfg.Marker != nil && *cfg.Marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	return nil
}

// pickOpts is the fully resolved configuration of one pick.
type pickOpts struct {
	Input        string
	Output       string
	NumberOutput string
	Reverse      bool
	PageSize     int
	View         viewMode
	Highlight    string
	Marker       string
}

// apply fills every option the user did not set explicitly from cfg, then
// from the built-in defaults.
func (cfg config) apply(opts pickOpts, set func(name string) bool) pickOpts {
	if !set("page-size") {
		opts.PageSize = defaultPageSize
		if cfg.PageSize != nil {
			opts.PageSize = *cfg.PageSize
		}
	}
	if !set("view") {
		view := defaultView
		if cfg.View != "" {
			view = cfg.View
		}
		opts.View = parseViewMode(view)
	}
	if !set("reverse") {
		opts.Reverse = cfg.Reverse
	}

	opts.Highlight = defaultHighlight
	if cfg.Highlight != "" {
		opts.Highlight = cfg.Highlight
	}
	opts.Marker = defaultMarker
	if cfg.Marker != nil {
		opts.Marker = *cfg.Marker
	}
	return opts
}
