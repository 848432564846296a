package config

import (
	"fmt"
	"slices"

	"github.com/petrotech/petrotech/internal/filter"
)

// Config represents the top-level application configuration.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Browse  BrowseConfig  `toml:"browse"`
	Web     WebConfig     `toml:"web"`
	Log     LogConfig     `toml:"log"`
}

// CatalogConfig selects where the catalog is read from. Database wins over
// Paths; when both are empty the built-in catalog is used.
type CatalogConfig struct {
	Paths    []string `toml:"paths"`
	Database string   `toml:"database"`
}

// BrowseConfig holds the initial view settings for both presentations.
type BrowseConfig struct {
	DefaultSort    string `toml:"default_sort"`
	ShowCategories bool   `toml:"show_categories"`
	MarkdownStyle  string `toml:"markdown_style"`
}

// WebConfig holds settings for the serve command.
type WebConfig struct {
	Listen string `toml:"listen"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

var (
	logLevels      = []string{"debug", "info", "warn", "error"}
	logFormats     = []string{"json", "console"}
	markdownStyles = []string{"dark", "light", "notty", "auto"}
)

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Browse: BrowseConfig{
			DefaultSort:    string(filter.DefaultSortOrder),
			ShowCategories: true,
			MarkdownStyle:  "dark",
		},
		Web: WebConfig{
			Listen: "127.0.0.1:8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := filter.ParseSortOrder(c.Browse.DefaultSort); err != nil {
		return fmt.Errorf("browse.default_sort: %w", err)
	}
	if !slices.Contains(markdownStyles, c.Browse.MarkdownStyle) {
		return fmt.Errorf("browse.markdown_style: unknown style %q", c.Browse.MarkdownStyle)
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if c.Web.Listen == "" {
		return fmt.Errorf("web.listen: required")
	}
	return nil
}

// SortOrder returns the configured initial sort order, falling back to the
// default when the setting is invalid.
func (c *Config) SortOrder() filter.SortOrder {
	order, err := filter.ParseSortOrder(c.Browse.DefaultSort)
	if err != nil {
		return filter.DefaultSortOrder
	}
	return order
}
