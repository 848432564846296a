package config

import (
	"os"
	"path/filepath"
)

// Environment variables that override file settings.
const (
	EnvDatabase = "PETROTECH_DB"
	EnvCatalog  = "PETROTECH_CATALOG"
	EnvListen   = "PETROTECH_LISTEN"
	EnvLogLevel = "PETROTECH_LOG_LEVEL"
)

// ApplyEnv overrides cfg with any PETROTECH_* variables that are set.
// PETROTECH_CATALOG is a list separated by the OS path list separator.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvDatabase); v != "" {
		cfg.Catalog.Database = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.Catalog.Paths = filepath.SplitList(v)
	}
	if v := os.Getenv(EnvListen); v != "" {
		cfg.Web.Listen = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}
