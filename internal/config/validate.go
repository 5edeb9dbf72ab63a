package config

import "fmt"

var (
	validLogFormats = map[string]struct{}{"console": {}, "json": {}}
	validLogLevels  = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.InstallRoot == "" {
		return fmt.Errorf("install_root must be set")
	}
	if c.Paths.CatalogDB == "" {
		return fmt.Errorf("catalog_db must be set")
	}
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging format %q is not supported (console, json)", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging level %q is not supported (debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}
