package config

import "strings"

func (c *Config) normalize() error {
	for _, field := range []*string{&c.Paths.InstallRoot, &c.Paths.LogDir, &c.Paths.CatalogDB} {
		expanded, err := expandPath(strings.TrimSpace(*field))
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Player.Name = strings.TrimSpace(c.Player.Name)
	if c.Player.Name == "" {
		c.Player.Name = defaultPlayerName
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
