package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"paddock/internal/catalog"
	"paddock/internal/config"
	"paddock/internal/gamedata"
	"paddock/internal/logging"
)

type commandContext struct {
	configFlag *string
	rootFlag   *string
	playerFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, rootFlag, playerFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		rootFlag:   rootFlag,
		playerFlag: playerFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.rootFlag != nil && strings.TrimSpace(*c.rootFlag) != "" {
			expanded, err := config.ExpandPath(strings.TrimSpace(*c.rootFlag))
			if err != nil {
				c.configErr = err
				return
			}
			cfg.Paths.InstallRoot = expanded
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) layout() (gamedata.Layout, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return gamedata.Layout{}, err
	}
	return gamedata.NewLayout(cfg.Paths.InstallRoot), nil
}

func (c *commandContext) playerName() string {
	if c.playerFlag != nil && strings.TrimSpace(*c.playerFlag) != "" {
		return strings.TrimSpace(*c.playerFlag)
	}
	if cfg, err := c.ensureConfig(); err == nil {
		return cfg.Player.Name
	}
	return "Player"
}

func (c *commandContext) openCatalog() (*catalog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.Open(cfg.Paths.CatalogDB)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
