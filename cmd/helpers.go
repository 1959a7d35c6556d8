package cmd

import (
	"fmt"

	"github.com/ziadkadry99/refnav/internal/config"
	"github.com/ziadkadry99/refnav/internal/content"
	"github.com/ziadkadry99/refnav/internal/logger"
	"github.com/ziadkadry99/refnav/internal/refnav"
	"github.com/ziadkadry99/refnav/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `refnav init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger from config; --verbose forces debug level.
func newLogger(cfg *config.Config) (logger.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logger.New(level, cfg.Log.Pretty)
}

// stack is everything a command needs to render reference pages.
type stack struct {
	cfg      *config.Config
	log      logger.Logger
	catalog  *content.Catalog
	renderer *refnav.Renderer
	pages    *site.Pages
}

// loadStack loads config, content and templates.
func loadStack() (*stack, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := content.NewCatalog(cfg.Libraries, cfg.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	renderer, err := refnav.NewRenderer(refnav.NewMenus(cfg.Menus), log)
	if err != nil {
		return nil, err
	}
	pages, err := site.NewPages(catalog, renderer, cfg.BasePath)
	if err != nil {
		return nil, err
	}

	log.Debug("content loaded", logger.Int("libraries", len(catalog.Libraries())))
	return &stack{cfg: cfg, log: log, catalog: catalog, renderer: renderer, pages: pages}, nil
}
