// Package cli implements the relic subcommands.
package cli

import (
	"fmt"

	"github.com/glorpus-work/relic/pkg/config"
	"github.com/glorpus-work/relic/pkg/filestore"
	"github.com/glorpus-work/relic/pkg/localfind"
	"github.com/glorpus-work/relic/pkg/mavenrepo"
)

// These variables will be set by the main package.
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration from the --config flag or the default
// location.
func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	return cfg, nil
}

// buildChain constructs the local finder chain from the configuration: the
// current store, the historical cache generations and, when enabled, the
// local Maven repository.
func buildChain(cfg *config.Config) (*localfind.Composite, error) {
	cachesRoot, err := cfg.CachesRoot()
	if err != nil {
		return nil, err
	}
	storeDir, err := cfg.StoreDir()
	if err != nil {
		return nil, err
	}
	store, err := filestore.New(storeDir)
	if err != nil {
		return nil, err
	}

	opts := localfind.ChainOptions{
		CachesRoot: cachesRoot,
		Store:      store,
	}
	if cfg.Settings.SearchMavenLocal {
		opts.MavenLocator = &mavenrepo.Locator{Override: cfg.Settings.MavenLocal}
	}
	return localfind.NewChain(opts)
}
