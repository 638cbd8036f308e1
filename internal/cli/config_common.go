package cli

import (
	"errors"
	"fmt"

	"github.com/zuri-tickets/chiphash/internal/config"
	"github.com/zuri-tickets/chiphash/internal/files/filesystem"
	"github.com/zuri-tickets/chiphash/internal/params"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// loadProjectConfig loads chiphash.yaml.
// With no explicit path a missing file in the working directory is not an
// error and yields a nil config. An explicit --config path must exist.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	if configPath != "" {
		projectCfg, err := config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s does not exist: %w", configPath, chiphash.ErrInvalidConfig)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
		}
		return projectCfg, nil
	}

	projectCfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// loadMergedOverrides loads and merges collection overrides from all sources.
// Priority (highest to lowest): --set > --collection-file (later files win)
func loadMergedOverrides(
	fsys filesystem.Provider,
	logger chiphash.Logger,
	collectionFiles []string,
	setPairs []string,
) (params.Overrides, error) {
	merged, err := params.LoadFiles(fsys, logger, collectionFiles)
	if err != nil {
		return nil, err
	}

	cliOverrides, err := params.ParseSetFlags(setPairs)
	if err != nil {
		return nil, err
	}
	merged.Merge(cliOverrides)

	if len(cliOverrides) > 0 {
		logger.Verbose("--set overrides %d value(s)", len(cliOverrides))
	}
	return merged, nil
}
