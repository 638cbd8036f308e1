package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zuri-tickets/chiphash/internal/config"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a chiphash.yaml with the default collection",
	Long: `Init writes chiphash.yaml into dir (default: the working directory)
populated with the built-in format and collection, ready to edit.

An existing chiphash.yaml is left untouched unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing chiphash.yaml")
}

func defaultProjectConfig() *config.ProjectConfig {
	return &config.ProjectConfig{
		Format: chiphash.DefaultFormat,
		Collection: config.CollectionConfig{
			Name:        chiphash.DefaultCollectionName,
			Description: chiphash.DefaultCollectionDescription,
		},
		OutputDir:   ".",
		Materialize: string(chiphash.MaterializeMemory),
		ScratchDir:  chiphash.DefaultScratchDir,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	target := filepath.Join(dir, config.ConfigFileName)

	if !initForce {
		_, err := config.Load(dir)
		if err == nil || errors.Is(err, chiphash.ErrInvalidConfig) {
			return fmt.Errorf("%s already exists (use --force to overwrite): %w", target, chiphash.ErrUsage)
		}
		if !errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("failed to inspect %s: %w: %w", target, chiphash.ErrIO, err)
		}
	}

	if err := config.Save(dir, defaultProjectConfig()); err != nil {
		return fmt.Errorf("failed to write %s: %w: %w", target, chiphash.ErrIO, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
	return nil
}
