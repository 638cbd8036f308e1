package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zuri-tickets/chiphash/internal/files/filesystem"
	"github.com/zuri-tickets/chiphash/internal/logging"
	"github.com/zuri-tickets/chiphash/internal/services"
	"github.com/zuri-tickets/chiphash/internal/tui"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

type hashFlagValues struct {
	output          string
	outputDir       string
	configPath      string
	collectionFiles []string
	set             []string
	materialize     string
	scratchDir      string
}

var hashFlags hashFlagValues

func init() {
	rootCmd.Flags().StringVarP(&hashFlags.output, "output", "o", "",
		"Output CSV path (default: <input stem>.output.csv in --output-dir)\n"+
			"Mutually exclusive with --output-dir")
	rootCmd.Flags().StringVar(&hashFlags.outputDir, "output-dir", "",
		"Directory for <input stem>.output.csv, created if missing\n"+
			"(default: output_dir from chiphash.yaml, else the working directory)")
	rootCmd.Flags().StringVar(&hashFlags.configPath, "config", "",
		"Path to a config file (default: ./chiphash.yaml when present)")

	rootCmd.Flags().StringSliceVar(&hashFlags.collectionFiles, "collection-file", nil,
		"Load collection overrides from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, --set overrides all")
	rootCmd.Flags().StringArrayVar(&hashFlags.set, "set", nil,
		"Override as key=value (can be specified multiple times)\n"+
			"Keys: format, collection_name, collection_description\n"+
			"Example: --set collection_name=\"Free Dinner\"")

	rootCmd.Flags().StringVar(&hashFlags.materialize, "materialize", "",
		"How documents are hashed: memory|file (default: memory)\n"+
			"file writes each document to the scratch directory before hashing it")
	rootCmd.Flags().StringVar(&hashFlags.scratchDir, "scratch-dir", "",
		"Scratch directory for --materialize file (default: tmp)")
}

func resetHashFlags() {
	hashFlags = hashFlagValues{}
	verboseFlag = false
}

// buildHashConfig builds a HashConfig from defaults, chiphash.yaml,
// collection files and CLI flags, in increasing priority.
// It returns the directory the output lands in when that directory came
// from --output-dir or output_dir, so the caller can create it.
func buildHashConfig(
	fsys filesystem.Provider,
	logger chiphash.Logger,
	inputPath string,
	flags hashFlagValues,
	verbose bool,
) (chiphash.HashConfig, string, error) {
	cfg := chiphash.DefaultHashConfig()
	cfg.Verbose = verbose

	if flags.output != "" && flags.outputDir != "" {
		return cfg, "", fmt.Errorf("--output and --output-dir cannot be combined: %w", chiphash.ErrUsage)
	}

	projectCfg, err := loadProjectConfig(flags.configPath)
	if err != nil {
		return cfg, "", err
	}
	if projectCfg != nil {
		logger.Verbose("Loaded project config")
		projectCfg.Apply(&cfg)
	}

	overrides, err := loadMergedOverrides(fsys, logger, flags.collectionFiles, flags.set)
	if err != nil {
		return cfg, "", err
	}
	if err := overrides.Apply(&cfg); err != nil {
		return cfg, "", err
	}

	if flags.materialize != "" {
		mode, err := chiphash.ParseMaterializeMode(flags.materialize)
		if err != nil {
			return cfg, "", err
		}
		cfg.Materialize = mode
	}
	if flags.scratchDir != "" {
		cfg.ScratchDir = flags.scratchDir
	}

	var outputDir string
	switch {
	case flags.output != "":
		cfg.OutputPath = flags.output
	case flags.outputDir != "":
		outputDir = flags.outputDir
	case projectCfg != nil && projectCfg.OutputDir != "":
		outputDir = projectCfg.OutputDir
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = services.OutputPathFor(inputPath, outputDir)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}

	logger.Verbose("Hash configuration resolved:")
	logger.Verbose("  Output: %s", cfg.OutputPath)
	logger.Verbose("  Format: %s", cfg.Format)
	logger.Verbose("  Collection: %s", cfg.Collection.Name)
	logger.Verbose("  Materialize: %s", cfg.Materialize)
	if cfg.Materialize == chiphash.MaterializeFile {
		logger.Verbose("  Scratch Dir: %s", cfg.ScratchDir)
	}

	return cfg, outputDir, nil
}

func runHash(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verboseFlag)
	defer func() { _ = logger.Sync() }()

	fsys := filesystem.NewOSFileSystem()

	cfg, outputDir, err := buildHashConfig(fsys, logger, inputPath, hashFlags, verboseFlag)
	if err != nil {
		return err
	}
	if outputDir != "" {
		if err := fsys.MkdirAll(outputDir); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w: %w", outputDir, chiphash.ErrIO, err)
		}
	}

	hasher := services.NewHashingService(fsys, logger)
	summary, err := hasher.Run(inputPath, cfg)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}

	return tui.WriteSummary(cmd.ErrOrStderr(), summary)
}
