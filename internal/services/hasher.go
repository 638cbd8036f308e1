package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/zuri-tickets/chiphash/internal/checksum"
	"github.com/zuri-tickets/chiphash/internal/files/filesystem"
	"github.com/zuri-tickets/chiphash/internal/metadata"
	"github.com/zuri-tickets/chiphash/internal/records"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// HashingService runs the CSV -> document -> digest -> CSV pipeline.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
// Create separate instances for concurrent runs.
type HashingService struct {
	fs     filesystem.Provider
	logger chiphash.Logger
	calc   checksum.Calculator
}

// NewHashingService creates a new HashingService with all dependencies injected.
// Panics on nil dependencies; those are wiring mistakes, not runtime conditions.
func NewHashingService(fsys filesystem.Provider, logger chiphash.Logger) *HashingService {
	if fsys == nil {
		panic("filesystem provider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &HashingService{
		fs:     fsys,
		logger: logger,
		calc:   checksum.New(),
	}
}

// OutputPathFor returns <outputDir>/<input stem>.output.csv.
func OutputPathFor(inputPath, outputDir string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if outputDir == "" {
		outputDir = "."
	}
	return filepath.Join(outputDir, stem+chiphash.OutputSuffix)
}

// Run hashes every row of inputPath and writes the augmented CSV to config.OutputPath.
//
// The input is read twice: once to count rows (series_total must be known
// before the first document is built) and once to process them. A failure
// after the output file was created leaves it truncated.
func (s *HashingService) Run(inputPath string, config chiphash.HashConfig) (summary chiphash.Summary, err error) {
	if err := config.Validate(); err != nil {
		return summary, err
	}
	same, err := s.fs.SameFile(inputPath, config.OutputPath)
	if err != nil {
		return summary, fmt.Errorf("failed to compare %s with %s: %w: %w", config.OutputPath, inputPath, chiphash.ErrIO, err)
	}
	if same {
		return summary, fmt.Errorf("output path %s would overwrite the input: %w", config.OutputPath, chiphash.ErrInvalidConfig)
	}

	summary.InputPath = inputPath
	summary.OutputPath = config.OutputPath

	total, err := s.countRows(inputPath)
	if err != nil {
		return summary, err
	}
	summary.SeriesTotal = total
	s.logger.Verbose("Counted %d data rows in %s", total, inputPath)

	mat, err := s.newMaterializer(config)
	if err != nil {
		return summary, err
	}
	defer func() {
		if closeErr := mat.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	in, err := s.fs.Open(inputPath)
	if err != nil {
		return summary, fmt.Errorf("failed to open %s: %w: %w", inputPath, chiphash.ErrIO, err)
	}
	defer in.Close()

	out, err := s.fs.Create(config.OutputPath)
	if err != nil {
		return summary, fmt.Errorf("failed to create %s: %w: %w", config.OutputPath, chiphash.ErrIO, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w: %w", config.OutputPath, chiphash.ErrIO, closeErr))
		}
	}()

	builder := metadata.NewBuilder(config.Format, config.Collection)
	if err := s.processRows(in, out, builder, mat, total, &summary); err != nil {
		return summary, err
	}

	if summary.Rows != total {
		return summary, fmt.Errorf("input changed between passes: counted %d rows, processed %d: %w", total, summary.Rows, chiphash.ErrFormat)
	}
	return summary, nil
}

func (s *HashingService) countRows(inputPath string) (int, error) {
	f, err := s.fs.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w: %w", inputPath, chiphash.ErrIO, err)
	}
	defer f.Close()

	total, err := records.CountRows(f)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", inputPath, err)
	}
	return total, nil
}

func (s *HashingService) newMaterializer(config chiphash.HashConfig) (materializer, error) {
	if config.Materialize == chiphash.MaterializeFile {
		return newFileMaterializer(s.fs, s.calc, s.logger, config.ScratchDir)
	}
	return memoryMaterializer{calc: s.calc}, nil
}

// processRows is the sequential per-row fold: carry-forward, build, digest, write.
func (s *HashingService) processRows(
	in io.Reader,
	out io.Writer,
	builder metadata.Builder,
	mat materializer,
	total int,
	summary *chiphash.Summary,
) error {
	reader, err := records.NewReader(in)
	if err != nil {
		return err
	}
	writer, err := records.NewWriter(out)
	if err != nil {
		return err
	}

	var carry TeamCarry
	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		line := reader.Line()

		carry, rec = carry.Apply(rec)
		doc := builder.Build(rec, total)

		if doc.Attributes.Fallback() {
			summary.FallbackRows++
			s.logger.Verbose("Line %d: attributes %q kept as raw text", line, doc.Attributes.Raw())
		}
		if err := metadata.CheckIdentifier(doc.Collection.ID); err != nil {
			s.logger.Verbose("Line %d: %v", line, err)
		}

		digest, err := mat.Digest(doc, rec.Get(chiphash.ColumnFilename))
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		if err := writer.Write(rec, digest); err != nil {
			return err
		}
		summary.Rows++
	}

	return writer.Flush()
}
