package params

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/zuri-tickets/chiphash/internal/files/filesystem"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

const (
	KeyFormat                = "format"
	KeyCollectionName        = "collection_name"
	KeyCollectionDescription = "collection_description"
)

// Overrides holds normalized override keys and their values.
type Overrides map[string]string

// Merge copies other into o; keys in other win.
func (o Overrides) Merge(other Overrides) {
	for k, v := range other {
		o[k] = v
	}
}

// NewOverrides normalizes keys to lower case and rejects unknown keys.
// source names where the values came from and is used in error messages.
func NewOverrides(source string, values map[string]string) (Overrides, error) {
	out := make(Overrides, len(values))
	var unknown []string
	for k, v := range values {
		key := strings.ToLower(strings.TrimSpace(k))
		switch key {
		case KeyFormat, KeyCollectionName, KeyCollectionDescription:
			out[key] = v
		default:
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%s: unknown override key(s) %s (expected %s, %s or %s): %w",
			source, strings.Join(unknown, ", "), KeyFormat, KeyCollectionName, KeyCollectionDescription, chiphash.ErrInvalidConfig)
	}
	return out, nil
}

// LoadFiles reads override files in order. Later files override earlier ones.
func LoadFiles(fsys filesystem.Provider, logger chiphash.Logger, paths []string) (Overrides, error) {
	merged := make(Overrides)
	for _, p := range paths {
		logger.Verbose("Loading collection overrides from file: %s", p)

		content, err := readAll(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read collection file '%s': %w: %w", p, chiphash.ErrInvalidConfig, err)
		}

		values, err := ParseEnvFile(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse collection file '%s': %w: %w", p, chiphash.ErrInvalidConfig, err)
		}

		fileOverrides, err := NewOverrides(p, values)
		if err != nil {
			return nil, err
		}
		merged.Merge(fileOverrides)
		logger.Verbose("Loaded %d override(s) from file (total: %d)", len(fileOverrides), len(merged))
	}
	return merged, nil
}

// ParseSetFlags turns --set pairs into Overrides.
func ParseSetFlags(pairs []string) (Overrides, error) {
	values, err := ParseKeyValuePairs(pairs)
	if err != nil {
		return nil, fmt.Errorf("invalid --set value: %w: %w", chiphash.ErrInvalidConfig, err)
	}
	return NewOverrides("--set", values)
}

// Apply writes the override values onto hc. An empty format is rejected
// since every document must carry one.
func (o Overrides) Apply(hc *chiphash.HashConfig) error {
	if v, ok := o[KeyFormat]; ok {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("override %q cannot be empty: %w", KeyFormat, chiphash.ErrInvalidConfig)
		}
		hc.Format = v
	}
	if v, ok := o[KeyCollectionName]; ok {
		hc.Collection.Name = v
	}
	if v, ok := o[KeyCollectionDescription]; ok {
		hc.Collection.Description = v
	}
	return nil
}

func readAll(fsys filesystem.Provider, p string) ([]byte, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, err
	}
	content, readErr := io.ReadAll(f)
	return content, errors.Join(readErr, f.Close())
}
