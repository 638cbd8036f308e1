package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuri-tickets/chiphash/internal/config"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

func runInitIn(t *testing.T, dir string, force bool) (string, error) {
	t.Helper()
	initForce = force
	t.Cleanup(func() { initForce = false })

	var out bytes.Buffer
	initCmd.SetOut(&out)
	t.Cleanup(func() { initCmd.SetOut(nil) })

	err := runInit(initCmd, []string{dir})
	return out.String(), err
}

func TestRunInit_WritesDefaults(t *testing.T) {
	dir := t.TempDir()

	out, err := runInitIn(t, dir, false)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, config.ConfigFileName))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, defaultProjectConfig(), cfg)

	hc := chiphash.DefaultHashConfig()
	cfg.Apply(&hc)
	assert.Equal(t, chiphash.DefaultHashConfig(), hc, "the written file reproduces the built-in defaults")
}

func TestRunInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(target, []byte("format: mine\n"), 0644))

	_, err := runInitIn(t, dir, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiphash.ErrUsage))

	data, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "format: mine\n", string(data))
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("not: [valid\n"), 0644))

	_, err := runInitIn(t, dir, true)
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, chiphash.DefaultFormat, cfg.Format)
}
