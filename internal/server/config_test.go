package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/daisuke-ai/miana-calc/pkg/constants"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, constants.DefaultServerAddress, cfg.Address)
	require.Equal(t, constants.DefaultMaxUploadSizeBytes, cfg.MaxUploadSize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, constants.DefaultServerAddress, cfg.Address)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	content := `
address: ":9090"
maxUploadSize: 1024
logging:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Address)
	require.Equal(t, int64(1024), cfg.MaxUploadSize)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("address: [broken"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigNormalizesEmptyValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxUploadSize: -5"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, constants.DefaultServerAddress, cfg.Address)
	require.Equal(t, constants.DefaultMaxUploadSizeBytes, cfg.MaxUploadSize)
}
