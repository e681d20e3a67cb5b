package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("Almacén Don Pepe")
	assert.Equal(t, "Almacén Don Pepe", cfg.Business.Name)
	assert.Equal(t, "ARS", cfg.Business.Currency)
	assert.Equal(t, "books.db", cfg.Books.File)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default("Ferretería El Tornillo")
	cfg.Business.Currency = "USD"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("x")))

	// Overwrite with invalid YAML.
	require.NoError(t, os.WriteFile(path, []byte("business: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
