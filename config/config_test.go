package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100000, cfg.Inputs.Value)
	assert.Equal(t, 50, cfg.Inputs.Threshold)
	assert.Equal(t, 2, cfg.Inputs.Day)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.Inputs.Numbers)
	assert.Equal(t, [2]int{3, 4}, cfg.Inputs.Operands)
	assert.Equal(t, 0, cfg.Inputs.Divisor)
	assert.Equal(t, "HIGH", cfg.Inputs.Level)
	assert.False(t, cfg.Runtime.Wait)
}

func TestParseOverridesOnTopOfDefaults(t *testing.T) {
	doc := []byte(`
inputs:
  day: 1
  person:
    name: Bob
    age: 40
runtime:
  banners: true
  shutdown_timeout: 500ms
`)
	cfg, err := config.Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Inputs.Day)
	assert.Equal(t, config.Person{Name: "Bob", Age: 40}, cfg.Inputs.Person)
	assert.True(t, cfg.Runtime.Banners)
	assert.Equal(t, 500*time.Millisecond, cfg.Runtime.ShutdownTimeout)

	// Untouched fields keep their defaults.
	assert.Equal(t, 100000, cfg.Inputs.Value)
	assert.Equal(t, 1, cfg.Runtime.Workers)
}

func TestParseReplacesCollections(t *testing.T) {
	cfg, err := config.Parse([]byte("inputs:\n  map:\n    Bob: 1\n  list: [X]\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Bob": 1}, cfg.Inputs.Map)
	assert.Equal(t, []string{"X"}, cfg.Inputs.List)

	cfg, err = config.Parse([]byte("inputs:\n  map: {}\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Inputs.Map)

	// Left out, the default map survives.
	cfg, err = config.Parse([]byte("inputs:\n  day: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Alice": 25}, cfg.Inputs.Map)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte("inputs:\n  dya: 3\n"))
	require.Error(t, err)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"short numbers":  "inputs:\n  numbers: [1, 2]\n",
		"empty name":     "inputs:\n  person:\n    name: \"\"\n",
		"negative age":   "inputs:\n  person:\n    name: X\n    age: -1\n",
		"unknown level":  "inputs:\n  level: EXTREME\n",
		"negative limit": "inputs:\n  for_limit: -1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParseFillsRuntimeDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("runtime:\n  workers: 0\n  queue_size: -3\n  shutdown_timeout: 0s\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Runtime.Workers)
	assert.Equal(t, 0, cfg.Runtime.QueueSize)
	assert.Equal(t, 2*time.Second, cfg.Runtime.ShutdownTimeout)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs:\n  level: low\n"), 0o644))

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "low", cfg.Inputs.Level)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
