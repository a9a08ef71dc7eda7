package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("planeview", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-sim", "elementary", "-scale", "2", "-params", "rule=90, w=64"}))
	assert.Equal(t, "elementary", cfg.Sim)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 30, cfg.TPS)

	params, err := cfg.SimParams()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"rule": "90", "w": "64"}, params)
}

func TestSimParamsRejectsMalformed(t *testing.T) {
	cfg := NewConfig()
	cfg.Params = "rule"
	_, err := cfg.SimParams()
	require.Error(t, err)

	cfg.Params = ""
	params, err := cfg.SimParams()
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Decode(strings.NewReader("sim: briansbrain\ntps: 12\nparams: w=32\n")))
	assert.Equal(t, "briansbrain", cfg.Sim)
	assert.Equal(t, 12, cfg.TPS)
	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, "w=32", cfg.Params)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := NewConfig()
	require.Error(t, cfg.Decode(strings.NewReader("zoom: 4\n")))
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Decode(strings.NewReader("")))
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planeview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim: elementary\nscale: 5\n"), 0o644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))
	fs := flag.NewFlagSet("planeview", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "2"}))

	assert.Equal(t, "elementary", cfg.Sim)
	assert.Equal(t, 2, cfg.Scale)

	require.Error(t, NewConfig().LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
