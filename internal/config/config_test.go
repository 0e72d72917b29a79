package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	test := require.New(t)

	cfg := DefaultConfig()
	test.Equal(6, cfg.Output.Precision)
	test.True(cfg.Output.Predicates)
	test.Equal("info", cfg.Logging.Level)
	test.NoError(cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	test := require.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	test.NoError(err)
	test.Equal(DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	test := require.New(t)
	path := filepath.Join(t.TempDir(), "trit.yaml")

	cfg := DefaultConfig()
	cfg.Output.Precision = 3
	cfg.Output.Predicates = false
	cfg.Logging.Level = "debug"
	test.NoError(cfg.Save(path))

	loaded, err := Load(path)
	test.NoError(err)
	test.Equal(cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	test := require.New(t)
	path := filepath.Join(t.TempDir(), "trit.yaml")
	test.NoError(os.WriteFile(path, []byte("output:\n  precision: 2\n"), 0644))

	cfg, err := Load(path)
	test.NoError(err)
	test.Equal(2, cfg.Output.Precision)
	test.True(cfg.Output.Predicates)
	test.Equal("info", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	test := require.New(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	test.NoError(os.WriteFile(bad, []byte("output: [1, 2"), 0644))
	_, err := Load(bad)
	test.ErrorContains(err, "failed to parse config")

	level := filepath.Join(dir, "level.yaml")
	test.NoError(os.WriteFile(level, []byte("logging:\n  level: loud\n"), 0644))
	_, err = Load(level)
	test.ErrorContains(err, "invalid logging.level")

	prec := filepath.Join(dir, "prec.yaml")
	test.NoError(os.WriteFile(prec, []byte("output:\n  precision: -1\n"), 0644))
	_, err = Load(prec)
	test.ErrorContains(err, "output.precision")
}
