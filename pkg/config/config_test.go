package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
	Store   string        `env:"PROJECT_STORE" envDefault:"memory"`
	Delay   time.Duration `env:"AUTOSAVE_DELAY" envDefault:"800ms"`
	Secret  string        `env:"SECRET,required"`
	Verbose bool          `env:"VERBOSE"`
}

func TestLoad_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("SECRET", "s3cr3t")
	t.Setenv("PROJECT_STORE", "redis")

	cfg, err := Load[testConfig](WithEnvFiles())
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "redis", cfg.Store)
	require.Equal(t, 800*time.Millisecond, cfg.Delay)
	require.Equal(t, "s3cr3t", cfg.Secret)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("SECRET", "")
	os.Unsetenv("SECRET")

	_, err := Load[testConfig](WithEnvFiles())
	require.ErrorIs(t, err, ErrParsingConfig)
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("NL_SECRET", "prefixed")
	t.Setenv("NL_HTTP_ADDR", ":9090")

	cfg, err := Load[testConfig](WithPrefix("NL_"), WithEnvFiles())
	require.NoError(t, err)
	require.Equal(t, "prefixed", cfg.Secret)
	require.Equal(t, ":9090", cfg.Addr)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("SECRET", "from-env")
	os.Unsetenv("VERBOSE")
	t.Cleanup(func() { os.Unsetenv("VERBOSE") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SECRET=from-file\nVERBOSE=true\n"), 0o600))

	cfg, err := Load[testConfig](WithEnvFiles(path, filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Secret)
	require.True(t, cfg.Verbose)
}
