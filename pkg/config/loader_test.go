package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiejar/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"CFG_TEST_DEFAULT_NAME" envDefault:"cookiejar"`
	Count int    `env:"CFG_TEST_DEFAULT_COUNT" envDefault:"42"`
}

type envConfig struct {
	Name   string `env:"CFG_TEST_ENV_NAME"`
	Secure bool   `env:"CFG_TEST_ENV_SECURE"`
}

type cachedConfig struct {
	Name string `env:"CFG_TEST_CACHED_NAME"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string `env:"CFG_TEST_FILE_VALUE"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, defaultsConfig{Name: "cookiejar", Count: 42}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_ENV_NAME", "demo")
	t.Setenv("CFG_TEST_ENV_SECURE", "true")
	t.Cleanup(config.Reset[envConfig])

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, envConfig{Name: "demo", Secure: true}, cfg)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED_NAME", "first")
	t.Cleanup(config.Reset[cachedConfig])

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	config.Reset[cachedConfig]()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Cleanup(config.Reset[requiredConfig])

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("CFG_TEST_FILE_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("CFG_TEST_FILE_VALUE")
		config.Reset[fileConfig]()
	})

	require.NoError(t, config.LoadEnv(file))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(dir, "missing.env")), config.ErrLoadingEnvFile)
}
