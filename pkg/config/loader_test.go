package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagecrew/stagekit/pkg/config"
)

type testConfig struct {
	Name    string `env:"STAGEKIT_TEST_NAME" envDefault:"stagekit"`
	Retries int    `env:"STAGEKIT_TEST_RETRIES" envDefault:"3"`
	Debug   bool   `env:"STAGEKIT_TEST_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"STAGEKIT_TEST_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "stagekit", cfg.Name)
	assert.Equal(t, 3, cfg.Retries)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STAGEKIT_TEST_NAME", "props")
	t.Setenv("STAGEKIT_TEST_RETRIES", "7")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "props", cfg.Name)
	assert.Equal(t, 7, cfg.Retries)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
