package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnir/tensorplan/analyser/config"
)

func TestLoadOverridesOnlySetFields(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(strings.NewReader(`log_level: debug`))
	require.NoError(t, err)

	assert.Equal(t, config.LevelDebug, cfg.LogLevel)
	assert.Equal(t, config.Default().PlaceholderOp, cfg.PlaceholderOp)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := config.Load(strings.NewReader(`log_level: verbose`))
	assert.Error(t, err)
}
