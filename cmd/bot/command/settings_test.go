package command

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/atharrell/LoL-Game-Queue-Bot/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSettings(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	logger := log.New()
	logger.SetOutput(io.Discard)

	cmd := Settings{Logger: logger}.Command(context.Background(), cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func fileConfig(t *testing.T) *config.Config {
	return &config.Config{
		DefaultAutofill: true,
		Settings: config.Settings{
			Backend: config.SettingsBackendFile,
			File:    filepath.Join(t.TempDir(), "persistent_settings.json"),
		},
	}
}

func TestSettingsCommand_GetMissing(t *testing.T) {
	out, err := runSettings(t, fileConfig(t), "get", "123")
	require.NoError(t, err)
	assert.Equal(t, "guild 123 has no stored settings (autofill defaults to true)\n", out)
}

func TestSettingsCommand_SetThenGet(t *testing.T) {
	cfg := fileConfig(t)

	out, err := runSettings(t, cfg, "set-autofill", "123", "false")
	require.NoError(t, err)
	assert.Equal(t, "guild 123 autofill=false\n", out)

	out, err = runSettings(t, cfg, "get", "123")
	require.NoError(t, err)
	assert.Equal(t, "guild 123 autofill=false\n", out)
}

func TestSettingsCommand_InvalidArgs(t *testing.T) {
	cfg := fileConfig(t)

	_, err := runSettings(t, cfg, "set-autofill", "123", "sometimes")
	assert.Error(t, err)

	_, err = runSettings(t, cfg, "get")
	assert.Error(t, err)
}
