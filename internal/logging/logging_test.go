package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", slog.Int("steps", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.EqualValues(t, 3, rec["steps"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(DefaultConfig(), &buf)
	require.NoError(t, err)
	logger.Debug("quiet")
	logger.Info("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestNewRejectsUnknownValues(t *testing.T) {
	_, err := New(Config{Level: "chatty"}, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = New(Config{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestBind(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--log-format=json"}))
	assert.Equal(t, Config{Level: "debug", Format: "json"}, cfg)
}
