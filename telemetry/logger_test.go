package telemetry

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "advisor", "info", "json")

	logger.Info().Str("resource_id", "/subscriptions/x").Msg("scanned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "advisor", entry["service"])
	assert.Equal(t, "scanned", entry["message"])
	assert.Equal(t, "/subscriptions/x", entry["resource_id"])
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "advisor", "warn", "json")

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "advisor", "loud", "json")

	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	logger.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
