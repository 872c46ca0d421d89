package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(slog.LevelInfo, "text", &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("locate", "name", "James Bond")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=locate")
	assert.Contains(t, out, `name="James Bond"`)
	assert.Contains(t, out, "app=zbeacon")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(slog.LevelDebug, "json", &buf)
	require.NoError(t, err)

	log.Debug("load nicknames", "count", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "load nicknames", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 3, rec["count"])
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New(slog.LevelInfo, "xml", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
}
