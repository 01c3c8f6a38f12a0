package logrus

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsreader-core/core/interfaces"
)

var _ interfaces.Logger = (*Logger)(nil)

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Warn("Deep link did not resolve", map[string]interface{}{
		"slug": "missing-slug",
		"kind": "video",
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "Deep link did not resolve", line["msg"])
	assert.Equal(t, "missing-slug", line["slug"])
	assert.Equal(t, "video", line["kind"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "text", Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden", nil)
	logger.Info("hidden", map[string]interface{}{"a": 1})
	assert.Empty(t, buf.String())

	logger.Error("Content fetch failed", map[string]interface{}{"endpoint": "posts"})
	out := buf.String()
	assert.True(t, strings.Contains(out, "Content fetch failed"), out)
	assert.True(t, strings.Contains(out, "endpoint=posts"), out)
}
