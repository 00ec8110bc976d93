package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/config"
	"estatehub/internal/logger"
)

func TestNew_LevelAndFormat(t *testing.T) {
	l := logger.New(config.LogConfig{Level: "warn", Format: "json"})
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	_, isJSON := l.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)

	l = logger.New(config.LogConfig{Level: "nonsense", Format: "console"})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	_, isText := l.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestLogError_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(config.LogConfig{Level: "debug", Format: "json"})
	l.SetOutput(&buf)

	logger.LogError(l, "commissionReport", "Create", map[string]string{"start": "2024-01-01"}, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "commissionReport", entry["module"])
	assert.Equal(t, "Create", entry["funcName"])
	assert.Equal(t, "boom", entry["msg"])
	assert.NotNil(t, entry["data"])
}
