package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("warn").GetLevel())
	assert.Equal(t, logrus.ErrorLevel, NewLogger("error").GetLevel())
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, NewLogger("").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("verbose").GetLevel())
}

func TestWarnWithTracing(t *testing.T) {
	logger := NewLogger("info")

	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.WarnWithTracing(context.Background(), "duplicate rejected", logrus.Fields{
		"email": "dup@example.com",
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "duplicate rejected", line["message"])
	assert.Equal(t, "dup@example.com", line["email"])
}
