package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New("warn", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("case", "dynamic"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, `"case": "dynamic"`)
}

func TestNew_DefaultInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New("", &buf)
	require.NoError(t, err)

	logger.Debug("quiet")
	logger.Info("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("chatty", &bytes.Buffer{})
	assert.Error(t, err)
}
