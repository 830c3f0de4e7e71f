//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelInfo)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestTextLogger_StructuredAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelDebug)

	log.Info("masthead extracted", "id", "abc", "files", 3)

	output := buf.String()
	assert.Contains(t, output, "msg=\"masthead extracted\"")
	assert.Contains(t, output, "id=abc")
	assert.Contains(t, output, "files=3")
}

func TestNewConsoleLogger(t *testing.T) {
	log := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, log)

	require.NotPanics(t, func() {
		log.Info("test")
		log.Warn("test")
		log.Error("test")
	})
}

func TestPanic(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelInfo)

	assert.PanicsWithValue(t, "boom", func() {
		log.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}
