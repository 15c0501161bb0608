package xlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates logger with custom writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(slog.LevelInfo, buf)

		require.NotNil(t, logger)
		require.NotNil(t, logger.logger)
	})

	t.Run("creates logger with default writer when nil", func(t *testing.T) {
		logger := New(slog.LevelInfo, nil)

		require.NotNil(t, logger)
		require.NotNil(t, logger.logger)
	})
}

func TestSlogLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(slog.LevelInfo, buf)

	logger.Info("test message")
	output := buf.String()

	assert.Contains(t, output, "INF")
	assert.Contains(t, output, "test message")
}

func TestSlogLogger_Warn(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(slog.LevelWarn, buf)

	logger.Warn("warning message")
	output := buf.String()

	assert.Contains(t, output, "WRN")
	assert.Contains(t, output, "warning message")
}

func TestSlogLogger_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(slog.LevelError, buf)

	logger.Error("error message")
	output := buf.String()

	assert.Contains(t, output, "ERR")
	assert.Contains(t, output, "error message")
}

func TestSlogLogger_Debug(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(slog.LevelDebug, buf)

	logger.Debug("debug message")
	output := buf.String()

	assert.Contains(t, output, "DBG")
	assert.Contains(t, output, "debug message")
}

func TestSlogLogger_WithArgs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(slog.LevelInfo, buf)

	logger.Info("decoded frame", "kind", "PUBLISH", "bytes", 37)
	output := buf.String()

	assert.Contains(t, output, "kind=PUBLISH")
	assert.Contains(t, output, "bytes=37")
}

func TestSlogLogger_OddNumberOfArgs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(slog.LevelInfo, buf)

	logger.Info("test message", "key1", "value1", "key2")
	output := buf.String()

	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key1=value1")
}

func TestSlogLogger_MinLevel(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  slog.Level
		logLevel  string
		logFunc   func(*SlogLogger)
		shouldLog bool
	}{
		{
			name:     "Debug not logged when min level is Info",
			minLevel: slog.LevelInfo,
			logLevel: "DBG",
			logFunc: func(l *SlogLogger) {
				l.Debug("debug message")
			},
			shouldLog: false,
		},
		{
			name:     "Warn logged when min level is Info",
			minLevel: slog.LevelInfo,
			logLevel: "WRN",
			logFunc: func(l *SlogLogger) {
				l.Warn("warn message")
			},
			shouldLog: true,
		},
		{
			name:     "Info not logged when min level is Error",
			minLevel: slog.LevelError,
			logLevel: "INF",
			logFunc: func(l *SlogLogger) {
				l.Info("info message")
			},
			shouldLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(tt.minLevel, buf)

			tt.logFunc(logger)
			output := buf.String()

			if tt.shouldLog {
				assert.NotEmpty(t, output)
				assert.Contains(t, output, tt.logLevel)
			} else {
				assert.Empty(t, output)
			}
		})
	}
}

func TestColoredHandler_Enabled(t *testing.T) {
	handler := &ColoredHandler{minLevel: slog.LevelInfo}

	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}

func TestColoredHandler_WithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := &ColoredHandler{writer: buf, minLevel: slog.LevelInfo}

	newHandler := handler.WithAttrs([]slog.Attr{slog.String("kind", "CONNECT")})
	coloredHandler, ok := newHandler.(*ColoredHandler)
	require.True(t, ok)
	assert.Len(t, coloredHandler.attrs, 1)
}

func TestColoredHandler_WithGroup(t *testing.T) {
	handler := &ColoredHandler{minLevel: slog.LevelInfo}

	newHandler := handler.WithGroup("codec")
	coloredHandler, ok := newHandler.(*ColoredHandler)
	require.True(t, ok)
	require.Len(t, coloredHandler.groups, 1)
	assert.Equal(t, "codec", coloredHandler.groups[0])
}

func TestColoredHandler_coloredLevel(t *testing.T) {
	handler := &ColoredHandler{}

	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, colorGray + "DBG" + colorReset},
		{slog.LevelInfo, colorBlue + "INF" + colorReset},
		{slog.LevelWarn, colorYellow + "WRN" + colorReset},
		{slog.LevelError, colorRed + "ERR" + colorReset},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, handler.coloredLevel(tt.level))
	}
}

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []interface{}
		expected int
	}{
		{"empty args", []interface{}{}, 0},
		{"single key-value pair", []interface{}{"key", "value"}, 1},
		{"multiple key-value pairs", []interface{}{"key1", "value1", "key2", "value2"}, 2},
		{"odd number of args", []interface{}{"key1", "value1", "key2"}, 1},
		{"non-string key", []interface{}{123, "value"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatArgs(tt.args...)
			assert.Len(t, result, tt.expected)
		})
	}
}

func TestSlogLoggerImplementsInterface(t *testing.T) {
	var _ Logger = (*SlogLogger)(nil)
}

func TestNoopLoggerImplementsInterface(t *testing.T) {
	var _ Logger = Noop()
	// None of these should panic or write anywhere.
	l := Noop()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(slog.LevelInfo, buf)

	logger.Info("frame decoded", "kind", "PINGREQ")
	output := buf.String()

	parts := strings.Fields(output)
	require.GreaterOrEqual(t, len(parts), 4)
	assert.Contains(t, parts[0], "-")
	assert.Contains(t, parts[1], ":")
	assert.Contains(t, output, "INF")
	assert.Contains(t, output, "frame decoded")
}
