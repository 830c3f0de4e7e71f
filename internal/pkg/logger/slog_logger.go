package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newTextLogger(os.Stdout, level)
}

// NewFileLogger creates a new JSON file logger with rotation settings.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := newRotatingWriter(filePath, maxSize, maxBackups, maxAge)

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return &slogLogger{logger: slog.New(slog.NewJSONHandler(writer, opts))}
}

// newRotatingWriter keeps maxBackups compressed files of maxSize MB for at most maxAge days.
func newRotatingWriter(filePath string, maxSize, maxBackups, maxAge int) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
}

func newTextLogger(w io.Writer, level string) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return &slogLogger{logger: slog.New(slog.NewTextHandler(w, opts))}
}

// Debug logs a debug message.
func (l *slogLogger) Debug(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Debug(msg, attrs...)
}

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Info(msg, attrs...)
}

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Warn(msg, attrs...)
}

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
}

// Fatal logs a fatal message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *slogLogger) Panic(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
	panic(msg)
}
