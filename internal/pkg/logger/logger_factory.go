package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger initializes the singleton logger.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(c *config.LoggerSettings) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch c.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(c.LogLevel), nil
	case config.LogTypeFile:
		return NewFileLogger(c.LogLevel, c.FilePath, c.MaxSize, c.MaxBackups, c.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", c.LogType)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// splitArgs turns the variadic logger arguments into a message and slog attrs.
// A string message followed by an even number of arguments with string keys is
// structured; anything else is concatenated the way fmt.Sprint does.
func splitArgs(args ...interface{}) (string, []any) {
	if len(args) == 0 {
		return "", nil
	}

	msg, ok := args[0].(string)
	rest := args[1:]
	if !ok || len(rest) == 0 || len(rest)%2 != 0 {
		return fmt.Sprint(args...), nil
	}
	for i := 0; i < len(rest); i += 2 {
		if _, isKey := rest[i].(string); !isKey {
			return fmt.Sprint(args...), nil
		}
	}

	return msg, rest
}
