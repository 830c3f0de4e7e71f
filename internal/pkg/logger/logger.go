package logger

// Logger defines the logging interface.
//
// The first argument is the message; when more arguments follow a string
// message they are read as slog key/value pairs.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
