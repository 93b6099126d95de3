package logging

import (
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

var (
	defaultLogger = log.NewNopLogger()

	messageKey   interface{} = "msg"
	errorKey     interface{} = "error"
	callerKey    interface{} = "caller"
	timestampKey interface{} = "ts"
)

// MessageKey returns the logging key used for the textual message of a log entry
func MessageKey() interface{} {
	return messageKey
}

// ErrorKey returns the logging key used for error instances
func ErrorKey() interface{} {
	return errorKey
}

// CallerKey returns the logging key used for the stack location of the logging call
func CallerKey() interface{} {
	return callerKey
}

// TimestampKey returns the logging key used for the timestamp
func TimestampKey() interface{} {
	return timestampKey
}

// DefaultLogger returns the global singleton NOP logger.
// The returned instance is safe for concurrent access.
func DefaultLogger() log.Logger {
	return defaultLogger
}

// Default returns logger if it is non-nil, DefaultLogger() otherwise.
// This is the standard nil guard used throughout the SDK.
func Default(logger log.Logger) log.Logger {
	if logger != nil {
		return logger
	}

	return defaultLogger
}

// New creates a go-kit Logger from a set of options.  The options object may
// be nil, in which case a logfmt logger that writes to os.Stdout is returned.
// The returned logger emits a UTC timestamp and filters according to the
// Level field.
func New(o *Options) log.Logger {
	return NewFilter(
		log.WithPrefix(
			o.loggerFactory()(o.output()),
			TimestampKey(), log.DefaultTimestampUTC,
		),
		o,
	)
}

// NewFilter applies the Options filtering rules to an arbitrary go-kit Logger.
// Any unrecognized level, including the empty string, allows errors only.
func NewFilter(next log.Logger, o *Options) log.Logger {
	switch strings.ToUpper(o.level()) {
	case "DEBUG":
		return level.NewFilter(next, level.AllowDebug())

	case "INFO":
		return level.NewFilter(next, level.AllowInfo())

	case "WARN":
		return level.NewFilter(next, level.AllowWarn())

	default:
		return level.NewFilter(next, level.AllowError())
	}
}

// Error produces a contextual logger as with log.With, with the caller and a
// constant error level in the prefix.
func Error(next log.Logger, keyvals ...interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{CallerKey(), log.DefaultCaller, level.Key(), level.ErrorValue()}, keyvals...)...,
	)
}

// Warn produces a contextual logger as with log.With, with the caller and a
// constant warn level in the prefix.
func Warn(next log.Logger, keyvals ...interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{CallerKey(), log.DefaultCaller, level.Key(), level.WarnValue()}, keyvals...)...,
	)
}

// Info produces a contextual logger as with log.With, with the caller and a
// constant info level in the prefix.
func Info(next log.Logger, keyvals ...interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{CallerKey(), log.DefaultCaller, level.Key(), level.InfoValue()}, keyvals...)...,
	)
}

// Debug produces a contextual logger as with log.With, with the caller and a
// constant debug level in the prefix.
func Debug(next log.Logger, keyvals ...interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{CallerKey(), log.DefaultCaller, level.Key(), level.DebugValue()}, keyvals...)...,
	)
}
