// Package log implements the leveled logger used across teemux. It is a
// thin wrapper around hashicorp/go-hclog that fixes the interface the rest
// of the code programs against.
package log

import (
	"io"
	"log"
	"strings"
)

// Level represents the logging level.
type Level uint32

const (
	// NotSet level is used to indicate that no level has been set
	// and allow for a default to be used.
	NotSet Level = iota

	// Off is intended to avoid tracing any action.
	Off

	// Fatal
	Fatal

	// Error
	Error

	// Warn
	Warn

	// Info
	Info

	// Debug
	Debug

	// Trace
	Trace
)

func (l Level) String() string {
	switch l {
	case NotSet:
		return "unknown"
	case Off:
		return "off"
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	default:
		return "unknown"
	}
}

// LevelFromString returns a Level type for the named log level, or
// "NotSet" if the level passed as argument is invalid.
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "off":
		return Off
	case "fatal":
		return Fatal
	case "error":
		return Error
	case "warn":
		return Warn
	case "info":
		return Info
	case "debug":
		return Debug
	case "trace":
		return Trace
	default:
		return NotSet
	}
}

// Logger describes the interface that must be implemented
// by all loggers.
type Logger interface {
	Trace(msg string)
	Tracef(format string, args ...interface{})
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
	// Fatal emits a message at the FATAL level
	// and exits the application (os.Exit(1)).
	Fatal(msg string)
	Fatalf(format string, args ...interface{})
	// Panic emits a message at the FATAL level and panics.
	Panic(msg string)
	Panicf(format string, args ...interface{})

	// Named creates a logger that will prepend the given name on front of
	// all messages. If the logger has a previously set name, the new value
	// will be appended to it.
	Named(name string) Logger

	// ResetNamed creates a logger that will prepend the given name on
	// front of all messages. It overrides any previously set name.
	ResetNamed(name string) Logger

	// WithLevel creates a logger with the given level changed.
	WithLevel(level Level) Logger

	// StdLogger returns a logger implementation that conforms to the
	// stdlib log.Logger interface. This allows packages that expect
	// to be using the standard library log to actually use this logger.
	StdLogger(opts *StdLoggerOptions) *log.Logger

	// StdWriter returns an io.Writer implementation that can be passed
	// into log.SetOutput().
	StdWriter(opts *StdLoggerOptions) io.Writer
}

// LoggerOptions can be used to configure a new logger.
type LoggerOptions struct {
	// Name of the subsystem to prefix logs with.
	Name string

	// Level is the threshold for the logger. Any log trace less
	// severe is suppressed.
	Level Level

	// Output is the writer implementation where to write logs to.
	// If nil, defaults to os.Stderr.
	Output io.Writer

	// TimeFormat is the time format to use instead of the default one.
	TimeFormat string

	// IncludeLocation includes file and line information in each log line.
	IncludeLocation bool
}

// StdLoggerOptions can be used to configure a new standard logger.
type StdLoggerOptions struct {
	// Indicate that some minimal parsing should be done on strings to try
	// and detect their level and re-emit them.
	// This supports strings like [FATAL], [ERROR], [TRACE], [WARN], [INFO],
	// [DEBUG] and strips them off before reapplying the level.
	InferLevels bool

	// ForceLevel is used to force all output from the standard logger to be
	// at the specified level. Similar to InferLevels, this will strip any
	// level prefix contained in the logged string before applying the forced
	// level. If set, this overrides InferLevels.
	ForceLevel Level
}

// New returns a new logger configured with the given options.
func New(opts *LoggerOptions) Logger {
	if opts == nil {
		opts = &LoggerOptions{}
	}

	o := *opts
	if o.Output == nil {
		o.Output = DefaultOutput
	}
	if o.Level == NotSet {
		o.Level = DefaultLevel
	}
	if o.TimeFormat == "" {
		o.TimeFormat = DefaultTimeFormat
	}

	return newHcLogger(o)
}
