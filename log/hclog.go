package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-hclog"
)

// hcLogger implements Logger by delegating the formatting and the output
// synchronization to a hashicorp/go-hclog logger.
type hcLogger struct {
	hl   hclog.Logger
	opts LoggerOptions
}

func newHcLogger(opts LoggerOptions) *hcLogger {
	hl := hclog.New(&hclog.LoggerOptions{
		Name:            opts.Name,
		Level:           toHclogLevel(opts.Level),
		Output:          opts.Output,
		TimeFormat:      opts.TimeFormat,
		IncludeLocation: opts.IncludeLocation,
	})
	return &hcLogger{hl: hl, opts: opts}
}

func toHclogLevel(level Level) hclog.Level {
	switch level {
	case Off:
		return hclog.Off
	case Fatal, Error:
		return hclog.Error
	case Warn:
		return hclog.Warn
	case Info:
		return hclog.Info
	case Debug:
		return hclog.Debug
	case Trace:
		return hclog.Trace
	default:
		return hclog.NoLevel
	}
}

func (l *hcLogger) Trace(msg string) { l.hl.Trace(msg) }
func (l *hcLogger) Tracef(format string, args ...interface{}) {
	l.hl.Trace(fmt.Sprintf(format, args...))
}

func (l *hcLogger) Debug(msg string) { l.hl.Debug(msg) }
func (l *hcLogger) Debugf(format string, args ...interface{}) {
	l.hl.Debug(fmt.Sprintf(format, args...))
}

func (l *hcLogger) Info(msg string) { l.hl.Info(msg) }
func (l *hcLogger) Infof(format string, args ...interface{}) {
	l.hl.Info(fmt.Sprintf(format, args...))
}

func (l *hcLogger) Warn(msg string) { l.hl.Warn(msg) }
func (l *hcLogger) Warnf(format string, args ...interface{}) {
	l.hl.Warn(fmt.Sprintf(format, args...))
}

func (l *hcLogger) Error(msg string) { l.hl.Error(msg) }
func (l *hcLogger) Errorf(format string, args ...interface{}) {
	l.hl.Error(fmt.Sprintf(format, args...))
}

func (l *hcLogger) Fatal(msg string) {
	l.hl.Error(msg)
	osExit(1)
}

func (l *hcLogger) Fatalf(format string, args ...interface{}) {
	l.hl.Error(fmt.Sprintf(format, args...))
	osExit(1)
}

func (l *hcLogger) Panic(msg string) {
	l.hl.Error(msg)
	panic(msg)
}

func (l *hcLogger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.hl.Error(msg)
	panic(msg)
}

func (l *hcLogger) Named(name string) Logger {
	opts := l.opts
	if opts.Name != "" {
		opts.Name = opts.Name + "." + name
	} else {
		opts.Name = name
	}
	return &hcLogger{hl: l.hl.Named(name), opts: opts}
}

func (l *hcLogger) ResetNamed(name string) Logger {
	opts := l.opts
	opts.Name = name
	return &hcLogger{hl: l.hl.ResetNamed(name), opts: opts}
}

func (l *hcLogger) WithLevel(level Level) Logger {
	opts := l.opts
	opts.Level = level
	return newHcLogger(opts)
}

func (l *hcLogger) StdLogger(opts *StdLoggerOptions) *log.Logger {
	if opts == nil {
		opts = &StdLoggerOptions{}
	}
	return l.hl.StandardLogger(&hclog.StandardLoggerOptions{
		InferLevels: opts.InferLevels,
		ForceLevel:  toHclogLevel(opts.ForceLevel),
	})
}

func (l *hcLogger) StdWriter(opts *StdLoggerOptions) io.Writer {
	if opts == nil {
		opts = &StdLoggerOptions{}
	}
	return l.hl.StandardWriter(&hclog.StandardLoggerOptions{
		InferLevels: opts.InferLevels,
		ForceLevel:  toHclogLevel(opts.ForceLevel),
	})
}

// To allow mocking in tests we require a switchable variable.
var osExit = os.Exit
