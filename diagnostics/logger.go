package diagnostics

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelProgress
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelProgress:
		return "PROGRESS"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the sink plugins and the engine report through.  Warn and Error
// always count, even when filtered out by level.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Progress(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Counts() Counts
	Reset()
}

// Option customises a Log.
type Option func(*Log)

// WithLevel sets the minimum printed level.
func WithLevel(level Level) Option {
	return func(l *Log) {
		l.minLevel = level
	}
}

// WithCounter shares an existing counter.
func WithCounter(counter *Counter) Option {
	return func(l *Log) {
		if counter != nil {
			l.counter = counter
		}
	}
}

// WithPrefix sets the log line prefix.
func WithPrefix(prefix string) Option {
	return func(l *Log) {
		l.logger.SetPrefix(prefix)
	}
}

// Log is the default Logger backed by the standard library logger.
type Log struct {
	logger   *log.Logger
	minLevel Level
	counter  *Counter
}

// New creates a Log writing to w (os.Stderr when nil).
func New(w io.Writer, opts ...Option) *Log {
	if w == nil {
		w = os.Stderr
	}
	ret := &Log{
		logger:   log.New(w, "docflow ", log.LstdFlags),
		minLevel: LevelInfo,
		counter:  &Counter{},
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Discard returns a Log that counts but prints nothing.
func Discard() *Log {
	return New(io.Discard, WithLevel(LevelError+1))
}

func (l *Log) Debug(format string, args ...interface{}) {
	l.print(LevelDebug, format, args...)
}

func (l *Log) Info(format string, args ...interface{}) {
	l.print(LevelInfo, format, args...)
}

func (l *Log) Progress(format string, args ...interface{}) {
	l.print(LevelProgress, format, args...)
}

func (l *Log) Warn(format string, args ...interface{}) {
	l.counter.RecordWarning()
	l.print(LevelWarn, format, args...)
}

func (l *Log) Error(format string, args ...interface{}) {
	l.counter.RecordError()
	l.print(LevelError, format, args...)
}

// Counts returns the counter snapshot.
func (l *Log) Counts() Counts {
	return l.counter.Counts()
}

// Reset zeroes the counters.
func (l *Log) Reset() {
	l.counter.Reset()
}

func (l *Log) print(level Level, format string, args ...interface{}) {
	if level < l.minLevel {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

var _ Logger = (*Log)(nil)
