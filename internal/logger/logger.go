// Package logger provides structured JSON logging and lightweight metrics for hltv-cal.
//
// Logging is backed by logrus with a JSON formatter. The package keeps a
// default logger so callers can log without threading a logger through every
// function:
//
//	logger.Info("Exported match", logger.Fields{
//	    "match_id": "2389843",
//	    "provider": "google",
//	})
//
//	logger.Error("Fetching page failed", logger.Fields{"url": target}, err)
//
// Metrics are in-process counters and timings, reported by the CLI at the
// end of a run when --verbose is set.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger wraps a logrus logger
type Logger struct {
	entry *logrus.Logger
}

var defaultLogger = New(LevelWarn, os.Stderr)

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
// Unknown names fall back to LevelInfo.
func ParseLevel(name string) Level {
	switch Level(strings.ToUpper(strings.TrimSpace(name))) {
	case LevelDebug:
		return LevelDebug
	case LevelWarn, "WARNING":
		return LevelWarn
	case LevelError:
		return LevelError
	}
	return LevelInfo
}

// New creates a logger writing JSON lines at or above level to output
func New(level Level, output io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetLevel(toLogrus(level))
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
	return &Logger{entry: l}
}

// SetDefault replaces the package-level logger
func SetDefault(l *Logger) {
	defaultLogger = l
}

func toLogrus(level Level) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	}
	return logrus.InfoLevel
}

func (l *Logger) with(fields Fields, err error) *logrus.Entry {
	e := l.entry.WithFields(logrus.Fields(fields))
	if err != nil {
		e = e.WithError(err)
	}
	return e
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields Fields) {
	l.with(fields, nil).Debug(message)
}

// Info logs an informational message
func (l *Logger) Info(message string, fields Fields) {
	l.with(fields, nil).Info(message)
}

// Warn logs a warning
func (l *Logger) Warn(message string, fields Fields) {
	l.with(fields, nil).Warn(message)
}

// Error logs a failure together with its error value
func (l *Logger) Error(message string, fields Fields, err error) {
	l.with(fields, err).Error(message)
}

// Debug logs a debug message with the default logger
func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

// Info logs an info message with the default logger
func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Warn logs a warning message with the default logger
func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

// Error logs an error message with the default logger
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Metrics tracks counters and timings. All operations are thread-safe.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

var defaultMetrics = NewMetrics()

// NewMetrics creates an empty metrics tracker
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// IncrCounter increments a counter by 1
func (m *Metrics) IncrCounter(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// RecordTiming records one duration measurement
func (m *Metrics) RecordTiming(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], d)
}

// Snapshot returns a copy of all counters plus count/total/min/max per timing
func (m *Metrics) Snapshot() Fields {
	m.mu.Lock()
	defer m.mu.Unlock()

	counters := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		counters[k] = v
	}

	timings := make(map[string]Fields, len(m.timings))
	for name, durations := range m.timings {
		if len(durations) == 0 {
			continue
		}
		var total time.Duration
		lo, hi := durations[0], durations[0]
		for _, d := range durations {
			total += d
			lo = min(lo, d)
			hi = max(hi, d)
		}
		timings[name] = Fields{
			"count": len(durations),
			"total": total.String(),
			"min":   lo.String(),
			"max":   hi.String(),
		}
	}

	return Fields{
		"counters": counters,
		"timings":  timings,
	}
}

// IncrCounter increments a counter on the default tracker
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// RecordTiming records a timing on the default tracker
func RecordTiming(name string, d time.Duration) {
	defaultMetrics.RecordTiming(name, d)
}

// MetricsSnapshot returns a snapshot of the default tracker
func MetricsSnapshot() Fields {
	return defaultMetrics.Snapshot()
}
