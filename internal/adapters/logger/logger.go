// Package logger implements a logging adapter using log/slog with a human-readable handler.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  slog.Level
	mu     sync.RWMutex
}

// New creates a Logger writing human-readable text to stderr at info level.
func New() *Logger {
	return NewWithLevel(os.Stderr, domain.LogLevelInfo)
}

// NewWithLevel creates a Logger writing to w, discarding messages below level.
func NewWithLevel(w io.Writer, level domain.LogLevel) *Logger {
	l := &Logger{level: slog.Level(level)}
	l.logger = slog.New(l.handler(w))
	return l
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(l.handler(w))
}

func (l *Logger) handler(w io.Writer) slog.Handler {
	return NewPrettyHandler(w, &slog.HandlerOptions{
		Level: l.level,
	})
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain and zerr metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
