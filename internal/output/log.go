// Package output handles user-facing diagnostics and the optional debug log
// file. Messages go to stderr as bare text; when GIT_EDIT_INDEX_LOG points at
// a file, everything is additionally written there with timestamps, rotated
// by lumberjack.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleHandler writes bare messages without timestamps or level prefixes.
// Errors are colored when the terminal supports it.
type consoleHandler struct {
	writer    io.Writer
	output    *termenv.Output
	debugMode bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	msg := record.Message
	if record.Level >= slog.LevelError {
		msg = h.output.String(msg).Foreground(h.output.Color("1")).String()
	}
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *consoleHandler) WithGroup(_ string) slog.Handler      { return h }

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// Logger writes user-facing messages and, optionally, a rotating debug log.
type Logger struct {
	logger    *slog.Logger
	logWriter io.WriteCloser
}

// NewLogger creates a Logger writing to stderr. Debug messages reach the
// console only when the DEBUG environment variable is set; they always reach
// the log file when one is configured via GIT_EDIT_INDEX_LOG.
func NewLogger() *Logger {
	l := &Logger{}

	handlers := []slog.Handler{&consoleHandler{
		writer:    os.Stderr,
		output:    termenv.NewOutput(os.Stderr),
		debugMode: os.Getenv("DEBUG") != "",
	}}

	if logFilePath := os.Getenv("GIT_EDIT_INDEX_LOG"); logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0o750); err == nil {
			rotating := &lumberjack.Logger{
				Filename:   logFilePath,
				MaxSize:    1, // megabytes
				MaxBackups: 2,
				MaxAge:     30, // days
			}
			l.logWriter = rotating
			handlers = append(handlers, slog.NewTextHandler(rotating, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}
	}

	l.logger = slog.New(&multiHandler{handlers: handlers})
	return l
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.logWriter != nil {
		return l.logWriter.Close()
	}
	return nil
}

func (l *Logger) log(level slog.Level, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.logger.Log(context.Background(), level, msg)
}

// Debug writes a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.log(slog.LevelDebug, format, args...)
}

// Error writes an error message
func (l *Logger) Error(format string, args ...any) {
	l.log(slog.LevelError, format, args...)
}
