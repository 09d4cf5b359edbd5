package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

type logger struct {
	mu    sync.Mutex
	out   io.Writer
	owned io.Closer // sink opened by Setup, closed when replaced
	level slog.Level
}

type logMessage struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"additional_info,omitempty"`
}

// Records are dropped until Setup or SetOutput installs a sink.
var logInstance = &logger{level: slog.LevelInfo}

func (l *logger) log(level slog.Level, msg string, data map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.out == nil {
		return
	}

	logData, err := json.Marshal(logMessage{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Data:      data,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error marshaling log message:", err)
		return
	}

	_, _ = l.out.Write(append(logData, '\n'))
}

// install swaps the sink and closes the one Setup opened before it
func (l *logger) install(w io.Writer, owned io.Closer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	previous := l.owned
	l.out = w
	l.owned = owned

	if previous != nil {
		if err := previous.Close(); err != nil {
			return fmt.Errorf("failed to close previous log file: %w", err)
		}
	}
	return nil
}

func (l *logger) setLevel(level slog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Setup writes logs to dir/app.YYYY-MM-DD.log, rotated daily, with
// dir/app.log linked to the current file.
func Setup(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	w, err := rotatelogs.New(
		filepath.Join(dir, "app.%Y-%m-%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, "app.log")),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize rotatelogs: %w", err)
	}

	return logInstance.install(w, w)
}

// SetOutput sends logs to w. A nil writer disables logging.
// w is never closed by the logger.
func SetOutput(w io.Writer) {
	if err := logInstance.install(w, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func SetLevel(level slog.Level) {
	logInstance.setLevel(level)
}

func Debug(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelDebug, msg, first(data))
}

func Info(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelInfo, msg, first(data))
}

func Warn(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelWarn, msg, first(data))
}

func Error(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelError, msg, first(data))
}

func first(data []map[string]any) map[string]any {
	if len(data) > 0 {
		return data[0]
	}
	return nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
