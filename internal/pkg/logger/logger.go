package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Форматы вывода.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Config — настройки логгера. Переменные: PHICALC_LOG_LEVEL, PHICALC_LOG_FORMAT, PHICALC_LOG_FILE.
type Config struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"` // text, json или pretty (цветной, только stderr)
	File   string `envconfig:"FILE" default:"app.log"` // пусто — только stderr
}

// logWriter открывает файл логов и возвращает writer в файл + stderr.
// При ошибке открытия файла или пустом имени возвращает только stderr.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает логгер по конфигу.
func New(cfg Config) *slog.Logger {
	if strings.EqualFold(cfg.Format, FormatPretty) {
		return NewWithWriter(cfg, os.Stderr)
	}
	return NewWithWriter(cfg, logWriter(cfg.File))
}

// NewWithWriter возвращает логгер, пишущий в w.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)
	switch strings.ToLower(cfg.Format) {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	case FormatPretty:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
}

// ParseLevel разбирает уровень (debug, info, warn, error); неизвестный — info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
