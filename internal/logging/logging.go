// internal/logging/logging.go
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// Options はロガーの設定
type Options struct {
	Level  string // debug / info / warn / error
	Format string // json / text
	Env    string // APP_ENV。"dev" なら tint で色付き出力
}

// ParseLevel は設定値からログレベルを得ます。不明な値は Info で、ok=false。
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New は設定に基づいて slog ロガーを作ります。
func New(w io.Writer, opts Options) *slog.Logger {
	logLevel := new(slog.LevelVar) // 動的に変更可能なレベル変数
	level, known := ParseLevel(opts.Level)
	logLevel.Set(level)

	var handler slog.Handler
	switch {
	case strings.ToLower(opts.Env) == "dev":
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	case strings.ToLower(opts.Format) == "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	if !known {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", opts.Level))
	}
	return logger
}

// Discard はテスト用に出力を捨てるロガー
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithLogger はロガーをコンテキストに格納します。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// FromContext はコンテキストから slog.Logger を取得します。なければ slog.Default()。
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
