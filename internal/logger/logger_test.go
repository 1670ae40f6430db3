package logger

import (
	"context"
	"log/slog"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/polkiloo/toymix/internal/config"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New(&config.Config{LogLevel: slog.LevelInfo})
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestNewHonoursDebugLevel(t *testing.T) {
	l := New(&config.Config{LogLevel: slog.LevelDebug})
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}
}

func TestNewZapMatchesConfiguredLevel(t *testing.T) {
	l, err := NewZap(&config.Config{LogLevel: slog.LevelWarn})
	if err != nil {
		t.Fatalf("NewZap returned error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Errorf("did not expect info level to be enabled")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Errorf("expected warn level to be enabled")
	}
}

func TestZapLevelMapping(t *testing.T) {
	cases := map[slog.Level]zapcore.Level{
		slog.LevelDebug: zapcore.DebugLevel,
		slog.LevelInfo:  zapcore.InfoLevel,
		slog.LevelWarn:  zapcore.WarnLevel,
		slog.LevelError: zapcore.ErrorLevel,
	}
	for in, want := range cases {
		if got := zapLevel(in); got != want {
			t.Errorf("zapLevel(%v) = %v, want %v", in, got, want)
		}
	}
}
