package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Module wires slog and zap loggers for dependency injection.
var Module = fx.Options(
	fx.Provide(New, NewZap),
	fx.Invoke(registerSync),
)

// EventLogger routes fx lifecycle events through zap.
var EventLogger = fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l}
})

func registerSync(lc fx.Lifecycle, l *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stdout does not support fsync on most platforms
			_ = l.Sync()
			return nil
		},
	})
}
