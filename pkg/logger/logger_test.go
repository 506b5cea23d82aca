package logger_test

import (
	"context"
	"testing"

	"yokeair/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	tests := []struct {
		env, level string
		want       zapcore.Level
	}{
		{env: logger.DevelopmentEnvironment, want: zap.DebugLevel},
		{env: logger.ProductionEnvironment, want: zap.InfoLevel},
		{env: logger.DevelopmentEnvironment, level: "warn", want: zap.WarnLevel},
		{env: logger.ProductionEnvironment, level: "debug", want: zap.DebugLevel},
		{env: logger.ProductionEnvironment, level: "loud", want: zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.level, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(tt.env, tt.level) })

			l := logger.Get(context.Background())
			require.NotNil(t, l)
			require.Equal(t, tt.want, l.Level())
			require.Equal(t, tt.want == zap.DebugLevel, logger.IsDebug(context.Background()))
		})
	}

	require.NotPanics(t, logger.Sync)
}

func TestGetPrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")

	ctx, logs := observed(zap.InfoLevel)
	logger.Info(ctx, "listing published", zap.String("property_id", "p1"))
	logger.Debug(ctx, "dropped")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "listing published", entry.Message)
	require.Equal(t, "p1", entry.ContextMap()["property_id"])
	require.False(t, logger.IsDebug(ctx))
}

func TestWithFields(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)
	ctx = logger.WithFields(ctx, zap.String("request_id", "r-1"))
	ctx = logger.WithFields(ctx, zap.Int("attempt", 2))

	logger.Warn(ctx, "retrying")
	logger.Error(ctx, "gave up")

	require.Equal(t, 2, logs.Len())
	for _, e := range logs.All() {
		require.Equal(t, "r-1", e.ContextMap()["request_id"])
		require.EqualValues(t, 2, e.ContextMap()["attempt"])
	}
	require.Equal(t, zap.ErrorLevel, logs.All()[1].Level)
}

func TestSlog(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)
	ctx = logger.WithFields(ctx, zap.String("worker", "notification"))

	logger.Slog(ctx).Info("job completed", "job_id", 42)

	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	require.Equal(t, "job completed", e.Message)
	require.Equal(t, "notification", e.ContextMap()["worker"])
	require.EqualValues(t, 42, e.ContextMap()["job_id"])
}
