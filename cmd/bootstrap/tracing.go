package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/otelx"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(
		SetupTracing,
	),
)

func SetupTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := otelx.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	if cfg.Tracing.Enabled {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.OTLPEndpoint, "ratio", cfg.Tracing.SampleRatio)
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
