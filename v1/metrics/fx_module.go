package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"

	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides the Metrics instance and runs the
// exposition server for the application's lifetime.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the metrics HTTP server on application start
// and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("ERROR: metrics server failed: %v", err)
				}
			}()
			log.Printf("INFO: metrics server listening on %s", m.Server.Addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
