// Package logger provides structured JSON logging for the sharedredis packages.
//
// It wraps Uber's Zap logger behind a small surface that the other packages in
// this module accept as an interface: Info/Debug/Warn/Error/Fatal, each taking
// a message, an optional error, and optional field maps.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "my-service",
//	})
//
//	log.Info("cache warmed", nil, map[string]interface{}{
//		"entries": 240,
//	})
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		// ... other modules
//	)
//
// Configuration:
//
//	LOG_LEVEL=debug          # debug, info, warning, error
//	LOG_SERVICE_NAME=my-svc  # attached as the "service" field
//
// Thread Safety:
//
// All methods on Logger are safe for concurrent use by multiple goroutines.
package logger
