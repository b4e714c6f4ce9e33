// Package logger builds configured log/slog loggers.
//
// The logger is created once during bootstrap and injected into components
// that need it:
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "portfolio-api"))
//	log.Info("server starting", slog.String("addr", cfg.Addr))
//
// Development uses text output at debug level; every other environment uses
// JSON at info level for log aggregation.
package logger
