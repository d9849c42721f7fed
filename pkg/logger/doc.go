// Package logger builds configured log/slog loggers.
//
// It is a thin factory: pick a format (JSON for aggregation pipelines, text
// for local development), a level, an output and optional static attributes,
// and get back a ready *slog.Logger. The classification core itself never
// logs - it is a pure function - so the logger is consumed by the HTTP
// middleware and by whatever process embeds the detector.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "browserdetect")),
//	)
//
// Use logger.Discard() in tests to silence output entirely.
package logger
