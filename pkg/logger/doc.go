// Package logger builds structured slog loggers for the localekit tools and
// services. Library packages in this module never log; this package exists
// for the outer surfaces (the cldrgen generator and HTTP services) that
// need consistent JSON output, request-scoped attributes, and optional
// Sentry forwarding.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(httplocale.RequestIDExtractor()),
//	)
//
//	log.InfoContext(ctx, "table generated", slog.Int("locales", n))
//
// Context extractors run per log call and inject request-scoped values
// (request IDs, resolved locales) into every record carrying that context.
//
// Sentry forwarding is opt-in and degrades gracefully: without a DSN, or
// when initialization fails, the logger falls back to stdout-only output.
package logger
