// Package logger builds the application's slog.Logger.
//
// Records are written as JSON (or text for local development) and can be
// mirrored to Sentry when a DSN is configured. Context extractors add
// request-scoped attributes, such as the request ID, to every record logged
// with a context:
//
//	log, flush := logger.New(logger.Config{Level: "debug"}, os.Stdout,
//		middlewares.RequestIDExtractor(),
//	)
//	defer flush()
//
//	log.InfoContext(ctx, "newsletter exported", slog.String("format", "eml"))
//
// # Sentry
//
// With SentryDSN set, errors become Sentry issues and warnings are stored as
// Sentry logs. Initialization failures fall back to local output only. The
// returned flush function waits for buffered events and is a no-op without
// Sentry.
package logger
