// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers used across the module.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record so request-scoped values such as request ids are logged
// without passing them explicitly.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "cookiedemo"),
//		logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.DebugContext(ctx, "malformed cookie header", logger.Error(err))
//
// Helpers such as Error and Errors return an empty slog.Attr for nil errors,
// which slog drops, so they are safe to call unconditionally.
package logger
