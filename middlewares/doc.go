// Package middlewares holds the HTTP middleware used by the editor server.
//
//	server.WithMiddleware(
//		middlewares.RequestID(),
//		middlewares.Logging(),
//		middlewares.Recover(),
//		middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...)),
//	)
//
// RequestIDExtractor adds request_id to every record logged with the request
// context when passed to logger.New.
//
// Recover and Timeout return typed errors (*PanicError, *TimeoutError) which
// the App error handler renders as 500 and 504.
package middlewares
