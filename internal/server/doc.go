// Package server is the HTTP kernel of the editor: an immutable App built
// from options, a Router over chi whose handlers return errors, a per-request
// Context and a runtime with graceful shutdown.
//
//	app := server.New(
//		server.WithLogger(log),
//		server.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//		server.WithHandlers(editor.NewHandler(session)),
//		server.WithHealthChecks(checks),
//	)
//	err := app.Run(ctx, server.Address(":8080"), server.ShutdownHook(saver.Close))
//
// Handlers return *HTTPError for expected failures. Anything else is logged
// and answered with 500 by the default error handler.
package server
