// Package server holds the HTTP server configuration and the Fiber application factory.
//
// # Configuration
//
// The Config struct defines the bind host and port, the allowed CORS origins, an
// optional per-IP rate limit and the request body cap.
//
// # Application
//
// NewApp creates the Fiber app with the global middleware chain (recover, RayID,
// request logging, CORS, rate limiting) and a JSON error handler. Features register
// their routes on the returned app through the loader package.
//
// # Usage
//
//	app := server.NewApp(cfg.Server, logg)
//	_ = app.Listen(cfg.Server.Addr())
package server
