// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// CORS, rate limiting and panic recovery use Fiber's bundled middleware and are
// wired in core/server.
package middleware
