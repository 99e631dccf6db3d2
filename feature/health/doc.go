// Package health provides the operational endpoints of the service.
//
// # HTTP Endpoints
//
//   - GET /healthz : Liveness probe.
//   - GET /metrics : Prometheus metrics (path configurable, can be disabled).
//   - GET /swagger/* : Swagger UI and the OpenAPI document.
package health
