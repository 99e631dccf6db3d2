// Package conversion exposes the conversion engine over HTTP.
//
// It is the request-handling layer around core/units: it decodes the request,
// checks that every field is present, coerces the value to a float, dispatches
// by category and rounds the result to six decimal places. Engine validation
// errors become 400 responses carrying a readable message.
//
// # Components
//
//   - Service: Validation, dispatch, rounding and metrics.
//   - Handler: Fiber endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /convert : Convert {value, from_unit, to_unit, category}.
//   - GET /units : Unit catalog grouped by category.
//   - GET /units/:category : Units of one category.
package conversion
