// Package metrics defines the Prometheus collectors of the unit converter and
// serves them on the Fiber app.
package metrics
