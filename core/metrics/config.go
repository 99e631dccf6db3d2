package metrics

// Config holds configuration for the Prometheus metrics endpoint.
type Config struct {
	// Enabled toggles the /metrics endpoint.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is the route the metrics are served on.
	Path string `mapstructure:"path" default:"/metrics"`
}
