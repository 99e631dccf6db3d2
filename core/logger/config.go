package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the output encoding (json, console).
	Format string `mapstructure:"format" default:"json"`
}

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// IsValidFormat checks if the configured format is supported.
func (c Config) IsValidFormat() bool {
	switch c.Format {
	case FormatJSON, FormatConsole, "":
		return true
	default:
		return false
	}
}
