package logger

// Supported log levels.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the behavior of the logger.
type Config struct {
	// Level is the minimum level that will be emitted.
	// One of "debug", "info", "warning", "error". Default: "info".
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOG_SERVICE_NAME"`
}
