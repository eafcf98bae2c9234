package types

import "errors"

// Config holds the ambient settings used when opening a directory.
type Config struct {
	LogLevel     string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat    string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
	Synchronized bool   `json:"synchronized" yaml:"synchronized" mapstructure:"synchronized"`
}

// Supported log formats.
const (
	LogFormatDevelopment = "development"
	LogFormatProduction  = "production"
)

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatDevelopment
)

// Config validation errors.
var (
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
)

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var knownLogFormats = map[string]bool{
	LogFormatDevelopment: true,
	LogFormatProduction:  true,
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if !knownLogFormats[c.LogFormat] {
		return ErrLogFormatUnknown
	}
	return nil
}
