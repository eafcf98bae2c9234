// Package config loads the contacts directory configuration from
// config.yaml using Viper. Environment variables prefixed CONTACTS_
// override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "CONTACTS"

	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFormat    = "log_format"
	cfgKeySynchronized = "synchronized"
)

// defaultConfigYAML is the content written by EnsureDefault.
const defaultConfigYAML = `# Contacts directory configuration

# Log level: debug, info, warn, error
log_level: info

# Log format: development or production
log_format: development

# Guard the directory with a mutex for use from several goroutines
synchronized: false
`

// Load reads config.yaml from dir. A missing file is not an error; the
// defaults apply. The result is validated before it is returned.
func Load(dir string) (types.Config, error) {
	v := viper.New()
	def := types.DefaultConfig()
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)
	v.SetDefault(cfgKeySynchronized, def.Synchronized)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("validate config %s: %w", filepath.Join(dir, configFileExt), err)
	}
	return cfg, nil
}

// EnsureDefault creates dir and writes a default config.yaml unless one
// already exists.
func EnsureDefault(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	path := filepath.Join(dir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
