// Package memory provides the public API for the in-memory contacts
// directory. It exposes factory functions while keeping the implementation
// internal.
package memory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/config"
	"github.com/mesh-intelligence/contacts/internal/logging"
	imemory "github.com/mesh-intelligence/contacts/internal/memory"
	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// NewContactService returns an empty, unsynchronized directory that logs
// nothing.
//
// Example:
//
//	dir := memory.NewContactService()
//	c, err := types.NewContact("ID001", "Alice", "Smith", "1234567890", "100 First Ave")
//	if err != nil {
//	    return err
//	}
//	err = dir.AddContact(c)
func NewContactService() types.Directory {
	return imemory.NewContactService()
}

// NewContactServiceWithLogger is NewContactService with debug events sent
// to log.
func NewContactServiceWithLogger(log *zap.Logger) types.Directory {
	return imemory.NewContactService(imemory.WithLogger(log))
}

// Open builds a directory from cfg. The returned logger is the one the
// directory writes to; callers should Sync it before exiting.
func Open(cfg types.Config) (types.Directory, *zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	log, err := logging.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	var dir types.Directory = imemory.NewContactService(imemory.WithLogger(log))
	if cfg.Synchronized {
		dir = imemory.NewSynchronized(dir)
	}
	return dir, log, nil
}

// LoadConfig resolves the configuration directory (explicit path, then
// CONTACTS_CONFIG_DIR, then the platform default) and loads config.yaml
// from it. A missing file yields types.DefaultConfig().
func LoadConfig(dir string) (types.Config, error) {
	resolved, err := paths.ResolveConfigDir(dir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	return config.Load(resolved)
}

// InitConfig resolves the configuration directory the same way LoadConfig
// does, creates it, and writes a default config.yaml unless one exists.
// It returns the resolved directory.
func InitConfig(dir string) (string, error) {
	resolved, err := paths.ResolveConfigDir(dir)
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	if err := config.EnsureDefault(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}
