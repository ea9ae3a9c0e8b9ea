// Package config loads flowgrid's TOML configuration.
//
// Configuration is optional: every field has a working default so the
// CLI and server run without a config file. When a path is given the
// file is parsed with BurntSushi/toml and validated before use.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ComputerConnection/flowgrid/pkg/errors"
)

// Cache backend names accepted in the [cache] section.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Store backend names accepted in the [store] section.
const (
	StoreBackendMemory = "memory"
	StoreBackendMongo  = "mongo"
)

// Config is the top-level flowgrid configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the layout/artifact cache.
type CacheConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`  // file backend
	Addr    string `toml:"addr"` // redis backend
}

// StoreConfig selects and configures graph persistence.
type StoreConfig struct {
	Backend  string `toml:"backend"`
	URI      string `toml:"uri"`      // mongo backend
	Database string `toml:"database"` // mongo backend
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: CacheBackendFile, Dir: defaultCacheDir()},
		Store:  StoreConfig{Backend: StoreBackendMemory, Database: "flowgrid"},
		Log:    LogConfig{Level: "info"},
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir + "/flowgrid"
	}
	return ".flowgrid-cache"
}

// Load reads a TOML config file, fills unset fields from [Default],
// and validates the result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config: %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config: %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks backend names and backend-specific requirements.
func (c Config) Validate() error {
	switch strings.ToLower(c.Cache.Backend) {
	case CacheBackendFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.dir is required for the file backend")
		}
	case CacheBackendRedis:
		if c.Cache.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.addr is required for the redis backend")
		}
	case CacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "%s", "unknown cache backend: "+c.Cache.Backend)
	}

	switch strings.ToLower(c.Store.Backend) {
	case StoreBackendMemory:
	case StoreBackendMongo:
		if c.Store.URI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "store.uri is required for the mongo backend")
		}
		if c.Store.Database == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "store.database is required for the mongo backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "%s", "unknown store backend: "+c.Store.Backend)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "%s", "unknown log level: "+c.Log.Level)
	}

	return nil
}
