package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables that override the config file.
const EnvPrefix = "COURSETRACK_"

// Storage backends accepted by the storage key.
const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config is the coursetrack configuration, corresponding to coursetrack.yml.
type Config struct {
	Port           int      `koanf:"port"`
	StaticPort     int      `koanf:"static_port"`
	StaticDir      string   `koanf:"static_dir"`
	Storage        string   `koanf:"storage"`
	RedisAddr      string   `koanf:"redis_addr"`
	RedisPassword  string   `koanf:"redis_password"`
	RedisDB        int      `koanf:"redis_db"`
	SQLitePath     string   `koanf:"sqlite_path"`
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (COURSETRACK_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// COURSETRACK_REDIS_ADDR -> redis_addr, etc.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "allowed_origins" {
		var origins []string
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return key, origins
	}
	return key, value
}

var validStorage = map[string]bool{
	StorageRedis:  true,
	StorageSQLite: true,
	StorageMemory: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validStorage[c.Storage] {
		return fmt.Errorf("invalid storage %q: must be one of redis, sqlite, memory", c.Storage)
	}
	if err := validPort("port", c.Port); err != nil {
		return err
	}
	if err := validPort("static_port", c.StaticPort); err != nil {
		return err
	}
	if c.Storage == StorageSQLite && c.SQLitePath == "" {
		return fmt.Errorf("sqlite_path is required for the sqlite backend")
	}
	if c.Storage == StorageRedis && c.RedisAddr == "" {
		return fmt.Errorf("redis_addr is required for the redis backend")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("allowed_origins must list at least one origin")
	}
	return nil
}

func validPort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s %d out of range 1..65535", name, port)
	}
	return nil
}
