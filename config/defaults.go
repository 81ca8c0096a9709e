package config

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		StaticPort:     8000,
		StaticDir:      "web",
		Storage:        StorageRedis,
		RedisAddr:      "127.0.0.1:6379",
		RedisDB:        8,
		SQLitePath:     "data/coursetrack.db",
		AllowedOrigins: []string{"*"},
	}
}
