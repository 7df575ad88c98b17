package main

import (
	"github.com/BurntSushi/toml"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Backend  string `toml:"backend"`
	LogLevel string `toml:"log-level"`

	Redis RedisConfig `toml:"redis"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	DB       int    `toml:"db"`
	Password string `toml:"password"`
}

func DefaultConfig() Config {
	return Config{
		Backend:  BackendMemory,
		LogLevel: "info",
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

// FromFile overlays values from a TOML file onto the config.
func (c *Config) FromFile(path string) error {
	_, err := toml.DecodeFile(path, c)
	return err
}
