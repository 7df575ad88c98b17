package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DmitriyGrigoriev/console-app/test"
)

func TestConfig_FromFile(t *testing.T) {
	t.Run("it overlays file values onto defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		content := []byte(`
backend = "redis"

[redis]
addr = "redis.internal:6380"
db = 2
`)

		test.AssertNoError(t, os.WriteFile(path, content, 0o600))

		config := DefaultConfig()
		test.AssertNoError(t, config.FromFile(path))

		test.AssertEqual(t, config.Backend, BackendRedis)
		test.AssertEqual(t, config.Redis.Addr, "redis.internal:6380")
		test.AssertEqual(t, config.Redis.DB, 2)

		// untouched values keep their defaults
		test.AssertEqual(t, config.LogLevel, "info")
		test.AssertEqual(t, config.Redis.Password, "")
	})

	t.Run("it fails for a missing file", func(t *testing.T) {
		config := DefaultConfig()

		err := config.FromFile(filepath.Join(t.TempDir(), "absent.toml"))
		test.AssertTrue(t, err != nil)
	})
}
