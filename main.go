package main

import (
	"fmt"

	"github.com/DmitriyGrigoriev/console-app/engine"
	"github.com/DmitriyGrigoriev/console-app/eventbus"
	"github.com/DmitriyGrigoriev/console-app/memstore"
	"github.com/DmitriyGrigoriev/console-app/observability"
	"github.com/DmitriyGrigoriev/console-app/redisstore"
	"github.com/DmitriyGrigoriev/console-app/storage"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	config, err := loadConfig()

	if err != nil {
		log.Fatal().
			Err(err).
			Msg("server: failed to load config")
	}

	observability.ConfigureLogging(config.LogLevel)

	disposer := &Disposer{}
	defer dispose(disposer)

	backend, err := newBackend(config, disposer)

	if err != nil {
		log.Fatal().
			Err(err).
			Msg("server: failed to initialize backend")
	}

	bus := eventbus.New()
	bus.Subscribe(logMutation)

	db := engine.New(backend, bus)

	if err := startRepl(db); err != nil {
		log.Error().
			Err(err).
			Msg("server: session terminated")
	}
}

// loadConfig resolves configuration as defaults, then the TOML file
// named by --config, then explicitly passed flags.
func loadConfig() (Config, error) {
	config := DefaultConfig()

	configPath := pflag.String("config", "", "path to a TOML config file")
	backendName := pflag.String("backend", config.Backend, "storage backend: memory or redis")
	logLevel := pflag.String("log-level", config.LogLevel, "log level")
	redisAddr := pflag.String("redis-addr", config.Redis.Addr, "redis server address")
	redisDB := pflag.Int("redis-db", config.Redis.DB, "redis database number")
	redisPassword := pflag.String("redis-password", config.Redis.Password, "redis password")
	pflag.Parse()

	if *configPath != "" {
		if err := config.FromFile(*configPath); err != nil {
			return config, err
		}
	}

	pflag.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "backend":
			config.Backend = *backendName
		case "log-level":
			config.LogLevel = *logLevel
		case "redis-addr":
			config.Redis.Addr = *redisAddr
		case "redis-db":
			config.Redis.DB = *redisDB
		case "redis-password":
			config.Redis.Password = *redisPassword
		}
	})

	return config, nil
}

func newBackend(config Config, disposer *Disposer) (storage.Backend, error) {
	switch config.Backend {

	case BackendMemory:
		return memstore.New(), nil

	case BackendRedis:
		store, err := redisstore.New(redisstore.Options{
			Addr:     config.Redis.Addr,
			DB:       config.Redis.DB,
			Password: config.Redis.Password,
		})

		if err != nil {
			return nil, err
		}

		disposer.Track(store)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", config.Backend)
	}
}

// logMutation is the default event subscriber: every durable mutation
// is logged.
func logMutation(event eventbus.Event) {
	if event.Deleted {
		log.Debug().
			Str("key", event.Key).
			Msg("store: key deleted")
		return
	}

	log.Debug().
		Str("key", event.Key).
		Msg("store: key updated")
}

func dispose(disposer *Disposer) {
	if err := disposer.Dispose(); err != nil {
		log.Error().
			Err(err).
			Msg("server: cleanup failed")
	}
}
