package observability

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func SetLoggingLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// ConfigureLogging installs a console writer on stderr and applies the
// named level. Unknown level names fall back to info.
func ConfigureLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parsed, err := zerolog.ParseLevel(level)

	if err != nil {
		parsed = zerolog.InfoLevel
	}

	SetLoggingLevel(parsed)
}
