package test

import (
	"github.com/DmitriyGrigoriev/console-app/observability"

	"github.com/rs/zerolog"
)

func DisableLogging() {
	observability.SetLoggingLevel(zerolog.Disabled)
}
