package main

import (
	"io"

	"github.com/rs/zerolog/log"
)

// Disposer tracks resources that must be released on shutdown and
// closes them in reverse order of registration.
type Disposer struct {
	closers []io.Closer
}

func (d *Disposer) Track(closer io.Closer) {
	d.closers = append(d.closers, closer)
}

func (d *Disposer) Dispose() error {
	var firstErr error

	for i := len(d.closers) - 1; i >= 0; i-- {
		err := d.closers[i].Close()

		if err == nil {
			continue
		}

		log.Error().
			Err(err).
			Msg("server: failed to release resource")

		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
