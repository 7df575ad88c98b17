package engine

import (
	"errors"
	"fmt"
)

var NoActiveTransactionError = errors.New("engine: no active transaction")
var BackendError = errors.New("engine: backend failure")

func backendFailure(err error) error {
	return fmt.Errorf("%w: %w", BackendError, err)
}
