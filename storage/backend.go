package storage

// Backend is the durable store beneath the transaction engine. It holds
// the state visible once no transaction is open and serves as the base
// layer that pending transactional overlays resolve against.
//
// Absence of a key is a normal outcome, reported through the found flag,
// never as an error. Errors mean the backend itself failed (for the
// network-backed implementation: the remote call did not complete).
type Backend interface {
	// Get returns the value stored under key.
	Get(key string) (value string, found bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// ScanByValue returns every key whose stored value equals value.
	// Result order is backend-specific.
	ScanByValue(value string) ([]string, error)
}
