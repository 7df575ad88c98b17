package memstore

import (
	"testing"

	"github.com/DmitriyGrigoriev/console-app/test"
)

func TestMemStore(t *testing.T) {
	t.Run("it returns absent for unknown keys", func(t *testing.T) {
		store := New()

		_, found, err := store.Get("missing")

		test.AssertNoError(t, err)
		test.AssertFalse(t, found)
	})

	t.Run("it stores and retrieves values", func(t *testing.T) {
		store := New()

		test.AssertNoError(t, store.Set("k", "v"))

		value, found, err := store.Get("k")
		test.AssertNoError(t, err)
		test.AssertTrue(t, found)
		test.AssertEqual(t, value, "v")
	})

	t.Run("it overwrites on repeated set", func(t *testing.T) {
		store := New()

		test.AssertNoError(t, store.Set("k", "v1"))
		test.AssertNoError(t, store.Set("k", "v2"))

		value, _, _ := store.Get("k")
		test.AssertEqual(t, value, "v2")
		test.AssertEqual(t, store.Len(), 1)
	})

	t.Run("it deletes keys and tolerates deleting absent ones", func(t *testing.T) {
		store := New()

		test.AssertNoError(t, store.Set("k", "v"))
		test.AssertNoError(t, store.Delete("k"))
		test.AssertNoError(t, store.Delete("k"))

		_, found, _ := store.Get("k")
		test.AssertFalse(t, found)
	})
}

func TestMemStore_ScanByValue(t *testing.T) {
	t.Run("it returns matching keys in lexicographic order", func(t *testing.T) {
		store := New()

		test.AssertNoError(t, store.Set("banana", "10"))
		test.AssertNoError(t, store.Set("apple", "10"))
		test.AssertNoError(t, store.Set("cherry", "20"))
		test.AssertNoError(t, store.Set("apricot", "10"))

		keys, err := store.ScanByValue("10")

		test.AssertNoError(t, err)
		test.AssertEqual(t, len(keys), 3)
		test.AssertEqual(t, keys[0], "apple")
		test.AssertEqual(t, keys[1], "apricot")
		test.AssertEqual(t, keys[2], "banana")
	})

	t.Run("it returns nothing when no value matches", func(t *testing.T) {
		store := New()

		test.AssertNoError(t, store.Set("k", "v"))

		keys, err := store.ScanByValue("other")

		test.AssertNoError(t, err)
		test.AssertEqual(t, len(keys), 0)
	})
}
