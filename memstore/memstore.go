package memstore

import (
	"sync"

	"github.com/google/btree"
)

const treeDegree = 32

type item struct {
	key   string
	value string
}

func (i item) Less(than btree.Item) bool {
	return i.key < than.(item).key
}

// MemStore is the in-memory storage backend. Entries are kept in a
// B-tree ordered by key, so scans come back in lexicographic order.
type MemStore struct {
	tree  *btree.BTree
	mutex sync.RWMutex
}

func New() *MemStore {
	return &MemStore{
		tree: btree.New(treeDegree),
	}
}

func (s *MemStore) Get(key string) (string, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	found := s.tree.Get(item{key: key})

	if found == nil {
		return "", false, nil
	}

	return found.(item).value, true, nil
}

func (s *MemStore) Set(key string, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tree.ReplaceOrInsert(item{key: key, value: value})
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tree.Delete(item{key: key})
	return nil
}

func (s *MemStore) ScanByValue(value string) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var keys []string

	s.tree.Ascend(func(it btree.Item) bool {
		entry := it.(item)

		if entry.value == value {
			keys = append(keys, entry.key)
		}

		return true
	})

	return keys, nil
}

// Len reports the number of stored entries.
func (s *MemStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.tree.Len()
}
