package repository

import (
	"sort"
	"sync"
)

type memoryCollectionRepo struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryCollectionRepo keeps collections in process memory. Used by tests
// and by the server when STORE=memory.
func NewMemoryCollectionRepo() CollectionRepository {
	return &memoryCollectionRepo{blobs: make(map[string][]byte)}
}

func (r *memoryCollectionRepo) Load(name string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blob, ok := r.blobs[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), blob...), nil
}

func (r *memoryCollectionRepo) Save(name string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blobs[name] = append([]byte(nil), payload...)
	return nil
}

func (r *memoryCollectionRepo) Names() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.blobs))
	for name := range r.blobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
