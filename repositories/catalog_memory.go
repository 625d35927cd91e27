package repositories

import (
	"encoding/json"

	"dapur-mama/models"
)

// MemoryStorage holds the serialized slot in memory. Used by tests and as a
// last-resort fallback when no writable storage is available.
type MemoryStorage struct {
	data  []byte
	saved bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]models.MenuItem, bool) {
	if !s.saved {
		return nil, false
	}
	return decodeSlot(s.data)
}

func (s *MemoryStorage) Save(items []models.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.data = data
	s.saved = true
	return nil
}
