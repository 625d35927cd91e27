package repositories

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"dapur-mama/models"
)

// FileStorage keeps the catalog slot in a single JSON file on disk.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() ([]models.MenuItem, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	items, ok := decodeSlot(data)
	if !ok {
		log.Printf("Menu file %s is unreadable, falling back to seed menu", s.path)
	}
	return items, ok
}

func (s *FileStorage) Save(items []models.MenuItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
