package services

import (
	"sync"

	"github.com/google/uuid"

	"dapur-mama/models"
	"dapur-mama/repositories"
)

// CatalogService owns the canonical menu list. Every mutation goes through
// replaceAll so the persisted slot always mirrors memory.
type CatalogService struct {
	storage repositories.CatalogStorage

	mu    sync.RWMutex
	items []models.MenuItem
}

func NewCatalogService(storage repositories.CatalogStorage) *CatalogService {
	s := &CatalogService{storage: storage}
	s.load()
	return s
}

// load reads the persisted slot, seeding and persisting the default menu
// when the slot is absent or unreadable.
func (s *CatalogService) load() {
	items, ok := s.storage.Load()
	if !ok {
		items = models.SeedMenu()
		s.storage.Save(items)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *CatalogService) Items() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CatalogService) Grouped() []models.CategoryGroup {
	return models.GroupByCategory(s.Items())
}

func (s *CatalogService) Get(id string) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// ReplaceAll is the single write path: persist first, then swap memory.
func (s *CatalogService) ReplaceAll(items []models.MenuItem) error {
	if err := s.storage.Save(items); err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *CatalogService) Add(name string, price int, imageURL string, category models.MenuCategory) (models.MenuItem, error) {
	item := models.MenuItem{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    price,
		ImageURL: imageURL,
		Category: category,
	}

	items := append(s.Items(), item)
	if err := s.ReplaceAll(items); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// Update replaces every field except the id. An unknown id leaves the
// catalog untouched and reports found=false.
func (s *CatalogService) Update(id, name string, price int, imageURL string, category models.MenuCategory) (models.MenuItem, bool, error) {
	items := s.Items()
	found := false
	var updated models.MenuItem
	for i := range items {
		if items[i].ID == id {
			items[i] = models.MenuItem{ID: id, Name: name, Price: price, ImageURL: imageURL, Category: category}
			updated = items[i]
			found = true
			break
		}
	}
	if !found {
		return models.MenuItem{}, false, nil
	}
	if err := s.ReplaceAll(items); err != nil {
		return models.MenuItem{}, true, err
	}
	return updated, true, nil
}

// Delete removes the item with the given id. Deleting an unknown id is a
// no-op.
func (s *CatalogService) Delete(id string) error {
	items := s.Items()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.ReplaceAll(kept)
}
