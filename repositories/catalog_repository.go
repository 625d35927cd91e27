package repositories

import (
	"encoding/json"

	"dapur-mama/models"
)

// CatalogStorage is the persistence port for the menu catalog. The catalog
// lives in a single named slot holding the JSON-serialized item list. Load
// reports ok=false when the slot is absent or its contents cannot be
// decoded, so callers can fall back to the seed menu.
type CatalogStorage interface {
	Load() (items []models.MenuItem, ok bool)
	Save(items []models.MenuItem) error
}

// decodeSlot parses a stored slot. Records are validated on the way in; a
// slot containing any malformed record is treated as unreadable rather than
// trusted blindly.
func decodeSlot(data []byte) ([]models.MenuItem, bool) {
	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, false
		}
	}
	return items, true
}
