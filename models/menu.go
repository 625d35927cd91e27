package models

import "errors"

type MenuCategory string

const (
	CategoryMakanan MenuCategory = "makanan"
	CategoryMinuman MenuCategory = "minuman"
	CategoryLainnya MenuCategory = "lainnya"
)

// CategoryOrder is the fixed display order, independent of insertion order.
var CategoryOrder = []MenuCategory{CategoryMakanan, CategoryMinuman, CategoryLainnya}

var categoryTitles = map[MenuCategory]string{
	CategoryMakanan: "Makanan",
	CategoryMinuman: "Minuman",
	CategoryLainnya: "Lainnya",
}

func (c MenuCategory) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

func (c MenuCategory) Title() string {
	return categoryTitles[c]
}

// MenuItem is one catalog record. The ID is assigned at creation and never
// changes; ImageURL is either a remote URL or an embedded data URI.
type MenuItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    int          `json:"price"`
	ImageURL string       `json:"imageUrl"`
	Category MenuCategory `json:"category"`
}

func (m MenuItem) Validate() error {
	if m.ID == "" {
		return errors.New("menu item id is empty")
	}
	if m.Name == "" {
		return errors.New("menu item name is empty")
	}
	if m.Price < 0 {
		return errors.New("menu item price is negative")
	}
	if !m.Category.Valid() {
		return errors.New("menu item category is invalid")
	}
	return nil
}

type CategoryGroup struct {
	Category MenuCategory `json:"category"`
	Title    string       `json:"title"`
	Items    []MenuItem   `json:"items"`
}

// GroupByCategory partitions items into the fixed category order. Empty
// categories are omitted, matching how the menu is presented.
func GroupByCategory(items []MenuItem) []CategoryGroup {
	byCategory := map[MenuCategory][]MenuItem{}
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	groups := []CategoryGroup{}
	for _, category := range CategoryOrder {
		if len(byCategory[category]) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{
			Category: category,
			Title:    category.Title(),
			Items:    byCategory[category],
		})
	}
	return groups
}

// SeedMenu returns the default catalog used when the storage slot is empty
// or unreadable.
func SeedMenu() []MenuItem {
	return []MenuItem{
		{ID: "1", Name: "Nasi Goreng Spesial", Price: 35000, ImageURL: "https://picsum.photos/seed/nasigoreng/400/300", Category: CategoryMakanan},
		{ID: "2", Name: "Sate Ayam Madura", Price: 40000, ImageURL: "https://picsum.photos/seed/sateayam/400/300", Category: CategoryMakanan},
		{ID: "3", Name: "Rendang Daging Sapi", Price: 55000, ImageURL: "https://picsum.photos/seed/rendang/400/300", Category: CategoryMakanan},
		{ID: "4", Name: "Gado-Gado", Price: 25000, ImageURL: "https://picsum.photos/seed/gadogado/400/300", Category: CategoryMakanan},
		{ID: "5", Name: "Soto Ayam Lamongan", Price: 30000, ImageURL: "https://picsum.photos/seed/sotoayam/400/300", Category: CategoryMakanan},
		{ID: "6", Name: "Es Teh Manis", Price: 8000, ImageURL: "https://picsum.photos/seed/esteh/400/300", Category: CategoryMinuman},
		{ID: "7", Name: "Jus Alpukat", Price: 15000, ImageURL: "https://picsum.photos/seed/jusalpukat/400/300", Category: CategoryMinuman},
		{ID: "8", Name: "Keripik Kentang", Price: 12000, ImageURL: "https://picsum.photos/seed/keripik/400/300", Category: CategoryLainnya},
		{ID: "9", Name: "Rokok Filter (16)", Price: 32000, ImageURL: "https://picsum.photos/seed/rokok/400/300", Category: CategoryLainnya},
	}
}
