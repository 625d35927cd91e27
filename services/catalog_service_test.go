package services

import (
	"testing"

	"dapur-mama/models"
	"dapur-mama/repositories"
)

func TestLoadSeedsEmptyStorage(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	catalog := NewCatalogService(storage)

	items := catalog.Items()
	if len(items) != 9 {
		t.Fatalf("expected 9 seeded items, got %d", len(items))
	}

	// The seed must be persisted immediately, not just held in memory.
	persisted, ok := storage.Load()
	if !ok {
		t.Fatal("seed was not persisted")
	}
	if len(persisted) != 9 {
		t.Fatalf("expected 9 persisted items, got %d", len(persisted))
	}

	groups := catalog.Grouped()
	if len(groups) != 3 {
		t.Fatalf("expected 3 category groups, got %d", len(groups))
	}
	wantCounts := map[models.MenuCategory]int{
		models.CategoryMakanan: 5,
		models.CategoryMinuman: 2,
		models.CategoryLainnya: 2,
	}
	for i, group := range groups {
		if group.Category != models.CategoryOrder[i] {
			t.Errorf("group %d = %q, want %q", i, group.Category, models.CategoryOrder[i])
		}
		if len(group.Items) != wantCounts[group.Category] {
			t.Errorf("category %q has %d items, want %d", group.Category, len(group.Items), wantCounts[group.Category])
		}
	}
}

func TestLoadKeepsExistingCatalog(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	storage.Save([]models.MenuItem{
		{ID: "x1", Name: "Bakso", Price: 20000, ImageURL: "x", Category: models.CategoryMakanan},
	})

	catalog := NewCatalogService(storage)
	items := catalog.Items()
	if len(items) != 1 || items[0].Name != "Bakso" {
		t.Fatalf("expected stored catalog to survive load, got %+v", items)
	}
}

func TestAddPersistsAndAssignsFreshID(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	catalog := NewCatalogService(storage)
	before := len(catalog.Items())

	item, err := catalog.Add("Kopi", 10000, "x", models.CategoryMinuman)
	if err != nil {
		t.Fatal(err)
	}
	if item.ID == "" {
		t.Error("new item has no id")
	}

	items := catalog.Items()
	if len(items) != before+1 {
		t.Fatalf("catalog length = %d, want %d", len(items), before+1)
	}

	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
	}

	persisted, ok := storage.Load()
	if !ok || len(persisted) != len(items) {
		t.Fatal("persisted record does not match memory after add")
	}
}

func TestRoundTripAfterEverySequence(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	catalog := NewCatalogService(storage)

	checkRoundTrip := func(step string) {
		t.Helper()
		persisted, ok := storage.Load()
		if !ok {
			t.Fatalf("%s: slot unreadable", step)
		}
		items := catalog.Items()
		if len(persisted) != len(items) {
			t.Fatalf("%s: persisted %d items, memory %d", step, len(persisted), len(items))
		}
		for i := range items {
			if persisted[i] != items[i] {
				t.Fatalf("%s: persisted[%d] = %+v, memory %+v", step, i, persisted[i], items[i])
			}
		}
	}

	added, _ := catalog.Add("Kopi", 10000, "x", models.CategoryMinuman)
	checkRoundTrip("add")

	if _, found, _ := catalog.Update(added.ID, "Kopi Susu", 12000, "y", models.CategoryMinuman); !found {
		t.Fatal("update lost the added item")
	}
	checkRoundTrip("edit")

	if err := catalog.Delete(added.ID); err != nil {
		t.Fatal(err)
	}
	checkRoundTrip("delete")
}

func TestUpdateKeepsID(t *testing.T) {
	catalog := NewCatalogService(repositories.NewMemoryStorage())

	updated, found, err := catalog.Update("1", "Nasi Goreng Biasa", 30000, "z", models.CategoryMakanan)
	if err != nil || !found {
		t.Fatalf("update failed: found=%v err=%v", found, err)
	}
	if updated.ID != "1" {
		t.Errorf("id changed on edit: %q", updated.ID)
	}
	got, _ := catalog.Get("1")
	if got.Name != "Nasi Goreng Biasa" || got.Price != 30000 {
		t.Errorf("edit not applied: %+v", got)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	catalog := NewCatalogService(repositories.NewMemoryStorage())
	before := catalog.Items()

	_, found, err := catalog.Update("missing", "X", 1, "x", models.CategoryLainnya)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("update of unknown id reported found")
	}
	after := catalog.Items()
	if len(after) != len(before) {
		t.Error("catalog changed on no-op update")
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	catalog := NewCatalogService(repositories.NewMemoryStorage())
	before := len(catalog.Items())

	if err := catalog.Delete("missing"); err != nil {
		t.Fatal(err)
	}
	if len(catalog.Items()) != before {
		t.Error("catalog changed on no-op delete")
	}
}

func TestDeleteRemovesItem(t *testing.T) {
	catalog := NewCatalogService(repositories.NewMemoryStorage())

	if err := catalog.Delete("1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := catalog.Get("1"); ok {
		t.Error("item still present after delete")
	}
	if len(catalog.Items()) != 8 {
		t.Errorf("catalog length = %d, want 8", len(catalog.Items()))
	}
}
