package services

import (
	"testing"

	"dapur-mama/models"
)

func menuItem(id string, price int) models.MenuItem {
	return models.MenuItem{ID: id, Name: "Item " + id, Price: price, ImageURL: "x", Category: models.CategoryMakanan}
}

func TestAddSameItemIncrementsQuantity(t *testing.T) {
	carts := NewCartService()
	item := menuItem("1", 35000)

	for i := 0; i < 3; i++ {
		carts.Add("s", item)
	}

	cart := carts.Get("s")
	if len(cart.Items) != 1 {
		t.Fatalf("expected a single cart entry, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart.Items[0].Quantity)
	}
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{"positive sets exactly", 5, 1, 5},
		{"zero removes", 0, 0, 0},
		{"negative removes", -2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := NewCartService()
			carts.Add("s", menuItem("1", 35000))

			cart := carts.SetQuantity("s", "1", tt.quantity)
			if len(cart.Items) != tt.wantLen {
				t.Fatalf("cart has %d entries, want %d", len(cart.Items), tt.wantLen)
			}
			if tt.wantLen > 0 && cart.Items[0].Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", cart.Items[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	carts := NewCartService()
	carts.Add("s", menuItem("1", 35000))

	cart := carts.SetQuantity("s", "missing", 0)
	if len(cart.Items) != 1 {
		t.Errorf("cart changed on unknown id: %+v", cart.Items)
	}
}

func TestTotals(t *testing.T) {
	carts := NewCartService()
	carts.Add("s", menuItem("1", 35000))
	carts.Add("s", menuItem("1", 35000))
	carts.Add("s", menuItem("6", 8000))

	cart := carts.Get("s")
	if got := cart.TotalItems(); got != 3 {
		t.Errorf("TotalItems = %d, want 3", got)
	}
	if got := cart.TotalPrice(); got != 78000 {
		t.Errorf("TotalPrice = %d, want 78000", got)
	}
}

func TestCartSnapshotsItemFields(t *testing.T) {
	carts := NewCartService()
	item := menuItem("1", 35000)
	carts.Add("s", item)

	// A later price change must not affect what is already in the cart.
	item.Price = 99000
	cart := carts.Get("s")
	if cart.Items[0].Price != 35000 {
		t.Errorf("cart price = %d, want snapshot 35000", cart.Items[0].Price)
	}
}

func TestClear(t *testing.T) {
	carts := NewCartService()
	carts.Add("s", menuItem("1", 35000))
	carts.Clear("s")

	cart := carts.Get("s")
	if len(cart.Items) != 0 {
		t.Errorf("cart not empty after clear: %+v", cart.Items)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	carts := NewCartService()
	carts.Add("a", menuItem("1", 35000))

	if cart := carts.Get("b"); len(cart.Items) != 0 {
		t.Errorf("session b sees session a's cart: %+v", cart.Items)
	}
}
