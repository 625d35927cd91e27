package services

import (
	"net/url"
	"strings"
	"testing"

	"dapur-mama/models"
)

func testCart() []models.CartItem {
	return []models.CartItem{
		{MenuItem: models.MenuItem{ID: "1", Name: "Nasi Goreng Spesial", Price: 35000, Category: models.CategoryMakanan}, Quantity: 2},
		{MenuItem: models.MenuItem{ID: "6", Name: "Es Teh Manis", Price: 8000, Category: models.CategoryMinuman}, Quantity: 1},
	}
}

func TestFormatOrderMessage(t *testing.T) {
	checkout := NewCheckoutService("6281312357574", nil, "")

	got := checkout.FormatOrderMessage(testCart())
	want := "Halo, saya mau pesan:\n\n" +
		"- Nasi Goreng Spesial (2x) - Rp 70.000\n" +
		"- Es Teh Manis (1x) - Rp 8.000\n" +
		"\nTotal: *Rp 78.000*\n\n" +
		"Terima kasih."
	if got != want {
		t.Errorf("message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestFormatOrderMessageEmptyCart(t *testing.T) {
	checkout := NewCheckoutService("6281312357574", nil, "")

	got := checkout.FormatOrderMessage(nil)
	if !strings.Contains(got, "Total: *Rp 0*") {
		t.Errorf("empty cart total missing: %q", got)
	}
}

func TestOrderLink(t *testing.T) {
	checkout := NewCheckoutService("6281312357574", nil, "")
	message := checkout.FormatOrderMessage(testCart())

	link := checkout.OrderLink(message)
	if !strings.HasPrefix(link, "https://wa.me/6281312357574?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}
	if link != "https://wa.me/6281312357574?text="+url.QueryEscape(message) {
		t.Errorf("link is not the percent-encoded message: %q", link)
	}
}

func TestCheckoutReturnsMessageAndLink(t *testing.T) {
	checkout := NewCheckoutService("6281312357574", nil, "")

	message, link := checkout.Checkout(testCart())
	if message == "" || link == "" {
		t.Fatal("checkout returned empty message or link")
	}
	if !strings.Contains(link, "wa.me/6281312357574") {
		t.Errorf("link does not target the configured number: %q", link)
	}
}
