package services

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"dapur-mama/models"
	"dapur-mama/utils"
)

// CheckoutService turns a cart into a WhatsApp order handoff. The system
// never learns whether the message was actually sent.
type CheckoutService struct {
	phone      string
	email      *models.EmailService
	ownerEmail string
}

func NewCheckoutService(phone string, email *models.EmailService, ownerEmail string) *CheckoutService {
	return &CheckoutService{phone: phone, email: email, ownerEmail: ownerEmail}
}

// FormatOrderMessage renders the itemized order text: one line per entry,
// then the grand total and a closing line.
func (s *CheckoutService) FormatOrderMessage(items []models.CartItem) string {
	var b strings.Builder
	b.WriteString("Halo, saya mau pesan:\n\n")

	totalPrice := 0
	for _, item := range items {
		subtotal := item.Price * item.Quantity
		totalPrice += subtotal
		fmt.Fprintf(&b, "- %s (%dx) - %s\n", item.Name, item.Quantity, utils.FormatRupiah(subtotal))
	}

	fmt.Fprintf(&b, "\nTotal: *%s*\n\n", utils.FormatRupiah(totalPrice))
	b.WriteString("Terima kasih.")
	return b.String()
}

// OrderLink percent-encodes the message into the WhatsApp deep link for the
// configured destination number.
func (s *CheckoutService) OrderLink(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.phone, url.QueryEscape(message))
}

// Checkout formats the order and returns the handoff link. When SMTP is
// configured a copy of the order is mailed to the owner in the background.
func (s *CheckoutService) Checkout(items []models.CartItem) (message, link string) {
	message = s.FormatOrderMessage(items)
	link = s.OrderLink(message)

	if s.email != nil && s.ownerEmail != "" {
		msg := message
		go func() {
			if err := s.email.SendOrderCopy(s.ownerEmail, msg); err != nil {
				log.Println("Failed to email order copy:", err)
			}
		}()
	}
	return message, link
}
