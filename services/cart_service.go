package services

import (
	"sync"

	"dapur-mama/models"
)

// CartService keeps one in-memory cart per browser session. Carts are never
// persisted; they live only as long as the process.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: map[string]*models.Cart{}}
}

func (s *CartService) cart(session string) *models.Cart {
	cart, ok := s.carts[session]
	if !ok {
		cart = &models.Cart{}
		s.carts[session] = cart
	}
	return cart
}

// Get returns a snapshot of the session's cart.
func (s *CartService) Get(session string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(session)
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return models.Cart{Items: items}
}

func (s *CartService) Add(session string, item models.MenuItem) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(session).Add(item)
	return s.snapshot(session)
}

func (s *CartService) SetQuantity(session, id string, quantity int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(session).SetQuantity(id, quantity)
	return s.snapshot(session)
}

func (s *CartService) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}

func (s *CartService) snapshot(session string) models.Cart {
	cart := s.cart(session)
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return models.Cart{Items: items}
}
