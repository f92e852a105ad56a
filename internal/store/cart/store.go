package cart

import (
	"sync"

	"github.com/Ralet11/pandaApp/internal/entities"
)

// Store holds the cart line items. An item's ID already encodes its
// ingredient configuration, so adding the same ID again only raises the
// quantity.
type Store struct {
	mu    sync.Mutex
	items []entities.CartItem
}

func New() *Store {
	return &Store{}
}

func (s *Store) AddItem(item entities.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			s.items[i].TotalPrice = s.items[i].PricePerUnit * float64(s.items[i].Quantity)
			return
		}
	}
	item.TotalPrice = item.PricePerUnit * float64(item.Quantity)
	s.items = append(s.items, item)
}

func (s *Store) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.items[:0]
	for _, it := range s.items {
		if it.ID != itemID {
			filtered = append(filtered, it)
		}
	}
	s.items = filtered
}

// UpdateItemQuantity sets the quantity and recomputes the line total.
// Quantities below one are ignored; removal is a separate operation.
func (s *Store) UpdateItemQuantity(itemID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			s.items[i].TotalPrice = s.items[i].PricePerUnit * float64(quantity)
			return true
		}
	}
	return false
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

func (s *Store) Items() []entities.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Restore(items []entities.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]entities.CartItem, len(items))
	copy(s.items, items)
}
