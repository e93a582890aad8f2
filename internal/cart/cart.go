package cart

import "sync"

// Image is a product image reference carried along with a line item.
type Image struct {
	ID        string `json:"id"`
	ImagePath string `json:"imagePath"`
	IsMain    bool   `json:"isMain"`
}

// LineItem is one product selection in the cart. Identity for merging is the
// (productId, size, color) tuple: adding the same tuple again accumulates
// quantity instead of creating a second line.
type LineItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size,omitempty"`
	Color       string  `json:"color,omitempty"`
	Images      []Image `json:"images,omitempty"`
}

type lineKey struct {
	productID string
	size      string
	color     string
}

func (it LineItem) key() lineKey {
	return lineKey{productID: it.ProductID, size: it.Size, color: it.Color}
}

// Store is the single source of truth for the current shopping session's
// cart. It holds an ordered list of line items and survives only as long as
// the process; the server is re-queried for canonical state before checkout.
type Store struct {
	mu    sync.Mutex
	items []LineItem
}

func NewStore() *Store {
	return &Store{}
}

// Add appends the item or, when a line with the same (productId, size, color)
// already exists, adds the quantity onto that line. Quantities below 1 are
// treated as 1.
func (s *Store) Add(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].key() == item.key() {
			s.items[i].Quantity += item.Quantity
			return
		}
	}
	s.items = append(s.items, item)
}

// SetItems replaces the whole collection. Used when hydrating from a server
// cart response.
func (s *Store) SetItems(items []LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]LineItem(nil), items...)
}

// UpdateQuantity sets the quantity of the matching line. Zero or negative
// removes the line entirely.
func (s *Store) UpdateQuantity(productID, size, color string, quantity int) {
	key := lineKey{productID: productID, size: size, color: color}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].key() != key {
			continue
		}
		if quantity < 1 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		return
	}
}

// Remove deletes the matching line item.
func (s *Store) Remove(productID, size, color string) {
	s.UpdateQuantity(productID, size, color, 0)
}

// Clear empties the cart. Called after a successful order and on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LineItem(nil), s.items...)
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}
