package server

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/calyptra/verdant/internal/catalog"
)

// Store errors.
var (
	ErrNotFound = errors.New("plant not found")
)

// InsufficientStockError reports a purchase exceeding available stock.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	if e.Available == 1 {
		return "Insufficient stock. Only 1 left."
	}
	return fmt.Sprintf("Insufficient stock. Only %d left.", e.Available)
}

// Filter narrows a listing. Zero value matches everything.
type Filter struct {
	Search     string
	Categories []string
	InStock    *bool
}

// MemoryStore keeps the catalog in memory. Listing order is newest first,
// which the client treats as authoritative.
type MemoryStore struct {
	mu     sync.RWMutex
	plants []catalog.Plant
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns plants matching the filter in stored order.
func (s *MemoryStore) List(filter Filter) []catalog.Plant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Plant, 0, len(s.plants))
	for _, plant := range s.plants {
		if !matches(plant, filter) {
			continue
		}
		out = append(out, plant)
	}
	return out
}

// Create assigns an ID and inserts the plant at the head of the listing.
func (s *MemoryStore) Create(payload catalog.NewPlant) catalog.Plant {
	plant := catalog.Plant{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Price:       payload.Price,
		Quantity:    payload.Quantity,
		Categories:  payload.Categories,
		Description: payload.Description,
		Image:       payload.Image,
		Light:       payload.Light,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.plants = append([]catalog.Plant{plant}, s.plants...)
	return plant
}

// Purchase decrements stock atomically and returns the updated plant.
func (s *MemoryStore) Purchase(id string, quantity int) (catalog.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plants {
		if s.plants[i].ID != id {
			continue
		}
		if quantity > s.plants[i].Quantity {
			return catalog.Plant{}, &InsufficientStockError{Available: s.plants[i].Quantity}
		}
		s.plants[i].Quantity -= quantity
		return s.plants[i], nil
	}
	return catalog.Plant{}, ErrNotFound
}

// Categories returns the distinct category vocabulary in sorted order.
func (s *MemoryStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, plant := range s.plants {
		for _, category := range plant.Categories {
			seen[category] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Seed replaces the store contents. Used at startup and in tests.
func (s *MemoryStore) Seed(plants []catalog.Plant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plants = make([]catalog.Plant, len(plants))
	copy(s.plants, plants)
}

func matches(plant catalog.Plant, filter Filter) bool {
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		if !strings.Contains(strings.ToLower(plant.Name), search) &&
			!containsCategoryFold(plant.Categories, search) {
			return false
		}
	}
	if len(filter.Categories) > 0 {
		found := false
		for _, want := range filter.Categories {
			if containsCategoryFold(plant.Categories, strings.ToLower(want)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.InStock != nil && plant.InStock() != *filter.InStock {
		return false
	}
	return true
}

func containsCategoryFold(categories []string, lowered string) bool {
	for _, category := range categories {
		if strings.Contains(strings.ToLower(category), lowered) {
			return true
		}
	}
	return false
}
