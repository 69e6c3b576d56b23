package services

import (
	"fmt"
	"log/slog"
	"sync"

	"receivables-console/internal/repositories"
)

// customerDirectoryService is a load-once cache over the customer table.
// It is injected wherever names are resolved so tests can swap in a fake;
// Invalidate is called after a sync run lands fresh customer rows.
type customerDirectoryService struct {
	customerRepo repositories.CustomerRepositoryInterface

	mu     sync.RWMutex
	names  map[string]string
	loaded bool
}

// NewCustomerDirectoryService creates a new customer directory
func NewCustomerDirectoryService(customerRepo repositories.CustomerRepositoryInterface) CustomerDirectoryInterface {
	return &customerDirectoryService{
		customerRepo: customerRepo,
		names:        make(map[string]string),
	}
}

// EnsureLoaded reads the directory into memory if it has not been loaded
// since the last Invalidate.
func (s *customerDirectoryService) EnsureLoaded() error {
	s.mu.RLock()
	if s.loaded {
		s.mu.RUnlock()
		return nil
	}
	s.mu.RUnlock()

	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load customer directory: %w", err)
	}

	names := make(map[string]string, len(customers))
	for i := range customers {
		names[customers[i].ID] = customers[i].DisplayName
	}

	s.mu.Lock()
	s.names = names
	s.loaded = true
	s.mu.Unlock()

	slog.Info("customer directory loaded", "customers", len(names))
	return nil
}

// ResolveName maps a customer id to its display name, falling back to the
// raw identifier when the directory has no entry. An unresolved customer is
// not an error.
func (s *customerDirectoryService) ResolveName(customerID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if name, ok := s.names[customerID]; ok && name != "" {
		return name
	}
	return customerID
}

// Invalidate drops the cached directory; the next EnsureLoaded re-reads it.
func (s *customerDirectoryService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = false
	s.names = make(map[string]string)
}
