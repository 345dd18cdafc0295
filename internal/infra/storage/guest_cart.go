// Package storage provides the file-backed local stores: the guest cart
// and the persisted session. Both write atomically (temp file + rename)
// so a crash mid-write never leaves a torn JSON document behind.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"storefront/config"
	"storefront/internal/domain/gateway"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

type guestCartStore struct {
	mu   sync.Mutex
	path string
}

// NewGuestCartStore creates a guest cart store at the configured path.
func NewGuestCartStore(cfg *config.Config) gateway.GuestCartStore {
	return &guestCartStore{path: cfg.GuestCart.Path}
}

func (s *guestCartStore) List() ([]gateway.GuestCartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *guestCartStore) Upsert(item gateway.GuestCartItem) error {
	if item.Quantity < 1 {
		return errors.New("guest cart quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity

			return s.write(items)
		}
	}

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	items = append(items, item)

	return s.write(items)
}

func (s *guestCartStore) UpdateQuantity(id uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}

		if quantity < 1 {
			// A quantity reaching zero removes the line, never stores a zero.
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}

		return s.write(items)
	}

	return errors.Errorf("guest cart item %s not found", id)
}

func (s *guestCartStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)

			return s.write(items)
		}
	}

	return errors.Errorf("guest cart item %s not found", id)
}

func (s *guestCartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to clear guest cart")
	}

	return nil
}

func (s *guestCartStore) read() ([]gateway.GuestCartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []gateway.GuestCartItem{}, nil
		}

		return nil, errors.Wrap(err, "failed to read guest cart")
	}

	var items []gateway.GuestCartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt cart file degrades to an empty cart instead of wedging
		// every guest flow behind a parse error.
		return []gateway.GuestCartItem{}, nil
	}

	return items, nil
}

func (s *guestCartStore) write(items []gateway.GuestCartItem) error {
	return atomicWriteJSON(s.path, items)
}

func atomicWriteJSON(path string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to encode")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create directory")
	}

	tmp, err := os.CreateTemp(dir, ".storefront-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to close temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to replace file")
	}

	return nil
}
