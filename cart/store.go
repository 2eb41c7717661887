// Package cart keeps one storefront session's cart, mirrored to durable storage.
package cart

import (
	"errors"
	"fmt"
	"sync"

	"suite46-pickup/models"
	"suite46-pickup/storage"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Store holds at most one line per item id, in the order items were first
// added. Every mutation rewrites the whole snapshot under storage.CartKey.
type Store struct {
	mu    sync.Mutex
	kv    storage.Store
	log   logrus.FieldLogger
	order []string
	lines map[string]models.CartLine
}

func New(kv storage.Store, log logrus.FieldLogger) *Store {
	return &Store{
		kv:    kv,
		log:   log,
		lines: make(map[string]models.CartLine),
	}
}

// Hydrate replaces the in-memory cart with the persisted snapshot. A missing
// snapshot leaves the cart empty. A snapshot that does not decode is removed
// and the cart starts empty; only storage failures are returned.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.lines = make(map[string]models.CartLine)

	raw, err := s.kv.Get(storage.CartKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	var saved []models.CartLine
	if err := json.Unmarshal(raw, &saved); err != nil {
		s.log.WithError(err).Warn("discarding unreadable cart snapshot")
		if err := s.kv.Remove(storage.CartKey); err != nil {
			return fmt.Errorf("remove corrupt cart: %w", err)
		}
		return nil
	}

	for _, l := range saved {
		if l.ID == "" || l.Qty <= 0 {
			continue
		}
		if _, seen := s.lines[l.ID]; !seen {
			s.order = append(s.order, l.ID)
		}
		s.lines[l.ID] = l
	}
	return nil
}

// Add increments the quantity of id by one. name and price are recorded only
// when the line is created.
func (s *Store) Add(id, name string, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lines[id]
	if !ok {
		l = models.CartLine{ID: id, Name: name, UnitPrice: price}
		s.order = append(s.order, id)
	}
	l.Qty++
	s.lines[id] = l
	return s.persist()
}

// Decrement lowers the quantity of id by one, dropping the line at zero.
// Unknown ids are ignored.
func (s *Store) Decrement(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lines[id]
	if !ok {
		return nil
	}
	l.Qty--
	if l.Qty <= 0 {
		delete(s.lines, id)
		s.order = removeID(s.order, id)
	} else {
		s.lines[id] = l
	}
	return s.persist()
}

// RemoveLines takes the given quantities out of the cart, dropping lines that
// reach zero. Units added after lines was read stay in the cart.
func (s *Store) RemoveLines(lines []models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rm := range lines {
		l, ok := s.lines[rm.ID]
		if !ok {
			continue
		}
		l.Qty -= rm.Qty
		if l.Qty <= 0 {
			delete(s.lines, rm.ID)
			s.order = removeID(s.order, rm.ID)
		} else {
			s.lines[rm.ID] = l
		}
	}
	return s.persist()
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.lines = make(map[string]models.CartLine)
	return s.persist()
}

// Lines returns a copy of the cart in insertion order
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Qty returns the quantity of id, zero when absent
func (s *Store) Qty(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines[id].Qty
}

// Count is the total number of units across all lines
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, l := range s.lines {
		n += l.Qty
	}
	return n
}

func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

func (s *Store) snapshot() []models.CartLine {
	out := make([]models.CartLine, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.lines[id])
	}
	return out
}

// persist must be called with mu held
func (s *Store) persist() error {
	raw, err := json.Marshal(s.snapshot())
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.Set(storage.CartKey, raw); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
