package memory

import (
	"fmt"
	"sync"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
)

// collection is an identifier-keyed list kept most-recent-first.
// All methods are safe for concurrent use.
type collection[T any] struct {
	mu    sync.RWMutex
	kind  string
	idOf  func(T) string
	items []T

	// conflicts, when set, reports two distinct items that may not both be stored.
	conflicts func(a, b T) bool
}

func newCollection[T any](kind string, idOf func(T) string) *collection[T] {
	return &collection[T]{kind: kind, idOf: idOf}
}

// indexOf must be called with the lock held.
func (c *collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}

// checkConflicts must be called with the lock held. The item at skip is ignored.
func (c *collection[T]) checkConflicts(item T, skip int) error {
	if c.conflicts == nil {
		return nil
	}
	for i, other := range c.items {
		if i != skip && c.conflicts(item, other) {
			return fmt.Errorf("%s %s conflicts with %s: %w", c.kind, c.idOf(item), c.idOf(other), apperrors.ErrDuplicate)
		}
	}
	return nil
}

func (c *collection[T]) get(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%s %s: %w", c.kind, id, apperrors.ErrNotFound)
	}
	item := c.items[i]
	return &item, nil
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) prepend(item T) error {
	_, err := c.insert(item, nil)
	return err
}

// insert runs prepare on item under the write lock, then stores it at the head.
// An error from prepare leaves the collection unchanged.
func (c *collection[T]) insert(item T, prepare func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prepare != nil {
		if err := prepare(&item); err != nil {
			return nil, err
		}
	}
	id := c.idOf(item)
	if c.indexOf(id) >= 0 {
		return nil, fmt.Errorf("%s %s: %w", c.kind, id, apperrors.ErrDuplicate)
	}
	if err := c.checkConflicts(item, -1); err != nil {
		return nil, err
	}
	c.items = append([]T{item}, c.items...)
	return &item, nil
}

// modify applies fn to a copy of the stored item under the write lock and
// stores the result. An error from fn leaves the collection unchanged.
func (c *collection[T]) modify(id string, fn func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%s %s: %w", c.kind, id, apperrors.ErrNotFound)
	}
	item := c.items[i]
	if err := fn(&item); err != nil {
		return nil, err
	}
	if c.idOf(item) != id {
		return nil, fmt.Errorf("%s %s: identifier cannot change: %w", c.kind, id, apperrors.ErrValidation)
	}
	if err := c.checkConflicts(item, i); err != nil {
		return nil, err
	}
	c.items[i] = item
	return &item, nil
}

func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s %s: %w", c.kind, id, apperrors.ErrNotFound)
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// update applies fn to every item under one write lock and returns how many
// items fn reported as changed.
func (c *collection[T]) update(fn func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for i := range c.items {
		if fn(&c.items[i]) {
			changed++
		}
	}
	return changed
}
