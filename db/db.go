package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Collection names. Each one is persisted as a single JSON array.
const (
	CategoriesCollection   = "categories"
	RecipesCollection      = "recipes"
	CommentsCollection     = "comments"
	LikesCollection        = "likes"
	FollowsCollection      = "follows"
	UsersCollection        = "users"
	SavedRecipesCollection = "savedRecipes"
)

// Backend persists whole collections. Load of a collection that was never
// written returns an empty slice and a nil error.
type Backend interface {
	Load(ctx context.Context, name string) ([]json.RawMessage, error)
	Replace(ctx context.Context, name string, records []json.RawMessage) error
	Close(ctx context.Context) error
}

// Store wraps a Backend and serializes read-modify-write cycles per collection.
type Store struct {
	backend Backend

	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   make(map[string]chan struct{}),
	}
}

func (s *Store) Close(ctx context.Context) error {
	return s.backend.Close(ctx)
}

func (s *Store) slot(name string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.locks[name]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[name] = ch
	}
	return ch
}

// withLock runs fn while holding the collection's slot. Waiting for the slot
// gives up when ctx is done.
func (s *Store) withLock(ctx context.Context, name string, fn func() error) error {
	ch := s.slot(name)
	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("waiting for %s: %w", name, ctx.Err())
	}
	defer func() { <-ch }()
	return fn()
}

// Collection is a typed view over one named collection.
type Collection[T any] struct {
	store *Store
	name  string
}

func NewCollection[T any](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// All returns a snapshot of the collection in insertion order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	raw, err := c.store.backend.Load(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}
	return decodeRecords[T](c.name, raw)
}

// Filter returns the records for which keep reports true, preserving order.
func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for _, rec := range all {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Find returns the first record matching match.
func (c *Collection[T]) Find(ctx context.Context, match func(T) bool) (T, bool, error) {
	var zero T
	all, err := c.All(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, rec := range all {
		if match(rec) {
			return rec, true, nil
		}
	}
	return zero, false, nil
}

// Mutate loads the collection, hands it to fn and persists whatever fn
// returns. No other Mutate on the same collection runs in between. If fn
// returns an error nothing is written and the error is returned unchanged.
func (c *Collection[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	return c.store.withLock(ctx, c.name, func() error {
		current, err := c.All(ctx)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		raw, err := encodeRecords(c.name, next)
		if err != nil {
			return err
		}
		if err := c.store.backend.Replace(ctx, c.name, raw); err != nil {
			return fmt.Errorf("replace %s: %w", c.name, err)
		}
		return nil
	})
}

func decodeRecords[T any](name string, raw []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var rec T
		if err := json.Unmarshal(r, &rec); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", name, i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func encodeRecords[T any](name string, records []T) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(records))
	for i, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encode %s[%d]: %w", name, i, err)
		}
		out = append(out, b)
	}
	return out, nil
}
