package data

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

var _ Repository[Jenis] = (*MemoryRepository[Jenis])(nil)

// MemoryRepository keeps records in a map and remembers insertion order so
// List is stable. It backs the "memory" driver and tests.
type MemoryRepository[T any] struct {
	mu      sync.RWMutex
	schema  *Schema[T]
	records map[string]T
	order   []string
}

func NewMemoryRepository[T any](schema *Schema[T], seed ...T) *MemoryRepository[T] {
	r := &MemoryRepository[T]{
		schema:  schema,
		records: make(map[string]T),
	}
	for _, v := range seed {
		id := schema.ID(v)
		r.records[id] = v
		r.order = append(r.order, id)
	}
	return r
}

func NewMemoryRepositories() Repositories {
	return Repositories{
		Manajer:  NewMemoryRepository(ManajerSchema),
		Jenis:    NewMemoryRepository(JenisSchema),
		Pemilik:  NewMemoryRepository(PemilikSchema),
		Properti: NewMemoryRepository(PropertiSchema),
	}
}

func (r *MemoryRepository[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *MemoryRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.records[id]
	if !ok {
		return zero, fmt.Errorf("getting %s %s: %w", r.schema.Name, id, ErrNotFound)
	}
	return v, nil
}

func (r *MemoryRepository[T]) Create(ctx context.Context, draft T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if err := r.schema.Validate(draft); err != nil {
		return zero, err
	}
	r.schema.AssignID(&draft)
	id := r.schema.ID(draft)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; ok {
		return zero, fmt.Errorf("creating %s %s: %w", r.schema.Name, id, ErrDuplicate)
	}
	r.records[id] = draft
	r.order = append(r.order, id)
	return draft, nil
}

func (r *MemoryRepository[T]) Update(ctx context.Context, id string, draft T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if err := r.schema.Validate(draft); err != nil {
		return zero, err
	}
	r.schema.SetID(&draft, id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return zero, fmt.Errorf("updating %s %s: %w", r.schema.Name, id, ErrNotFound)
	}
	r.records[id] = draft
	return draft, nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("deleting %s %s: %w", r.schema.Name, id, ErrNotFound)
	}
	delete(r.records, id)
	r.order = slices.DeleteFunc(r.order, func(k string) bool { return k == id })
	return nil
}
