package data

import (
	"context"
	"io"
)

// Repository is the CRUD capability for one entity type.
type Repository[T any] interface {
	// List returns every record in store order.
	List(ctx context.Context) ([]T, error)

	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (T, error)

	// Create stores a new record. A blank identifier is replaced by a fresh UUID.
	// It returns a *ValidationError for an invalid draft and ErrDuplicate when
	// the identifier is already taken.
	Create(ctx context.Context, draft T) (T, error)

	// Update replaces every field of the record keyed by id. The identifier
	// itself never changes: the draft's id is overwritten with id. Invalid
	// drafts are rejected with a *ValidationError.
	Update(ctx context.Context, id string, draft T) (T, error)

	// Delete removes the record with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// Repositories bundles one repository per entity. Closer releases the
// underlying connection and may be nil for stores without one.
type Repositories struct {
	Manajer  Repository[Manajer]
	Jenis    Repository[Jenis]
	Pemilik  Repository[Pemilik]
	Properti Repository[Properti]

	Closer io.Closer
}

func (r Repositories) Close() error {
	if r.Closer == nil {
		return nil
	}
	return r.Closer.Close()
}
