package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kerbaras/perusahaan/pkg/data"
)

// DetailController loads one record and deletes it. It never navigates;
// the screen decides where to go after a delete.
type DetailController[T any] struct {
	repo   data.Repository[T]
	schema *data.Schema[T]
	logger *slog.Logger

	mu       sync.Mutex
	id       string
	state    State[T]
	loading  bool
	mutation Mutation
}

func NewDetailController[T any](repo data.Repository[T], schema *data.Schema[T], id string, logger *slog.Logger) *DetailController[T] {
	return &DetailController[T]{
		repo:   repo,
		schema: schema,
		logger: orDiscard(logger),
		id:     id,
		state:  Loading[T]{},
	}
}

func (c *DetailController[T]) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

func (c *DetailController[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *DetailController[T]) LastMutation() Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mutation
}

// LoadDetail restarts at Loading and fetches the record with id.
func (c *DetailController[T]) LoadDetail(ctx context.Context, id string) State[T] {
	c.mu.Lock()
	if c.loading && c.id == id {
		s := c.state
		c.mu.Unlock()
		return s
	}
	c.id = id
	c.loading = true
	c.state = Loading[T]{}
	c.mu.Unlock()

	record, err := c.repo.Get(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.id != id {
		// a newer LoadDetail for another id owns the state now
		return c.state
	}
	c.loading = false
	if err != nil {
		c.logger.Warn("loading detail failed", slog.String("entity", c.schema.Name), slog.String("id", id), slog.Any("err", err))
		c.state = Error[T]{Err: err}
		return c.state
	}
	c.state = Success[T]{Data: record}
	return c.state
}

// Refresh reloads the current id.
func (c *DetailController[T]) Refresh(ctx context.Context) State[T] {
	return c.LoadDetail(ctx, c.ID())
}

// Delete removes the currently loaded record.
func (c *DetailController[T]) Delete(ctx context.Context) error {
	c.mu.Lock()
	loaded, ok := c.state.(Success[T])
	if !ok {
		c.mu.Unlock()
		return ErrNotLoaded
	}
	if c.mutation.Pending() {
		c.mu.Unlock()
		return ErrInFlight
	}
	id := c.schema.ID(loaded.Data)
	c.mutation = Mutation{Status: MutationPending}
	c.mu.Unlock()

	err := c.repo.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.mutation = finishMutation(err)
	if err != nil {
		c.logger.Error("delete failed", slog.String("entity", c.schema.Name), slog.String("id", id), slog.Any("err", err))
		return err
	}
	c.logger.Info("deleted", slog.String("entity", c.schema.Name), slog.String("id", id))
	return nil
}
