package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kerbaras/perusahaan/pkg/data"
)

// ListController loads a whole collection and deletes members of it.
// It is safe for concurrent use: commands run it off the render goroutine.
type ListController[T any] struct {
	repo   data.Repository[T]
	schema *data.Schema[T]
	logger *slog.Logger

	mu       sync.Mutex
	state    State[[]T]
	loading  bool
	mutation Mutation
}

func NewListController[T any](repo data.Repository[T], schema *data.Schema[T], logger *slog.Logger) *ListController[T] {
	return &ListController[T]{
		repo:   repo,
		schema: schema,
		logger: orDiscard(logger),
		state:  Loading[[]T]{},
	}
}

func (c *ListController[T]) State() State[[]T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastMutation reports the outcome of the most recent Delete.
func (c *ListController[T]) LastMutation() Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mutation
}

// Load fetches the collection and publishes Success or Error. A call made
// while a load is in flight returns the current Loading state without
// reaching the repository.
func (c *ListController[T]) Load(ctx context.Context) State[[]T] {
	c.mu.Lock()
	if c.loading {
		s := c.state
		c.mu.Unlock()
		return s
	}
	c.loading = true
	c.state = Loading[[]T]{}
	c.mu.Unlock()

	items, err := c.repo.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.logger.Warn("loading list failed", slog.String("entity", c.schema.Name), slog.Any("err", err))
		c.state = Error[[]T]{Err: err}
		return c.state
	}
	c.logger.Debug("list loaded", slog.String("entity", c.schema.Name), slog.Int("count", len(items)))
	c.state = Success[[]T]{Data: items}
	return c.state
}

// Retry re-runs Load. Views offer it from the Error state.
func (c *ListController[T]) Retry(ctx context.Context) State[[]T] {
	return c.Load(ctx)
}

// Delete removes the record with id. The published list is left as is;
// callers reload when they want to observe the change.
func (c *ListController[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.mutation.Pending() {
		c.mu.Unlock()
		return ErrInFlight
	}
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

func finishMutation(err error) Mutation {
	if err != nil {
		return Mutation{Status: MutationFailed, Err: err}
	}
	return Mutation{Status: MutationSucceeded}
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
