package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kerbaras/perusahaan/pkg/data"
)

type FormMode int

const (
	ModeInsert FormMode = iota
	ModeUpdate
)

// FormController holds the draft edited by an insert or update screen and
// submits it. The seeding fetch of an update form follows the usual
// Loading/Success/Error states; the submit outcome is reported separately
// through Submission so a failed save never looks like a failed load.
type FormController[T any] struct {
	repo   data.Repository[T]
	schema *data.Schema[T]
	logger *slog.Logger
	mode   FormMode
	id     string

	mu         sync.Mutex
	draft      T
	state      State[T]
	loading    bool
	submission Mutation
}

// NewInsertForm starts from an empty draft.
func NewInsertForm[T any](repo data.Repository[T], schema *data.Schema[T], logger *slog.Logger) *FormController[T] {
	var draft T
	return &FormController[T]{
		repo:   repo,
		schema: schema,
		logger: orDiscard(logger),
		mode:   ModeInsert,
		draft:  draft,
		state:  Success[T]{Data: draft},
	}
}

// NewUpdateForm edits the record with id. Call Load to seed the draft.
func NewUpdateForm[T any](repo data.Repository[T], schema *data.Schema[T], id string, logger *slog.Logger) *FormController[T] {
	var draft T
	schema.SetID(&draft, id)
	return &FormController[T]{
		repo:   repo,
		schema: schema,
		logger: orDiscard(logger),
		mode:   ModeUpdate,
		id:     id,
		draft:  draft,
		state:  Loading[T]{},
	}
}

func (c *FormController[T]) Mode() FormMode {
	return c.mode
}

func (c *FormController[T]) Schema() *data.Schema[T] {
	return c.schema
}

func (c *FormController[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *FormController[T]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *FormController[T]) Submission() Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submission
}

// Load seeds the draft of an update form from the repository. Insert forms
// have nothing to fetch and return their current state.
func (c *FormController[T]) Load(ctx context.Context) State[T] {
	c.mu.Lock()
	if c.mode == ModeInsert || c.loading {
		s := c.state
		c.mu.Unlock()
		return s
	}
	c.loading = true
	c.state = Loading[T]{}
	c.mu.Unlock()

	record, err := c.repo.Get(ctx, c.id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.logger.Warn("loading form failed", slog.String("entity", c.schema.Name), slog.String("id", c.id), slog.Any("err", err))
		c.state = Error[T]{Err: err}
		return c.state
	}
	c.draft = record
	c.state = Success[T]{Data: record}
	return c.state
}

// Value returns the draft value of a declared field.
func (c *FormController[T]) Value(name string) (string, error) {
	f, ok := c.schema.Field(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return f.Get(&c.draft), nil
}

// UpdateField sets one field of the draft. Nothing is sent anywhere.
func (c *FormController[T]) UpdateField(name, value string) error {
	f, ok := c.schema.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if c.mode == ModeUpdate && name == c.schema.Key().Name && value != c.id {
		return fmt.Errorf("%w: %s", ErrImmutableField, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	f.Set(&c.draft, value)
	return nil
}

func (c *FormController[T]) Validate() error {
	return c.schema.Validate(c.Draft())
}

// Submit validates the draft and sends it: a create for insert forms, a full
// replace keyed by the original id for update forms. On failure the draft is
// kept so the user can fix it and try again.
func (c *FormController[T]) Submit(ctx context.Context) (T, error) {
	var zero T

	c.mu.Lock()
	if c.submission.Pending() {
		c.mu.Unlock()
		return zero, ErrInFlight
	}
	if _, loaded := c.state.(Success[T]); !loaded {
		c.mu.Unlock()
		return zero, ErrNotLoaded
	}
	draft := c.draft
	if err := c.schema.Validate(draft); err != nil {
		c.submission = Mutation{Status: MutationFailed, Err: err}
		c.mu.Unlock()
		return zero, err
	}
	c.submission = Mutation{Status: MutationPending}
	c.mu.Unlock()

	var (
		saved T
		err   error
	)
	switch c.mode {
	case ModeInsert:
		saved, err = c.repo.Create(ctx, draft)
	case ModeUpdate:
		saved, err = c.repo.Update(ctx, c.id, draft)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submission = finishMutation(err)
	if err != nil {
		c.logger.Error("submit failed", slog.String("entity", c.schema.Name), slog.String("id", c.schema.ID(draft)), slog.Any("err", err))
		return zero, err
	}
	c.logger.Info("saved", slog.String("entity", c.schema.Name), slog.String("id", c.schema.ID(saved)))
	c.draft = saved
	return saved, nil
}
