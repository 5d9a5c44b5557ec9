package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListControllerStartsLoading(t *testing.T) {
	c := NewListController[data.Manajer](&mockRepository[data.Manajer]{}, data.ManajerSchema, nil)
	assert.IsType(t, Loading[[]data.Manajer]{}, c.State())
	assert.Equal(t, MutationIdle, c.LastMutation().Status)
}

func TestListControllerLoad(t *testing.T) {
	managers := []data.Manajer{
		{ID: "M2", Nama: "Budi", Kontak: "0812"},
		{ID: "M1", Nama: "Andi", Kontak: "0813"},
	}
	repo := &mockRepository[data.Manajer]{
		listFunc: func(ctx context.Context) ([]data.Manajer, error) {
			return managers, nil
		},
	}
	c := NewListController[data.Manajer](repo, data.ManajerSchema, nil)

	state := c.Load(context.Background())

	success, ok := state.(Success[[]data.Manajer])
	require.True(t, ok, "Load() = %T, want Success", state)
	assert.Equal(t, managers, success.Data, "order must match the store")
	assert.Equal(t, state, c.State())
	assert.Equal(t, int32(1), repo.listCalls.Load())
}

func TestListControllerLoadEmpty(t *testing.T) {
	c := NewListController[data.Jenis](&mockRepository[data.Jenis]{}, data.JenisSchema, nil)

	state := c.Load(context.Background())

	assert.True(t, IsEmpty[data.Jenis](state))
}

func TestListControllerLoadError(t *testing.T) {
	repo := &mockRepository[data.Manajer]{
		listFunc: func(ctx context.Context) ([]data.Manajer, error) {
			return nil, data.ErrConnection
		},
	}
	c := NewListController[data.Manajer](repo, data.ManajerSchema, nil)

	state := c.Load(context.Background())

	failed, ok := state.(Error[[]data.Manajer])
	require.True(t, ok, "Load() = %T, want Error", state)
	assert.ErrorIs(t, failed.Err, data.ErrConnection)
}

func TestListControllerRetry(t *testing.T) {
	fail := true
	repo := &mockRepository[data.Manajer]{
		listFunc: func(ctx context.Context) ([]data.Manajer, error) {
			if fail {
				return nil, data.ErrConnection
			}
			return []data.Manajer{{ID: "M1", Nama: "Andi", Kontak: "0812"}}, nil
		},
	}
	c := NewListController[data.Manajer](repo, data.ManajerSchema, nil)
	ctx := context.Background()

	assert.IsType(t, Error[[]data.Manajer]{}, c.Load(ctx))
	calls := repo.listCalls.Load()

	fail = false
	state := c.Retry(ctx)

	assert.Equal(t, calls+1, repo.listCalls.Load(), "retry must fetch exactly once")
	assert.IsType(t, Success[[]data.Manajer]{}, state)
}

func TestListControllerLoadInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	repo := &mockRepository[data.Manajer]{
		listFunc: func(ctx context.Context) ([]data.Manajer, error) {
			close(started)
			<-release
			return []data.Manajer{}, nil
		},
	}
	c := NewListController[data.Manajer](repo, data.ManajerSchema, nil)
	ctx := context.Background()

	done := make(chan State[[]data.Manajer])
	go func() { done <- c.Load(ctx) }()
	<-started

	assert.IsType(t, Loading[[]data.Manajer]{}, c.Load(ctx))
	assert.Equal(t, int32(1), repo.listCalls.Load(), "second load must not reach the store")

	close(release)
	assert.IsType(t, Success[[]data.Manajer]{}, <-done)
}

func TestListControllerDeleteThenReload(t *testing.T) {
	repo := data.NewMemoryRepository(data.ManajerSchema, data.Manajer{ID: "M1", Nama: "Andi", Kontak: "0812"})
	c := NewListController[data.Manajer](repo, data.ManajerSchema, nil)
	ctx := context.Background()

	require.Len(t, c.Load(ctx).(Success[[]data.Manajer]).Data, 1)

	require.NoError(t, c.Delete(ctx, "M1"))
	assert.Equal(t, MutationSucceeded, c.LastMutation().Status)

	assert.True(t, IsEmpty[data.Manajer](c.Load(ctx)))
}

func TestListControllerDeleteFailure(t *testing.T) {
	repo := &mockRepository[data.Manajer]{
		deleteFunc: func(ctx context.Context, id string) error {
			return data.ErrNotFound
		},
	}
	c := NewListController[data.Manajer](repo, data.ManajerSchema, nil)

	err := c.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, data.ErrNotFound)
	m := c.LastMutation()
	assert.Equal(t, MutationFailed, m.Status)
	assert.ErrorIs(t, m.Err, data.ErrNotFound)
	assert.IsType(t, Loading[[]data.Manajer]{}, c.State(), "a failed delete must not touch the list state")
}

func TestListControllerDeleteInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	repo := &mockRepository[data.Manajer]{
		deleteFunc: func(ctx context.Context, id string) error {
			close(started)
			<-release
			return nil
		},
	}
	c := NewListController[data.Manajer](repo, data.ManajerSchema, nil)
	ctx := context.Background()

	done := make(chan error)
	go func() { done <- c.Delete(ctx, "M1") }()
	<-started

	err := c.Delete(ctx, "M1")
	assert.True(t, errors.Is(err, ErrInFlight), "expected ErrInFlight, got %v", err)
	assert.True(t, c.LastMutation().Pending())

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, int32(1), repo.deleteCalls.Load())
}
