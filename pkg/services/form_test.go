package services

import (
	"context"
	"testing"

	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertFormStartsEmpty(t *testing.T) {
	c := NewInsertForm[data.Pemilik](&mockRepository[data.Pemilik]{}, data.PemilikSchema, nil)

	assert.Equal(t, ModeInsert, c.Mode())
	assert.Equal(t, data.Pemilik{}, c.Draft())
	assert.IsType(t, Success[data.Pemilik]{}, c.State())
	assert.IsType(t, Success[data.Pemilik]{}, c.Load(context.Background()), "insert forms have nothing to load")
}

func TestFormUpdateField(t *testing.T) {
	c := NewInsertForm[data.Manajer](&mockRepository[data.Manajer]{}, data.ManajerSchema, nil)

	require.NoError(t, c.UpdateField("nama_manajer", "Andi"))
	require.NoError(t, c.UpdateField("id_manajer", "M9"))

	assert.Equal(t, "Andi", c.Draft().Nama)
	assert.Equal(t, "M9", c.Draft().ID, "insert forms may choose their id")
	v, err := c.Value("nama_manajer")
	require.NoError(t, err)
	assert.Equal(t, "Andi", v)

	assert.ErrorIs(t, c.UpdateField("gaji", "1"), ErrUnknownField)
	_, err = c.Value("gaji")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestInsertFormSubmit(t *testing.T) {
	var created data.Manajer
	repo := &mockRepository[data.Manajer]{
		createFunc: func(ctx context.Context, draft data.Manajer) (data.Manajer, error) {
			created = draft
			draft.ID = "generated"
			return draft, nil
		},
	}
	c := NewInsertForm[data.Manajer](repo, data.ManajerSchema, nil)
	require.NoError(t, c.UpdateField("nama_manajer", "Andi"))
	require.NoError(t, c.UpdateField("kontak_manajer", "0812"))

	saved, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, data.Manajer{Nama: "Andi", Kontak: "0812"}, created)
	assert.Equal(t, "generated", saved.ID)
	assert.Equal(t, saved, c.Draft())
	assert.Equal(t, MutationSucceeded, c.Submission().Status)
}

func TestFormSubmitValidation(t *testing.T) {
	repo := &mockRepository[data.Properti]{}
	c := NewInsertForm[data.Properti](repo, data.PropertiSchema, nil)
	require.NoError(t, c.UpdateField("nama_properti", "Villa"))
	require.NoError(t, c.UpdateField("harga", "mahal"))

	_, err := c.Submit(context.Background())

	assert.ErrorIs(t, err, data.ErrValidation)
	assert.Equal(t, int32(0), repo.createCalls.Load(), "invalid drafts never reach the store")
	assert.Equal(t, MutationFailed, c.Submission().Status)
	assert.Equal(t, "Villa", c.Draft().Nama, "draft is kept")
	assert.ErrorIs(t, c.Validate(), data.ErrValidation)
}

func TestFormSubmitFailureKeepsDraft(t *testing.T) {
	repo := &mockRepository[data.Manajer]{
		createFunc: func(ctx context.Context, draft data.Manajer) (data.Manajer, error) {
			return data.Manajer{}, data.ErrDuplicate
		},
	}
	c := NewInsertForm[data.Manajer](repo, data.ManajerSchema, nil)
	require.NoError(t, c.UpdateField("id_manajer", "M1"))
	require.NoError(t, c.UpdateField("nama_manajer", "Andi"))
	require.NoError(t, c.UpdateField("kontak_manajer", "0812"))

	_, err := c.Submit(context.Background())

	assert.ErrorIs(t, err, data.ErrDuplicate)
	m := c.Submission()
	assert.Equal(t, MutationFailed, m.Status)
	assert.ErrorIs(t, m.Err, data.ErrDuplicate)
	assert.Equal(t, data.Manajer{ID: "M1", Nama: "Andi", Kontak: "0812"}, c.Draft())
}

func TestUpdateForm(t *testing.T) {
	repo := data.NewMemoryRepository(data.ManajerSchema, data.Manajer{ID: "M1", Nama: "Andi", Kontak: "0812"})
	c := NewUpdateForm[data.Manajer](repo, data.ManajerSchema, "M1", nil)
	ctx := context.Background()

	assert.Equal(t, ModeUpdate, c.Mode())
	assert.IsType(t, Loading[data.Manajer]{}, c.State())
	_, err := c.Submit(ctx)
	assert.ErrorIs(t, err, ErrNotLoaded, "submitting before the record is loaded")

	require.IsType(t, Success[data.Manajer]{}, c.Load(ctx))
	assert.Equal(t, "Andi", c.Draft().Nama)

	require.NoError(t, c.UpdateField("nama_manajer", "Budi"))
	saved, err := c.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Manajer{ID: "M1", Nama: "Budi", Kontak: "0812"}, saved)

	stored, err := repo.Get(ctx, "M1")
	require.NoError(t, err)
	assert.Equal(t, "Budi", stored.Nama)
	assert.Equal(t, "0812", stored.Kontak, "update replaces with the full draft")
}

func TestUpdateFormIdentifierIsImmutable(t *testing.T) {
	repo := data.NewMemoryRepository(data.ManajerSchema, data.Manajer{ID: "M1", Nama: "Andi", Kontak: "0812"})
	c := NewUpdateForm[data.Manajer](repo, data.ManajerSchema, "M1", nil)
	c.Load(context.Background())

	assert.ErrorIs(t, c.UpdateField("id_manajer", "M2"), ErrImmutableField)
	assert.NoError(t, c.UpdateField("id_manajer", "M1"))
	assert.Equal(t, "M1", c.Draft().ID)
}

func TestUpdateFormLoadError(t *testing.T) {
	c := NewUpdateForm[data.Jenis](&mockRepository[data.Jenis]{}, data.JenisSchema, "missing", nil)

	state := c.Load(context.Background())

	failed, ok := state.(Error[data.Jenis])
	require.True(t, ok, "Load() = %T, want Error", state)
	assert.ErrorIs(t, failed.Err, data.ErrNotFound)
}

func TestFormDoubleSubmit(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	repo := &mockRepository[data.Jenis]{
		createFunc: func(ctx context.Context, draft data.Jenis) (data.Jenis, error) {
			close(started)
			<-release
			return draft, nil
		},
	}
	c := NewInsertForm[data.Jenis](repo, data.JenisSchema, nil)
	require.NoError(t, c.UpdateField("nama_jenis", "Rumah"))
	ctx := context.Background()

	done := make(chan error)
	go func() {
		_, err := c.Submit(ctx)
		done <- err
	}()
	<-started

	_, err := c.Submit(ctx)
	assert.ErrorIs(t, err, ErrInFlight)

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, int32(1), repo.createCalls.Load(), "exactly one create")
}
