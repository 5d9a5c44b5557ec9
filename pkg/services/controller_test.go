package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/stretchr/testify/assert"
)

// mockRepository lets each test script the store. Unset funcs behave like an
// empty store.
type mockRepository[T any] struct {
	listFunc   func(ctx context.Context) ([]T, error)
	getFunc    func(ctx context.Context, id string) (T, error)
	createFunc func(ctx context.Context, draft T) (T, error)
	updateFunc func(ctx context.Context, id string, draft T) (T, error)
	deleteFunc func(ctx context.Context, id string) error

	listCalls   atomic.Int32
	getCalls    atomic.Int32
	createCalls atomic.Int32
	updateCalls atomic.Int32
	deleteCalls atomic.Int32
}

var _ data.Repository[data.Manajer] = (*mockRepository[data.Manajer])(nil)

func (m *mockRepository[T]) List(ctx context.Context) ([]T, error) {
	m.listCalls.Add(1)
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []T{}, nil
}

func (m *mockRepository[T]) Get(ctx context.Context, id string) (T, error) {
	m.getCalls.Add(1)
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	var zero T
	return zero, data.ErrNotFound
}

func (m *mockRepository[T]) Create(ctx context.Context, draft T) (T, error) {
	m.createCalls.Add(1)
	if m.createFunc != nil {
		return m.createFunc(ctx, draft)
	}
	return draft, nil
}

func (m *mockRepository[T]) Update(ctx context.Context, id string, draft T) (T, error) {
	m.updateCalls.Add(1)
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, draft)
	}
	return draft, nil
}

func (m *mockRepository[T]) Delete(ctx context.Context, id string) error {
	m.deleteCalls.Add(1)
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestNewControllers(t *testing.T) {
	controllers := NewControllers(data.NewMemoryRepositories(), nil)

	if controllers.Manajer == nil || controllers.Jenis == nil || controllers.Pemilik == nil || controllers.Properti == nil {
		t.Fatal("NewControllers() left an entity without a controller")
	}
	assert.Equal(t, "manajer", controllers.Manajer.Schema().Name)
	assert.Equal(t, "properti", controllers.Properti.Schema().Name)
}

func TestEntityControllerSharesRepository(t *testing.T) {
	repos := data.NewMemoryRepositories()
	controllers := NewControllers(repos, nil)
	ctx := context.Background()

	form := controllers.Manajer.Insert()
	assert.NoError(t, form.UpdateField("id_manajer", "M1"))
	assert.NoError(t, form.UpdateField("nama_manajer", "Andi"))
	assert.NoError(t, form.UpdateField("kontak_manajer", "0812"))
	_, err := form.Submit(ctx)
	assert.NoError(t, err)

	list := controllers.Manajer.List()
	state := list.Load(ctx)
	success, ok := state.(Success[[]data.Manajer])
	if !ok {
		t.Fatalf("Load() = %T, want Success", state)
	}
	assert.Equal(t, []data.Manajer{{ID: "M1", Nama: "Andi", Kontak: "0812"}}, success.Data)

	detail := controllers.Manajer.Detail("M1")
	assert.Equal(t, "M1", detail.ID())
	assert.IsType(t, Success[data.Manajer]{}, detail.Refresh(ctx))

	update := controllers.Manajer.Update("M1")
	assert.Equal(t, ModeUpdate, update.Mode())
}

func TestMutationStatusString(t *testing.T) {
	tests := []struct {
		status MutationStatus
		want   string
	}{
		{MutationIdle, "idle"},
		{MutationPending, "pending"},
		{MutationSucceeded, "succeeded"},
		{MutationFailed, "failed"},
		{MutationStatus(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("MutationStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty[data.Manajer](Success[[]data.Manajer]{Data: []data.Manajer{}}))
	assert.True(t, IsEmpty[data.Manajer](Success[[]data.Manajer]{}))
	assert.False(t, IsEmpty[data.Manajer](Success[[]data.Manajer]{Data: []data.Manajer{{ID: "M1"}}}))
	assert.False(t, IsEmpty[data.Manajer](Loading[[]data.Manajer]{}))
	assert.False(t, IsEmpty[data.Manajer](Error[[]data.Manajer]{Err: data.ErrConnection}))
}
