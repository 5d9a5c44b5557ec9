// Package remote implements the repositories over the REST API served by
// pkg/server.
package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/kerbaras/perusahaan/pkg/data"
)

var _ data.Repository[data.Properti] = (*Repository[data.Properti])(nil)

type Repository[T any] struct {
	api    *API
	schema *data.Schema[T]
}

func NewRepository[T any](api *API, schema *data.Schema[T]) *Repository[T] {
	return &Repository[T]{api: api, schema: schema}
}

// NewRepositories points every entity at the server at baseURL.
func NewRepositories(baseURL string, timeout time.Duration) data.Repositories {
	api := NewAPI(baseURL, timeout)
	return data.Repositories{
		Manajer:  NewRepository(api, data.ManajerSchema),
		Jenis:    NewRepository(api, data.JenisSchema),
		Pemilik:  NewRepository(api, data.PemilikSchema),
		Properti: NewRepository(api, data.PropertiSchema),
	}
}

func (r *Repository[T]) collection() string {
	return "/v1/" + r.schema.Name
}

func (r *Repository[T]) member(id string) string {
	return r.collection() + "/" + url.PathEscape(id)
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	if err := r.api.Do(ctx, http.MethodGet, r.collection(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	if err := r.api.Do(ctx, http.MethodGet, r.member(id), nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (r *Repository[T]) Create(ctx context.Context, draft T) (T, error) {
	var out T
	if err := r.api.Do(ctx, http.MethodPost, r.collection(), draft, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (r *Repository[T]) Update(ctx context.Context, id string, draft T) (T, error) {
	r.schema.SetID(&draft, id)
	var out T
	if err := r.api.Do(ctx, http.MethodPut, r.member(id), draft, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	return r.api.Do(ctx, http.MethodDelete, r.member(id), nil, nil)
}
