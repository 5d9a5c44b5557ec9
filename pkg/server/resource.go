package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kerbaras/perusahaan/pkg/data"
)

// resource serves the CRUD routes of one entity.
type resource[T any] struct {
	repo   data.Repository[T]
	schema *data.Schema[T]
	logger *slog.Logger
}

func mount[T any](r chi.Router, repo data.Repository[T], schema *data.Schema[T], logger *slog.Logger) {
	res := &resource[T]{repo: repo, schema: schema, logger: logger.With(slog.String("entity", schema.Name))}
	r.Route("/"+schema.Name, func(r chi.Router) {
		r.Get("/", res.list)
		r.Post("/", res.create)
		r.Get("/{id}", res.get)
		r.Put("/{id}", res.update)
		r.Delete("/{id}", res.delete)
	})
}

func (res *resource[T]) list(w http.ResponseWriter, r *http.Request) {
	items, err := res.repo.List(r.Context())
	if err != nil {
		storeErrorToHTTP(w, res.logger, err)
		return
	}
	writeData(w, http.StatusOK, "ok", items)
}

func (res *resource[T]) get(w http.ResponseWriter, r *http.Request) {
	item, err := res.repo.Get(r.Context(), idParam(r))
	if err != nil {
		storeErrorToHTTP(w, res.logger, err)
		return
	}
	writeData(w, http.StatusOK, "ok", item)
}

func (res *resource[T]) create(w http.ResponseWriter, r *http.Request) {
	var draft T
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := res.schema.Validate(draft); err != nil {
		storeErrorToHTTP(w, res.logger, err)
		return
	}
	created, err := res.repo.Create(r.Context(), draft)
	if err != nil {
		storeErrorToHTTP(w, res.logger, err)
		return
	}
	writeData(w, http.StatusCreated, "created", created)
}

func (res *resource[T]) update(w http.ResponseWriter, r *http.Request) {
	var draft T
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := res.schema.Validate(draft); err != nil {
		storeErrorToHTTP(w, res.logger, err)
		return
	}
	updated, err := res.repo.Update(r.Context(), idParam(r), draft)
	if err != nil {
		storeErrorToHTTP(w, res.logger, err)
		return
	}
	writeData(w, http.StatusOK, "updated", updated)
}

func (res *resource[T]) delete(w http.ResponseWriter, r *http.Request) {
	if err := res.repo.Delete(r.Context(), idParam(r)); err != nil {
		storeErrorToHTTP(w, res.logger, err)
		return
	}
	writeData(w, http.StatusOK, "deleted", nil)
}
