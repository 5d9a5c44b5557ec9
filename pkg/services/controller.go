package services

import (
	"log/slog"

	"github.com/kerbaras/perusahaan/pkg/data"
)

// EntityController hands out the list, detail and form controllers of one
// entity, all sharing the same repository and logger.
type EntityController[T any] struct {
	repo   data.Repository[T]
	schema *data.Schema[T]
	logger *slog.Logger
}

func NewEntityController[T any](repo data.Repository[T], schema *data.Schema[T], logger *slog.Logger) *EntityController[T] {
	return &EntityController[T]{repo: repo, schema: schema, logger: orDiscard(logger)}
}

func (c *EntityController[T]) Schema() *data.Schema[T] {
	return c.schema
}

func (c *EntityController[T]) List() *ListController[T] {
	return NewListController(c.repo, c.schema, c.logger)
}

func (c *EntityController[T]) Detail(id string) *DetailController[T] {
	return NewDetailController(c.repo, c.schema, id, c.logger)
}

func (c *EntityController[T]) Insert() *FormController[T] {
	return NewInsertForm(c.repo, c.schema, c.logger)
}

func (c *EntityController[T]) Update(id string) *FormController[T] {
	return NewUpdateForm(c.repo, c.schema, id, c.logger)
}

// Controllers bundles one EntityController per entity.
type Controllers struct {
	Manajer  *EntityController[data.Manajer]
	Jenis    *EntityController[data.Jenis]
	Pemilik  *EntityController[data.Pemilik]
	Properti *EntityController[data.Properti]
}

func NewControllers(repos data.Repositories, logger *slog.Logger) *Controllers {
	return &Controllers{
		Manajer:  NewEntityController(repos.Manajer, data.ManajerSchema, logger),
		Jenis:    NewEntityController(repos.Jenis, data.JenisSchema, logger),
		Pemilik:  NewEntityController(repos.Pemilik, data.PemilikSchema, logger),
		Properti: NewEntityController(repos.Properti, data.PropertiSchema, logger),
	}
}
