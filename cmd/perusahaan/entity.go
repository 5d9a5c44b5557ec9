package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/kerbaras/perusahaan/pkg/services"
)

// entity runs the CLI operations of one entity through the same controllers
// the TUI uses.
type entity interface {
	Name() string
	Labels() []string
	Rows(ctx context.Context, query string) ([][]string, error)
	Detail(ctx context.Context, id string) ([][2]string, error)
	Add(ctx context.Context, values []fieldValue) (string, error)
	Update(ctx context.Context, id string, values []fieldValue) error
	Delete(ctx context.Context, id string) error
}

type fieldValue struct {
	name  string
	value string
}

// parseSets reads repeated --set field=value flags in order.
func parseSets(sets []string) ([]fieldValue, error) {
	out := make([]fieldValue, 0, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --set %q, want field=value", s)
		}
		out = append(out, fieldValue{name: strings.TrimSpace(name), value: value})
	}
	return out, nil
}

func lookupEntity(c *services.Controllers, name string) (entity, error) {
	switch strings.ToLower(name) {
	case "manajer":
		return entityOps[data.Manajer]{c.Manajer}, nil
	case "jenis":
		return entityOps[data.Jenis]{c.Jenis}, nil
	case "pemilik":
		return entityOps[data.Pemilik]{c.Pemilik}, nil
	case "properti":
		return entityOps[data.Properti]{c.Properti}, nil
	}
	return nil, fmt.Errorf("unknown entity %q (want one of %s)", name, strings.Join(data.EntityNames, ", "))
}

type entityOps[T any] struct {
	entities *services.EntityController[T]
}

func (o entityOps[T]) Name() string {
	return o.entities.Schema().Name
}

func (o entityOps[T]) Labels() []string {
	fields := o.entities.Schema().Fields
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	return labels
}

// Rows lists the records whose display name contains query, ignoring case.
// An empty query matches everything.
func (o entityOps[T]) Rows(ctx context.Context, query string) ([][]string, error) {
	schema := o.entities.Schema()
	query = strings.ToLower(query)

	switch state := o.entities.List().Load(ctx).(type) {
	case services.Success[[]T]:
		rows := [][]string{}
		for _, v := range state.Data {
			if query != "" && !strings.Contains(strings.ToLower(schema.DisplayName(v)), query) {
				continue
			}
			rows = append(rows, schema.Values(v))
		}
		return rows, nil
	case services.Error[[]T]:
		return nil, state.Err
	default:
		return nil, errors.New("list is still loading")
	}
}

func (o entityOps[T]) Detail(ctx context.Context, id string) ([][2]string, error) {
	schema := o.entities.Schema()

	switch state := o.entities.Detail(id).LoadDetail(ctx, id).(type) {
	case services.Success[T]:
		values := schema.Values(state.Data)
		out := make([][2]string, len(values))
		for i, f := range schema.Fields {
			out[i] = [2]string{f.Label, values[i]}
		}
		return out, nil
	case services.Error[T]:
		return nil, state.Err
	default:
		return nil, errors.New("record is still loading")
	}
}

func (o entityOps[T]) Add(ctx context.Context, values []fieldValue) (string, error) {
	form := o.entities.Insert()
	for _, fv := range values {
		if err := form.UpdateField(fv.name, fv.value); err != nil {
			return "", err
		}
	}
	saved, err := form.Submit(ctx)
	if err != nil {
		return "", err
	}
	return o.entities.Schema().ID(saved), nil
}

func (o entityOps[T]) Update(ctx context.Context, id string, values []fieldValue) error {
	form := o.entities.Update(id)
	if state, ok := form.Load(ctx).(services.Error[T]); ok {
		return state.Err
	}
	for _, fv := range values {
		if err := form.UpdateField(fv.name, fv.value); err != nil {
			return err
		}
	}
	_, err := form.Submit(ctx)
	return err
}

func (o entityOps[T]) Delete(ctx context.Context, id string) error {
	return o.entities.List().Delete(ctx, id)
}
