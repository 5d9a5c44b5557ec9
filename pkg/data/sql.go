package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	_ Repository[Manajer]  = (*SQLRepository[Manajer])(nil)
	_ Repository[Properti] = (*SQLRepository[Properti])(nil)
)

// SQLRepository implements Repository on any database reachable through sqlx.
// Both the DuckDB and the SQLite stores use it; queries stick to "?" placeholders
// which both drivers accept.
type SQLRepository[T any] struct {
	db     *sqlx.DB
	schema *Schema[T]
}

func NewSQLRepository[T any](db *sqlx.DB, schema *Schema[T]) *SQLRepository[T] {
	return &SQLRepository[T]{db: db, schema: schema}
}

// NewSQLRepositories binds every entity schema to db.
func NewSQLRepositories(db *sqlx.DB) Repositories {
	return Repositories{
		Manajer:  NewSQLRepository(db, ManajerSchema),
		Jenis:    NewSQLRepository(db, JenisSchema),
		Pemilik:  NewSQLRepository(db, PemilikSchema),
		Properti: NewSQLRepository(db, PropertiSchema),
		Closer:   db,
	}
}

func (r *SQLRepository[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY rowid`,
		strings.Join(r.schema.Columns(), ", "), r.schema.Table)

	out := []T{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.schema.Name, err)
	}
	return out, nil
}

func (r *SQLRepository[T]) Get(ctx context.Context, id string) (T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		strings.Join(r.schema.Columns(), ", "), r.schema.Table, r.schema.Key().Name)

	var v T
	err := r.db.GetContext(ctx, &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, fmt.Errorf("getting %s %s: %w", r.schema.Name, id, ErrNotFound)
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("getting %s %s: %w", r.schema.Name, id, err)
	}
	return v, nil
}

func (r *SQLRepository[T]) Create(ctx context.Context, draft T) (T, error) {
	var zero T
	if err := r.schema.Validate(draft); err != nil {
		return zero, err
	}
	r.schema.AssignID(&draft)
	id := r.schema.ID(draft)

	exists, err := r.exists(ctx, id)
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, fmt.Errorf("creating %s %s: %w", r.schema.Name, id, ErrDuplicate)
	}

	cols := r.schema.Columns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		r.schema.Table, strings.Join(cols, ", "), placeholders)

	if _, err := r.db.ExecContext(ctx, query, toArgs(r.schema.Values(draft))...); err != nil {
		return zero, fmt.Errorf("creating %s %s: %w", r.schema.Name, id, err)
	}
	return draft, nil
}

func (r *SQLRepository[T]) Update(ctx context.Context, id string, draft T) (T, error) {
	var zero T
	if err := r.schema.Validate(draft); err != nil {
		return zero, err
	}
	r.schema.SetID(&draft, id)

	assignments := make([]string, 0, len(r.schema.Fields)-1)
	args := make([]any, 0, len(r.schema.Fields))
	for _, f := range r.schema.Fields[1:] {
		assignments = append(assignments, f.Name+" = ?")
		args = append(args, f.Get(&draft))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = ?`,
		r.schema.Table, strings.Join(assignments, ", "), r.schema.Key().Name)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return zero, fmt.Errorf("updating %s %s: %w", r.schema.Name, id, err)
	}
	if err := requireRow(result, r.schema.Name, id); err != nil {
		return zero, err
	}
	return draft, nil
}

func (r *SQLRepository[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, r.schema.Table, r.schema.Key().Name)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", r.schema.Name, id, err)
	}
	return requireRow(result, r.schema.Name, id)
}

func (r *SQLRepository[T]) exists(ctx context.Context, id string) (bool, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = ?`, r.schema.Table, r.schema.Key().Name)
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return false, fmt.Errorf("checking %s %s: %w", r.schema.Name, id, err)
	}
	return count > 0, nil
}

func requireRow(result sql.Result, entity, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected for %s %s: %w", entity, id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}

func toArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
