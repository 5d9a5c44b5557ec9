package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/marcboeker/go-duckdb/v2"
)

// InitDuckDB opens the DuckDB file at path, creating parent directories and
// the entity tables when missing.
func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb %s: %w", path, err)
	}

	for _, ddl := range []string{
		ManajerSchema.CreateTableSQL(),
		JenisSchema.CreateTableSQL(),
		PemilikSchema.CreateTableSQL(),
		PropertiSchema.CreateTableSQL(),
	} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating tables: %w", err)
		}
	}

	return db, nil
}

// NewDuckDBRepositories opens path and returns repositories sharing the connection.
func NewDuckDBRepositories(path string) (Repositories, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return Repositories{}, err
	}
	return NewSQLRepositories(sqlx.NewDb(db, "duckdb")), nil
}
