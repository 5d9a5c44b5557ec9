package data

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitDuckDB(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	defer db.Close()

	var tableCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM information_schema.tables WHERE table_name IN ('manajer', 'jenis', 'pemilik', 'properti')`).Scan(&tableCount)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}

	if tableCount != 4 {
		t.Errorf("Expected 4 tables, got %d", tableCount)
	}
}

func TestInitDuckDBCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	// Use nested directory that doesn't exist
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	db, err := InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB with nested path: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("DB file was not created")
	}
}

func TestInitDuckDBIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	db.Close()

	db, err = InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Reopening an initialized DB failed: %v", err)
	}
	db.Close()
}

func TestOpenSQLiteAppliesMigrations(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "test.sqlite"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer db.Close()

	var tableCount int
	err = db.Get(&tableCount, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('manajer', 'jenis', 'pemilik', 'properti')`)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}

	if tableCount != 4 {
		t.Errorf("Expected 4 tables, got %d", tableCount)
	}
}
