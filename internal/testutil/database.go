package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates the stock table for testing.
// Kept in sync with internal/database/migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE stock (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(10) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL DEFAULT 'NA',
			purchase_price REAL NOT NULL,
			shares INTEGER NOT NULL,
			purchase_date VARCHAR(10) NOT NULL DEFAULT 'NA'
		);
	`
	_, err := db.Exec(schema)
	return err
}
