package store

import (
	"os"
	"testing"

	"github.com/rheadsz/voice-ai-agent/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

const testSchema = `
CREATE TABLE IF NOT EXISTS leads (
	id           BIGSERIAL PRIMARY KEY,
	owner_name   TEXT,
	phone        TEXT NOT NULL UNIQUE,
	address      TEXT,
	last_call_at TIMESTAMPTZ
)`

// SetupTestDB connects to the database named by TEST_DATABASE_URL and
// ensures the leads schema exists. Tests are skipped when the variable is
// unset so the suite runs without a database.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping store tests")
	}

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	return &TestDB{
		db:    db,
		Store: Store{db: db, logger: observability.NewLogger()},
	}
}

// Truncate clears the leads table between test cases
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	if _, err := tdb.db.Exec("TRUNCATE leads RESTART IDENTITY"); err != nil {
		t.Fatalf("failed to truncate leads: %v", err)
	}
}

// Close releases the test database connection
func (tdb *TestDB) Close() {
	tdb.db.Close()
}
