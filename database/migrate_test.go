package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_AppliesAllMigrationsOnce(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := InitializeDatabase(dsn)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Greater(t, count, 0)

	applied, err := ApplyMigrations(db)
	require.NoError(t, err)
	assert.Empty(t, applied, "second run should be a no-op")

	for _, table := range []string{
		"organizations", "organization_members", "audit_log",
		"ppe_requirements", "production_runs", "food_safety_plans",
		"recall_plans", "recall_events", "documents",
		"contractor_orientations", "drug_tests", "osha_entries", "spill_reports",
		"recurring_journals", "recurring_journal_lines",
		"approval_tiers", "approval_thresholds",
	} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	db, err := InitializeDatabase(filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO organization_members (organization_id, user_email, role) VALUES (999, 'a@example.com', 'owner')`)
	assert.Error(t, err)
}

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/010_later.sql":   {Data: []byte("SELECT 2;")},
		"migrations/002_second.sql":  {Data: []byte("SELECT 1;")},
		"migrations/001_initial.sql": {Data: []byte("SELECT 0;")},
		"migrations/README.md":       {Data: []byte("ignored")},
	}

	migrations, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 3)
	assert.Equal(t, "001_initial", migrations[0].Version)
	assert.Equal(t, "002_second", migrations[1].Version)
	assert.Equal(t, "010_later", migrations[2].Version)
	assert.Equal(t, "SELECT 2;", migrations[2].SQL)
}

func TestLoadMigrations_Empty(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{})
	assert.Error(t, err)
}
