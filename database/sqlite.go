package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
)

// DriverName is the go-sqlite3 driver with the opsledger SQL functions registered
const DriverName = "sqlite3_opsledger"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// SQLite's LOWER and LIKE only fold ASCII
			return conn.RegisterFunc("fold", foldValue, true)
		},
	})
}

// Fold applies Unicode case folding; text searches compare folded values on both sides
func Fold(s string) string {
	return cases.Fold().String(s)
}

// foldValue is the SQL side of Fold. NULL arrives as a nil []byte.
func foldValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return Fold(x)
	case []byte:
		return Fold(string(x))
	default:
		return Fold(fmt.Sprint(x))
	}
}

// Open opens the SQLite database connection
func Open(dataSourceName string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dataSourceName, "?") {
		sep = "&"
	}

	db, err := sql.Open(DriverName, dataSourceName+sep+"_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Enable foreign key constraints
	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(dataSourceName string) (*sql.DB, error) {
	db, err := Open(dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
