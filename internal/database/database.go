package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens a GORM connection for the given connection string.
// SQLite is selected for sqlite:// URLs, file: DSNs and .db paths;
// anything else is treated as a PostgreSQL DSN or URL.
//
// The automatic ping is disabled so that a database which is down at
// process startup does not prevent the service from coming up; the
// schema self-heals on the first successful write.
func Connect(databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{DisableAutomaticPing: true}

	var db *gorm.DB
	var err error
	if isSQLite(databaseURL) {
		db, err = gorm.Open(sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://")), cfg)
	} else {
		db, err = gorm.Open(postgres.Open(databaseURL), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func isSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite://") ||
		strings.HasPrefix(url, "file:") ||
		strings.HasSuffix(url, ".db")
}
