package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrStoreUnavailable marks engine-level failures: the database file could
// not be opened or the engine rejected a connection (disk, quota,
// permissions). Callers must surface it instead of treating it as empty data.
var ErrStoreUnavailable = errors.New("store unavailable")

// Init opens (and creates, if needed) the SQLite database at path. The
// lifecycle is explicit: call Init once at startup and Close on shutdown;
// there is no implicit shared handle.
func Init(path string) (*sqlx.DB, error) {
	dir := filepath.Dir(path)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", ErrStoreUnavailable, err)
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	database, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// Single local writer; a small pool is plenty.
	database.SetMaxOpenConns(4)
	database.SetMaxIdleConns(2)
	database.SetConnMaxLifetime(5 * time.Minute)

	err = database.Ping()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrStoreUnavailable, err)
	}

	slog.Debug("database opened", "path", path)
	return database, nil
}

func Close(database *sqlx.DB) error {
	if database != nil {
		return database.Close()
	}
	return nil
}
