package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-tieba/internal/config"
	"github.com/MKhiriev/go-tieba/internal/logger"
)

// NewConnectSQLite opens the client database at cfg.DSN, creating the file
// and its directory on first run. The returned DB is not migrated yet.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("error preparing client database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("error opening client database: %w", err)
	}
	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("dsn", cfg.DSN).Msg("client database is not reachable")
		return nil, fmt.Errorf("error pinging client database: %w", err)
	}
	log.Debug().Str("dsn", cfg.DSN).Msg("client database opened")

	return &DB{DB: conn, logger: log}, nil
}

// ensureDBFile creates path and its parent directory when missing. The token
// is a credential, so the file is private to the user. In-memory and URI
// DSNs are left to the driver.
func ensureDBFile(path string) error {
	if path == "" || strings.HasPrefix(path, ":memory:") || strings.HasPrefix(path, "file:") {
		return nil
	}

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error checking client database file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating client database directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating client database file: %w", err)
	}
	return f.Close()
}
