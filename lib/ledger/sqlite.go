// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/wormholelabs-xyz/wormhole-circle-integration-go/lib/sqlitepool"
)

// SQLiteConfig holds the parameters for opening a persistent ledger.
type SQLiteConfig struct {
	// Path is the database file path. Required.
	Path string

	// PoolSize is the connection pool size. Zero means the
	// sqlitepool default.
	PoolSize int

	// Logger receives operational messages. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// SQLite is the persistent replay ledger. The digest set is a single
// WITHOUT ROWID table keyed by the digest bytes; the primary-key
// constraint makes Consume an atomic check-and-set at the database
// level, across connections and across processes.
type SQLite struct {
	pool   *sqlitepool.Pool
	logger *slog.Logger
}

// OpenSQLite opens (creating if necessary) a persistent ledger at
// cfg.Path. The caller must Close it when done.
func OpenSQLite(cfg SQLiteConfig) (*SQLite, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     cfg.Path,
		PoolSize: cfg.PoolSize,
		Logger:   logger,
		OnConnect: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteScript(conn, `
				CREATE TABLE IF NOT EXISTS digests (
					digest BLOB PRIMARY KEY
				) WITHOUT ROWID;
			`, nil)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ledger: opening database: %w", err)
	}

	return &SQLite{pool: pool, logger: logger}, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.pool.Close()
}

// Contains reports whether digest is present.
func (s *SQLite) Contains(ctx context.Context, digest [32]byte) (bool, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return false, err
	}
	defer s.pool.Put(conn)

	found := false
	err = sqlitex.Execute(conn, "SELECT 1 FROM digests WHERE digest = ?", &sqlitex.ExecOptions{
		Args: []any{digest[:]},
		ResultFunc: func(*sqlite.Stmt) error {
			found = true
			return nil
		},
	})
	if err != nil {
		return false, fmt.Errorf("ledger: querying digest: %w", err)
	}
	return found, nil
}

// Consume inserts digest. The primary-key violation on a duplicate is
// mapped to [ErrAlreadyConsumed].
func (s *SQLite) Consume(ctx context.Context, digest [32]byte) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn, "INSERT INTO digests (digest) VALUES (?)", &sqlitex.ExecOptions{
		Args: []any{digest[:]},
	})
	if err != nil {
		code := sqlite.ErrCode(err)
		if code == sqlite.ResultConstraintPrimaryKey || code == sqlite.ResultConstraintUnique {
			return ErrAlreadyConsumed
		}
		return fmt.Errorf("ledger: inserting digest: %w", err)
	}
	return nil
}

// Count returns the number of consumed digests.
func (s *SQLite) Count(ctx context.Context) (int64, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	var count int64
	err = sqlitex.Execute(conn, "SELECT COUNT(*) FROM digests", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			count = stmt.ColumnInt64(0)
			return nil
		},
	})
	if err != nil {
		return 0, fmt.Errorf("ledger: counting digests: %w", err)
	}
	return count, nil
}

// Export writes a snapshot of the ledger to w, in digest order.
func (s *SQLite) Export(ctx context.Context, w io.Writer) (int, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	var digests [][32]byte
	err = sqlitex.Execute(conn, "SELECT digest FROM digests ORDER BY digest", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var d [32]byte
			if n := stmt.ColumnBytes(0, d[:]); n != len(d) {
				return fmt.Errorf("stored digest is %d bytes, want 32", n)
			}
			digests = append(digests, d)
			return nil
		},
	})
	if err != nil {
		return 0, fmt.Errorf("ledger: reading digests: %w", err)
	}

	return writeSnapshot(w, digests)
}

// Import reads a snapshot from r and consumes every digest in it,
// skipping digests already present. Returns the number newly inserted.
func (s *SQLite) Import(ctx context.Context, r io.Reader) (int, error) {
	return readSnapshot(r, func(digest [32]byte) (bool, error) {
		switch err := s.Consume(ctx, digest); {
		case err == nil:
			return true, nil
		case errors.Is(err, ErrAlreadyConsumed):
			return false, nil
		default:
			return false, err
		}
	})
}
