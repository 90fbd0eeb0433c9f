package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"

	"github.com/abhisek/bigfive/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store is the local SQLite database holding survey progress and, when the
// results service runs against SQLite, submitted results.
type Store struct {
	db     *sql.DB
	client *ent.Client
	log    *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and migrates the schema.
func Open(dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", withForeignKeys(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	s := &Store{
		db:     db,
		client: ent.NewClient(ent.Driver(drv)),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.client.Schema.Create(context.Background()); err != nil {
		s.client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	s.log.Debug("sqlite store ready", zap.String("dsn", dsn))
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// KV returns the progress key-value table.
func (s *Store) KV() *KV {
	return &KV{client: s.client}
}

// Results returns the scored results table.
func (s *Store) Results() *Results {
	return &Results{client: s.client}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// withForeignKeys asks the driver to enable foreign keys on every pooled
// connection. ent's SQLite migration refuses to run without them.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// DefaultDBPath resolves the database file path in priority order:
// 1. BIGFIVE_DB environment variable
// 2. $XDG_DATA_HOME/bigfive/bigfive.db
// 3. ~/.local/share/bigfive/bigfive.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("BIGFIVE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "bigfive", "bigfive.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
