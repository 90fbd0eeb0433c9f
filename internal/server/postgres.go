package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/questions"
	"github.com/abhisek/bigfive/internal/server/migrations"
)

// OpenPostgres returns a bun handle for dsn. The connection is lazy.
func OpenPostgres(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Migrate applies every pending results-service migration.
func Migrate(ctx context.Context, db *bun.DB) (*migrate.MigrationGroup, error) {
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return nil, fmt.Errorf("init migrations: %w", err)
	}
	group, err := migrator.Migrate(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return group, nil
}

// SeedBank upserts a question bank document so PostgresSource can serve it.
func SeedBank(ctx context.Context, db *bun.DB, bank *questions.Bank) error {
	row := &questionBankRow{
		ID:        bank.ID,
		Version:   bank.Version,
		Data:      bank,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("version = EXCLUDED.version").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("seed bank %s: %w", bank.ID, err)
	}
	return nil
}

type questionBankRow struct {
	bun.BaseModel `bun:"table:question_banks"`

	ID        string          `bun:"id,pk"`
	Version   string          `bun:"version,notnull"`
	Data      *questions.Bank `bun:"data,type:jsonb,notnull"`
	UpdatedAt time.Time       `bun:"updated_at,notnull"`
}

type resultRow struct {
	bun.BaseModel `bun:"table:results"`

	ID          string          `bun:"id,pk"`
	TestID      string          `bun:"test_id,notnull"`
	Lang        string          `bun:"lang,notnull"`
	Invalid     bool            `bun:"invalid,notnull"`
	TimeElapsed int             `bun:"time_elapsed,notnull"`
	DateStamp   time.Time       `bun:"date_stamp,notnull"`
	Data        endpoint.Result `bun:"data,type:jsonb,notnull"`
	CreatedAt   time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// PostgresResults is a ResultStore on Postgres.
type PostgresResults struct {
	db *bun.DB
}

var _ ResultStore = (*PostgresResults)(nil)

// NewPostgresResults wraps a migrated database.
func NewPostgresResults(db *bun.DB) *PostgresResults {
	return &PostgresResults{db: db}
}

func (p *PostgresResults) Save(ctx context.Context, res endpoint.Result) error {
	row := &resultRow{
		ID:          res.ID,
		TestID:      res.TestID,
		Lang:        res.Lang,
		Invalid:     res.Invalid,
		TimeElapsed: res.TimeElapsed,
		DateStamp:   res.DateStamp.UTC(),
		Data:        res,
	}
	if _, err := p.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("insert result %s: %w", res.ID, err)
	}
	return nil
}

func (p *PostgresResults) Get(ctx context.Context, id string) (*endpoint.Result, error) {
	var row resultRow
	err := p.db.NewSelect().Model(&row).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", endpoint.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select result %s: %w", id, err)
	}
	res := row.Data
	return &res, nil
}
