package questions

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// PostgresSource loads a bank document stored as JSONB in the
// question_banks table.
type PostgresSource struct {
	pool   *pgxpool.Pool
	bankID string
}

// NewPostgresSource creates a source reading bankID from pool.
func NewPostgresSource(pool *pgxpool.Pool, bankID string) *PostgresSource {
	return &PostgresSource{pool: pool, bankID: bankID}
}

func (s *PostgresSource) Load(ctx context.Context) (*Bank, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM question_banks WHERE id=$1`, s.bankID).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", s.bankID, err)
	}
	bank, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse bank %s: %w", s.bankID, err)
	}
	return bank, nil
}
