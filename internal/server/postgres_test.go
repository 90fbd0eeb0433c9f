package server

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/questions"
)

func TestPostgresResultsEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()
	requireDocker(t)

	dsn, cleanup := startPostgres(t, ctx)
	defer cleanup()

	db := OpenPostgres(dsn)
	defer db.Close()

	group, err := Migrate(ctx, db)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if group.IsZero() {
		t.Fatalf("expected migrations to be applied")
	}
	if group, err := Migrate(ctx, db); err != nil || !group.IsZero() {
		t.Fatalf("second migrate should be a no-op, got %v / %v", group, err)
	}

	bank, err := questions.Embedded()
	if err != nil {
		t.Fatalf("embedded bank: %v", err)
	}
	if err := SeedBank(ctx, db, bank); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SeedBank(ctx, db, bank); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loaded, err := questions.NewPostgresSource(pool, bank.ID).Load(ctx)
	if err != nil {
		t.Fatalf("load seeded bank: %v", err)
	}
	if len(loaded.Questions) != len(bank.Questions) {
		t.Fatalf("expected %d questions, got %d", len(bank.Questions), len(loaded.Questions))
	}

	results := NewPostgresResults(db)
	res := endpoint.NewResult("pg-1", requestFor(bank, 12))
	if err := results.Save(ctx, res); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := results.Save(ctx, res); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}

	got, err := results.Get(ctx, "pg-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TestID != bank.ID || len(got.Answers) != 12 || !got.DateStamp.Equal(res.DateStamp) {
		t.Fatalf("unexpected result %+v", got)
	}
	if _, err := results.Get(ctx, "missing"); err == nil || !strings.Contains(err.Error(), endpoint.ErrNotFound.Error()) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "bigfive", "POSTGRES_PASSWORD": "bigfive", "POSTGRES_DB": "bigfive"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://bigfive:bigfive@%s:%s/bigfive?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
