package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/progress"
	"github.com/abhisek/bigfive/internal/survey"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by TestOpenFile instead.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigfive.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	// Reopening runs the migration against an existing schema.
	s.Close()
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	s2.Close()
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "inProgress"); err != nil || ok {
		t.Fatalf("get missing = ok %v err %v, want not found", ok, err)
	}

	if err := kv.Set(ctx, "inProgress", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "b5data", `{"answers":[]}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "b5data", `{"answers":[],"currentQuestionIndex":3}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := kv.Get(ctx, "b5data")
	if err != nil || !ok {
		t.Fatalf("get b5data: ok %v err %v", ok, err)
	}
	if v != `{"answers":[],"currentQuestionIndex":3}` {
		t.Errorf("b5data = %q, want overwritten value", v)
	}

	if err := kv.Delete(ctx, "inProgress", "b5data", "absent"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, key := range []string{"inProgress", "b5data"} {
		if _, ok, _ := kv.Get(ctx, key); ok {
			t.Errorf("%s still present after delete", key)
		}
	}
	if err := kv.Delete(ctx); err != nil {
		t.Errorf("delete with no keys: %v", err)
	}
}

func TestKVBacksProgressRepository(t *testing.T) {
	s := openTestStore(t)
	repo := progress.NewRepository(s.KV(), nil)
	ctx := context.Background()

	want := survey.Snapshot{
		Answers:              []survey.Answer{{ID: "q1", Score: 3, Domain: "N", Facet: 1}},
		CurrentQuestionIndex: 1,
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.CurrentQuestionIndex != 1 || len(got.Answers) != 1 || got.Answers[0] != want.Answers[0] {
		t.Fatalf("load = %+v, want %+v", got, want)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := repo.Load(ctx); got != nil {
		t.Errorf("load after clear = %+v, want nil", got)
	}
}

func TestResultsSaveGet(t *testing.T) {
	s := openTestStore(t)
	results := s.Results()
	ctx := context.Background()

	res := endpoint.NewResult("r-1", survey.SubmitRequest{
		TestID:      "b5-120",
		Lang:        "en",
		TimeElapsed: 600,
		DateStamp:   time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
		Answers: []survey.Answer{
			{ID: "q1", Score: 4, Domain: "N", Facet: 1},
			{ID: "q2", Score: 2, Domain: "E", Facet: 1},
		},
	})
	if err := results.Save(ctx, res); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := results.Get(ctx, "r-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "r-1" || got.TestID != "b5-120" || got.TimeElapsed != 600 {
		t.Errorf("get = %+v", got)
	}
	if len(got.Scores) != 2 || got.Scores[0].Domain != "N" {
		t.Errorf("scores = %+v, want N and E", got.Scores)
	}
	if !got.DateStamp.Equal(res.DateStamp) {
		t.Errorf("dateStamp = %v, want %v", got.DateStamp, res.DateStamp)
	}

	if err := results.Save(ctx, res); err == nil {
		t.Error("expected duplicate id to fail")
	}
}

func TestResultsGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Results().Get(context.Background(), "nope")
	if !errors.Is(err, endpoint.ErrNotFound) {
		t.Fatalf("get missing = %v, want ErrNotFound", err)
	}
}

func TestSchemaMigrated(t *testing.T) {
	s := openTestStore(t)

	columns := func(table string) map[string]string {
		t.Helper()
		rows, err := s.DB().Query("SELECT name, pk FROM pragma_table_info(?)", table)
		if err != nil {
			t.Fatalf("table_info %s: %v", table, err)
		}
		defer rows.Close()
		cols := make(map[string]string)
		for rows.Next() {
			var name, pk string
			if err := rows.Scan(&name, &pk); err != nil {
				t.Fatalf("scan: %v", err)
			}
			cols[name] = pk
		}
		return cols
	}

	kv := columns("kv")
	if kv["key"] != "1" {
		t.Errorf("kv primary key columns = %v, want key", kv)
	}
	for _, col := range []string{"value", "created_at", "updated_at"} {
		if _, ok := kv[col]; !ok {
			t.Errorf("kv missing column %s", col)
		}
	}

	res := columns("results")
	if res["id"] != "1" {
		t.Errorf("results primary key columns = %v, want id", res)
	}
	for _, col := range []string{"test_id", "lang", "invalid", "time_elapsed", "date_stamp", "data"} {
		if _, ok := res[col]; !ok {
			t.Errorf("results missing column %s", col)
		}
	}
}

func TestKVSetKeepsCreatedAt(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "inProgress", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	var created1 string
	if err := s.DB().QueryRow("SELECT created_at FROM kv WHERE key = ?", "inProgress").Scan(&created1); err != nil {
		t.Fatalf("read created_at: %v", err)
	}

	if err := kv.Set(ctx, "inProgress", "yes"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	var created2, value string
	if err := s.DB().QueryRow("SELECT created_at, value FROM kv WHERE key = ?", "inProgress").Scan(&created2, &value); err != nil {
		t.Fatalf("read row: %v", err)
	}
	if value != "yes" {
		t.Errorf("value = %q, want yes", value)
	}
	if created1 != created2 {
		t.Errorf("created_at changed on upsert: %s -> %s", created1, created2)
	}
}

func TestWithForeignKeys(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/tmp/a.db", "/tmp/a.db?_pragma=foreign_keys(1)"},
		{"file:x?mode=memory", "file:x?mode=memory&_pragma=foreign_keys(1)"},
		{"a.db?_pragma=foreign_keys(0)", "a.db?_pragma=foreign_keys(0)"},
	}
	for _, tt := range tests {
		if got := withForeignKeys(tt.in); got != tt.want {
			t.Errorf("withForeignKeys(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("BIGFIVE_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("env path: %v", err)
	}
	if p != filepath.Join(dir, "custom", "x.db") {
		t.Errorf("path = %q", p)
	}

	t.Setenv("BIGFIVE_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("xdg path: %v", err)
	}
	if p != filepath.Join(dir, "bigfive", "bigfive.db") {
		t.Errorf("path = %q", p)
	}
}
