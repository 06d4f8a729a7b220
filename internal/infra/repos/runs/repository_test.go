package runs

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmrzaf/seeder/internal/domain"
)

func openTemp(t *testing.T) *SQLRepository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	t.Parallel()
	repo := openTemp(t)
	if repo.DB() == nil {
		t.Fatal("expected db handle to be initialized")
	}
	if repo.driver != driverSQLite {
		t.Fatalf("expected sqlite driver, got %s", repo.driver)
	}
}

func TestOpenRequiresDSN(t *testing.T) {
	t.Parallel()
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	repo := openTemp(t)

	run := &domain.Run{
		SchemaID:   "users",
		SchemaName: "Users",
		Origin:     domain.OriginCLI,
		Seed:       42,
		Count:      10,
		FieldsHash: "abc",
		RunHash:    "def",
		StartedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	Finish(run, nil)
	if err := repo.Create(run); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := repo.Get(run.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.SchemaID != "users" || got.Seed != 42 || got.Count != 10 || got.RunHash != "def" {
		t.Fatalf("unexpected run: %+v", got)
	}
	if got.Status != domain.RunStatusSuccess {
		t.Fatalf("expected success, got %s", got.Status)
	}
	if got.CompletedAt == nil {
		t.Fatal("expected completed_at")
	}
	if !got.StartedAt.Equal(run.StartedAt) {
		t.Fatalf("started_at: got %v want %v", got.StartedAt, run.StartedAt)
	}
}

func TestGetMissing(t *testing.T) {
	t.Parallel()
	repo := openTemp(t)
	if _, err := repo.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersAndFilters(t *testing.T) {
	t.Parallel()
	repo := openTemp(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := &domain.Run{Origin: domain.OriginAPI, Count: i, StartedAt: base.Add(time.Duration(i) * time.Hour)}
		var err error
		if i == 1 {
			err = errors.New("boom")
		}
		Finish(run, err)
		if err := repo.Create(run); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	all, err := repo.List(0, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(all))
	}
	if all[0].Count != 2 || all[2].Count != 0 {
		t.Fatalf("expected newest first, got counts %d..%d", all[0].Count, all[2].Count)
	}

	failed, err := repo.List(0, string(domain.RunStatusFailed))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(failed) != 1 || failed[0].Error != "boom" {
		t.Fatalf("unexpected failed runs: %+v", failed)
	}

	limited, err := repo.List(2, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(limited))
	}
}
