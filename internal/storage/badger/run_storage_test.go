package badger

import (
	"testing"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/scrutor/internal/models"
)

func newTestStorage(t *testing.T) *RunStorage {
	t.Helper()

	tmpDir := t.TempDir()
	options := badgerhold.DefaultOptions
	options.Dir = tmpDir
	options.ValueDir = tmpDir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	db := &BadgerDB{store: store}
	return NewRunStorage(db, arbor.NewLogger()).(*RunStorage)
}

func TestRunPersistence(t *testing.T) {
	storage := newTestStorage(t)

	run := &models.ScrapeRun{
		ID:        "run-1",
		StartedAt: time.Now().UTC(),
		Settings:  models.RunSettings{Topics: []string{"golang"}, MaxRepos: 10},
		Repositories: []*models.Repository{
			{FullName: "acme/widget", Stars: 100},
		},
		Processed: 5,
		Included:  1,
	}
	if err := storage.SaveRun(run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := storage.GetRun("run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Processed != 5 || len(got.Repositories) != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Repositories[0].FullName != "acme/widget" {
		t.Errorf("repository = %+v", got.Repositories[0])
	}
}

func TestSaveRunRequiresID(t *testing.T) {
	storage := newTestStorage(t)
	if err := storage.SaveRun(&models.ScrapeRun{}); err == nil {
		t.Error("expected error for run without ID")
	}
}

func TestGetRunNotFound(t *testing.T) {
	storage := newTestStorage(t)
	if _, err := storage.GetRun("missing"); err == nil {
		t.Error("expected not-found error")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	storage := newTestStorage(t)

	base := time.Now().UTC()
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		run := &models.ScrapeRun{
			ID:        id,
			StartedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := storage.SaveRun(run); err != nil {
			t.Fatalf("SaveRun(%s): %v", id, err)
		}
	}

	runs, err := storage.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns returned %d, want 2", len(runs))
	}
	if runs[0].ID != "run-c" || runs[1].ID != "run-b" {
		t.Errorf("order = [%s, %s], want [run-c, run-b]", runs[0].ID, runs[1].ID)
	}
}
