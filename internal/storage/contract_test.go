package storage_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/chris-regnier/devrewind/internal/rewind"
	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/chris-regnier/devrewind/internal/storage/markdown"
	"github.com/chris-regnier/devrewind/internal/storage/sqlite"
)

type storageFactory func(t *testing.T) storage.Storage

func markdownFactory(t *testing.T) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	s, err := markdown.New(dir)
	if err != nil {
		t.Fatalf("creating markdown storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sqliteFactory(t *testing.T) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	s, err := sqlite.New(dir)
	if err != nil {
		t.Fatalf("creating sqlite storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func makeArchive(t *testing.T, seed int64, year int, at time.Time) storage.Archive {
	t.Helper()
	id, err := storage.NewID()
	if err != nil {
		t.Fatalf("generating ID: %v", err)
	}
	return storage.Archive{
		ID:        id,
		Label:     "rewind: take " + id,
		CreatedAt: at.UTC().Truncate(time.Second),
		Dataset:   rewind.NewDataset(rewind.Options{Year: year, Seed: seed}),
	}
}

func runContractTests(t *testing.T, name string, factory storageFactory) {
	t.Run(name, func(t *testing.T) {
		base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

		t.Run("Save and Get", func(t *testing.T) {
			s := factory(t)
			a := makeArchive(t, 42, 2025, base)
			if err := s.Save(a); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got, err := s.Get(a.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.ID != a.ID || got.Label != a.Label {
				t.Errorf("got %s %q, want %s %q", got.ID, got.Label, a.ID, a.Label)
			}
			if !got.CreatedAt.Equal(a.CreatedAt) {
				t.Errorf("created_at: got %v, want %v", got.CreatedAt, a.CreatedAt)
			}
			if !reflect.DeepEqual(got.Dataset, a.Dataset) {
				t.Errorf("dataset did not round-trip")
			}
		})

		t.Run("Get missing", func(t *testing.T) {
			s := factory(t)
			if _, err := s.Get("zzzzzzzz"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})

		t.Run("Save duplicate", func(t *testing.T) {
			s := factory(t)
			a := makeArchive(t, 1, 2025, base)
			if err := s.Save(a); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save(a); !errors.Is(err, storage.ErrConflict) {
				t.Errorf("expected ErrConflict, got %v", err)
			}
		})

		t.Run("Save invalid", func(t *testing.T) {
			s := factory(t)
			a := makeArchive(t, 1, 2025, base)
			a.ID = "BAD"
			if err := s.Save(a); !errors.Is(err, storage.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})

		t.Run("List newest first with filters", func(t *testing.T) {
			s := factory(t)
			old := makeArchive(t, 1, 2024, base)
			mid := makeArchive(t, 2, 2025, base.Add(time.Hour))
			recent := makeArchive(t, 3, 2025, base.Add(2*time.Hour))
			for _, a := range []storage.Archive{mid, old, recent} {
				if err := s.Save(a); err != nil {
					t.Fatalf("Save: %v", err)
				}
			}

			all, err := s.List(storage.ListOptions{})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(all) != 3 {
				t.Fatalf("expected 3 archives, got %d", len(all))
			}
			want := []string{recent.ID, mid.ID, old.ID}
			for i, a := range all {
				if a.ID != want[i] {
					t.Errorf("position %d: got %s, want %s", i, a.ID, want[i])
				}
			}

			byYear, err := s.List(storage.ListOptions{Year: 2025})
			if err != nil {
				t.Fatalf("List year: %v", err)
			}
			if len(byYear) != 2 {
				t.Errorf("expected 2 archives for 2025, got %d", len(byYear))
			}

			limited, err := s.List(storage.ListOptions{Limit: 1, Offset: 1})
			if err != nil {
				t.Fatalf("List limit: %v", err)
			}
			if len(limited) != 1 || limited[0].ID != mid.ID {
				t.Errorf("expected [%s], got %v", mid.ID, limited)
			}

			none, err := s.List(storage.ListOptions{Source: rewind.SourceGit})
			if err != nil {
				t.Fatalf("List source: %v", err)
			}
			if len(none) != 0 {
				t.Errorf("expected no git archives, got %d", len(none))
			}
		})

		t.Run("Delete", func(t *testing.T) {
			s := factory(t)
			a := makeArchive(t, 9, 2025, base)
			if err := s.Save(a); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Delete(a.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := s.Get(a.ID); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("expected ErrNotFound after delete, got %v", err)
			}
			if err := s.Delete(a.ID); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("expected ErrNotFound deleting twice, got %v", err)
			}
		})

		t.Run("Empty list", func(t *testing.T) {
			s := factory(t)
			all, err := s.List(storage.ListOptions{})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if all == nil || len(all) != 0 {
				t.Errorf("expected empty non-nil slice, got %v", all)
			}
		})
	})
}

func TestStorageContract(t *testing.T) {
	runContractTests(t, "markdown", markdownFactory)
	runContractTests(t, "sqlite", sqliteFactory)
}

func TestValidateID(t *testing.T) {
	id, err := storage.NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	if err := storage.ValidateID(id); err != nil {
		t.Errorf("generated ID rejected: %v", err)
	}
	for _, bad := range []string{"", "short", "UPPERCAS", "toolong123"} {
		if err := storage.ValidateID(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
