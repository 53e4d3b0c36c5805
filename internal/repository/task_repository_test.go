package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"task-manager/internal/model"
)

func newTestRepository(t *testing.T) *TaskRepository {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "tasks.db"), nil)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	repo := NewTaskRepository(db)
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return repo
}

func strPtr(s string) *string { return &s }

func TestInitializeIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Task{Title: "Report", Deadline: "2030-01-01 09:00:00"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for range 2 {
		if err := repo.Initialize(ctx); err != nil {
			t.Fatalf("second Initialize: %v", err)
		}
	}
	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("Initialize dropped rows: got %d tasks", len(tasks))
	}
}

func TestCreateAssignsFreshIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seen := make(map[uint]bool)
	for i, title := range []string{"Report", "Review", "Ship"} {
		task := &model.Task{
			Title:       title,
			Description: strPtr("Finish Q1 " + title),
			Deadline:    "2030-01-01 09:00:00",
		}
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create(%s): %v", title, err)
		}
		if task.ID == 0 || seen[task.ID] {
			t.Fatalf("Create(%s) assigned id %d, already seen: %v", title, task.ID, seen[task.ID])
		}
		seen[task.ID] = true

		tasks, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(tasks) != i+1 {
			t.Fatalf("after %d creates List returned %d tasks", i+1, len(tasks))
		}
		last := tasks[len(tasks)-1]
		if last.ID != task.ID || last.Title != title || last.DescriptionText() != "Finish Q1 "+title || last.Deadline != "2030-01-01 09:00:00" {
			t.Errorf("stored task = %+v, want id %d title %q", last, task.ID, title)
		}
	}
}

func TestListOrderIsStable(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, &model.Task{Title: title, Deadline: "2030-01-01 09:00:00"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order changed between reads at %d: %d vs %d", i, first[i].ID, second[i].ID)
		}
		if i > 0 && first[i-1].ID >= first[i].ID {
			t.Errorf("ids not ascending: %d then %d", first[i-1].ID, first[i].ID)
		}
	}
}

func TestDescriptionIsOptional(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Task{Title: "No details", Deadline: "2030-01-01 09:00:00"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if tasks[0].Description != nil {
		t.Errorf("Description = %q, want nil", *tasks[0].Description)
	}
}

func TestSchemaRejectsEmptyTitleAndDeadline(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, task := range []*model.Task{
		{Title: "", Deadline: "2030-01-01 09:00:00"},
		{Title: "No deadline"},
	} {
		err := repo.Create(ctx, task)
		var storageErr *StorageError
		if !errors.As(err, &storageErr) {
			t.Fatalf("Create(%+v) error = %v, want *StorageError", task, err)
		}
		if storageErr.Op != "create" {
			t.Errorf("StorageError.Op = %q, want create", storageErr.Op)
		}
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("rejected rows were stored: %+v", tasks)
	}
}

func TestDeleteRemovesOnlyThatTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	keep := &model.Task{Title: "keep", Deadline: "2030-01-01 09:00:00"}
	drop := &model.Task{Title: "drop", Deadline: "2030-01-01 09:00:00"}
	for _, task := range []*model.Task{keep, drop} {
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := repo.Delete(ctx, drop.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != keep.ID {
		t.Fatalf("after delete got %+v, want only id %d", tasks, keep.ID)
	}

	// Repeating the delete, or deleting an id that never existed, is a no-op.
	for _, id := range []uint{drop.ID, 9999} {
		if err := repo.Delete(ctx, id); err != nil {
			t.Fatalf("Delete(%d) again: %v", id, err)
		}
	}
	tasks, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("no-op delete changed count to %d", len(tasks))
	}
}

func TestClosedDatabaseReturnsStorageError(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "tasks.db"), nil)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	repo := NewTaskRepository(db)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("DB: %v", err)
	}
	sqlDB.Close()

	_, err = repo.List(context.Background())
	var storageErr *StorageError
	if !errors.As(err, &storageErr) || storageErr.Op != "list" {
		t.Errorf("List on closed db error = %v, want list StorageError", err)
	}
}

func TestEnsureDirForSQLite(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "tasks.db")

	if err := ensureDirForSQLite("file:" + nested + "?cache=shared"); err != nil {
		t.Fatalf("ensureDirForSQLite: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(nested)); err != nil || !info.IsDir() {
		t.Errorf("parent dir not created: %v", err)
	}

	for _, dsn := range []string{":memory:", "file::memory:?cache=shared", "tasks.db"} {
		if err := ensureDirForSQLite(dsn); err != nil {
			t.Errorf("ensureDirForSQLite(%q): %v", dsn, err)
		}
	}
}
