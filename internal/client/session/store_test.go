package session

import (
	"os"
	"path/filepath"
	"testing"

	"hradmin/internal/domain/auth"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	return NewStore(NewFileStorage(path)), path
}

func sampleSession() Session {
	return Session{
		StaffID:   "42",
		FirstName: "Karen",
		LastName:  "Partners",
		Role:      auth.RoleDepartmentManager,
		SectionID: "2",
	}
}

func TestStoreLoadingUntilRestore(t *testing.T) {
	store, _ := newTestStore(t)
	if !store.Loading() {
		t.Fatal("expected store to report loading before restore")
	}
	store.Restore()
	if store.Loading() {
		t.Fatal("expected store to finish loading after restore")
	}
	if _, ok := store.Current(); ok {
		t.Fatal("expected anonymous store after restoring empty storage")
	}
}

func TestStoreCommitCurrentClear(t *testing.T) {
	store, _ := newTestStore(t)
	store.Restore()

	want := sampleSession()
	if err := store.Commit(want); err != nil {
		t.Fatalf("commit error: %v", err)
	}

	got, ok := store.Current()
	if !ok {
		t.Fatal("expected session after commit")
	}
	if got != want {
		t.Fatalf("session mismatch: got %+v want %+v", got, want)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear error: %v", err)
	}
	if _, ok := store.Current(); ok {
		t.Fatal("expected anonymous store after clear")
	}
}

func TestStoreRestoreRoundTrip(t *testing.T) {
	store, path := newTestStore(t)
	store.Restore()
	want := sampleSession()
	if err := store.Commit(want); err != nil {
		t.Fatalf("commit error: %v", err)
	}

	// A fresh store over the same file plays the role of an app reload.
	reloaded := NewStore(NewFileStorage(path))
	reloaded.Restore()

	got, ok := reloaded.Current()
	if !ok {
		t.Fatal("expected restored session")
	}
	if got != want {
		t.Fatalf("restored session mismatch: got %+v want %+v", got, want)
	}
}

func TestStoreClearSurvivesReload(t *testing.T) {
	store, path := newTestStore(t)
	store.Restore()
	if err := store.Commit(sampleSession()); err != nil {
		t.Fatalf("commit error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear error: %v", err)
	}

	reloaded := NewStore(NewFileStorage(path))
	reloaded.Restore()
	if _, ok := reloaded.Current(); ok {
		t.Fatal("expected anonymous store after clear and reload")
	}
}

func TestStoreRestoreCorruptStorage(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{{{"},
		{name: "wrong shape", content: `{"user": "not an object"}`},
		{name: "missing role", content: `{"user": {"staffId": "42"}}`},
		{name: "empty file", content: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			if tc.content != "" {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatalf("write fixture: %v", err)
				}
			}
			store := NewStore(NewFileStorage(path))
			store.Restore()
			if store.Loading() {
				t.Fatal("expected restore to complete on corrupt storage")
			}
			if _, ok := store.Current(); ok {
				t.Fatal("expected anonymous store on corrupt storage")
			}
		})
	}
}

func TestStoreCommitOverwritesPrevious(t *testing.T) {
	store, _ := newTestStore(t)
	store.Restore()
	if err := store.Commit(sampleSession()); err != nil {
		t.Fatalf("commit error: %v", err)
	}

	second := Session{StaffID: "7", FirstName: "Susan", LastName: "Mavris", Role: auth.RoleHRManager}
	if err := store.Commit(second); err != nil {
		t.Fatalf("second commit error: %v", err)
	}

	got, ok := store.Current()
	if !ok || got != second {
		t.Fatalf("expected second session, got %+v", got)
	}
}

func TestFileStorageKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	storage := NewFileStorage(path)
	if err := storage.Set(KeyNavCollapsed, []byte("true")); err != nil {
		t.Fatalf("set error: %v", err)
	}

	store := NewStore(storage)
	store.Restore()
	if err := store.Commit(sampleSession()); err != nil {
		t.Fatalf("commit error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear error: %v", err)
	}

	value, ok, err := storage.Get(KeyNavCollapsed)
	if err != nil || !ok || string(value) != "true" {
		t.Fatalf("expected navCollapsed preference to survive session writes, got %q ok=%v err=%v", value, ok, err)
	}
}
