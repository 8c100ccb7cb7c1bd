package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want absent without error", ok, err)
	}

	if err := s.Set("key", "value-1"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	got, ok, err := s.Get("key")
	if err != nil || !ok || got != "value-1" {
		t.Errorf("Get(key) = %q ok=%v err=%v, want value-1", got, ok, err)
	}

	// Set replaces in one step.
	if err := s.Set("key", "value-2"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	got, _, _ = s.Get("key")
	if got != "value-2" {
		t.Errorf("Get(key) after overwrite = %q, want value-2", got)
	}

	if err := s.Delete("key"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, ok, _ := s.Get("key"); ok {
		t.Error("Get(key) found a deleted key")
	}

	// Deleting an absent key is not an error.
	if err := s.Delete("key"); err != nil {
		t.Errorf("Delete(absent) unexpected error: %v", err)
	}
}

func TestOpenCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := Open(dataDir)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dataDir, "newsgen.db")); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dataDir := t.TempDir()

	s, err := Open(dataDir)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	if err := s.Set("key", "persisted"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}

	reopened, err := Open(dataDir)
	if err != nil {
		t.Fatalf("Open() after close unexpected error: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("key")
	if err != nil || !ok || got != "persisted" {
		t.Errorf("Get(key) after reopen = %q ok=%v err=%v, want persisted", got, ok, err)
	}
}

func TestMemoryMatchesStoreContract(t *testing.T) {
	m := NewMemory()

	if _, ok, err := m.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want absent without error", ok, err)
	}
	if err := m.Set("key", "value"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	got, ok, _ := m.Get("key")
	if !ok || got != "value" {
		t.Errorf("Get(key) = %q ok=%v, want value", got, ok)
	}
	if err := m.Delete("key"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, ok, _ := m.Get("key"); ok {
		t.Error("Get(key) found a deleted key")
	}
}
