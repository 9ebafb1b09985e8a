package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNew_LoadsTxtFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")
	writeFile(t, dir, "b.txt", "beta")
	writeFile(t, dir, "notes.md", "ignored")

	s := New(dir, zap.NewNop())

	docs := s.Documents()
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID != "a.txt" || docs[0].Text != "alpha" {
		t.Errorf("unexpected first document: %+v", docs[0])
	}
	if docs[1].ID != "b.txt" || docs[1].Text != "beta" {
		t.Errorf("unexpected second document: %+v", docs[1])
	}
}

func TestNew_MissingDirectoryStartsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())

	if got := s.Len(); got != 0 {
		t.Fatalf("expected empty store, got %d documents", got)
	}
	if err := s.Ping(); err == nil {
		t.Error("expected Ping to fail on empty store")
	}
}

func TestReload_SwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")

	s := New(dir, zap.NewNop())
	before := s.Documents()

	writeFile(t, dir, "b.txt", "beta")
	s.Reload()

	if len(before) != 1 {
		t.Errorf("old snapshot mutated: %d documents", len(before))
	}
	if got := s.Len(); got != 2 {
		t.Errorf("expected 2 documents after reload, got %d", got)
	}
}

func TestPing_NonEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")

	s := New(dir, zap.NewNop())
	if err := s.Ping(); err != nil {
		t.Errorf("unexpected Ping error: %v", err)
	}
}
