// Package corpus holds the in-memory document store. Documents are loaded
// once at startup and are read-only afterwards; a reload swaps the whole
// snapshot atomically so concurrent readers never see a partial corpus.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/legalmind-ai/legalmind/internal/domain"
)

// Store owns the corpus snapshot. Readers get the current snapshot via
// Documents; Reload replaces it wholesale.
type Store struct {
	dir    string
	logger *zap.Logger
	docs   atomic.Pointer[[]domain.Document]
}

// New creates a store over dir and performs the initial load. A missing
// directory is not an error: the store starts empty and every query
// degrades to "no relevant information".
func New(dir string, logger *zap.Logger) *Store {
	s := &Store{dir: dir, logger: logger}
	s.docs.Store(&[]domain.Document{})
	s.Reload()
	return s
}

// Documents returns the current snapshot in insertion order. The returned
// slice must not be mutated.
func (s *Store) Documents() []domain.Document {
	return *s.docs.Load()
}

// Len reports the number of documents in the current snapshot.
func (s *Store) Len() int { return len(s.Documents()) }

// Reload re-reads the corpus directory and atomically replaces the
// snapshot. In-flight queries keep the snapshot they started with.
func (s *Store) Reload() {
	docs := s.load()
	s.docs.Store(&docs)
	s.logger.Info("corpus loaded",
		zap.String("dir", s.dir),
		zap.Int("documents", len(docs)),
	)
}

// load reads every .txt file in the directory. Failures are soft: a missing
// directory yields an empty corpus and an unreadable file is skipped, both
// logged, neither fatal.
func (s *Store) load() []domain.Document {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("corpus directory not readable, starting empty",
			zap.String("dir", s.dir),
			zap.Error(err),
		)
		return []domain.Document{}
	}

	docs := make([]domain.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable document",
				zap.String("file", entry.Name()),
				zap.Error(err),
			)
			continue
		}
		docs = append(docs, domain.Document{ID: entry.Name(), Text: string(data)})
	}
	return docs
}

// Ping reports whether the corpus is non-empty, for health reporting.
func (s *Store) Ping() error {
	if s.Len() == 0 {
		return fmt.Errorf("corpus is empty (dir %s)", s.dir)
	}
	return nil
}
