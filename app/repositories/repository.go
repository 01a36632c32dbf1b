package repositories

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const (
	// MemoryURL selects an in-memory store that vanishes on Close.
	MemoryURL = "memory://"

	badgerScheme = "badger://"
)

// Store owns the Badger database behind a database URL and exposes the post
// repository on top of it.
type Store struct {
	*BadgerPostRepository

	db       *badger.DB
	path     string
	inMemory bool
}

// Open opens the store identified by databaseURL. An empty URL or memory://
// opens an in-memory store; badger://<dir> or a bare directory opens an
// on-disk store at that directory.
func Open(databaseURL string, logger *slog.Logger) (*Store, error) {
	path, inMemory := parseDatabaseURL(databaseURL)

	opts := badger.DefaultOptions(path).
		WithInMemory(inMemory).
		WithLogger(newBadgerLogger(logger)).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", databaseURL, err)
	}

	return &Store{
		BadgerPostRepository: NewBadgerPostRepository(db),
		db:                   db,
		path:                 path,
		inMemory:             inMemory,
	}, nil
}

func parseDatabaseURL(databaseURL string) (path string, inMemory bool) {
	switch {
	case databaseURL == "", databaseURL == MemoryURL:
		return "", true
	case strings.HasPrefix(databaseURL, badgerScheme):
		return strings.TrimPrefix(databaseURL, badgerScheme), false
	default:
		return databaseURL, false
	}
}

// InMemory reports whether the store is backed by memory only.
func (s *Store) InMemory() bool {
	return s.inMemory
}

// DropDatabase irreversibly removes every key in the store.
func (s *Store) DropDatabase() error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	return nil
}

// Backup writes a full backup of the store to w.
func (s *Store) Backup(w io.Writer) error {
	if _, err := s.db.Backup(w, 0); err != nil {
		return fmt.Errorf("failed to backup database: %w", err)
	}
	return nil
}

// Restore loads a backup produced by Backup. Keys in the backup overwrite
// existing keys; other keys are left alone.
func (s *Store) Restore(r io.Reader) error {
	if err := s.db.Load(r, 16); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// badgerLogger routes Badger's internal logging through slog. Badger's info
// output is chatty so it is logged at debug.
type badgerLogger struct {
	logger *slog.Logger
}

func newBadgerLogger(logger *slog.Logger) badger.Logger {
	if logger == nil {
		return nil
	}
	return &badgerLogger{logger: logger.With("component", "badger")}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
