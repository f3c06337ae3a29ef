package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Meduza3/deathestate/pkg/logger"
)

// Store persists score lists by key.
type Store interface {
	Load(key string) ([]Entry, error)
	Save(key string, entries []Entry) error
}

// MemStore keeps score lists for the life of the process.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]Entry
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]Entry)}
}

func (m *MemStore) Load(key string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.data[key]...), nil
}

func (m *MemStore) Save(key string, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]Entry(nil), entries...)
	return nil
}

// FileStore keeps each key as a JSON array in <Dir>/<key>.json.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

// storedEntry lets Load tell a missing score apart from a zero score.
type storedEntry struct {
	Score     *int  `json:"score"`
	Timestamp int64 `json:"timestamp"`
}

// Load returns an empty list when the file does not exist yet. Entries without
// a numeric score are skipped.
func (f *FileStore) Load(key string) ([]Entry, error) {
	raw, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores %q: %w", key, err)
	}

	var stored []storedEntry
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode scores %q: %w", key, err)
	}
	entries := make([]Entry, 0, len(stored))
	for _, s := range stored {
		if s.Score == nil {
			continue
		}
		entries = append(entries, Entry{Score: *s.Score, Timestamp: s.Timestamp})
	}
	return entries, nil
}

// Save writes through a temp file so a crash never leaves a half-written list.
func (f *FileStore) Save(key string, entries []Entry) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode scores %q: %w", key, err)
	}
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write scores %q: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("replace scores %q: %w", key, err)
	}
	return nil
}

// FallbackStore uses Primary until it fails once, then keeps everything in
// memory for the rest of the process. It never returns an error.
type FallbackStore struct {
	Primary Store

	mem      *MemStore
	degraded bool
}

func NewFallbackStore(primary Store) *FallbackStore {
	return &FallbackStore{Primary: primary, mem: NewMemStore()}
}

// Degraded reports whether the store has switched to memory.
func (s *FallbackStore) Degraded() bool { return s.degraded }

func (s *FallbackStore) Load(key string) ([]Entry, error) {
	if !s.degraded {
		entries, err := s.Primary.Load(key)
		if err == nil {
			return entries, nil
		}
		s.degrade(err)
	}
	return s.mem.Load(key)
}

func (s *FallbackStore) Save(key string, entries []Entry) error {
	if !s.degraded {
		err := s.Primary.Save(key, entries)
		if err == nil {
			return nil
		}
		s.degrade(err)
	}
	return s.mem.Save(key, entries)
}

func (s *FallbackStore) degrade(err error) {
	s.degraded = true
	logger.Log.WithError(err).Warn("score storage unavailable, keeping scores in memory")
}
