// Package leaderboard keeps the bounded list of best scores and persists it.
package leaderboard

import (
	"sort"
	"time"
)

// MaxEntries is how many scores the board keeps.
const MaxEntries = 5

// Key is the storage key the game uses for its score list.
const Key = "deathestate_ldb"

// Entry is one persisted score. Timestamp is in epoch milliseconds.
type Entry struct {
	Score     int   `json:"score"`
	Timestamp int64 `json:"timestamp"`
}

func (e Entry) Time() time.Time { return time.UnixMilli(e.Timestamp) }

// Board is an in-memory top-N list backed by a Store.
type Board struct {
	store   Store
	key     string
	entries []Entry
	current int // index of the entry added last, -1 when none
}

func New(store Store, key string) *Board {
	return &Board{store: store, key: key, current: -1}
}

// Load replaces the list with what the store holds.
func (b *Board) Load() error {
	entries, err := b.store.Load(b.key)
	if err != nil {
		return err
	}
	b.entries = entries
	b.current = -1
	b.sortAndCap()
	return nil
}

// Add inserts a score, keeps the best MaxEntries and saves. It returns the
// new entry's rank, or -1 when it did not make the list.
func (b *Board) Add(score int, at time.Time) (int, error) {
	e := Entry{Score: score, Timestamp: at.UnixMilli()}
	b.entries = append(b.entries, e)
	b.sortAndCap()

	b.current = -1
	for i, got := range b.entries {
		if got == e {
			b.current = i
			break
		}
	}
	return b.current, b.store.Save(b.key, b.Entries())
}

// Entries returns a copy of the list, best first.
func (b *Board) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// Current is the rank of the last added score, or -1.
func (b *Board) Current() int { return b.current }

// sortAndCap orders by score, newest first on ties, and trims to MaxEntries.
func (b *Board) sortAndCap() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		if b.entries[i].Score != b.entries[j].Score {
			return b.entries[i].Score > b.entries[j].Score
		}
		return b.entries[i].Timestamp > b.entries[j].Timestamp
	})
	if len(b.entries) > MaxEntries {
		b.entries = b.entries[:MaxEntries]
	}
}
