package main

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meduza3/deathestate/internal/leaderboard"
	"github.com/Meduza3/deathestate/pkg/logger"
)

func TestModelLoadsAndRenders(t *testing.T) {
	store := leaderboard.NewMemStore()
	require.NoError(t, store.Save(leaderboard.Key, []leaderboard.Entry{
		{Score: 7, Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local).UnixMilli()},
		{Score: 42, Timestamp: time.Date(2024, 3, 2, 12, 0, 0, 0, time.Local).UnixMilli()},
	}))
	m := initialModel(store, leaderboard.Key)

	msg := m.load()
	next, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	view := next.View()

	assert.Contains(t, view, "1. 2024-03-02     42")
	assert.Contains(t, view, "2. 2024-03-01      7")
	assert.Contains(t, view, "3. ------------  ---")
	assert.Contains(t, view, "Updated")
}

type failingStore struct{}

func (failingStore) Load(string) ([]leaderboard.Entry, error) { return nil, errors.New("boom") }
func (failingStore) Save(string, []leaderboard.Entry) error   { return errors.New("boom") }

func TestModelKeepsLastGoodEntriesOnError(t *testing.T) {
	logger.Discard()
	m := initialModel(failingStore{}, leaderboard.Key)
	m.entries = []leaderboard.Entry{{Score: 3, Timestamp: 1}}

	next, _ := m.Update(m.load())
	got := next.(model)
	assert.EqualError(t, got.err, "boom")
	assert.Len(t, got.entries, 1)
	assert.Contains(t, got.View(), "error: boom")
}

func TestModelKeys(t *testing.T) {
	m := initialModel(leaderboard.NewMemStore(), leaderboard.Key)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.IsType(t, loadedMsg{}, cmd())
}
