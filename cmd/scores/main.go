// Command scores shows the Death Estate high score table in the terminal and
// refreshes it while games are played.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Meduza3/deathestate/internal/config"
	"github.com/Meduza3/deathestate/internal/leaderboard"
	"github.com/Meduza3/deathestate/pkg/logger"
)

const refreshEvery = time.Second

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type loadedMsg struct {
	entries []leaderboard.Entry
	err     error
}

type model struct {
	store   leaderboard.Store
	key     string
	entries []leaderboard.Entry
	err     error
	loaded  time.Time
}

func initialModel(store leaderboard.Store, key string) model {
	return model{store: store, key: key}
}

func (m model) load() tea.Msg {
	b := leaderboard.New(m.store, m.key)
	err := b.Load()
	return loadedMsg{entries: b.Entries(), err: err}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.load, tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.load
		}
	case TickMsg:
		return m, tea.Batch(m.load, tickCmd())
	case loadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.entries = msg.entries
			m.loaded = time.Now()
		} else {
			logger.Log.WithError(msg.err).Warn("reload failed")
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString("DEATH ESTATE - High Scores\n\n")
	for i := 0; i < leaderboard.MaxEntries; i++ {
		if i < len(m.entries) {
			e := m.entries[i]
			fmt.Fprintf(&s, "%d. %-12s %4d\n", i+1, e.Time().Local().Format("2006-01-02"), e.Score)
		} else {
			fmt.Fprintf(&s, "%d. %-12s %4s\n", i+1, "------------", "---")
		}
	}
	if m.err != nil {
		fmt.Fprintf(&s, "\nerror: %v\n", m.err)
	}
	if !m.loaded.IsZero() {
		fmt.Fprintf(&s, "\nUpdated %s\n", m.loaded.Format("15:04:05"))
	}
	s.WriteString("\nPress r to reload, q to quit.\n")
	return s.String()
}

func main() {
	defaults := config.Default()
	dir := flag.String("scores", defaults.ScoresDir, "directory holding the high score file")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// Redirect logs so they don't mess up the TUI
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger.InitWithOutput(out)

	store := leaderboard.NewFileStore(*dir)
	if _, err := tea.NewProgram(initialModel(store, leaderboard.Key)).Run(); err != nil {
		logger.Log.WithError(err).Error("scores viewer failed")
		fmt.Fprintf(os.Stderr, "scores: %v\n", err)
		os.Exit(1)
	}
}
