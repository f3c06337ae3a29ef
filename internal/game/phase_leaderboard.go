package game

import (
	"fmt"
	"strconv"

	"github.com/Meduza3/deathestate/internal/board"
	"github.com/Meduza3/deathestate/internal/leaderboard"
	"github.com/Meduza3/deathestate/pkg/logger"
)

const dateLayout = "2006-01-02"

var (
	ldbTop      = board.V(0, 18)
	ldbInfo     = ldbTop.Add(board.V(0, -5))
	ldbTitle    = ldbTop.Add(board.V(0, -13))
	ldbFirstRow = ldbTitle.Add(board.V(3, -5))
	ldbRetry    = ldbTop.Add(board.V(0, -31))
)

type leaderboardPhase struct {
	buttons ButtonSet
	retry   bool
	result  Payload
}

// Init records the finished round's score.
func (p *leaderboardPhase) Init(c *Context, result Payload) {
	p.result = result
	p.retry = false
	p.buttons = ButtonSet{}
	p.buttons.Add(NewButton(ldbRetry, buttonSize, "Retry", textSize, func() { p.retry = true }))

	if err := c.Scores.Load(); err != nil {
		logger.Log.WithError(err).Warn("could not load high scores")
	}
	rank, err := c.Scores.Add(result.Score, result.Timestamp)
	if err != nil {
		logger.Log.WithError(err).Warn("could not save high scores")
	}
	entry := logger.Log.WithField("score", result.Score).WithField("rank", rank)
	if c.Round != nil {
		entry = entry.WithField("round", c.Round.ID)
	}
	entry.Info("score recorded")
}

func (p *leaderboardPhase) Update(c *Context) {
	now := c.Now()
	p.buttons.Handle(c.Input, now, c.Audio)
	if c.Input.KeyPressed(KeyConfirm) {
		p.retry = true
	}
	p.buttons.Update(now)

	if p.retry {
		p.retry = false
		c.Goto(PlaceRoads, Payload{})
	}
}

func (p *leaderboardPhase) Render(c *Context) {
	r := c.Renderer
	r.SetCamera(menuCenter)

	r.DrawText("Game over", ldbTop, 4, Red, AlignCenter)
	r.DrawText(scoreInfo(p.result), ldbInfo, 2, White, AlignCenter)
	r.DrawText("High Scores", ldbTitle, 4, Red, AlignCenter)

	entries := c.Scores.Entries()
	for i := 0; i < leaderboard.MaxEntries; i++ {
		date, score, col := "-------------", "---", White
		if i < len(entries) {
			date = entries[i].Time().Local().Format(dateLayout)
			score = strconv.Itoa(entries[i].Score)
			if i == c.Scores.Current() {
				col = Yellow
			}
		}
		row := ldbFirstRow.Add(board.V(0, -2*float32(i)))
		r.DrawText(date, row.Add(board.V(-0.7, 0)), 2, col, AlignRight)
		r.DrawText(score, row.Add(board.V(0.7, 0)), 2, col, AlignLeft)
	}
	p.buttons.Render(r)
}

func scoreInfo(p Payload) string {
	percent := 0
	if p.TotalMaxScore > 0 {
		percent = p.Score * 100 / p.TotalMaxScore
	}
	return fmt.Sprintf("You covered %d tiles (%d%%)\n(road count: %d, grid total: %d)",
		p.Score, percent, p.RoadCount, p.TotalMaxScore)
}
