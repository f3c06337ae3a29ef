package game

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Meduza3/deathestate/internal/anim"
	"github.com/Meduza3/deathestate/internal/board"
	"github.com/Meduza3/deathestate/pkg/logger"
)

const (
	noMoreMovesText = "Game over! No more space or skips"
	shakeTime       = time.Second
	gameOverDelay   = 3000 * time.Millisecond
)

// gameOverPhase freezes the last round on screen, shakes the headline and
// then moves on to the high scores.
type gameOverPhase struct {
	houses *housesPhase
	at     time.Time
	offset board.Vec2
}

func (p *gameOverPhase) Init(c *Context, _ Payload) {
	if p.houses.rotate != nil {
		p.houses.rotate.Enabled = false
		p.houses.skip.Enabled = false
	}
	p.at = c.Now()
	c.Round.Ghost.FadeTo(p.at, 0.3, shakeTime, nil)

	counts := c.Round.Grid.Counts()
	logger.Log.WithFields(logrus.Fields{
		"round":    c.Round.ID,
		"score":    counts.HouseTiles,
		"roads":    counts.Roads,
		"skips":    c.Round.SkipsLeft,
		"duration": p.at.Sub(c.Round.Started).Round(time.Second).String(),
	}).Info("round over")
}

func (p *gameOverPhase) Update(c *Context) {
	now := c.Now()
	c.Round.Ghost.Update(now)

	strength := anim.Lerp(anim.Percent(now, p.at, p.at.Add(shakeTime)), 1, 0)
	angle := c.Rand.Float64() * 2 * math.Pi
	p.offset = board.V(float32(math.Cos(angle)), float32(math.Sin(angle))).Scale(strength)

	if now.Sub(p.at) >= gameOverDelay {
		counts := c.Round.Grid.Counts()
		c.Goto(Leaderboard, Payload{
			Score:         counts.HouseTiles,
			RoadCount:     counts.Roads,
			TotalMaxScore: counts.Total,
			Timestamp:     now,
		})
	}
}

func (p *gameOverPhase) Render(c *Context) {
	p.houses.render(c, noMoreMovesText, p.offset, 0.5)
}
