package main

import (
	"errors"
	"flag"
	"math/rand"
	"os"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/deathestate/internal/config"
	"github.com/Meduza3/deathestate/internal/game"
	"github.com/Meduza3/deathestate/internal/leaderboard"
	"github.com/Meduza3/deathestate/pkg/logger"
)

func main() {
	runtime.LockOSThread() // <-- must be first on macOS

	logger.Init()
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid configuration")
	}
	logger.Log.WithField("seed", cfg.Seed).WithField("scores", cfg.ScoresDir).Info("starting")

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Death Estate")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	sounds := newAudio(cfg.Mute)
	defer sounds.Close()

	r := newRenderer(cfg.ScreenWidth, cfg.ScreenHeight)
	store := leaderboard.NewFallbackStore(leaderboard.NewFileStore(cfg.ScoresDir))
	machine := game.NewMachine(game.Env{
		Renderer: r,
		Input:    input{r: r},
		Audio:    sounds,
		Clock:    game.SystemClock,
		Scores:   leaderboard.New(store, leaderboard.Key),
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
	})
	machine.Set(game.MainMenu, game.Payload{})

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		r.step(dt)
		machine.Update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		r.begin()
		machine.Render()
		r.end()
		rl.EndDrawing()
	}
	logger.Log.Info("bye")
}
