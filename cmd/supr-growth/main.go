package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/supr-growth/audio"
	"github.com/lixenwraith/supr-growth/config"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/core"
	"github.com/lixenwraith/supr-growth/game"
	"github.com/lixenwraith/supr-growth/leaderboard"
	"github.com/lixenwraith/supr-growth/modes"
	"github.com/lixenwraith/supr-growth/render"
	"github.com/lixenwraith/supr-growth/vmath"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(flag.CommandLine, os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting with seed %d, data dir %q, config file %q", seed, cfg.DataDir, cfg.File)

	store := leaderboard.Open(leaderboard.NewFileKV(cfg.DataDir), time.Now)
	if err := store.CheckDailyReset(time.Now()); err != nil {
		log.Printf("daily leaderboard reset failed: %v", err)
	}

	// Noise is streamed on the speaker goroutine, so it gets its own source
	player := audio.NewPlayer(audio.Config{
		SampleRate: constants.AudioSampleRate,
		Volume:     cfg.Volume,
		Muted:      cfg.Muted,
	}, vmath.NewFastRand(seed^0x9e3779b97f4a7c15))
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	pf := game.Playfield{Width: cfg.Playfield.Width, Height: cfg.Playfield.Height}
	renderer := render.NewRenderer(screen, pf, render.ThemeByName(cfg.Theme))
	ctrl := modes.NewController(store, player, renderer, cfg.Player)
	g := game.New(game.Deps{
		Rand:      vmath.NewFastRand(seed),
		Playfield: pf,
		Listener:  ctrl,
		Cues:      player,
		Recorder:  store,
	})
	ctrl.Bind(g)

	loop(screen, ctrl)
	return nil
}

// loop multiplexes terminal events and the frame ticker on one goroutine
func loop(screen tcell.Screen, ctrl *modes.Controller) {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses a raw goroutine as it interacts directly with the terminal
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ctrl.Tick()
	for {
		select {
		case ev := <-eventChan:
			if !ctrl.HandleEvent(ev) {
				return
			}
		case <-frameTicker.C:
			ctrl.Tick()
		}
	}
}
