package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file (defaults are embedded)")
	seedFlag   = flag.Uint64("seed", 0, "Food placement seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	debugFlag  = flag.Bool("debug", false, "Log at debug level")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logFile, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	score, err := run(cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}

	fmt.Printf(constants.GameOverText+"\n", score)
}

// applyFlags lets explicitly passed flags win over the config file
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "mute":
			cfg.Sound.Enabled = cfg.Sound.Enabled && !*muteFlag
		case "debug":
			if *debugFlag {
				cfg.Log.Level = "debug"
			}
		}
	})
}

// run owns the terminal for the whole game and returns the final score once it is restored
func run(cfg *config.Config) (int, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("initializing screen: %w", err)
	}

	// Panics on any goroutine restore the terminal before reporting
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	styles := render.DefaultStyles()
	if cfg.Display.Color == "mono" || screen.Colors() < 8 {
		styles = render.MonoStyles()
	}
	screen.SetStyle(styles.Base)
	screen.HideCursor()

	renderer := render.NewRenderer(screen, styles)

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	bounds := renderer.PlayBounds()
	game, err := engine.New(engine.Config{
		Bounds:       bounds,
		Seed:         seed,
		FoodAttempts: cfg.Game.FoodAttempts,
	})
	if err != nil {
		finish(screen)
		if errors.Is(err, engine.ErrBoundsTooSmall) {
			return 0, fmt.Errorf("terminal too small: %w", err)
		}
		return 0, err
	}
	slog.Info("game started", "height", bounds.Height, "width", bounds.Width, "seed", seed)

	var sound soundPlayer
	if cfg.Sound.Enabled {
		sm := audio.NewSoundManager(cfg.Sound.Volume)
		if err := sm.Initialize(); err != nil {
			slog.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	poller := input.NewPoller(screen, input.DefaultKeyTable())
	poller.Start()

	scheduler, ticks := engine.NewClockScheduler(engine.NewMonotonicTimeProvider(), constants.TickInterval)
	scheduler.Start()

	s := &session{
		engine: game,
		drawer: renderer,
		input:  poller,
		sound:  sound,
		log:    slog.Default(),
	}
	final, quit := s.run(ticks)
	scheduler.Stop()

	if !quit {
		linger(poller, time.After(constants.GameOverLinger))
	}

	finish(screen)
	return final.Score, nil
}

// finish restores the terminal and detaches it from the crash handler
func finish(screen tcell.Screen) {
	screen.Fini()
	core.SetCrashCleanup(nil)
}
