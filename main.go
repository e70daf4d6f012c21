package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"consolefps/internal/audio"
	"consolefps/internal/config"
	"consolefps/internal/game"
	"consolefps/internal/present"
	"consolefps/internal/world"

	"github.com/gdamore/tcell/v2"
)

const (
	defaultConfigPath = "config.yaml"
	logFileName       = "consolefps.log"
)

var (
	configFlag    = flag.String("config", defaultConfigPath, "Path to the yaml configuration")
	mapFlag       = flag.String("map", "", "Level file to load instead of the configured one")
	presenterFlag = flag.String("presenter", "window", "Output: window or terminal")
	debugFlag     = flag.Bool("debug", false, "Write logs to the log directory")
	parallelFlag  = flag.Bool("parallel", false, "Cast view columns on a worker pool")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Printf("[Main] %v", err)
		fmt.Fprintf(os.Stderr, "consolefps: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}
	if *parallelFlag {
		cfg.Render.ParallelColumns = true
	}
	if *mapFlag != "" {
		cfg.World.MapFile = *mapFlag
	}

	if logFile := setupLogging(cfg.Logging.Debug, cfg.Logging.Dir); logFile != nil {
		defer logFile.Close()
	}

	grid, observer, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	var sound game.SoundPlayer
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the renderer runs without sound
			log.Printf("[Audio] Initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	switch *presenterFlag {
	case "window":
		return runWindow(cfg, grid, observer, sound)
	case "terminal":
		return runTerminal(cfg, grid, observer, sound)
	default:
		return fmt.Errorf("unknown presenter %q (want window or terminal)", *presenterFlag)
	}
}

// loadConfig reads path; a missing default config file means built-in defaults
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// loadWorld builds the grid and places the observer. A start marker in the
// map file wins over the configured start position.
func loadWorld(cfg *config.Config) (*world.Grid, *game.Observer, error) {
	grid := world.NewDefaultGrid()
	startX, startY := cfg.World.StartX, cfg.World.StartY

	if cfg.World.MapFile != "" {
		mapData, err := world.NewMapLoader().LoadMap(cfg.World.MapFile)
		if err != nil {
			return nil, nil, err
		}
		grid = mapData.Grid
		if mapData.HasStart {
			startX, startY = mapData.StartX, mapData.StartY
		}
	}

	if grid.IsWall(startX, startY) {
		return nil, nil, fmt.Errorf("start position (%.2f, %.2f) is inside a wall or outside the %dx%d level",
			startX, startY, grid.Width(), grid.Height())
	}

	return grid, game.NewObserver(startX, startY, cfg.World.StartAngle, cfg.GetMoveSpeed()), nil
}

func runWindow(cfg *config.Config, grid *world.Grid, observer *game.Observer, sound game.SoundPlayer) error {
	window := present.NewWindow(cfg.Display.CellWidth, cfg.Display.CellHeight)
	loop, err := game.NewGameLoop(cfg, grid, observer, game.LoopDeps{
		Input:     present.WindowInput{},
		Clock:     game.SystemClock{},
		Presenter: window,
		Sound:     sound,
	})
	if err != nil {
		return err
	}
	defer loop.Close()

	return present.RunWindow(cfg, loop, window)
}

func runTerminal(cfg *config.Config, grid *world.Grid, observer *game.Observer, sound game.SoundPlayer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before reporting the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCONSOLEFPS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	keys := present.NewTerminalInput(time.Duration(cfg.Terminal.HoldMs) * time.Millisecond)
	go keys.Pump(ctx, screen)

	loop, err := game.NewGameLoop(cfg, grid, observer, game.LoopDeps{
		Input:     keys,
		Clock:     game.SystemClock{},
		Presenter: present.NewTerminal(screen),
		Sound:     sound,
	})
	if err != nil {
		return err
	}
	defer loop.Close()

	return present.RunTerminal(ctx, cfg, loop)
}

// setupLogging discards log output unless debug is set, in which case it
// appends to dir/consolefps.log. The caller closes the returned file.
func setupLogging(debugEnabled bool, dir string) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logFile, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("[Main] Logging started")
	return logFile
}
