package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/ui"
	"snake-classic/ui/terminal"
	"snake-classic/ui/window"

	"golang.org/x/exp/rand"
)

const windowTitle = "Snake"

// overrides are the command line flags; only the ones actually set win over the config file.
type overrides struct {
	width       int
	height      int
	scale       int
	seed        uint64
	frontend    string
	logFile     string
	snapshotDir string
}

func (o *overrides) apply(cfg *config.AppConfig, set map[string]bool) {
	if set["width"] {
		cfg.Width = o.width
	}
	if set["height"] {
		cfg.Height = o.height
	}
	if set["scale"] {
		cfg.Scale = o.scale
	}
	if set["seed"] {
		cfg.Seed = o.seed
	}
	if set["frontend"] {
		cfg.Frontend = o.frontend
	}
	if set["log"] {
		cfg.LogFile = o.logFile
	}
	if set["snapshots"] {
		cfg.SnapshotDir = o.snapshotDir
	}
}

func main() {
	defaults := config.Default()
	var o overrides
	configPath := flag.String("config", "", "Path to a JSON config file")
	flag.IntVar(&o.width, "width", defaults.Width, "Screen width, multiple of 10")
	flag.IntVar(&o.height, "height", defaults.Height, "Screen height, multiple of 10")
	flag.IntVar(&o.scale, "scale", defaults.Scale, "Integer scale factor of the screen")
	flag.Uint64Var(&o.seed, "seed", 0, "Seed for food placement (0 = time based)")
	flag.StringVar(&o.frontend, "frontend", defaults.Frontend, "window or terminal")
	flag.StringVar(&o.logFile, "log", "", "Write logs to this file")
	flag.StringVar(&o.snapshotDir, "snapshots", defaults.SnapshotDir, "Directory for F12 snapshots")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	o.apply(cfg, set)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logOut, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Error setting up logging: %v", err)
	}
	defer logOut.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g, err := game.NewGame(cfg.Width, cfg.Height, cfg.Scale, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("Setup error: %v", err)
	}
	log.Printf("starting %dx%d board (%d cells of %dpx) with seed %d on %s",
		g.Grid.Width, g.Grid.Height, g.Grid.Cells(), g.Length, seed, cfg.Frontend)

	fe, err := openFrontend(cfg, g)
	if err != nil {
		log.Fatalf("Error opening %s: %v", cfg.Frontend, err)
	}

	newLoop(fe, g, log.Default(), cfg.SnapshotDir).run()

	if err := fe.Close(); err != nil {
		log.Printf("Error closing %s: %v", cfg.Frontend, err)
	}
}

func openFrontend(cfg *config.AppConfig, g *game.Game) (ui.Frontend, error) {
	switch cfg.Frontend {
	case config.FrontendTerminal:
		return terminal.Open(g.Length)
	case config.FrontendWindow:
		return window.Open(g.ScreenWidth, g.ScreenHeight, windowTitle, cfg.TraceLevel), nil
	default:
		return nil, fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging points the standard logger at the configured file. The
// terminal frontend owns the screen, so without a file its logs are dropped.
func setupLogging(cfg *config.AppConfig) (io.Closer, error) {
	log.SetPrefix("snake: ")
	log.SetFlags(log.LstdFlags)

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	case cfg.Frontend == config.FrontendTerminal:
		log.SetOutput(io.Discard)
	}
	return nopCloser{}, nil
}
