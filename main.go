package main

import (
	"flag"
	"fmt"
	"os"

	"raysnake/game"
	"raysnake/game/entity"
	"raysnake/game/types"
)

var (
	frontend   = flag.String("frontend", "raylib", "Frontend: raylib or term")
	fps        = flag.Int("fps", types.TargetFPS, "Target frames per second")
	seed       = flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	legacyKeys = flag.Bool("legacy-keys", false, "Let arrow keys reverse into the snake's neck; only W/A/S/D are guarded")
	spectateOn = flag.String("spectate", "", "Serve a read-only websocket feed on this address, e.g. :8080")
	assets     = flag.String("assets", ".", "Directory containing images/ and audio/")
	debug      = flag.Bool("debug", false, "Write a debug log to logs/")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "raysnake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if f := setupLogging(*debug); f != nil {
		defer f.Close()
	}

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	if *legacyKeys {
		cfg.KeyGuard = entity.KeyGuardLegacy
	}
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	feed, stop, err := startSpectating(*spectateOn)
	if err != nil {
		return err
	}
	defer stop()

	switch *frontend {
	case "raylib":
		return runRaylib(cfg, feed)
	case "term":
		return runTerminal(cfg, feed)
	default:
		return fmt.Errorf("unknown frontend %q", *frontend)
	}
}
