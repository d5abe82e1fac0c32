package main

import (
	"log"
	"os"
	"path/filepath"

	"raysnake/game"
	"raysnake/game/types"
	"raysnake/sound"
	"raysnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func runRaylib(cfg game.Config, feed *feed) error {
	layout := ui.DefaultLayout()
	layout.Grid = cfg.Grid
	width, height := layout.ScreenSize()

	rl.InitWindow(width, height, types.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(*fps))

	renderer := ui.NewRenderer(layout, filepath.Join(*assets, "images", "food.png"))
	audio := &loggedAudio{AudioSink: raylibAudio(*assets)}
	g, err := game.NewGame(cfg, game.Host{
		Input:    ui.Input{},
		Clock:    ui.Clock{},
		Renderer: renderer,
		Audio:    audio,
	})
	if err != nil {
		return err
	}
	defer g.Close()
	audio.session = g.UUID

	watcher := newSessionWatcher(g)
	for !rl.WindowShouldClose() {
		g.Update()
		watcher.observe()
		feed.publish(g)

		renderer.BeginFrame()
		g.Draw()
		renderer.EndFrame()
	}
	return nil
}

// raylibAudio prefers the shipped sound files and falls back to synthesized cues.
func raylibAudio(dir string) game.AudioSink {
	eat := filepath.Join(dir, "audio", "eat.mp3")
	wall := filepath.Join(dir, "audio", "wall.mp3")
	for _, path := range []string{eat, wall} {
		if _, err := os.Stat(path); err != nil {
			log.Printf("audio: %v, using synthesized sounds", err)
			return sound.NewManager()
		}
	}
	return ui.NewAudio(eat, wall)
}
