package main

import (
	"fmt"
	"log"
	"time"

	"raysnake/game"
	"raysnake/game/manager"
	"raysnake/sound"
	"raysnake/term"

	"github.com/gdamore/tcell/v2"
)

func runTerminal(cfg game.Config, feed *feed) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Sound is optional here: no speaker means a silent game.
	audio := &loggedAudio{}
	speaker := sound.NewManager()
	if err := speaker.Load(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		audio.AudioSink = speaker
	}

	renderer := term.NewRenderer(screen, cfg.Grid)
	input := term.NewInput(term.Listen(screen))
	g, err := game.NewGame(cfg, game.Host{
		Input:    input,
		Clock:    manager.NewSystemClock(),
		Renderer: renderer,
		Audio:    audio,
	})
	if err != nil {
		speaker.Unload()
		return err
	}
	defer g.Close()
	audio.session = g.UUID

	watcher := newSessionWatcher(g)
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()
	for range ticker.C {
		input.Poll()
		if input.Quit() {
			return nil
		}
		if input.Resized() {
			screen.Sync()
		}

		g.Update()
		watcher.observe()
		feed.publish(g)

		renderer.BeginFrame()
		g.Draw()
		renderer.Present()
	}
	return nil
}
