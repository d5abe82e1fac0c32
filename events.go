package main

import (
	"log"

	"raysnake/game"
	"raysnake/game/types"
)

// loggedAudio logs every cue before handing it to the real sink.
type loggedAudio struct {
	game.AudioSink
	session string
}

func (a *loggedAudio) Play(s types.Sound) {
	log.Printf("[%s] sound %s", a.session, s)
	if a.AudioSink != nil {
		a.AudioSink.Play(s)
	}
}

// Load and Unload forward to the wrapped sink when it owns resources.
func (a *loggedAudio) Load() error {
	if r, ok := a.AudioSink.(game.Resource); ok {
		return r.Load()
	}
	return nil
}

func (a *loggedAudio) Unload() {
	if r, ok := a.AudioSink.(game.Resource); ok {
		r.Unload()
	}
}

// sessionWatcher logs phase changes seen between frames.
type sessionWatcher struct {
	g       *game.Game
	running bool
}

func newSessionWatcher(g *game.Game) *sessionWatcher {
	log.Printf("[%s] session started", g.UUID)
	return &sessionWatcher{g: g, running: g.IsRunning()}
}

func (w *sessionWatcher) observe() {
	running := w.g.IsRunning()
	switch {
	case w.running && !running:
		log.Printf("[%s] game over, score %d", w.g.UUID, w.g.GetScore())
	case !w.running && running:
		log.Printf("[%s] round restarted", w.g.UUID)
	}
	w.running = running
}
