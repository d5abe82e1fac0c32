package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"raysnake/game"
	"raysnake/spectate"
)

// feed publishes snapshots to spectators whenever the visible state changes.
// A nil feed publishes nothing.
type feed struct {
	hub  *spectate.Hub
	last game.Snapshot
	sent bool
}

func (f *feed) publish(g *game.Game) {
	if f == nil {
		return
	}
	snap := g.Snapshot()
	if f.sent && !changed(f.last, snap) {
		return
	}
	if err := f.hub.Broadcast(snap); err != nil {
		log.Printf("spectate: broadcast: %v", err)
		return
	}
	f.last, f.sent = snap, true
}

func changed(a, b game.Snapshot) bool {
	if a.Score != b.Score || a.Running != b.Running || a.Games != b.Games || a.Food != b.Food || len(a.Body) != len(b.Body) {
		return true
	}
	for i := range a.Body {
		if a.Body[i] != b.Body[i] {
			return true
		}
	}
	return false
}

// startSpectating serves the websocket feed on addr. An empty addr disables it.
func startSpectating(addr string) (*feed, func(), error) {
	if addr == "" {
		return nil, func() {}, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	hub := spectate.NewHub()
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectate: serve: %v", err)
		}
	}()
	log.Printf("spectate: listening on %s/ws", ln.Addr())

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
		hub.Close()
	}
	return &feed{hub: hub}, stop, nil
}
