package ui

import (
	"fmt"

	"raysnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Audio plays the eat and wall sounds through raylib's audio device.
type Audio struct {
	paths  map[types.Sound]string
	sounds map[types.Sound]rl.Sound
	ready  bool
}

func NewAudio(eatPath, wallPath string) *Audio {
	return &Audio{
		paths: map[types.Sound]string{
			types.SoundEat:  eatPath,
			types.SoundWall: wallPath,
		},
	}
}

// Load opens the audio device and loads both sounds.
func (a *Audio) Load() error {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return fmt.Errorf("ui: audio device unavailable")
	}
	a.ready = true
	a.sounds = make(map[types.Sound]rl.Sound, len(a.paths))
	for s, path := range a.paths {
		snd := rl.LoadSound(path)
		if snd.FrameCount == 0 {
			a.Unload()
			return fmt.Errorf("ui: load sound %s", path)
		}
		a.sounds[s] = snd
	}
	return nil
}

// Unload frees the sounds and closes the device.
func (a *Audio) Unload() {
	if !a.ready {
		return
	}
	for s, snd := range a.sounds {
		rl.UnloadSound(snd)
		delete(a.sounds, s)
	}
	rl.CloseAudioDevice()
	a.ready = false
}

func (a *Audio) Play(s types.Sound) {
	if snd, ok := a.sounds[s]; ok && a.ready {
		rl.PlaySound(snd)
	}
}
