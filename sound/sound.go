package sound

import (
	"math"
	"sync"
	"time"

	"raysnake/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFreq      = 880
	eatDuration  = 60 * time.Millisecond
	wallFreq     = 110
	wallDuration = 250 * time.Millisecond
)

// Manager synthesizes the game's sound cues and mixes them to the speaker.
// Every method is safe to call before Load succeeds; playback is then a no-op.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Load opens the speaker and starts the mixer.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Unload silences all cues and releases the speaker.
func (m *Manager) Unload() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

func (m *Manager) Play(s types.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	streamer, err := Cue(s)
	if err != nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// Cue builds a finite streamer for s.
func Cue(s types.Sound) (beep.Streamer, error) {
	switch s {
	case types.SoundEat:
		sine, err := generators.SineTone(sampleRate, eatFreq)
		if err != nil {
			return nil, err
		}
		return beep.Take(sampleRate.N(eatDuration), sine), nil
	default:
		return beep.Take(sampleRate.N(wallDuration), NewBuzzGenerator(sampleRate, wallFreq)), nil
	}
}

// BuzzGenerator generates a harsh low buzz with a short fade-in.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
