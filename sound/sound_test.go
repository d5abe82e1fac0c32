package sound

import (
	"testing"

	"raysnake/game/types"

	"github.com/gopxl/beep"
)

func TestManagerGracefulDegradation(t *testing.T) {
	m := NewManager()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("playback panicked without initialization: %v", r)
		}
	}()
	m.Play(types.SoundEat)
	m.Play(types.SoundWall)
	m.Unload()
}

func TestManagerLoadUnload(t *testing.T) {
	m := NewManager()
	if err := m.Load(); err != nil {
		t.Logf("speaker unavailable (expected without an audio device): %v", err)
		return
	}
	if err := m.Load(); err != nil {
		t.Errorf("second Load should be a no-op, got %v", err)
	}
	m.Play(types.SoundEat)
	m.Unload()
	m.Unload()
}

func TestCuesAreFinite(t *testing.T) {
	for _, s := range []types.Sound{types.SoundEat, types.SoundWall} {
		st, err := Cue(s)
		if err != nil {
			t.Fatalf("Cue(%v): %v", s, err)
		}
		buf := make([][2]float64, 512)
		total := 0
		for i := 0; i < 1000; i++ {
			n, ok := st.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total == 0 || total >= 512*1000 {
			t.Errorf("%v cue streamed %d samples", s, total)
		}
	}
}

func TestBuzzGeneratorFadesIn(t *testing.T) {
	g := NewBuzzGenerator(beep.SampleRate(44100), 110)
	buf := make([][2]float64, 2048)
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want silence", buf[0][0])
	}
	if buf[0][0] != buf[0][1] {
		t.Error("channels differ")
	}
	if g.Err() != nil {
		t.Error("unexpected error")
	}
}
