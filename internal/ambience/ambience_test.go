package ambience

import (
	"math"
	"testing"

	"github.com/faiface/beep"

	"github.com/iburimskiy/emotional-mirror/internal/emotion"
)

func TestDroneBoundedByVolume(t *testing.T) {
	tests := []emotion.Levels{
		{},
		{Intensity: 1, Valence: 1, Energy: 1, Chaos: 1},
		{Intensity: 0.3, Valence: 0.7, Energy: 0.2, Chaos: 0.9},
	}
	for _, lv := range tests {
		d := NewDrone(44100, lv)
		buf := make([][2]float64, 4096)
		n, ok := d.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Expected a full buffer, got %d %v", n, ok)
		}
		limit := d.Volume() + 1e-9
		for i, s := range buf {
			if math.Abs(s[0]) > limit || s[0] != s[1] {
				t.Fatalf("%+v sample %d: expected |s| <= %f, got %v", lv, i, limit, s)
			}
		}
	}
}

func TestDroneGlidesToTarget(t *testing.T) {
	d := NewDrone(44100, emotion.Levels{Intensity: 0})
	quiet := d.Volume()
	d.Set(emotion.Levels{Intensity: 1})
	if d.Volume() != quiet {
		t.Error("Expected Set to leave the current volume until streamed")
	}
	buf := make([][2]float64, 44100)
	d.Stream(buf)
	if math.Abs(d.Volume()-maxVolume) > 1e-3 {
		t.Errorf("Expected volume near %f after a second, got %f", maxVolume, d.Volume())
	}
}

func TestTapSnapshot(t *testing.T) {
	i := 0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			samples[j] = [2]float64{float64(i), float64(i)}
			i++
		}
		return len(samples), true
	})
	tap := NewTap(src, 8)

	if got := tap.Snapshot(4); got != nil {
		t.Errorf("Expected empty snapshot before streaming, got %v", got)
	}

	tap.Stream(make([][2]float64, 5))
	got := tap.Snapshot(10)
	if len(got) != 5 || got[0][0] != 0 || got[4][0] != 4 {
		t.Errorf("Expected samples 0..4, got %v", got)
	}

	tap.Stream(make([][2]float64, 6))
	got = tap.Snapshot(3)
	if len(got) != 3 || got[0][0] != 8 || got[2][0] != 10 {
		t.Errorf("Expected samples 8..10 after wrapping, got %v", got)
	}
	if got := tap.Snapshot(100); len(got) != 8 {
		t.Errorf("Expected the ring size, got %d", len(got))
	}
}

func TestTapLevel(t *testing.T) {
	silent := NewTap(beep.Silence(-1), 256)
	silent.Stream(make([][2]float64, 256))
	if l := silent.Level(256); l != 0 {
		t.Errorf("Expected silence to read 0, got %f", l)
	}

	loud := NewTap(NewDrone(44100, emotion.Levels{Intensity: 1}), 1024)
	loud.Stream(make([][2]float64, 1024))
	l := loud.Level(1024)
	if l <= 0 || l > 1 {
		t.Errorf("Expected level in (0,1], got %f", l)
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := newPlayer(44100, 512, emotion.Neutral())
	buf := make([][2]float64, 512)
	p.ctrl.Stream(buf)
	if p.Level() <= 0 {
		t.Error("Expected the tap to meter the drone")
	}
	p.Set(emotion.Levels{})
	if p.Paused() {
		t.Error("Expected a new player to be playing")
	}
}
