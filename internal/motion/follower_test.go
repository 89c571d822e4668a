package motion

import (
	"math"
	"testing"

	"github.com/iburimskiy/emotional-mirror/internal/emotion"
)

func TestFollowerConverges(t *testing.T) {
	f := NewFollower(emotion.Levels{}, 1.5)
	target := emotion.Levels{Intensity: 1, Valence: 0.8, Heaviness: 0.2, Chaos: 0.6, Energy: 0.4}
	f.SetTarget(target)

	var got emotion.Levels
	for i := 0; i < 60*3; i++ {
		got = f.Step(1.0 / 60)
	}
	if math.Abs(got.Intensity-1) > 0.01 || math.Abs(got.Valence-0.8) > 0.01 || math.Abs(got.Energy-0.4) > 0.01 {
		t.Errorf("Expected levels near %+v, got %+v", target, got)
	}
}

func TestFollowerIsGradual(t *testing.T) {
	f := NewFollower(emotion.Levels{}, 1.5)
	f.SetTarget(emotion.Levels{Valence: 1})
	got := f.Step(1.0 / 60)
	if got.Valence <= 0 || got.Valence >= 0.5 {
		t.Errorf("Expected a small first move, got %f", got.Valence)
	}
}

func TestFollowerStaysInRange(t *testing.T) {
	f := NewFollower(emotion.Levels{Intensity: 0}, 0.2)
	f.SetTarget(emotion.Levels{Intensity: 1, Valence: 1, Heaviness: 1, Chaos: 1, Energy: 1})
	for i := 0; i < 200; i++ {
		l := f.Step(0.05)
		for _, v := range pack(l) {
			if v < 0 || v > 1 {
				t.Fatalf("Expected values in [0,1], got %+v", l)
			}
		}
	}
}

func TestFollowerSnapAndRead(t *testing.T) {
	f := NewFollower(emotion.Neutral(), 1.5)
	want := emotion.Levels{Intensity: 0.3, Valence: 0.7}
	f.Snap(want)
	if got := f.Levels(); got != want {
		t.Errorf("Expected snap to %+v, got %+v", want, got)
	}
	if got := f.Step(0); got != want {
		t.Errorf("Expected zero dt not to move, got %+v", got)
	}
	if f.Target() != want {
		t.Errorf("Expected target %+v, got %+v", want, f.Target())
	}
}
