package ambience

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and keeps the last N samples in a ring buffer so
// the renderer can react to what is actually playing.
type Tap struct {
	Source beep.Streamer

	mu        sync.RWMutex
	buffer    [][2]float64
	nextIndex int
	filled    int
}

// NewTap records up to ringSize stereo samples from src.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled = min(t.filled+n, len(t.buffer))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples in chronological order.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	if n <= 0 {
		return nil
	}
	out := make([][2]float64, n)
	start := t.nextIndex - n
	if start < 0 {
		start += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[(start+i)%len(t.buffer)]
	}
	return out
}

// Level is the compressed mono RMS of the last n samples, in [0,1].
func (t *Tap) Level(n int) float64 {
	samples := t.Snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	return math.Min(1, math.Pow(rms, 0.3))
}
