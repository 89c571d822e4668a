// Package ambience synthesizes a soft drone that follows the emotional
// state and meters it for the renderer.
package ambience

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/emotional-mirror/internal/emotion"
)

const (
	baseHz    = 110.0
	maxVolume = 0.25
	// per-sample smoothing toward new targets, avoids clicks on Set
	glide = 0.0005
)

type voice struct {
	freq, volume, tremolo, wander float64
}

func voiceFor(lv emotion.Levels) voice {
	lv = lv.Clamp()
	return voice{
		freq:    baseHz + baseHz*lv.Valence,
		volume:  maxVolume * (0.2 + 0.8*lv.Intensity),
		tremolo: 0.2 + 5.8*lv.Energy,
		wander:  0.03 * lv.Chaos,
	}
}

// Drone is an endless beep.Streamer: a sine pad with a fifth above it.
// Valence sets the pitch, intensity the loudness, energy the tremolo rate
// and chaos how far the pitch wanders.
type Drone struct {
	rate beep.SampleRate

	mu     sync.Mutex
	target voice
	cur    voice

	phase, fifth, trem, drift float64
}

// NewDrone starts at lv.
func NewDrone(rate beep.SampleRate, lv emotion.Levels) *Drone {
	v := voiceFor(lv)
	return &Drone{rate: rate, target: v, cur: v}
}

// Set retargets the voice; the sound glides there.
func (d *Drone) Set(lv emotion.Levels) {
	d.mu.Lock()
	d.target = voiceFor(lv)
	d.mu.Unlock()
}

// Volume is the current loudness ceiling of a sample.
func (d *Drone) Volume() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cur.volume
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sr := float64(d.rate)
	if sr <= 0 {
		return 0, false
	}
	for i := range samples {
		d.cur.freq += (d.target.freq - d.cur.freq) * glide
		d.cur.volume += (d.target.volume - d.cur.volume) * glide
		d.cur.tremolo += (d.target.tremolo - d.cur.tremolo) * glide
		d.cur.wander += (d.target.wander - d.cur.wander) * glide

		d.drift += 2 * math.Pi * 0.7 / sr
		freq := d.cur.freq * (1 + d.cur.wander*math.Sin(d.drift)*math.Sin(d.drift*2.3))
		d.phase += 2 * math.Pi * freq / sr
		d.fifth += 2 * math.Pi * freq * 1.5 / sr
		d.trem += 2 * math.Pi * d.cur.tremolo / sr

		amp := d.cur.volume * (0.75 + 0.25*math.Sin(d.trem))
		s := amp * (0.7*math.Sin(d.phase) + 0.3*math.Sin(d.fifth))
		samples[i][0] = s
		samples[i][1] = s
	}
	d.phase = math.Mod(d.phase, 2*math.Pi)
	d.fifth = math.Mod(d.fifth, 2*math.Pi)
	d.trem = math.Mod(d.trem, 2*math.Pi)
	d.drift = math.Mod(d.drift, 2*math.Pi/0.1)
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
