package ambience

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/emotional-mirror/internal/emotion"
)

// Player owns the speaker and plays the drone through a tap.
type Player struct {
	drone  *Drone
	tap    *Tap
	ctrl   *beep.Ctrl
	paused bool
}

// Start initializes the speaker and begins playback at lv.
func Start(rate, ringSize int, lv emotion.Levels) (*Player, error) {
	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := newPlayer(sr, ringSize, lv)
	speaker.Play(p.ctrl)
	slog.Info("ambience started", "sample_rate", rate)
	return p, nil
}

func newPlayer(sr beep.SampleRate, ringSize int, lv emotion.Levels) *Player {
	d := NewDrone(sr, lv)
	t := NewTap(d, ringSize)
	return &Player{
		drone: d,
		tap:   t,
		ctrl:  &beep.Ctrl{Streamer: t},
	}
}

// Set follows a new state.
func (p *Player) Set(lv emotion.Levels) { p.drone.Set(lv) }

// Level meters the most recent audio for the renderer.
func (p *Player) Level() float64 { return p.tap.Level(2048) }

// Paused reports whether playback is paused.
func (p *Player) Paused() bool { return p.paused }

// SetPaused pauses or resumes playback.
func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.paused = paused
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops playback.
func (p *Player) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
