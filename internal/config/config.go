package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	WindowWidth  = 480
	WindowHeight = 860

	// Home view field box
	HomeFieldX      = 20
	HomeFieldY      = 60
	HomeFieldWidth  = WindowWidth - 40
	HomeFieldHeight = 320

	// Mirror view: field takes the upper part of the window
	MirrorFieldHeight = WindowHeight * 55 / 100

	// Slider dimensions
	SliderX           = 40
	SliderWidth       = WindowWidth - 80
	SliderTrackHeight = 4
	SliderTouchHeight = 48
	SliderThumbRadius = 12

	// Button dimensions
	ButtonWidth  = 160
	ButtonHeight = 40

	// Simulation planes
	NearPlane = 0.1
	FarPlane  = 3.0
	FadeZone  = 0.5

	// MaxFrameStep caps a single simulation step so a resumed app does not
	// integrate a whole background interval at once.
	MaxFrameStep = 0.1

	// PaletteHz is how often background colours are recomputed.
	PaletteHz = 20

	// EaseSeconds is how long displayed levels take to settle on a commit.
	EaseSeconds = 1.5

	AudioSampleRate = 44100
	AudioRingSize   = 4096
)

// Mode selects how lively a view renders the same state.
type Mode string

const (
	ModePassive     Mode = "passive"
	ModeInteractive Mode = "interactive"
)

// Profile tunes amplitudes and limits of the particle field for one Mode.
type Profile struct {
	MinParticles int
	MaxParticles int

	ZSpeedGain        float64
	Gravity           float64
	TimingJitter      float64
	DirectionalJitter float64
	WobbleX           float64
	WobbleY           float64
	ChaosAmplitude    float64

	RadiusMin   float64
	RadiusRange float64

	BlinkBase  float64
	BlinkAmp   float64
	BlinkRate  float64
	AlphaFloor float64
}

// PassiveProfile is the ambient home-screen tuning.
func PassiveProfile() Profile {
	return Profile{
		MinParticles:      8,
		MaxParticles:      60,
		ZSpeedGain:        0.9,
		Gravity:           400,
		TimingJitter:      0.2,
		DirectionalJitter: 0.8,
		WobbleX:           25,
		WobbleY:           18,
		ChaosAmplitude:    30,
		RadiusMin:         2,
		RadiusRange:       12,
		BlinkBase:         0.85,
		BlinkAmp:          0.15,
		BlinkRate:         2.5,
		AlphaFloor:        0.6,
	}
}

// InteractiveProfile is the editor tuning: more particles, larger motion.
func InteractiveProfile() Profile {
	return Profile{
		MinParticles:      16,
		MaxParticles:      180,
		ZSpeedGain:        1.2,
		Gravity:           600,
		TimingJitter:      0.3,
		DirectionalJitter: 1.2,
		WobbleX:           40,
		WobbleY:           30,
		ChaosAmplitude:    50,
		RadiusMin:         3,
		RadiusRange:       20,
		BlinkBase:         0.9,
		BlinkAmp:          0.15,
		BlinkRate:         3.0,
		AlphaFloor:        0.75,
	}
}

// ProfileFor returns the profile of mode; unknown modes are passive.
func ProfileFor(mode Mode) Profile {
	if mode == ModeInteractive {
		return InteractiveProfile()
	}
	return PassiveProfile()
}

// Background strategies
const (
	BackgroundGradient = "gradient"
	BackgroundImages   = "images"
)

// Colour spaces for three-stop blending
const (
	ColorSpaceRGB = "rgb"
	ColorSpaceHSV = "hsv"
)

// Config is the runtime configuration, read once at startup.
type Config struct {
	Background       string
	BackgroundImages [3]string
	ColorSpace       string
	GravityPivot     float64
	Audio            bool
	ConfirmDialog    bool
	Seed             int64
	LogLevel         slog.Level
}

// Default returns the configuration used when no env vars are set.
func Default() *Config {
	return &Config{
		Background:    BackgroundGradient,
		ColorSpace:    ColorSpaceRGB,
		GravityPivot:  0.5,
		Audio:         true,
		ConfirmDialog: false,
		Seed:          time.Now().UnixNano(),
		LogLevel:      slog.LevelInfo,
	}
}

// Load reads MIRROR_* environment variables over Default. Malformed values
// are logged and ignored.
func Load() *Config {
	cfg := Default()

	if v := os.Getenv("MIRROR_BACKGROUND"); v != "" {
		switch v {
		case BackgroundGradient, BackgroundImages:
			cfg.Background = v
		default:
			slog.Warn("unknown background strategy", "value", v)
		}
	}

	if v := os.Getenv("MIRROR_BACKGROUND_IMAGES"); v != "" {
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			slog.Warn("MIRROR_BACKGROUND_IMAGES needs three comma-separated paths", "value", v)
		} else {
			for i, p := range parts {
				cfg.BackgroundImages[i] = strings.TrimSpace(p)
			}
		}
	}

	if v := os.Getenv("MIRROR_COLOR_SPACE"); v != "" {
		switch strings.ToLower(v) {
		case ColorSpaceRGB, ColorSpaceHSV:
			cfg.ColorSpace = strings.ToLower(v)
		default:
			slog.Warn("unknown colour space", "value", v)
		}
	}

	if v := os.Getenv("MIRROR_GRAVITY_PIVOT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.GravityPivot = f
		} else {
			slog.Warn("invalid gravity pivot", "value", v)
		}
	}

	if v := os.Getenv("MIRROR_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio = b
		} else {
			slog.Warn("invalid MIRROR_AUDIO", "value", v)
		}
	}

	if v := os.Getenv("MIRROR_CONFIRM_DIALOG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ConfirmDialog = b
		} else {
			slog.Warn("invalid MIRROR_CONFIRM_DIALOG", "value", v)
		}
	}

	if v := os.Getenv("MIRROR_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			slog.Warn("invalid MIRROR_SEED", "value", v)
		}
	}

	if v := os.Getenv("MIRROR_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		} else {
			slog.Warn("invalid MIRROR_LOG_LEVEL", "value", v)
		}
	}

	return cfg
}
