package config

import (
	"log/slog"
	"testing"
)

// TestDefaultConfig verifies default configuration
func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Background != BackgroundGradient {
		t.Errorf("Expected default background %q, got %q", BackgroundGradient, cfg.Background)
	}
	if cfg.ColorSpace != ColorSpaceRGB {
		t.Errorf("Expected default colour space %q, got %q", ColorSpaceRGB, cfg.ColorSpace)
	}
	if cfg.GravityPivot != 0.5 {
		t.Errorf("Expected default gravity pivot 0.5, got %f", cfg.GravityPivot)
	}
	if !cfg.Audio {
		t.Error("Expected audio enabled by default")
	}
	if cfg.ConfirmDialog {
		t.Error("Expected confirm dialog disabled by default")
	}
}

// TestLoadFromEnv verifies env overrides
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MIRROR_BACKGROUND", "images")
	t.Setenv("MIRROR_BACKGROUND_IMAGES", "a.png, b.png ,c.png")
	t.Setenv("MIRROR_COLOR_SPACE", "HSV")
	t.Setenv("MIRROR_GRAVITY_PIVOT", "0.65")
	t.Setenv("MIRROR_AUDIO", "false")
	t.Setenv("MIRROR_CONFIRM_DIALOG", "true")
	t.Setenv("MIRROR_SEED", "42")
	t.Setenv("MIRROR_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Background != BackgroundImages {
		t.Errorf("Expected background images, got %q", cfg.Background)
	}
	want := [3]string{"a.png", "b.png", "c.png"}
	if cfg.BackgroundImages != want {
		t.Errorf("Expected images %v, got %v", want, cfg.BackgroundImages)
	}
	if cfg.ColorSpace != ColorSpaceHSV {
		t.Errorf("Expected colour space hsv, got %q", cfg.ColorSpace)
	}
	if cfg.GravityPivot != 0.65 {
		t.Errorf("Expected pivot 0.65, got %f", cfg.GravityPivot)
	}
	if cfg.Audio {
		t.Error("Expected audio disabled")
	}
	if !cfg.ConfirmDialog {
		t.Error("Expected confirm dialog enabled")
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel)
	}
}

// TestLoadIgnoresInvalid verifies malformed values keep defaults
func TestLoadIgnoresInvalid(t *testing.T) {
	t.Setenv("MIRROR_BACKGROUND", "plasma")
	t.Setenv("MIRROR_BACKGROUND_IMAGES", "only-one.png")
	t.Setenv("MIRROR_GRAVITY_PIVOT", "1.7")
	t.Setenv("MIRROR_AUDIO", "maybe")

	cfg := Load()
	def := Default()

	if cfg.Background != def.Background {
		t.Errorf("Expected background %q, got %q", def.Background, cfg.Background)
	}
	if cfg.BackgroundImages != def.BackgroundImages {
		t.Errorf("Expected no images, got %v", cfg.BackgroundImages)
	}
	if cfg.GravityPivot != def.GravityPivot {
		t.Errorf("Expected pivot %f, got %f", def.GravityPivot, cfg.GravityPivot)
	}
	if cfg.Audio != def.Audio {
		t.Error("Expected audio to keep its default")
	}
}

func TestProfiles(t *testing.T) {
	p, i := PassiveProfile(), InteractiveProfile()

	if ProfileFor(ModeInteractive) != i {
		t.Error("Expected interactive profile for interactive mode")
	}
	if ProfileFor("unknown") != p {
		t.Error("Expected passive profile for unknown mode")
	}
	if i.MaxParticles <= p.MaxParticles {
		t.Errorf("Expected interactive to render more particles, got %d <= %d", i.MaxParticles, p.MaxParticles)
	}
	if i.ChaosAmplitude <= p.ChaosAmplitude {
		t.Error("Expected interactive to use a larger motion range")
	}
	for _, prof := range []Profile{p, i} {
		if prof.MinParticles > prof.MaxParticles {
			t.Errorf("Expected min <= max particles, got %d > %d", prof.MinParticles, prof.MaxParticles)
		}
		if prof.ZSpeedGain < 0.8 || prof.ZSpeedGain > 1.5 {
			t.Errorf("Expected z speed gain in [0.8,1.5], got %f", prof.ZSpeedGain)
		}
		if prof.AlphaFloor < 0.6 || prof.AlphaFloor > 0.9 {
			t.Errorf("Expected alpha floor in [0.6,0.9], got %f", prof.AlphaFloor)
		}
	}
}
