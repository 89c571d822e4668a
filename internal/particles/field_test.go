package particles

import (
	"math"
	"sync"
	"testing"

	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/emotion"
	"github.com/iburimskiy/emotional-mirror/internal/frame"
)

var testViewport = Viewport{Width: 400, Height: 300}

func calm() emotion.Levels {
	return emotion.Levels{Intensity: 0.5, Valence: 0.5, Heaviness: 0.5, Chaos: 0, Energy: 0.5}
}

func seeded(t *testing.T, p config.Profile, lv emotion.Levels) *Field {
	t.Helper()
	f := NewField(p, 7)
	if _, ok := f.Step(0.016, lv, testViewport); !ok {
		t.Fatal("Expected first step to run")
	}
	return f
}

func TestStepSkipsZeroAndInvalidDt(t *testing.T) {
	f := seeded(t, config.PassiveProfile(), calm())
	before := f.Particles()
	latest := f.Latest()
	tm := f.Time()

	for _, dt := range []float64{0, -0.01, math.NaN(), math.Inf(1)} {
		fr, ok := f.Step(dt, calm(), testViewport)
		if ok {
			t.Errorf("Expected dt=%v to be skipped", dt)
		}
		if fr.Time != latest.Time || len(fr.Samples) != len(latest.Samples) {
			t.Errorf("Expected previous frame for dt=%v", dt)
		}
	}

	after := f.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Expected particle %d unchanged, got %+v -> %+v", i, before[i], after[i])
		}
	}
	if f.Time() != tm {
		t.Errorf("Expected time unchanged, got %f -> %f", tm, f.Time())
	}
}

func TestStepSkipsEmptyViewport(t *testing.T) {
	f := seeded(t, config.PassiveProfile(), calm())
	before := f.Particles()

	for _, vp := range []Viewport{{0, 300}, {400, 0}, {-1, -1}} {
		if _, ok := f.Step(0.016, calm(), vp); ok {
			t.Errorf("Expected viewport %+v to be skipped", vp)
		}
	}
	after := f.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Expected particle %d unchanged", i)
		}
	}
}

func TestUnseededFieldWaitsForViewport(t *testing.T) {
	f := NewField(config.PassiveProfile(), 1)
	if _, ok := f.Step(0.016, calm(), Viewport{}); ok {
		t.Fatal("Expected skip without viewport")
	}
	for _, p := range f.Particles() {
		if p != (Particle{}) {
			t.Fatal("Expected pool to stay unseeded")
		}
	}
}

func TestRespawnAtNearPlane(t *testing.T) {
	lv := calm()
	lv.Energy = 1
	f := seeded(t, config.PassiveProfile(), lv)
	f.pool[0].Z = config.NearPlane + 0.01

	f.Step(0.1, lv, testViewport)

	p := f.Particles()[0]
	if p.Z != config.FarPlane {
		t.Errorf("Expected z reset to %f, got %f", config.FarPlane, p.Z)
	}
	if p.X < -testViewport.Width || p.X > testViewport.Width {
		t.Errorf("Expected x within [-W,W], got %f", p.X)
	}
	if p.Y < -testViewport.Height || p.Y > testViewport.Height {
		t.Errorf("Expected y within [-H,H], got %f", p.Y)
	}
}

func TestRespawnStaysInBoxUnderChaos(t *testing.T) {
	lv := emotion.Levels{Intensity: 1, Valence: 0.5, Heaviness: 0.5, Chaos: 1, Energy: 1}
	f := seeded(t, config.InteractiveProfile(), lv)
	respawns := 0
	for i := 0; i < 2000; i++ {
		before := f.Particles()
		f.Step(0.05, lv, testViewport)
		for j, p := range f.Particles() {
			if p.Z <= before[j].Z {
				continue
			}
			respawns++
			if p.X < -testViewport.Width || p.X > testViewport.Width {
				t.Fatalf("step %d: respawned particle %d has x %f outside [-W,W]", i, j, p.X)
			}
			if p.Y < -testViewport.Height || p.Y > testViewport.Height {
				t.Fatalf("step %d: respawned particle %d has y %f outside [-H,H]", i, j, p.Y)
			}
		}
	}
	if respawns == 0 {
		t.Fatal("Expected particles to respawn")
	}
}

func TestDepthStaysPositive(t *testing.T) {
	lv := emotion.Levels{Intensity: 1, Valence: 1, Heaviness: 1, Chaos: 1, Energy: 1}
	f := seeded(t, config.InteractiveProfile(), lv)
	for i := 0; i < 600; i++ {
		f.Step(0.1, lv, testViewport)
		for j, p := range f.Particles() {
			if p.Z <= 0 || p.Z > config.FarPlane {
				t.Fatalf("step %d: particle %d has z %f", i, j, p.Z)
			}
			if p.Y < -testViewport.Height || p.Y > testViewport.Height {
				t.Fatalf("step %d: particle %d escaped vertically: %f", i, j, p.Y)
			}
		}
	}
}

func TestDtIsCapped(t *testing.T) {
	a := seeded(t, config.PassiveProfile(), calm())
	b := seeded(t, config.PassiveProfile(), calm())

	a.Step(5, calm(), testViewport)
	b.Step(config.MaxFrameStep, calm(), testViewport)

	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("Expected a 5s step to equal a %.1fs step, particle %d differs", config.MaxFrameStep, i)
		}
	}
}

func TestActiveCountMonotonic(t *testing.T) {
	for _, p := range []config.Profile{config.PassiveProfile(), config.InteractiveProfile()} {
		prev := -1
		for i := 0; i <= 100; i++ {
			n := ActiveCount(p, float64(i)/100)
			if n < prev {
				t.Fatalf("Expected non-decreasing count, got %d after %d at %d%%", n, prev, i)
			}
			prev = n
		}
		if got := ActiveCount(p, 0); got != p.MinParticles {
			t.Errorf("Expected %d at intensity 0, got %d", p.MinParticles, got)
		}
		if got := ActiveCount(p, 1); got != p.MaxParticles {
			t.Errorf("Expected %d at intensity 1, got %d", p.MaxParticles, got)
		}
		if got := ActiveCount(p, 5); got != p.MaxParticles {
			t.Errorf("Expected clamp at over-range intensity, got %d", got)
		}
	}
}

func TestEmitsActivePopulation(t *testing.T) {
	p := config.PassiveProfile()
	for _, in := range []float64{0, 0.3, 0.77, 1} {
		lv := calm()
		lv.Intensity = in
		f := NewField(p, 3)
		fr, _ := f.Step(0.016, lv, testViewport)
		if want := ActiveCount(p, in); len(fr.Samples) != want || fr.Active != want {
			t.Errorf("intensity %.2f: expected %d samples, got %d", in, want, len(fr.Samples))
		}
	}
}

func TestSuppressedParticlesStillAdvance(t *testing.T) {
	lv := calm()
	lv.Intensity = 0
	f := seeded(t, config.PassiveProfile(), lv)
	before := f.Particles()
	f.Step(0.05, lv, testViewport)
	after := f.Particles()

	last := len(after) - 1
	if after[last].Z == before[last].Z {
		t.Error("Expected a suppressed particle to keep moving in depth")
	}
}

func TestNoOverlayWithoutChaos(t *testing.T) {
	f := seeded(t, config.InteractiveProfile(), calm())
	fr, _ := f.Step(0.016, calm(), testViewport)
	pool := f.Particles()

	for i, s := range fr.Samples {
		sx, sy, _ := Project(pool[i].X, pool[i].Y, pool[i].Z, testViewport)
		if s.X != sx || s.Y != sy {
			t.Fatalf("Expected sample %d at (%f,%f), got (%f,%f)", i, sx, sy, s.X, s.Y)
		}
	}
}

func TestOverlayWithChaos(t *testing.T) {
	lv := calm()
	lv.Chaos = 1
	f := seeded(t, config.InteractiveProfile(), lv)
	fr, _ := f.Step(0.016, lv, testViewport)
	pool := f.Particles()

	moved := 0
	for i, s := range fr.Samples {
		sx, sy, _ := Project(pool[i].X, pool[i].Y, pool[i].Z, testViewport)
		if math.Hypot(s.X-sx, s.Y-sy) > 1e-6 {
			moved++
		}
	}
	if moved == 0 {
		t.Error("Expected chaos to displace samples")
	}
}

func TestEnergyDrivesDepthOnly(t *testing.T) {
	slow, fast := calm(), calm()
	slow.Chaos, fast.Chaos = 0.7, 0.7
	slow.Energy, fast.Energy = 0.1, 0.9

	a := NewField(config.PassiveProfile(), 11)
	b := NewField(config.PassiveProfile(), 11)
	a.Step(0.016, slow, testViewport)
	b.Step(0.016, fast, testViewport)

	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i].X != pb[i].X {
			t.Fatalf("Expected energy not to change x, particle %d: %f vs %f", i, pa[i].X, pb[i].X)
		}
		if pb[i].Z >= pa[i].Z {
			t.Fatalf("Expected higher energy to move particle %d closer: %f vs %f", i, pb[i].Z, pa[i].Z)
		}
	}
}

func TestHeavinessSetsDirection(t *testing.T) {
	tests := []struct {
		heaviness float64
		sign      float64
	}{
		{1, 1},
		{0, -1},
	}
	for _, tt := range tests {
		lv := calm()
		lv.Heaviness = tt.heaviness
		f := seeded(t, config.PassiveProfile(), lv)
		before := f.Particles()
		f.Step(0.016, lv, testViewport)
		after := f.Particles()

		for i := range before {
			d := after[i].Y - before[i].Y
			if math.Abs(d) > testViewport.Height {
				continue
			}
			if d*tt.sign <= 0 {
				t.Fatalf("heaviness %.0f: expected particle %d to move with sign %.0f, got %f", tt.heaviness, i, tt.sign, d)
			}
		}
	}
}

func TestPivotStopsDrift(t *testing.T) {
	lv := calm()
	lv.Heaviness = 0.65
	f := NewField(config.PassiveProfile(), 5, WithPivot(0.65))
	f.Step(0.016, lv, testViewport)
	before := f.Particles()
	f.Step(0.016, lv, testViewport)
	after := f.Particles()
	for i := range before {
		if before[i].Y != after[i].Y {
			t.Fatalf("Expected no vertical drift at the pivot, particle %d moved", i)
		}
	}
}

func TestAlphaFloorAndRadius(t *testing.T) {
	p := config.PassiveProfile()
	floor := uint8(math.Round(p.AlphaFloor * 255))

	small, big := calm(), calm()
	small.Intensity, big.Intensity = 0.1, 0.9
	a := NewField(p, 9)
	b := NewField(p, 9)
	fa, _ := a.Step(0.016, small, testViewport)
	fb, _ := b.Step(0.016, big, testViewport)

	for _, s := range append(fa.Samples, fb.Samples...) {
		if s.Color.A < floor {
			t.Fatalf("Expected alpha >= %d, got %d", floor, s.Color.A)
		}
	}
	for i := range fa.Samples {
		if fb.Samples[i].Radius <= fa.Samples[i].Radius {
			t.Fatalf("Expected intensity to enlarge particle %d", i)
		}
	}
}

func TestLatestPublishesFrames(t *testing.T) {
	f := NewField(config.PassiveProfile(), 2)
	if len(f.Latest().Samples) != 0 {
		t.Fatal("Expected empty initial frame")
	}
	fr, _ := f.Step(0.016, calm(), testViewport)
	if got := f.Latest(); got.Time != fr.Time || len(got.Samples) != len(fr.Samples) {
		t.Error("Expected Latest to return the last stepped frame")
	}
	held := f.Latest()
	first := held.Samples[0]
	f.Step(0.016, calm(), testViewport)
	if held.Samples[0] != first {
		t.Error("Expected a handed-out frame to survive the next step")
	}

	buf := make([]Sample, 0, 4)
	into := f.LatestInto(buf)
	if into.Time != f.Time() || len(into.Samples) != f.Latest().Active {
		t.Errorf("Expected LatestInto to copy the last frame, got time %f with %d samples", into.Time, len(into.Samples))
	}
}

func TestLatestIntoConcurrentReader(t *testing.T) {
	lv := emotion.Levels{Intensity: 1, Valence: 0.5, Heaviness: 0.8, Chaos: 1, Energy: 1}
	f := NewField(config.InteractiveProfile(), 11)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		var buf []Sample
		for {
			select {
			case <-done:
				return
			default:
			}
			fr := f.LatestInto(buf)
			buf = fr.Samples
			if len(fr.Samples) != fr.Active {
				t.Errorf("Expected %d samples, got %d", fr.Active, len(fr.Samples))
				return
			}
			for _, s := range fr.Samples {
				if s.Depth <= 0 {
					t.Errorf("Expected positive depth, got %f", s.Depth)
					return
				}
			}
		}
	}()

	for i := 0; i < 2000; i++ {
		f.Step(0.016, lv, testViewport)
	}
	close(done)
	wg.Wait()
}

func TestDepthFadeAndFlicker(t *testing.T) {
	if got := DepthFade(config.FarPlane); got != 0 {
		t.Errorf("Expected 0 at the far plane, got %f", got)
	}
	if got := DepthFade(config.NearPlane); got != 0 {
		t.Errorf("Expected 0 at the near plane, got %f", got)
	}
	if got := DepthFade(1.5); got != 1 {
		t.Errorf("Expected 1 mid-depth, got %f", got)
	}
	if got := DepthFade(config.FarPlane - 0.25); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 halfway through the far fade, got %f", got)
	}

	p := config.InteractiveProfile()
	for tm := 0.0; tm < 5; tm += 0.1 {
		a := Flicker(p, 0, tm, 1)
		if a < p.AlphaFloor || a > 1 {
			t.Fatalf("Expected flicker in [%f,1], got %f", p.AlphaFloor, a)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ y, want float64 }{
		{0, 0},
		{100, 100},
		{110, -90},
		{-110, 90},
		{310, -90},
	}
	for _, tt := range tests {
		if got := wrap(tt.y, 100); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrap(%f): expected %f, got %f", tt.y, tt.want, got)
		}
	}
}

func TestRunner(t *testing.T) {
	var sched frame.Manual
	f := NewField(config.PassiveProfile(), 4)
	lv := calm()
	r := NewRunner("test", f, func() emotion.Levels { return lv }, func() Viewport { return testViewport })

	r.Attach(&sched)
	r.Attach(&sched)
	if sched.Len() != 1 {
		t.Fatalf("Expected one registration, got %d", sched.Len())
	}

	sched.Steps(0.016, 0, 0.016)
	if r.Frames() != 2 {
		t.Errorf("Expected 2 frames (zero dt skipped), got %d", r.Frames())
	}

	lv.Intensity = 1
	sched.Step(0.016)
	if got := len(f.Latest().Samples); got != f.Profile().MaxParticles {
		t.Errorf("Expected live levels to reach the field, got %d samples", got)
	}

	r.Detach()
	if r.Attached() || sched.Len() != 0 {
		t.Error("Expected detach to release the registration")
	}
	sched.Step(0.016)
	if r.Frames() != 3 {
		t.Errorf("Expected no frames after detach, got %d", r.Frames())
	}
}
