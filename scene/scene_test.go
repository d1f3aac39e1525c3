package scene

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"

	"github.com/lixenwraith/starglyph/animation"
	"github.com/lixenwraith/starglyph/event"
	"github.com/lixenwraith/starglyph/field"
	"github.com/lixenwraith/starglyph/glyph"
	"github.com/lixenwraith/starglyph/parameter"
)

const frame = 1.0 / 60.0

var (
	eye  = mgl64.Vec3{0, 0, parameter.CameraDistance}
	view = mgl64.Vec3{0, 0, -1}
)

func waitReady(t *testing.T, l *glyph.FontLoader) {
	t.Helper()
	select {
	case <-l.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for font")
	}
}

func readyScene(t *testing.T, opts Options) (*Scene, *glyph.FontLoader) {
	t.Helper()
	loader := glyph.NewFontLoader(glyph.GoBoldSource(50, parameter.GlyphFontDPI), time.Second)
	loader.Start(context.Background())
	waitReady(t, loader)
	return New(loader, event.NewEventQueue(), opts), loader
}

func countEvents(events []event.SceneEvent, et event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

func run(s *Scene, seconds float64) []event.SceneEvent {
	var events []event.SceneEvent
	for elapsed := 0.0; elapsed < seconds; elapsed += frame {
		s.Tick(frame, eye, view)
		events = append(events, s.Events().Consume()...)
	}
	return events
}

// formedTolerance bounds how far a formed particle at radius r strays from its shape point
// Breathing stays under 0.1; pulse and sway move it in proportion to r
func formedTolerance(k field.Kernel, r float64) float64 {
	return 0.1 + r*(k.Pulse+k.SwayYaw+k.SwayPitch)*1.1
}

func TestScenarioAB(t *testing.T) {
	opts := DefaultOptions()
	opts.Sampler = glyph.Options{CanvasWidth: 1024, CanvasHeight: 256, Threshold: 128, Stride: 1, Scale: 0.12}
	s, loader := readyScene(t, opts)

	sampler, err := loader.Sampler(opts.Sampler)
	if err != nil {
		t.Fatalf("Sampler: %v", err)
	}
	ab := sampler.Sample("AB")
	want := ab.Len()
	if want == 0 {
		t.Fatal("Expected samples for \"AB\"")
	}

	id := s.Mount("AB", "")
	s.Tick(0, eye, view)

	inst, _ := s.Instance(id)
	if inst.Field.Len() != want {
		t.Fatalf("Expected %d particles, got %d", want, inst.Field.Len())
	}
	if inst.Frame.Len() != want {
		t.Fatalf("Expected frame of %d samples, got %d", want, inst.Frame.Len())
	}

	events := run(s, opts.Timing.InitialDelay+opts.Timing.FormationDuration+0.1)
	if n := countEvents(events, event.EventFormationComplete); n != 1 {
		t.Errorf("Expected formation complete once, got %d", n)
	}
	if inst.State.Formation != 1 {
		t.Fatalf("Expected formation 1, got %f", inst.State.Formation)
	}

	for i, smp := range inst.Frame.Samples {
		target := inst.Field.Target[i]
		limit := formedTolerance(opts.Kernel, target.Len())
		if d := smp.Position.Sub(target).Len(); d > limit {
			t.Fatalf("Particle %d: expected within %f of target, got %f", i, limit, d)
		}
	}

	// Formed state persists without further notifications
	if n := countEvents(run(s, 2), event.EventFormationComplete); n != 0 {
		t.Errorf("Expected no further formation events, got %d", n)
	}
}

func TestGenerationWaitsForFont(t *testing.T) {
	release := make(chan struct{})
	source := func(ctx context.Context) (font.Face, error) {
		<-release
		return glyph.GoBoldSource(40, parameter.GlyphFontDPI)(ctx)
	}
	loader := glyph.NewFontLoader(source, 10*time.Second)
	loader.Start(context.Background())

	s := New(loader, nil, DefaultOptions())
	id := s.Mount("WAIT", "")

	for i := 0; i < 30; i++ {
		s.Tick(frame, eye, view)
	}
	inst, _ := s.Instance(id)
	if inst.Field != nil || !inst.Pending() {
		t.Fatal("Expected generation deferred until the font is ready")
	}
	if inst.State.Phase != animation.PhaseIdle {
		t.Errorf("Expected idle phase, got %v", inst.State.Phase)
	}
	if inst.Visible() {
		t.Error("Expected nothing to render before generation")
	}

	close(release)
	waitReady(t, loader)
	s.Tick(frame, eye, view)

	if inst.Field.Len() == 0 || inst.Pending() {
		t.Fatalf("Expected field generated after readiness, got %d particles", inst.Field.Len())
	}
	events := s.Events().Consume()
	if countEvents(events, event.EventFontReady) != 1 || countEvents(events, event.EventFieldGenerated) != 1 {
		t.Errorf("Expected font ready and field generated events, got %v", events)
	}
}

func TestFontFallback(t *testing.T) {
	source := func(ctx context.Context) (font.Face, error) {
		return nil, errors.New("no font here")
	}
	loader := glyph.NewFontLoader(source, time.Second)
	loader.Start(context.Background())
	waitReady(t, loader)

	s := New(loader, nil, DefaultOptions())
	id := s.Mount("AB", "")
	s.Tick(frame, eye, view)

	events := s.Events().Consume()
	if countEvents(events, event.EventFontFallback) != 1 {
		t.Errorf("Expected fallback event, got %v", events)
	}
	inst, _ := s.Instance(id)
	if inst.Field.Len() == 0 {
		t.Error("Expected fallback face to still produce particles")
	}
}

func TestInstanceIsolation(t *testing.T) {
	s, _ := readyScene(t, DefaultOptions())
	bad := s.Mount("AB", "")
	good := s.Mount("CD", "")
	s.Tick(frame, eye, view)
	s.Events().Consume()

	badInst, _ := s.Instance(bad)
	badInst.Frame = field.NewFrame(1)
	s.Tick(frame, eye, view)

	if !errors.Is(badInst.Failed, field.ErrBufferMismatch) {
		t.Fatalf("Expected ErrBufferMismatch isolation, got %v", badInst.Failed)
	}
	if badInst.Visible() {
		t.Error("Expected failed instance to render nothing")
	}

	events := s.Events().Consume()
	if countEvents(events, event.EventInstanceFailed) != 1 {
		t.Errorf("Expected one failure event, got %v", events)
	}

	goodInst, _ := s.Instance(good)
	if goodInst.Failed != nil || goodInst.Frame.Len() != goodInst.Field.Len() {
		t.Errorf("Expected healthy instance unaffected, got failed=%v", goodInst.Failed)
	}
	if s.ParticleCount() != goodInst.Field.Len() {
		t.Errorf("Expected particle count %d, got %d", goodInst.Field.Len(), s.ParticleCount())
	}

	// Isolated instances are skipped, not re-reported
	s.Tick(frame, eye, view)
	if n := countEvents(s.Events().Consume(), event.EventInstanceFailed); n != 0 {
		t.Errorf("Expected no repeated failure events, got %d", n)
	}
}

func TestStrictPanics(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = true
	s, _ := readyScene(t, opts)
	id := s.Mount("AB", "")
	s.Tick(frame, eye, view)

	inst, _ := s.Instance(id)
	inst.Frame = field.NewFrame(0)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, field.ErrBufferMismatch) {
			t.Errorf("Expected panic with ErrBufferMismatch, got %v", r)
		}
	}()
	s.Tick(frame, eye, view)
	t.Error("Expected strict mode to panic")
}

func TestTriggerSequence(t *testing.T) {
	s, _ := readyScene(t, DefaultOptions())
	id := s.Mount("AB", "")
	run(s, 4.5)

	if err := s.Trigger(id); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	events := run(s, 6)
	if countEvents(events, event.EventCollapseStart) != 1 {
		t.Errorf("Expected one collapse start, got %d", countEvents(events, event.EventCollapseStart))
	}
	if countEvents(events, event.EventBurstStart) != 1 {
		t.Errorf("Expected one burst start, got %d", countEvents(events, event.EventBurstStart))
	}

	var collapseAt, burstAt int64
	for _, ev := range events {
		switch ev.Type {
		case event.EventCollapseStart:
			collapseAt = ev.Frame
		case event.EventBurstStart:
			burstAt = ev.Frame
		}
	}
	if gap := float64(burstAt-collapseAt) * frame; math.Abs(gap-2) > 2*frame {
		t.Errorf("Expected burst 2s after collapse, got %f", gap)
	}

	inst, _ := s.Instance(id)
	if inst.State.Collapse != 0 || inst.State.Burst != 0 {
		t.Errorf("Expected effects finished, got collapse=%f burst=%f", inst.State.Collapse, inst.State.Burst)
	}
	if inst.State.Formation != 1 {
		t.Errorf("Expected formation untouched by effects, got %f", inst.State.Formation)
	}
}

func TestSetTextReforms(t *testing.T) {
	s, _ := readyScene(t, DefaultOptions())
	id := s.Mount("AB", "")
	run(s, 4.5)

	inst, _ := s.Instance(id)
	old := inst.Field
	if err := s.SetText(id, "XYZ!"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if inst.Text != "XYZ" {
		t.Errorf("Expected sanitized text XYZ, got %q", inst.Text)
	}

	events := run(s, parameter.SettleDelay+parameter.FormationDuration+0.1)
	if inst.Field == old {
		t.Error("Expected field replaced wholesale")
	}
	if countEvents(events, event.EventFieldGenerated) != 1 {
		t.Errorf("Expected one regeneration, got %d", countEvents(events, event.EventFieldGenerated))
	}
	if countEvents(events, event.EventFormationComplete) != 1 {
		t.Errorf("Expected one formation for the new text, got %d", countEvents(events, event.EventFormationComplete))
	}

	// Same text again is a no-op
	s.SetText(id, "XYZ")
	if inst.Pending() {
		t.Error("Expected unchanged text to leave nothing pending")
	}
}

func TestSecondaryMorph(t *testing.T) {
	s, _ := readyScene(t, DefaultOptions())
	id := s.Mount("AB", "CD")
	run(s, 4.5)

	inst, _ := s.Instance(id)
	s.SetScroll(id, 5)
	s.Tick(frame, eye, view)
	if inst.State.Secondary != 1 {
		t.Fatalf("Expected scroll clamped to 1, got %f", inst.State.Secondary)
	}
	k := DefaultOptions().Kernel
	for i, smp := range inst.Frame.Samples {
		want := inst.Field.Secondary[i]
		if d := smp.Position.Sub(want).Len(); d > formedTolerance(k, want.Len()) {
			t.Fatalf("Particle %d: expected at secondary shape, off by %f", i, d)
		}
	}
}

func TestEmptyText(t *testing.T) {
	s, _ := readyScene(t, DefaultOptions())
	id := s.Mount("   ", "")
	events := run(s, 4.5)

	inst, _ := s.Instance(id)
	if inst.Field.Len() != 0 || inst.Failed != nil {
		t.Errorf("Expected empty healthy instance, got %d particles, err %v", inst.Field.Len(), inst.Failed)
	}
	if countEvents(events, event.EventInstanceFailed) != 0 {
		t.Error("Expected zero particles to be a valid state")
	}
}

func TestUnmount(t *testing.T) {
	s, _ := readyScene(t, DefaultOptions())
	id := s.Mount("AB", "")
	s.Tick(frame, eye, view)

	if err := s.Unmount(id); err != nil {
		t.Fatalf("Unmount: %v", err)
	}
	if _, ok := s.Instance(id); ok {
		t.Error("Expected instance removed")
	}
	if len(s.Instances()) != 0 {
		t.Errorf("Expected no instances, got %d", len(s.Instances()))
	}
	if err := s.Unmount(id); !errors.Is(err, ErrUnknownInstance) {
		t.Errorf("Expected ErrUnknownInstance, got %v", err)
	}
	if err := s.Trigger(id); !errors.Is(err, ErrUnknownInstance) {
		t.Errorf("Expected ErrUnknownInstance on trigger, got %v", err)
	}

	// Ticking an empty arena is fine
	s.Tick(frame, eye, view)
}

func TestPointerTracker(t *testing.T) {
	p := NewPointerTracker(parameter.PointerSmoothing)

	pos := mgl64.Vec2{}
	for i := 0; i < 120; i++ {
		pos = pos.Add(mgl64.Vec2{0.1, 0})
		p.Update(pos, true, frame)
	}
	got := p.Pointer()
	if !got.Active {
		t.Fatal("Expected active pointer")
	}
	if math.Abs(got.Velocity[0]-6) > 0.1 {
		t.Errorf("Expected velocity ~6 units/s, got %f", got.Velocity[0])
	}

	for i := 0; i < 120; i++ {
		p.Update(pos, true, frame)
	}
	if v := p.Pointer().Velocity.Len(); v > 0.01 {
		t.Errorf("Expected velocity to decay for a still pointer, got %f", v)
	}

	p.Update(pos, false, frame)
	if p.Pointer().Active || p.Pointer().Velocity.Len() != 0 {
		t.Error("Expected inactive pointer with zero velocity")
	}

	// Re-entry far away does not spike
	p.Update(mgl64.Vec2{100, 100}, true, frame)
	if v := p.Pointer().Velocity.Len(); v != 0 {
		t.Errorf("Expected zero velocity on re-entry, got %f", v)
	}
}
