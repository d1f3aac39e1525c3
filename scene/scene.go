// Package scene owns the arena of mounted text instances and drives them once per frame
package scene

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/starglyph/animation"
	"github.com/lixenwraith/starglyph/event"
	"github.com/lixenwraith/starglyph/field"
	"github.com/lixenwraith/starglyph/glyph"
	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

var ErrUnknownInstance = errors.New("unknown instance")

// Options configures every instance in the scene
type Options struct {
	// Strict panics on configuration errors instead of isolating the instance
	Strict bool

	Sampler glyph.Options
	Gen     field.GenParams
	Kernel  field.Kernel
	Timing  animation.Timing

	Seed             uint64
	PointerSmoothing float64
}

func DefaultOptions() Options {
	return Options{
		Sampler:          glyph.DefaultOptions(),
		Gen:              field.DefaultGenParams(),
		Kernel:           field.DefaultKernel(),
		Timing:           animation.DefaultTiming(),
		PointerSmoothing: parameter.PointerSmoothing,
	}
}

// Scene is single-threaded: all methods are called from the frame loop
type Scene struct {
	opts   Options
	fonts  *glyph.FontLoader
	queue  *event.EventQueue
	rng    *vmath.FastRand
	eval   *field.Evaluator
	cursor *PointerTracker

	sampler *glyph.Sampler

	instances map[uuid.UUID]*Instance
	order     []uuid.UUID

	frame int64
}

// New creates an empty scene; generation waits until fonts is ready
// The loader publishes its readiness or fallback notice into the scene queue
func New(fonts *glyph.FontLoader, queue *event.EventQueue, opts Options) *Scene {
	if queue == nil {
		queue = event.NewEventQueue()
	}
	if fonts != nil {
		fonts.Publish(queue)
	}
	return &Scene{
		opts:      opts,
		fonts:     fonts,
		queue:     queue,
		rng:       vmath.NewFastRand(opts.Seed),
		eval:      field.NewEvaluator(opts.Kernel),
		cursor:    NewPointerTracker(opts.PointerSmoothing),
		instances: make(map[uuid.UUID]*Instance),
	}
}

// Events returns the queue the scene publishes to
func (s *Scene) Events() *event.EventQueue {
	return s.queue
}

// Mount adds an instance; its field is generated on the first tick after the font is ready
func (s *Scene) Mount(text, secondary string) uuid.UUID {
	inst := &Instance{
		ID:        uuid.New(),
		Text:      glyph.Sanitize(text),
		Secondary: glyph.Sanitize(secondary),
		requested: 1,
	}
	s.instances[inst.ID] = inst
	s.order = append(s.order, inst.ID)
	log.Printf("[scene] mounted %s text=%q", inst.ID, inst.Text)
	return inst.ID
}

// Unmount drops the instance and any deferred work for it
func (s *Scene) Unmount(id uuid.UUID) error {
	if _, ok := s.instances[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownInstance, id)
	}
	delete(s.instances, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	event.Emit(s.queue, event.EventInstanceUnmounted, id, s.frame)
	return nil
}

// SetText replaces the primary text; an unchanged string is a no-op
func (s *Scene) SetText(id uuid.UUID, text string) error {
	inst, err := s.lookup(id)
	if err != nil {
		return err
	}
	text = glyph.Sanitize(text)
	if text == inst.Text {
		return nil
	}
	inst.Text = text
	inst.requested++
	return nil
}

// SetSecondary replaces the scroll-morph text
func (s *Scene) SetSecondary(id uuid.UUID, text string) error {
	inst, err := s.lookup(id)
	if err != nil {
		return err
	}
	text = glyph.Sanitize(text)
	if text == inst.Secondary {
		return nil
	}
	inst.Secondary = text
	inst.requested++
	return nil
}

// SetScroll sets the secondary morph fraction; clamped by the state machine
func (s *Scene) SetScroll(id uuid.UUID, fraction float64) error {
	inst, err := s.lookup(id)
	if err != nil {
		return err
	}
	inst.scroll = fraction
	return nil
}

// Trigger starts collapse now and burst after the configured delay, on the next tick
func (s *Scene) Trigger(id uuid.UUID) error {
	inst, err := s.lookup(id)
	if err != nil {
		return err
	}
	inst.trigger = true
	return nil
}

// Instance returns a mounted instance
func (s *Scene) Instance(id uuid.UUID) (*Instance, bool) {
	inst, ok := s.instances[id]
	return inst, ok
}

// Instances returns mounted instances in mount order
func (s *Scene) Instances() []*Instance {
	out := make([]*Instance, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.instances[id])
	}
	return out
}

// Pointer feeds the latest pointer sample in the text plane
func (s *Scene) Pointer(pos mgl64.Vec2, active bool, dt float64) {
	s.cursor.Update(pos, active, dt)
}

// Frame returns the tick counter
func (s *Scene) Frame() int64 {
	return s.frame
}

// Tick advances every instance by dt seconds and evaluates its particles for the given camera
func (s *Scene) Tick(dt float64, eye, view mgl64.Vec3) {
	s.frame++
	s.resolveFont()

	ptr := s.cursor.Pointer()
	for _, id := range s.order {
		inst := s.instances[id]
		if inst.Failed != nil {
			continue
		}
		s.tickInstance(inst, dt, eye, view, ptr)
	}
}

func (s *Scene) tickInstance(inst *Instance, dt float64, eye, view mgl64.Vec3, ptr field.Pointer) {
	changed := false
	if inst.Pending() && s.sampler != nil {
		if err := s.generate(inst); err != nil {
			s.fail(inst, err)
			return
		}
		changed = true
	}

	in := animation.Inputs{Scroll: inst.scroll, TextChanged: changed, Trigger: inst.trigger}
	inst.trigger = false

	var ev animation.Events
	inst.State, ev = animation.Advance(inst.State, dt, in, s.opts.Timing)
	s.publish(inst, ev)

	if inst.Field == nil {
		return
	}

	inputs := field.FrameInputs{
		Time: inst.State.Clock,
		Progress: field.Progress{
			Formation: inst.State.Formation,
			Secondary: inst.State.Secondary,
			Collapse:  inst.State.Collapse,
			Burst:     inst.State.Burst,
		},
		Pointer: ptr,
		Eye:     eye,
		View:    view,
	}
	if err := s.eval.Evaluate(inst.Field, inputs, inst.Frame); err != nil {
		s.fail(inst, err)
	}
}

// generate replaces the instance field wholesale from its current texts
func (s *Scene) generate(inst *Instance) error {
	primary := s.sampler.Sample(inst.Text)

	var secondary *glyph.SampleSet
	if inst.Secondary != "" {
		set := s.sampler.Sample(inst.Secondary)
		secondary = &set
	}

	f := field.Generate(&primary, secondary, s.opts.Gen, s.rng)
	if err := f.Validate(); err != nil {
		return fmt.Errorf("generate %q: %w", inst.Text, err)
	}

	inst.Field = f
	inst.Frame = field.NewFrame(f.Len())
	inst.generated = inst.requested

	log.Printf("[scene] %s generated %d particles for %q (secondary %d)", inst.ID, f.Len(), inst.Text, secondary.Len())
	event.EmitGenerated(s.queue, inst.ID, f.Len(), secondary.Len(), inst.State.Epoch+1, s.frame)
	return nil
}

func (s *Scene) resolveFont() {
	if s.sampler != nil || s.fonts == nil || !s.fonts.IsReady() {
		return
	}

	sampler, err := s.fonts.Sampler(s.opts.Sampler)
	if err != nil {
		log.Printf("[scene] sampler unavailable: %v", err)
		return
	}
	s.sampler = sampler
}

func (s *Scene) publish(inst *Instance, ev animation.Events) {
	if ev.CollapseStarted {
		event.Emit(s.queue, event.EventCollapseStart, inst.ID, s.frame)
	}
	if ev.BurstStarted {
		event.Emit(s.queue, event.EventBurstStart, inst.ID, s.frame)
	}
	if ev.Formed {
		log.Printf("[scene] %s formed at %.2fs", inst.ID, inst.State.Clock)
		event.Emit(s.queue, event.EventFormationComplete, inst.ID, s.frame)
	}
}

// fail isolates the instance; other instances and the starfield keep running
func (s *Scene) fail(inst *Instance, err error) {
	if s.opts.Strict {
		panic(fmt.Errorf("instance %s: %w", inst.ID, err))
	}
	log.Printf("[scene] %s isolated: %v", inst.ID, err)
	inst.Failed = err
	inst.Frame = nil
	event.EmitFailure(s.queue, inst.ID, err, s.frame)
}

func (s *Scene) lookup(id uuid.UUID) (*Instance, error) {
	inst, ok := s.instances[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstance, id)
	}
	return inst, nil
}

// ParticleCount sums live particles across healthy instances
func (s *Scene) ParticleCount() int {
	n := 0
	for _, inst := range s.instances {
		if inst.Failed == nil {
			n += inst.Field.Len()
		}
	}
	return n
}
