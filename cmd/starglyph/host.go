package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/starglyph/audio"
	"github.com/lixenwraith/starglyph/camera"
	"github.com/lixenwraith/starglyph/config"
	"github.com/lixenwraith/starglyph/engine"
	"github.com/lixenwraith/starglyph/event"
	"github.com/lixenwraith/starglyph/galaxy"
	"github.com/lixenwraith/starglyph/glyph"
	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/render"
	"github.com/lixenwraith/starglyph/render/renderer"
	"github.com/lixenwraith/starglyph/scene"
	"github.com/lixenwraith/starglyph/starfield"
	"github.com/lixenwraith/starglyph/vmath"
)

// Host is the terminal collaborator: it owns the screen, feeds input into the scene and draws it
type Host struct {
	screen  tcell.Screen
	cfg     config.Config
	profile config.Profile

	clock   *engine.PausableClock
	monitor *engine.FrameMonitor
	sound   *audio.SoundManager

	scene *scene.Scene
	stars *starfield.Field
	cam   camera.Camera
	id    uuid.UUID

	orchestrator *render.RenderOrchestrator
	hud          *renderer.HUDRenderer
	backdrop     []backdropLayer

	width, height int
	lastTime      float64

	// Input state
	editing       bool
	draft         []rune
	scroll        float64
	secondaryOn   bool
	pointer       mgl64.Vec2
	pointerActive bool
	message       string
	dropped       uint64
	lastOrbit     float64 // clock seconds of the last manual orbit
}

// backdropLayer is a background renderer that can be hidden at runtime
type backdropLayer interface {
	render.SystemRenderer
	IsVisible() bool
	SetVisible(bool)
}

// NewHost wires every subsystem for an initialized screen
func NewHost(screen tcell.Screen, cfg config.Config, fonts *glyph.FontLoader, sound *audio.SoundManager, source engine.TimeProvider) (*Host, error) {
	mode, err := render.ParseColorMode(cfg.ColorMode)
	if err != nil {
		return nil, err
	}

	w, h := screen.Size()
	profile := config.ProfileFor(cfg.Device, w)

	cam := camera.New()
	cam.SetViewport(w, h-parameter.HUDRows)

	opts := scene.DefaultOptions()
	opts.Strict = cfg.Debug
	opts.Seed = cfg.Seed
	opts.Sampler.Stride = profile.SampleStride
	sc := scene.New(fonts, event.NewEventQueue(), opts)

	starCfg := starfield.DefaultConfig()
	starCfg.Count = profile.StarCount
	starCfg.StreakCount = profile.StreakCount
	stars, err := starfield.New(starCfg, cam, cfg.Seed^0x9e3779b97f4a7c15)
	if err != nil {
		return nil, fmt.Errorf("starfield: %w", err)
	}

	galaxyCfg := galaxy.DefaultConfig()
	galaxyCfg.Count = profile.GalaxyCount
	spiral, err := galaxy.New(galaxyCfg, cfg.Seed^0xc2b2ae3d27d4eb4f)
	if err != nil {
		return nil, fmt.Errorf("galaxy: %w", err)
	}

	hst := &Host{
		screen:       screen,
		cfg:          cfg,
		profile:      profile,
		clock:        engine.NewPausableClock(source),
		monitor:      engine.NewFrameMonitor(source, parameter.MonitorInterval, parameter.MonitorLongFrame, parameter.MonitorWarnFPS),
		sound:        sound,
		scene:        sc,
		stars:        stars,
		cam:          cam,
		orchestrator: render.NewRenderOrchestrator(screen, mode),
		hud:          renderer.NewHUDRenderer(),
		width:        w,
		height:       h,
		secondaryOn:  cfg.Secondary != "",
		lastOrbit:    -parameter.CameraAutoOrbitDelay,
	}

	nebula := renderer.NewNebulaRenderer(int64(cfg.Seed))
	spiralLayer := renderer.NewGalaxyRenderer(spiral)
	hst.backdrop = []backdropLayer{nebula, spiralLayer}

	hst.orchestrator.Register(nebula, render.PriorityBackground)
	hst.orchestrator.Register(spiralLayer, render.PriorityGalaxy)
	hst.orchestrator.Register(renderer.NewStarRenderer(stars), render.PriorityStars)
	hst.orchestrator.Register(renderer.NewStreakRenderer(stars), render.PriorityStreaks)
	hst.orchestrator.Register(renderer.NewParticleRenderer(sc), render.PriorityParticles)
	hst.orchestrator.Register(hst.hud, render.PriorityUI)

	hst.id = sc.Mount(cfg.Text, cfg.Secondary)

	log.Printf("[scene] profile %s: stride %d, %d stars, %d streaks, %d galaxy points, %d fps, color %s",
		profile.Device, profile.SampleStride, profile.StarCount, profile.StreakCount, profile.GalaxyCount, profile.TargetFPS, mode)
	return hst, nil
}

// Run drives the frame loop until quit or ctx is done
func (h *Host) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(h.profile.TargetFPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.Update()
			h.Render()
		}
	}
}

// Update advances the scene and the starfield by the clock delta, then reacts to scene events
// The camera drifts around the text once no manual orbit happened for CameraAutoOrbitDelay
func (h *Host) Update() {
	now := h.clock.Seconds()
	dt := now - h.lastTime
	h.lastTime = now

	if !h.clock.IsPaused() {
		if now-h.lastOrbit >= parameter.CameraAutoOrbitDelay {
			h.cam.Orbit(parameter.CameraAutoOrbitSpeed*dt, 0)
		}
		h.scene.Pointer(h.pointer, h.pointerActive, dt)
		h.scene.Tick(dt, h.cam.Position(), h.cam.Direction())
		h.stars.Update(h.cam)
	}
	h.drainEvents()
}

// Render draws one frame
func (h *Host) Render() {
	h.monitor.Frame()
	h.hud.Update(h.status())
	ctx := render.NewRenderContext(h.cam, h.clock.Seconds(), h.clock.IsPaused(), h.width, h.height, parameter.HUDRows)
	h.orchestrator.RenderFrame(ctx)
}

func (h *Host) status() renderer.Status {
	s := renderer.Status{
		Editing:   h.editing,
		Draft:     string(h.draft),
		Secondary: h.secondaryOn,
		FPS:       h.monitor.Latest().FPS,
		Particles: h.scene.ParticleCount(),
		Stars:     len(h.stars.Stars),
		Paused:    h.clock.IsPaused(),
		Muted:     h.sound.IsMuted(),
		Message:   h.message,
	}
	if inst, ok := h.scene.Instance(h.id); ok {
		s.Text = inst.Text
		s.Phase = inst.State.Phase.String()
		s.Formation = inst.State.Formation
	}
	return s
}

// drainEvents maps scene events onto audio cues and HUD messages
func (h *Host) drainEvents() {
	h.scene.Events().Drain(h.onEvent)
	if dropped := h.scene.Events().Dropped(); dropped != h.dropped {
		log.Printf("[scene] event queue overflow, %d events dropped", dropped-h.dropped)
		h.dropped = dropped
	}
}

func (h *Host) onEvent(ev event.SceneEvent) {
	switch ev.Type {
	case event.EventFormationComplete:
		h.play(audio.SoundChime)
	case event.EventCollapseStart:
		h.play(audio.SoundRumble)
	case event.EventBurstStart:
		h.play(audio.SoundBlast)
	case event.EventFontReady:
		log.Printf("[font] primary face ready")
	case event.EventFontFallback:
		h.message = "bitmap font"
	case event.EventInstanceFailed:
		if p, ok := ev.Payload.(*event.InstanceFailedPayload); ok {
			h.message = p.Err.Error()
		}
	case event.EventFieldGenerated:
		if p, ok := ev.Payload.(*event.FieldGeneratedPayload); ok {
			log.Printf("[scene] frame %d: field %d particles, epoch %d", ev.Frame, p.Particles, p.Epoch)
		}
	}
}

func (h *Host) play(st audio.SoundType) {
	if err := h.sound.Play(st); err != nil {
		log.Printf("[audio] %s: %v", st, err)
	}
}

// HandleEvent applies one terminal event; false means quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.resize()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if h.editing {
			h.applyDraft()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if h.editing && len(h.draft) > 0 {
			h.draft = h.draft[:len(h.draft)-1]
		}
	case tcell.KeyTab:
		h.toggleSecondary()
	case tcell.KeyCtrlX:
		h.must(h.scene.Trigger(h.id))
	case tcell.KeyCtrlP:
		paused := h.clock.Toggle()
		log.Printf("[scene] paused=%v", paused)
	case tcell.KeyCtrlB:
		h.toggleBackdrop()
	case tcell.KeyLeft:
		h.orbit(-parameter.CameraOrbitStep, 0)
	case tcell.KeyRight:
		h.orbit(parameter.CameraOrbitStep, 0)
	case tcell.KeyUp:
		h.orbit(0, parameter.CameraOrbitStep)
	case tcell.KeyDown:
		h.orbit(0, -parameter.CameraOrbitStep)
	case tcell.KeyPgUp:
		h.adjustScroll(-parameter.ScrollStep)
	case tcell.KeyPgDn:
		h.adjustScroll(parameter.ScrollStep)
	case tcell.KeyRune:
		if !h.editing {
			h.editing = true
			h.draft = h.draft[:0]
		}
		if len(h.draft) < parameter.MaxTextLength {
			h.draft = append(h.draft, ev.Rune())
		}
	}
	return true
}

func (h *Host) orbit(dyaw, dpitch float64) {
	h.cam.Orbit(dyaw, dpitch)
	h.lastOrbit = h.clock.Seconds()
}

// toggleBackdrop hides or shows the nebula and galaxy together
func (h *Host) toggleBackdrop() {
	on := !h.backdrop[0].IsVisible()
	for _, l := range h.backdrop {
		l.SetVisible(on)
	}
	log.Printf("[render] backdrop visible=%v", on)
}

func (h *Host) applyDraft() {
	text := string(h.draft)
	h.editing = false
	h.draft = h.draft[:0]
	h.message = ""
	h.must(h.scene.SetText(h.id, text))
}

func (h *Host) toggleSecondary() {
	if h.cfg.Secondary == "" {
		return
	}
	h.secondaryOn = !h.secondaryOn
	text := ""
	if h.secondaryOn {
		text = h.cfg.Secondary
	}
	h.must(h.scene.SetSecondary(h.id, text))
}

func (h *Host) adjustScroll(delta float64) {
	h.scroll = vmath.Clamp01(h.scroll + delta)
	h.must(h.scene.SetScroll(h.id, h.scroll))
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	if buttons&tcell.WheelUp != 0 {
		h.adjustScroll(-parameter.ScrollStep)
	}
	if buttons&tcell.WheelDown != 0 {
		h.adjustScroll(parameter.ScrollStep)
	}

	rows := h.height - parameter.HUDRows
	if x < 0 || x >= h.width || y < 0 || y >= rows {
		h.pointerActive = false
		return
	}
	hit, ok := h.cam.Unproject(camera.CellToNDC(x, y, h.width, rows))
	h.pointerActive = ok
	if ok {
		h.pointer = hit
	}
}

func (h *Host) resize() {
	h.width, h.height = h.screen.Size()
	h.cam.SetViewport(h.width, h.height-parameter.HUDRows)
	h.orchestrator.Resize(h.width, h.height)
}

// must logs scene errors raised by input handling; debug mode panics on an unknown instance
func (h *Host) must(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, scene.ErrUnknownInstance) && h.cfg.Debug {
		panic(err)
	}
	log.Printf("[scene] %v", err)
	h.message = err.Error()
}
