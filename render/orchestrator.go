package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/starglyph/camera"
)

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityGalaxy
	PriorityStars
	PriorityStreaks
	PriorityParticles
	PriorityUI
)

// SystemRenderer is implemented by every layer with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Time     float64 // scene clock, seconds
	IsPaused bool

	// Scene area in cells; the HUD rows sit below it
	Cols int
	Rows int

	ScreenWidth  int
	ScreenHeight int

	Camera    camera.Camera
	Projector camera.Projector
}

// NewRenderContext snapshots the camera for one frame
func NewRenderContext(cam camera.Camera, t float64, paused bool, width, height, hudRows int) RenderContext {
	rows := max(height-hudRows, 0)
	return RenderContext{
		Time:         t,
		IsPaused:     paused,
		Cols:         width,
		Rows:         rows,
		ScreenWidth:  width,
		ScreenHeight: height,
		Camera:       cam,
		Projector:    cam.Projector(),
	}
}

// ProjectToCell maps a world point to fractional cell coordinates inside the scene area
func (rc *RenderContext) ProjectToCell(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	ndc, depth, ok := rc.Projector.Project(world)
	if !ok || ndc[0] < -1 || ndc[0] > 1 || ndc[1] < -1 || ndc[1] > 1 {
		return 0, 0, depth, false
	}
	x, y = camera.NDCToCell(ndc, rc.Cols, rc.Rows)
	return x, y, depth, true
}

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	mode      ColorMode
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen, mode ColorMode) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		mode:      mode,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the compositor, mainly for inspection
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen, o.mode)
	o.screen.Show()
}
