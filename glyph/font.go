package glyph

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/lixenwraith/starglyph/event"
	"github.com/lixenwraith/starglyph/parameter"
)

// Sentinel errors
var (
	ErrFontNotReady = errors.New("font not confirmed loaded")
	ErrFontFallback = errors.New("primary font unavailable, using bitmap fallback")
)

// FaceSource produces the primary face; it may block
type FaceSource func(ctx context.Context) (font.Face, error)

// GoBoldSource parses the embedded Go Bold TrueType font at the given pixel size
func GoBoldSource(size, dpi float64) FaceSource {
	return func(ctx context.Context) (font.Face, error) {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse gobold: %w", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("gobold face size %.1f: %w", size, err)
		}
		return face, nil
	}
}

// FontLoader resolves a face asynchronously and signals readiness exactly once
// Resolution is either the primary face or, on error or timeout, the bitmap fallback
type FontLoader struct {
	source  FaceSource
	timeout time.Duration

	ready chan struct{}
	once  sync.Once

	mu       sync.RWMutex
	face     font.Face
	err      error
	resolved bool
	queue    *event.EventQueue
}

// NewFontLoader creates a loader; a non-positive timeout uses the default
func NewFontLoader(source FaceSource, timeout time.Duration) *FontLoader {
	if timeout <= 0 {
		timeout = parameter.GlyphFontTimeout
	}
	return &FontLoader{
		source:  source,
		timeout: timeout,
		ready:   make(chan struct{}),
	}
}

// Start launches the load; calling it more than once has no further effect after resolution
func (l *FontLoader) Start(ctx context.Context) {
	result := make(chan loadResult, 1)
	go func() {
		face, err := l.source(ctx)
		result <- loadResult{face: face, err: err}
	}()

	go func() {
		timer := time.NewTimer(l.timeout)
		defer timer.Stop()

		select {
		case r := <-result:
			if r.err != nil || r.face == nil {
				log.Printf("[font] primary load failed: %v", r.err)
				l.resolve(basicfont.Face7x13, fmt.Errorf("%w: %v", ErrFontFallback, r.err))
				return
			}
			l.resolve(r.face, nil)
		case <-timer.C:
			log.Printf("[font] primary load exceeded %v", l.timeout)
			l.resolve(basicfont.Face7x13, fmt.Errorf("%w: timeout after %v", ErrFontFallback, l.timeout))
		case <-ctx.Done():
			l.resolve(basicfont.Face7x13, fmt.Errorf("%w: %v", ErrFontFallback, ctx.Err()))
		}
	}()
}

type loadResult struct {
	face font.Face
	err  error
}

func (l *FontLoader) resolve(face font.Face, err error) {
	l.once.Do(func() {
		l.mu.Lock()
		l.face = face
		l.err = err
		l.resolved = true
		q := l.queue
		l.mu.Unlock()

		// Notice lands before Ready closes so readers of Ready always find it queued
		if q != nil {
			q.Push(l.resolution(err))
		}
		close(l.ready)
	})
}

// Publish routes the resolution notice to q
// A loader that already resolved pushes the notice immediately; either way q receives it once
func (l *FontLoader) Publish(q *event.EventQueue) {
	l.mu.Lock()
	l.queue = q
	resolved, err := l.resolved, l.err
	l.mu.Unlock()

	if resolved && q != nil {
		q.Push(l.resolution(err))
	}
}

// resolution builds the scene-wide readiness event; Frame is 0 outside the frame loop
func (l *FontLoader) resolution(err error) event.SceneEvent {
	if err != nil {
		return event.SceneEvent{
			Type:    event.EventFontFallback,
			Payload: &event.FontFallbackPayload{Err: err},
		}
	}
	return event.SceneEvent{Type: event.EventFontReady}
}

// Ready is closed once a face is available
func (l *FontLoader) Ready() <-chan struct{} {
	return l.ready
}

// IsReady is the non-blocking form of Ready
func (l *FontLoader) IsReady() bool {
	select {
	case <-l.ready:
		return true
	default:
		return false
	}
}

// Face returns the resolved face
// Before readiness: nil, ErrFontNotReady. After a fallback: the bitmap face and an ErrFontFallback-wrapping error
func (l *FontLoader) Face() (font.Face, error) {
	if !l.IsReady() {
		return nil, ErrFontNotReady
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.face, l.err
}

// Sampler returns a sampler bound to the resolved face
// A fallback face is still usable; only ErrFontNotReady is returned as failure
func (l *FontLoader) Sampler(opts Options) (*Sampler, error) {
	face, err := l.Face()
	if errors.Is(err, ErrFontNotReady) {
		return nil, err
	}
	return NewSampler(face, opts)
}
