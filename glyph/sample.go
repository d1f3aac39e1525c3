// Package glyph rasterizes text into a bitmap mask and extracts shape-space sample points
package glyph

import (
	"image"
	"image/draw"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/starglyph/parameter"
)

// SampleSet is the ordered set of lit-pixel samples of one rasterized string
// Points are in shape space: bbox center at the origin, Y up
type SampleSet struct {
	Points []mgl64.Vec2

	// Center is the raster-space center of the lit-pixel bounding box
	Center mgl64.Vec2

	// HalfWidth/HalfHeight are the shape-space half extents of the bounding box
	HalfWidth  float64
	HalfHeight float64
}

// Len returns the number of sample points
func (s *SampleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}

// Empty reports whether there is nothing to render
func (s *SampleSet) Empty() bool {
	return s.Len() == 0
}

// Options configures the raster canvas and scan
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	Threshold    uint8
	Stride       int
	Scale        float64
}

// DefaultOptions returns the canvas and scan defaults
func DefaultOptions() Options {
	return Options{
		CanvasWidth:  parameter.GlyphCanvasWidth,
		CanvasHeight: parameter.GlyphCanvasHeight,
		Threshold:    parameter.GlyphThreshold,
		Stride:       parameter.GlyphStride,
		Scale:        parameter.GlyphSampleScale,
	}
}

// Sampler turns strings into SampleSets using one resolved face
// Not safe for concurrent use: font faces cache glyph data internally
type Sampler struct {
	face font.Face
	opts Options
}

// NewSampler binds a sampler to a loaded face
// A nil face means the font was never confirmed, which would silently produce wrong metrics
func NewSampler(face font.Face, opts Options) (*Sampler, error) {
	if face == nil {
		return nil, ErrFontNotReady
	}
	if opts.Stride < 1 {
		opts.Stride = 1
	}
	if opts.CanvasWidth <= 0 || opts.CanvasHeight <= 0 {
		def := DefaultOptions()
		opts.CanvasWidth, opts.CanvasHeight = def.CanvasWidth, def.CanvasHeight
	}
	if opts.Scale == 0 {
		opts.Scale = parameter.GlyphSampleScale
	}
	return &Sampler{face: face, opts: opts}, nil
}

// Options returns the sampler configuration
func (s *Sampler) Options() Options {
	return s.opts
}

// Rasterize draws text white-on-black, centered horizontally and vertically in the canvas
func (s *Sampler) Rasterize(text string) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, s.opts.CanvasWidth, s.opts.CanvasHeight))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	if text == "" {
		return img
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: s.face,
	}

	// Middle baseline: shift by half the ascent-descent difference
	m := s.face.Metrics()
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(s.opts.CanvasWidth/2) - width/2,
		Y: fixed.I(s.opts.CanvasHeight/2) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)
	return img
}

// Sample rasterizes text and returns the normalized lit-pixel set
// Whitespace-only or glyphless input yields an empty set
func (s *Sampler) Sample(text string) SampleSet {
	if strings.TrimSpace(text) == "" {
		return SampleSet{}
	}
	return s.sampleMask(s.Rasterize(text))
}

func (s *Sampler) sampleMask(img *image.Gray) SampleSet {
	w, h := s.opts.CanvasWidth, s.opts.CanvasHeight
	stride := s.opts.Stride

	lit := make([][2]int, 0, 1024)
	minX, maxX, minY, maxY := w, -1, h, -1

	// Column-major scan keeps sample order stable across runs
	for x := 0; x < w; x += stride {
		for y := 0; y < h; y += stride {
			if img.Pix[y*img.Stride+x] <= s.opts.Threshold {
				continue
			}
			lit = append(lit, [2]int{x, y})
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if len(lit) == 0 {
		return SampleSet{}
	}

	cx := float64(minX+maxX) / 2
	cy := float64(minY+maxY) / 2
	scale := s.opts.Scale

	points := make([]mgl64.Vec2, len(lit))
	for i, p := range lit {
		points[i] = mgl64.Vec2{
			(float64(p[0]) - cx) * scale,
			-(float64(p[1]) - cy) * scale,
		}
	}

	return SampleSet{
		Points:     points,
		Center:     mgl64.Vec2{cx, cy},
		HalfWidth:  float64(maxX-minX) / 2 * scale,
		HalfHeight: float64(maxY-minY) / 2 * scale,
	}
}
