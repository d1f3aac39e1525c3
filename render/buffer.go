package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starglyph/parameter"
)

// Cell is one resolved terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// light accumulates point contributions in float space before quantizing
type light struct {
	r, g, b float64 // color weighted by w
	w       float64
	cover   float64
}

var densityRamp = []rune(parameter.DensityRamp)

// RenderBuffer is a compositor with a background plane, an additive light plane and a text overlay
type RenderBuffer struct {
	cells  []Cell
	light  []light
	text   []bool
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.light = make([]light, size)
		b.text = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.light = b.light[:size]
		b.text = b.text[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all planes using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBBlack, Bg: RGBBlack}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	clear(b.light)
	clear(b.text)
}

func (b *RenderBuffer) Width() int  { return b.width }
func (b *RenderBuffer) Height() int { return b.height }

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== COMPOSITOR API =====

// SetBg composites a background color
func (b *RenderBuffer) SetBg(x, y int, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = mode.Apply(b.cells[idx].Bg, bg, alpha)
}

// AddLight accumulates a point of color c; weight steers the hue mix, cover drives glyph density
func (b *RenderBuffer) AddLight(x, y int, c colorful.Color, weight, cover float64) {
	if !b.inBounds(x, y) || weight <= 0 {
		return
	}
	l := &b.light[y*b.width+x]
	l.r += c.R * weight
	l.g += c.G * weight
	l.b += c.B * weight
	l.w += weight
	l.cover += cover
}

// AddLightF splats a point at fractional cell coordinates onto its cell
func (b *RenderBuffer) AddLightF(fx, fy float64, c colorful.Color, weight, cover float64) {
	if fx < 0 || fy < 0 {
		return
	}
	b.AddLight(int(fx), int(fy), c, weight, cover)
}

// SetText writes an opaque text cell that light does not override
func (b *RenderBuffer) SetText(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.text[idx] = true
}

// DrawString writes s from x and returns the column after the last rune
func (b *RenderBuffer) DrawString(x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		b.SetText(x, y, r, fg, bg)
		x++
	}
	return x
}

// Coverage returns the accumulated light coverage of a cell
func (b *RenderBuffer) Coverage(x, y int) float64 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.light[y*b.width+x].cover
}

// Cell returns the resolved cell at x, y
func (b *RenderBuffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	idx := y*b.width + x
	return b.resolve(idx)
}

// resolve merges the light plane into the cell unless text owns it
func (b *RenderBuffer) resolve(idx int) Cell {
	c := b.cells[idx]
	if b.text[idx] {
		return c
	}
	l := b.light[idx]
	if l.w <= 0 || l.cover < parameter.CoverageMin {
		return c
	}

	density := math.Min(l.cover/parameter.CoverageFull, 1)
	slot := int(density * float64(len(densityRamp)-1))
	c.Rune = densityRamp[slot]

	// Weighted hue, brightened by density; the sqrt keeps sparse cells readable
	inv := 1 / l.w
	hue := colorful.Color{R: l.r * inv, G: l.g * inv, B: l.b * inv}
	fg := FromColorful(hue).Scale(0.35 + 0.65*math.Sqrt(density))
	c.Fg = Add(c.Bg, fg)
	if density >= 1 {
		c.Bg = BlendAdd.Apply(c.Bg, fg, parameter.GlowBackground)
	}
	return c
}

// ===== OUTPUT =====

// Flush writes the resolved buffer to the screen without calling Show
func (b *RenderBuffer) Flush(screen tcell.Screen, mode ColorMode) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.resolve(row + x)
			style := tcell.StyleDefault.
				Foreground(ToTcell(c.Fg, mode)).
				Background(ToTcell(c.Bg, mode))
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
