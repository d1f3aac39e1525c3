package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts a 0-255 float to uint8 with rounding
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// FromColorful converts a linear-free [0,1] go-colorful color, clamping out-of-gamut channels
func FromColorful(c colorful.Color) RGB {
	return RGB{clamp(c.R * 255), clamp(c.G * 255), clamp(c.B * 255)}
}

// Colorful converts back for blending in go-colorful space
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Scale multiplies every channel by k
func (c RGB) Scale(k float64) RGB {
	return RGB{clamp(float64(c.R) * k), clamp(float64(c.G) * k), clamp(float64(c.B) * k)}
}

// Luma is the Rec. 601 brightness in [0,1]
func (c RGB) Luma() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(src.R)*alpha + float64(dst.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(dst.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func Add(dst, src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func Max(dst, src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// fastDiv255 approximates x / 255 using integer math
func fastDiv255(x int) int {
	return (x + (x >> 8) + 1) >> 8
}

// Screen blend: 1 - (1-Dst)*(1-Src)
func Screen(dst, src RGB) RGB {
	return RGB{
		R: uint8(255 - fastDiv255((255-int(dst.R))*(255-int(src.R)))),
		G: uint8(255 - fastDiv255((255-int(dst.G))*(255-int(src.G)))),
		B: uint8(255 - fastDiv255((255-int(dst.B))*(255-int(src.B)))),
	}
}

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendAdd                      // Dst = clamp(Dst + Src*α, 255)
	BlendMax                      // Dst = max(Dst, Src*α) per channel
	BlendScreen                   // Dst = screen(Dst, Src*α)
)

// Apply composites src onto dst with the mode
func (m BlendMode) Apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendReplace:
		return src
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendAdd:
		return Add(dst, src.Scale(alpha))
	case BlendMax:
		return Max(dst, src.Scale(alpha))
	case BlendScreen:
		return Screen(dst, src.Scale(alpha))
	default:
		return dst
	}
}
