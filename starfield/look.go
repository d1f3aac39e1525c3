package starfield

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starglyph/parameter"
	"github.com/lixenwraith/starglyph/vmath"
)

// Black-body ramp stops for ColorTemp 0, 0.33, 0.66, 1
var tempRamp = [...]colorful.Color{
	{R: 0.7, G: 0.8, B: 1.0},
	{R: 0.95, G: 0.95, B: 1.0},
	{R: 1.0, G: 0.95, B: 0.8},
	{R: 1.0, G: 0.7, B: 0.5},
}

// StarColor maps a color temperature in [0,1] to RGB
func StarColor(temp float64) colorful.Color {
	temp = vmath.Clamp01(temp)
	switch {
	case temp < 0.33:
		return tempRamp[0].BlendRgb(tempRamp[1], temp/0.33)
	case temp < 0.66:
		return tempRamp[1].BlendRgb(tempRamp[2], (temp-0.33)/0.33)
	default:
		return tempRamp[2].BlendRgb(tempRamp[3], (temp-0.66)/0.34)
	}
}

// Twinkle is the brightness multiplier in [0.4, 1]
func (s Star) Twinkle(time float64) float64 {
	return 0.7 + 0.3*math.Sin(time*(2+s.TwinklePhase)+s.TwinklePhase*100)
}

// PointSize is the twinkling, depth-scaled point size
func (s Star) PointSize(depth, time float64) float64 {
	if depth < parameter.DepthNear {
		depth = parameter.DepthNear
	}
	scale := vmath.Clamp(parameter.PerspectiveRef/depth, parameter.PerspectiveMin, parameter.PerspectiveMax)
	return s.Size * scale * s.Twinkle(time)
}

// Intensity is the peak alpha of the point: brightness times twinkle
func (s Star) Intensity(time float64) float64 {
	return s.Brightness * s.Twinkle(time)
}
