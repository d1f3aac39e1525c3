package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves auto/truecolor/256; auto inspects COLORTERM
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	default:
		return ColorModeTrueColor, fmt.Errorf("unknown color mode %q", s)
	}
}

// DetectColorMode reports truecolor when COLORTERM advertises it
func DetectColorMode() ColorMode {
	ct := strings.ToLower(os.Getenv("COLORTERM"))
	if ct == "truecolor" || ct == "24bit" {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level
var cubeIndex [256]uint8

const grayscaleStart = 232

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := absInt(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := absInt(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func distSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// Index256 returns the nearest xterm palette index, choosing between the cube and the gray ramp
func Index256(c RGB) uint8 {
	ri, gi, bi := cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B]
	cube := RGB{cubeValues[ri], cubeValues[gi], cubeValues[bi]}
	cubeIdx := 16 + 36*ri + 6*gi + bi

	// Gray ramp level = 8 + 10*step
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	step := (avg - 3) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	level := uint8(8 + 10*step)
	gray := RGB{level, level, level}

	if distSq(c, gray) < distSq(c, cube) {
		return grayscaleStart + uint8(step)
	}
	return cubeIdx
}

// ToTcell converts a color for the given mode
func ToTcell(c RGB, mode ColorMode) tcell.Color {
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(Index256(c)))
}
