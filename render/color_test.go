package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func TestBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	if got := Blend(dst, src, 0); got != dst {
		t.Errorf("Expected %v at alpha 0, got %v", dst, got)
	}
	if got := Blend(dst, src, 1); got != src {
		t.Errorf("Expected %v at alpha 1, got %v", src, got)
	}
	if got := Blend(dst, src, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected {100 50 25} at alpha 0.5, got %v", got)
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(RGB{200, 10, 255}, RGB{100, 10, 1})
	if got != (RGB{255, 20, 255}) {
		t.Errorf("Expected {255 20 255}, got %v", got)
	}
}

func TestScreenNeverDarkens(t *testing.T) {
	dst := RGB{120, 30, 200}
	got := Screen(dst, RGB{60, 60, 60})
	if got.R < dst.R || got.G < dst.G || got.B < dst.B {
		t.Errorf("Expected screen to keep or brighten %v, got %v", dst, got)
	}
	if got := Screen(dst, RGBBlack); got != dst {
		t.Errorf("Expected screen with black to be identity, got %v", got)
	}
}

func TestBlendModeApply(t *testing.T) {
	dst := RGB{10, 10, 10}
	src := RGB{100, 100, 100}

	tests := []struct {
		name string
		mode BlendMode
		want RGB
	}{
		{"replace", BlendReplace, src},
		{"alpha", BlendAlpha, RGB{55, 55, 55}},
		{"add", BlendAdd, RGB{60, 60, 60}},
		{"max", BlendMax, RGB{50, 50, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.Apply(dst, src, 0.5); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFromColorfulClamps(t *testing.T) {
	got := FromColorful(colorful.Color{R: 1.4, G: -0.2, B: 0.5})
	if got != (RGB{255, 0, 128}) {
		t.Errorf("Expected {255 0 128}, got %v", got)
	}
}

func TestIndex256(t *testing.T) {
	tests := []struct {
		in   RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},
		{RGB{255, 0, 0}, 196},
		{RGB{255, 255, 255}, 231},
		{RGB{128, 128, 128}, 244},
		{RGB{0, 95, 255}, 27},
	}
	for _, tt := range tests {
		if got := Index256(tt.in); got != tt.want {
			t.Errorf("Expected index %d for %v, got %d", tt.want, tt.in, got)
		}
	}
}

func TestToTcell(t *testing.T) {
	c := RGB{12, 34, 56}
	if got := ToTcell(c, ColorModeTrueColor); got != tcell.NewRGBColor(12, 34, 56) {
		t.Errorf("Expected RGB color, got %v", got)
	}
	if got := ToTcell(RGB{255, 0, 0}, ColorMode256); got != tcell.PaletteColor(196) {
		t.Errorf("Expected palette 196, got %v", got)
	}
}

func TestParseColorMode(t *testing.T) {
	if m, err := ParseColorMode("truecolor"); err != nil || m != ColorModeTrueColor {
		t.Errorf("Expected truecolor, got %v (%v)", m, err)
	}
	if m, err := ParseColorMode("256"); err != nil || m != ColorMode256 {
		t.Errorf("Expected 256, got %v (%v)", m, err)
	}
	if _, err := ParseColorMode("sepia"); err == nil {
		t.Error("Expected error for unknown mode")
	}

	t.Setenv("COLORTERM", "truecolor")
	if m, _ := ParseColorMode("auto"); m != ColorModeTrueColor {
		t.Errorf("Expected auto to detect truecolor, got %v", m)
	}
	t.Setenv("COLORTERM", "")
	if m, _ := ParseColorMode("auto"); m != ColorMode256 {
		t.Errorf("Expected auto to fall back to 256, got %v", m)
	}
}
