package parameter

import "time"

// Glyph raster and sampling
const (
	// GlyphCanvasWidth/Height is the offscreen raster the text is drawn into (pixels)
	GlyphCanvasWidth  = 1024
	GlyphCanvasHeight = 256

	// GlyphThreshold is the brightness a pixel must exceed to count as lit (0-255)
	GlyphThreshold = 128

	// GlyphStride is the pixel step of the lit-pixel scan; 1 samples every pixel
	GlyphStride = 1

	// GlyphSampleScale maps raster pixels to shape-space units
	GlyphSampleScale = 0.12

	// GlyphFontSize is the default raster font size (pixels at 72 DPI)
	GlyphFontSize = 50

	// GlyphFontDPI is the DPI handed to the opentype face
	GlyphFontDPI = 72

	// GlyphFontTimeout bounds the wait for the primary face before the bitmap fallback is used
	GlyphFontTimeout = 3 * time.Second

	// MaxTextLength caps sanitized input (runes)
	MaxTextLength = 20

	// DefaultText is shown when no text is configured
	DefaultText = "HELLO"
)
