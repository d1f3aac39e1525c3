package parameter

// Terminal presentation
const (
	// CellAspect is terminal cell height/width
	CellAspect = 2.0

	// CellSizeScale converts point size to cell coverage
	CellSizeScale = 0.25

	// StarCellBrightness scales star color into the cell accumulator
	StarCellBrightness = 0.9

	// StreakBrightness is the base line intensity
	StreakBrightness = 0.35

	// Nebula background noise
	NebulaAlpha     = 0.15
	NebulaScale     = 0.045
	NebulaDrift     = 0.02
	NebulaOctaves   = 3
	NebulaPerlinA   = 2.0
	NebulaPerlinB   = 2.0
	NebulaPerlinN   = 3
	NebulaRadialEnd = 1.5

	// Cell coverage below CoverageMin is left empty; CoverageFull picks the densest glyph
	CoverageMin  = 0.05
	CoverageFull = 1.5
	// DensityRamp orders glyphs from sparse to dense
	DensityRamp = ".·∙•●"
	// GlowBackground bleeds a fraction of a saturated cell into its background
	GlowBackground = 0.12

	// HUDRows is reserved at the bottom of the screen
	HUDRows = 1
)
