package parameter

// Spiral galaxy backdrop
const (
	GalaxyCountDesktop = 20000
	GalaxyCountMobile  = 8000

	// GalaxyRadius is the outer radius of the disk in world units
	GalaxyRadius   = 50.0
	GalaxyBranches = 3
	// GalaxySpin is the branch twist in radians per unit radius
	GalaxySpin = 1.0

	// GalaxyRandomness scales the per-axis scatter by radius; the power concentrates it near the arms
	GalaxyRandomness      = 0.2
	GalaxyRandomnessPower = 3.0

	// GalaxyRotationSpeed is the Y rotation in radians per second
	GalaxyRotationSpeed = 0.02

	GalaxyInsideColor  = "#ff6030"
	GalaxyOutsideColor = "#1b3984"

	// GalaxyOpacity is the per-point light weight; GalaxyCover is the per-point coverage
	GalaxyOpacity = 0.8
	GalaxyCover   = 0.06
)
