package parameter

import "math"

// Star pool
const (
	StarCountDesktop = 4000
	StarCountMobile  = 1500

	// StarSpeed is the per-frame displacement opposite the view direction
	StarSpeed = 2.0

	// StarShellMin/Span place stars at allocation; StarShellBias < 1 pushes them outward
	StarShellMin  = 100.0
	StarShellSpan = 200.0
	StarShellBias = 0.5

	// StarMaxRadiusSq and StarBehindLimit are the recycle thresholds
	StarMaxRadiusSq = 100000.0
	StarBehindLimit = 50.0

	// StarSpawnMin/Span is the forward band for respawn distance
	StarSpawnMin  = 200.0
	StarSpawnSpan = 100.0

	// StarMinAngle is the donut-hole half-angle around the view axis (0.2 degrees)
	StarMinAngle = 0.0035
	// StarMaxAngle bounds the respawn cone
	StarMaxAngle = math.Pi / 2
)

// Streak pool
const (
	StreakCountDesktop = 200
	StreakCountMobile  = 60

	StreakSpeedFactor = 1.5
	StreakMaxRadiusSq = 50000.0
	StreakBehindLimit = 30.0
	StreakSpawnMin    = 120.0
	StreakSpawnSpan   = 30.0
	StreakMaxAngle    = 0.45
	StreakLengthMin   = 5.0
	StreakLengthSpan  = 10.0
	StreakOpacityMin  = 0.2
	StreakOpacitySpan = 0.5
)
