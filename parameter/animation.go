package parameter

// Animation timing (seconds)
const (
	// FormationDuration is the scatter -> shape morph length
	FormationDuration = 3.0

	// InitialFormDelay is the wait before the first formation of a mounted instance
	InitialFormDelay = 1.0

	// SettleDelay is the wait before re-forming after a text change
	SettleDelay = 0.5

	// CollapseWindow is the full rise+fall length of the collapse effect
	CollapseWindow = 2.0

	// BurstDelay is the time after a trigger at which the burst begins
	BurstDelay = 2.0

	// BurstWindow is the full rise+fall length of the burst effect
	BurstWindow = 3.0
)
