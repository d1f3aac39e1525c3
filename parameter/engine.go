package parameter

import "time"

// Frame loop
const (
	TargetFPSDesktop = 60
	TargetFPSMobile  = 30

	// MonitorInterval is how often frame metrics are computed and logged
	MonitorInterval = 10 * time.Second
	// MonitorWarnFPS logs a warning when the measured rate drops below it
	MonitorWarnFPS = 30
	// MonitorLongFrame marks frames slower than one 60 Hz period
	MonitorLongFrame = 16670 * time.Microsecond

	// PointerSmoothing is the exponential rate (1/sec) of the pointer velocity filter
	PointerSmoothing = 10.0

	// ScrollStep is the scroll fraction change per wheel/page event
	ScrollStep = 0.05
)

// Event queue
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// Sample stride per device class (1 = every lit pixel)
const (
	SampleStrideDesktop = 1
	SampleStrideMobile  = 2
)

// CompactColumns is the terminal width below which the auto device profile picks mobile
const CompactColumns = 100
