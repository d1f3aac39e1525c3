package parameter

// Camera framing for the text centerpiece
const (
	CameraDistance = 28.0
	CameraFOV      = 85.0 // degrees, vertical
	CameraNear     = 0.1
	CameraFar      = 1000.0

	// CameraOrbitStep is the yaw/pitch change per arrow key press (radians)
	CameraOrbitStep = 0.05
	// CameraPitchLimit keeps the orbit off the poles
	CameraPitchLimit = 1.4

	// CameraAutoOrbitSpeed is the idle yaw rate in radians per second (one turn in five minutes)
	CameraAutoOrbitSpeed = TwoPi / 300
	// CameraAutoOrbitDelay is the idle time after a manual orbit before the auto orbit resumes
	CameraAutoOrbitDelay = 3.0
)
