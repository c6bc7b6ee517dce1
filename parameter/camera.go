package parameter

// Camera Controls
const (
	// CameraPanStep is the pan and dolly distance per key press
	CameraPanStep = 0.05

	// CameraRotateStep is the rotation per arrow key press in degrees
	CameraRotateStep = 1.5
)

// Projection
const (
	// CameraFOVDegrees is the vertical field of view
	CameraFOVDegrees = 60.0

	// CameraNear is the near clip distance along the view axis
	CameraNear = 0.01

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)
