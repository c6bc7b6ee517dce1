package input

import (
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/camera"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
)

// ApplyCamera performs a camera command and reports whether cmd was one
// The orbit's right axis is up × view, a positive pan moves toward screen left
func ApplyCamera(cam *camera.Orbit, cmd Command) bool {
	d := parameter.CameraPanStep
	a := parameter.CameraRotateStep

	switch cmd.Action {
	case ActionPanUp:
		cam.PanUp(d)
	case ActionPanDown:
		cam.PanUp(-d)
	case ActionPanLeft:
		cam.PanRight(d)
	case ActionPanRight:
		cam.PanRight(-d)
	case ActionDollyIn:
		cam.Dolly(d)
	case ActionDollyOut:
		cam.Dolly(-d)
	case ActionPitchUp:
		cam.RotateAroundRight(a)
	case ActionPitchDown:
		cam.RotateAroundRight(-a)
	case ActionYawLeft:
		cam.RotateAroundUp(a)
	case ActionYawRight:
		cam.RotateAroundUp(-a)
	case ActionPreset:
		cam.Apply(camera.Preset(cmd.Arg))
	default:
		return false
	}
	return true
}
