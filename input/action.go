package input

// Action is a decoded player command
type Action int

const (
	ActionNone Action = iota

	// Held movement, routed through the Latch
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionAscend
	ActionDescend

	// Camera, applied once per key event
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionDollyIn
	ActionDollyOut
	ActionPitchUp
	ActionPitchDown
	ActionYawLeft
	ActionYawRight
	ActionPreset

	// Props
	ActionToggleProp
	ActionActivateAll
	ActionDeactivateAll

	// Session
	ActionReset
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionForward:       "forward",
	ActionBackward:      "backward",
	ActionLeft:          "left",
	ActionRight:         "right",
	ActionAscend:        "ascend",
	ActionDescend:       "descend",
	ActionPanUp:         "pan_up",
	ActionPanDown:       "pan_down",
	ActionPanLeft:       "pan_left",
	ActionPanRight:      "pan_right",
	ActionDollyIn:       "dolly_in",
	ActionDollyOut:      "dolly_out",
	ActionPitchUp:       "pitch_up",
	ActionPitchDown:     "pitch_down",
	ActionYawLeft:       "yaw_left",
	ActionYawRight:      "yaw_right",
	ActionPreset:        "preset",
	ActionToggleProp:    "toggle_prop",
	ActionActivateAll:   "activate_all",
	ActionDeactivateAll: "deactivate_all",
	ActionReset:         "reset",
	ActionQuit:          "quit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// IsMovement reports whether the action is a held movement flag
func (a Action) IsMovement() bool {
	return a >= ActionForward && a <= ActionDescend
}

// Command is an action with its argument
// Arg is the prop index for ActionToggleProp and the camera.Preset for ActionPreset
type Command struct {
	Action Action
	Arg    int
}
