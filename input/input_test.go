package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/camera"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/game"
)

func TestLookupBindings(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"Forward", tcell.KeyRune, 'i', Command{Action: ActionForward}},
		{"Descend", tcell.KeyRune, 'f', Command{Action: ActionDescend}},
		{"Pan left", tcell.KeyRune, 'a', Command{Action: ActionPanLeft}},
		{"Dolly out", tcell.KeyRune, 'e', Command{Action: ActionDollyOut}},
		{"Top preset", tcell.KeyRune, '3', Command{Action: ActionPreset, Arg: int(camera.PresetTop)}},
		{"Free preset", tcell.KeyRune, '0', Command{Action: ActionPreset, Arg: int(camera.PresetFree)}},
		{"First prop", tcell.KeyRune, '5', Command{Action: ActionToggleProp, Arg: 0}},
		{"Last prop", tcell.KeyRune, '9', Command{Action: ActionToggleProp, Arg: 4}},
		{"All on", tcell.KeyRune, '+', Command{Action: ActionActivateAll}},
		{"Reset upper", tcell.KeyRune, 'P', Command{Action: ActionReset}},
		{"Pitch", tcell.KeyUp, 0, Command{Action: ActionPitchUp}},
		{"Yaw", tcell.KeyRight, 0, Command{Action: ActionYawRight}},
		{"Escape", tcell.KeyEscape, 0, Command{Action: ActionQuit}},
		{"Ctrl-C", tcell.KeyCtrlC, 0, Command{Action: ActionQuit}},
		{"Unbound rune", tcell.KeyRune, 'z', Command{}},
		{"Unbound key", tcell.KeyF5, 0, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.key, tt.r); got != tt.want {
				t.Errorf("Lookup(%v, %q) = %+v, want %+v", tt.key, tt.r, got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleProp.String() != "toggle_prop" {
		t.Errorf("Unexpected name %q", ActionToggleProp.String())
	}
	if Action(999).String() != "unknown" {
		t.Errorf("Expected unknown for out-of-range action")
	}
	if !ActionAscend.IsMovement() || ActionPanUp.IsMovement() {
		t.Error("IsMovement misclassified")
	}
}

// TestLatch_SinglePressHoldsInitialWindow drops the flag after the initial hold
func TestLatch_SinglePressHoldsInitialWindow(t *testing.T) {
	l := NewLatch(550*time.Millisecond, 180*time.Millisecond)
	l.Press(ActionForward, 1000)

	if !l.Held(ActionForward, 1000) || !l.Held(ActionForward, 1549) {
		t.Error("Expected forward held inside the initial window")
	}
	if l.Held(ActionForward, 1550) {
		t.Error("Expected forward released at the initial deadline")
	}
}

// TestLatch_RepeatsExtend keeps the flag while auto-repeat arrives
func TestLatch_RepeatsExtend(t *testing.T) {
	l := NewLatch(550*time.Millisecond, 180*time.Millisecond)
	l.Press(ActionRight, 0)
	for now := int64(500); now <= 2000; now += 33 {
		l.Press(ActionRight, now)
		if !l.Held(ActionRight, now+100) {
			t.Fatalf("Released while repeating at %d", now)
		}
	}

	// Last repeat at 1985
	if l.Held(ActionRight, 1985+181) {
		t.Error("Expected release after repeats stop")
	}
}

// TestLatch_RepeatNeverShortens keeps the longer initial deadline on an early repeat
func TestLatch_RepeatNeverShortens(t *testing.T) {
	l := NewLatch(550*time.Millisecond, 180*time.Millisecond)
	l.Press(ActionLeft, 0)
	l.Press(ActionLeft, 10)

	if !l.Held(ActionLeft, 500) {
		t.Error("Early repeat shortened the initial hold")
	}
}

// TestLatch_Intent maps flags onto the step intent
func TestLatch_Intent(t *testing.T) {
	l := NewLatch(550*time.Millisecond, 180*time.Millisecond)
	l.Press(ActionForward, 0)
	l.Press(ActionAscend, 0)
	l.Press(ActionPanUp, 0)

	want := game.InputIntent{Forward: true, Ascend: true}
	if got := l.Intent(100); got != want {
		t.Errorf("Intent = %+v, want %+v", got, want)
	}
	if got := l.Intent(600); got != (game.InputIntent{}) {
		t.Errorf("Expected empty intent after hold, got %+v", got)
	}
}

func TestLatch_Clear(t *testing.T) {
	l := NewLatch(550*time.Millisecond, 180*time.Millisecond)
	l.Press(ActionBackward, 0)
	l.Press(ActionDescend, 0)
	l.Clear()

	if got := l.Intent(1); got != (game.InputIntent{}) {
		t.Errorf("Expected empty intent after clear, got %+v", got)
	}
}

// TestApplyCamera_PanDirections moves the view toward the named screen side
func TestApplyCamera_PanDirections(t *testing.T) {
	cam := camera.New()
	cam.Apply(camera.PresetFront)
	if !ApplyCamera(cam, Command{Action: ActionPanLeft}) {
		t.Fatal("Pan left not handled")
	}
	if cam.Eye.X >= 0 || cam.Center.X >= 0 {
		t.Errorf("Pan left should move toward -X from the front, eye %+v", cam.Eye)
	}
	if cam.Preset != camera.PresetCustom {
		t.Errorf("Expected custom preset after pan, got %v", cam.Preset)
	}

	cam.Apply(camera.PresetFront)
	ApplyCamera(cam, Command{Action: ActionPanRight})
	if cam.Eye.X <= 0 {
		t.Errorf("Pan right should move toward +X from the front, eye %+v", cam.Eye)
	}

	cam.Apply(camera.PresetFront)
	ApplyCamera(cam, Command{Action: ActionPanUp})
	if cam.Eye.Y <= 0.8 {
		t.Errorf("Pan up should raise the eye, got %v", cam.Eye.Y)
	}
}

// TestApplyCamera_Presets snaps to the preset carried in the command
func TestApplyCamera_Presets(t *testing.T) {
	cam := camera.New()
	ApplyCamera(cam, Lookup(tcell.KeyRune, '3'))
	if cam.Preset != camera.PresetTop {
		t.Errorf("Expected top preset, got %v", cam.Preset)
	}
	ApplyCamera(cam, Lookup(tcell.KeyRune, '0'))
	if cam.Preset != camera.PresetFree {
		t.Errorf("Expected free preset, got %v", cam.Preset)
	}
}

// TestApplyCamera_IgnoresOtherCommands leaves the camera alone for game input
func TestApplyCamera_IgnoresOtherCommands(t *testing.T) {
	cam := camera.New()
	before := *cam
	for _, a := range []Action{ActionNone, ActionForward, ActionToggleProp, ActionReset, ActionQuit} {
		if ApplyCamera(cam, Command{Action: a}) {
			t.Errorf("%v handled as a camera command", a)
		}
	}
	if *cam != before {
		t.Error("Camera changed by non-camera commands")
	}
}
