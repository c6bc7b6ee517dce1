package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/camera"
)

var runeBindings = map[rune]Command{
	'i': {Action: ActionForward},
	'k': {Action: ActionBackward},
	'j': {Action: ActionLeft},
	'l': {Action: ActionRight},
	'r': {Action: ActionAscend},
	'f': {Action: ActionDescend},

	'w': {Action: ActionPanUp},
	's': {Action: ActionPanDown},
	'a': {Action: ActionPanLeft},
	'd': {Action: ActionPanRight},
	'q': {Action: ActionDollyIn},
	'e': {Action: ActionDollyOut},

	'1': {Action: ActionPreset, Arg: int(camera.PresetFront)},
	'2': {Action: ActionPreset, Arg: int(camera.PresetSide)},
	'3': {Action: ActionPreset, Arg: int(camera.PresetTop)},
	'0': {Action: ActionPreset, Arg: int(camera.PresetFree)},

	'5': {Action: ActionToggleProp, Arg: 0},
	'6': {Action: ActionToggleProp, Arg: 1},
	'7': {Action: ActionToggleProp, Arg: 2},
	'8': {Action: ActionToggleProp, Arg: 3},
	'9': {Action: ActionToggleProp, Arg: 4},
	'+': {Action: ActionActivateAll},
	'-': {Action: ActionDeactivateAll},

	'p': {Action: ActionReset},
	'P': {Action: ActionReset},
}

var keyBindings = map[tcell.Key]Command{
	tcell.KeyUp:     {Action: ActionPitchUp},
	tcell.KeyDown:   {Action: ActionPitchDown},
	tcell.KeyLeft:   {Action: ActionYawLeft},
	tcell.KeyRight:  {Action: ActionYawRight},
	tcell.KeyEscape: {Action: ActionQuit},
	tcell.KeyCtrlC:  {Action: ActionQuit},
}

// Lookup resolves a key and rune pair, unbound keys yield ActionNone
func Lookup(key tcell.Key, r rune) Command {
	if key == tcell.KeyRune {
		return runeBindings[r]
	}
	return keyBindings[key]
}

// Translate decodes a terminal key event
func Translate(ev *tcell.EventKey) Command {
	return Lookup(ev.Key(), ev.Rune())
}
