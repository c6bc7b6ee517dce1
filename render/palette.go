package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/scene"
)

// RGB is an 8-bit color triple
type RGB struct {
	R, G, B uint8
}

// Color converts to a tcell truecolor value
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Scale multiplies every channel, clamped
func (c RGB) Scale(f float64) RGB {
	return RGB{clampF(float64(c.R) * f), clampF(float64(c.G) * f), clampF(float64(c.B) * f)}
}

// Lerp blends a toward b by t in [0, 1]
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: clampF(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampF(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampF(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

func clampF(v float64) uint8 {
	if v > 255.0 {
		return 255
	}
	if v < 0.0 {
		return 0
	}
	return uint8(v)
}

var (
	colorWater    = RGB{R: 6, G: 18, B: 32}
	colorFloor    = RGB{R: 40, G: 70, B: 90}
	colorGoal     = RGB{R: 255, G: 215, B: 70}
	colorPlayer   = RGB{R: 250, G: 140, B: 40}
	colorShadow   = RGB{R: 20, G: 40, B: 55}
	colorInactive = RGB{R: 90, G: 100, B: 110}
	colorHUD      = RGB{R: 200, G: 230, B: 240}
	colorDim      = RGB{R: 100, G: 100, B: 110}
	colorWin      = RGB{R: 90, G: 255, B: 140}
	colorLose     = RGB{R: 255, G: 80, B: 80}

	propColors = map[scene.PropKind]RGB{
		scene.PropFloodlight: {R: 255, G: 250, B: 200},
		scene.PropAirlock:    {R: 160, G: 170, B: 180},
		scene.PropCoral:      {R: 255, G: 110, B: 150},
		scene.PropConsole:    {R: 80, G: 220, B: 255},
		scene.PropDrone:      {R: 200, G: 120, B: 255},
	}
)

// WallColor cycles the wall tint with its phase in radians
// Channels are phase-shifted by a third of a turn
func WallColor(phase float64) RGB {
	r := 0.18 + 0.12*math.Sin(phase)
	g := 0.38 + 0.18*math.Sin(phase+2.094)
	b := 0.52 + 0.18*math.Sin(phase+4.188)
	return RGB{clampF(r * 255), clampF(g * 255), clampF(b * 255)}
}

func styleFg(c RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(c.Color()).Background(colorWater.Color())
}
