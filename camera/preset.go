package camera

import "github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/vmath"

// Preset identifies a fixed camera placement
type Preset int

const (
	PresetFree Preset = iota
	PresetFront
	PresetSide
	PresetTop
	PresetCustom
)

type presetTriple struct {
	eye, center, up vmath.Vec3F
}

var presets = map[Preset]presetTriple{
	PresetFront: {vmath.V3F(0, 0.8, 2.0), vmath.V3F(0, 0.3, 0), vmath.V3F(0, 1, 0)},
	PresetSide:  {vmath.V3F(2.0, 0.7, 0), vmath.V3F(0, 0.3, 0), vmath.V3F(0, 1, 0)},
	PresetTop:   {vmath.V3F(0, 2.2, 0), vmath.V3F(0, 0, 0), vmath.V3F(0, 0, -1)},
	PresetFree:  {vmath.V3F(1.8, 0.9, 1.8), vmath.V3F(0, 0.3, 0), vmath.V3F(0, 1, 0)},
}

// Apply snaps the camera to a preset, no interpolation
// PresetCustom and unknown values are ignored
func (o *Orbit) Apply(p Preset) {
	triple, ok := presets[p]
	if !ok {
		return
	}
	o.Eye = triple.eye
	o.Center = triple.center
	o.Up = triple.up
	o.Preset = p
}

func (p Preset) String() string {
	switch p {
	case PresetFree:
		return "free"
	case PresetFront:
		return "front"
	case PresetSide:
		return "side"
	case PresetTop:
		return "top"
	case PresetCustom:
		return "custom"
	default:
		return "unknown"
	}
}
