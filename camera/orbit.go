package camera

import (
	"math"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/vmath"
)

// Orbit is an eye/center/up view triple
// Independent of game state, mutated only by view input
// Axes are derived from the current triple on every call, never cached
type Orbit struct {
	Eye    vmath.Vec3F
	Center vmath.Vec3F
	Up     vmath.Vec3F

	// Preset is the last preset applied, PresetCustom after any manual move
	Preset Preset
}

// New returns a camera at the free preset
func New() *Orbit {
	o := &Orbit{}
	o.Apply(PresetFree)
	return o
}

// right is the unit of up × (center − eye)
func (o *Orbit) right() vmath.Vec3F {
	return vmath.V3FNormalize(vmath.V3FCross(o.Up, vmath.V3FSub(o.Center, o.Eye)))
}

func (o *Orbit) translate(delta vmath.Vec3F) {
	o.Eye = vmath.V3FAdd(o.Eye, delta)
	o.Center = vmath.V3FAdd(o.Center, delta)
	o.Preset = PresetCustom
}

// PanRight moves eye and center together along the right axis
func (o *Orbit) PanRight(d float64) {
	o.translate(vmath.V3FScale(o.right(), d))
}

// PanUp moves eye and center together along the up axis
func (o *Orbit) PanUp(d float64) {
	o.translate(vmath.V3FScale(vmath.V3FNormalize(o.Up), d))
}

// Dolly moves eye and center together along the view direction
func (o *Orbit) Dolly(d float64) {
	view := vmath.V3FNormalize(vmath.V3FSub(o.Center, o.Eye))
	o.translate(vmath.V3FScale(view, d))
}

// RotateAroundRight pitches the view about the eye by deg degrees
// Center is placed one unit from the eye along the new view, up is refreshed
func (o *Orbit) RotateAroundRight(deg float64) {
	view := vmath.V3FNormalize(vmath.V3FSub(o.Center, o.Eye))
	right := vmath.V3FNormalize(vmath.V3FCross(o.Up, view))
	rad := vmath.DegToRad(deg)

	rotated := vmath.V3FAdd(vmath.V3FScale(view, math.Cos(rad)), vmath.V3FScale(o.Up, math.Sin(rad)))
	o.Up = vmath.V3FCross(rotated, right)
	o.Center = vmath.V3FAdd(o.Eye, rotated)
	o.Preset = PresetCustom
}

// RotateAroundUp yaws the view about the eye by deg degrees
// Up is left untouched
func (o *Orbit) RotateAroundUp(deg float64) {
	view := vmath.V3FNormalize(vmath.V3FSub(o.Center, o.Eye))
	right := vmath.V3FNormalize(vmath.V3FCross(o.Up, view))
	rad := vmath.DegToRad(deg)

	rotated := vmath.V3FAdd(vmath.V3FScale(view, math.Cos(rad)), vmath.V3FScale(right, math.Sin(rad)))
	o.Center = vmath.V3FAdd(o.Eye, rotated)
	o.Preset = PresetCustom
}

// Basis returns the look-at frame: side (screen right), up (screen up) and forward
// Matches the gluLookAt convention, side = forward × up
func (o *Orbit) Basis() (side, up, forward vmath.Vec3F) {
	forward = vmath.V3FNormalize(vmath.V3FSub(o.Center, o.Eye))
	side = vmath.V3FNormalize(vmath.V3FCross(forward, o.Up))
	up = vmath.V3FCross(side, forward)
	return side, up, forward
}
