package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/camera"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/game"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/scene"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/vmath"
)

// hudRows reserves the status line on top and the controls line at the bottom
const hudRows = 2

const controlsLine = "ijkl/rf:move  wasdqe/arrows:camera  1230:view  5-9,+,-:props  p:restart  esc:quit"

var (
	headingGlyphs = []rune("↑↗→↘↓↙←↖")
	goalGlyphs    = []rune("◐◓◑◒")
	beamGlyphs    = []rune("|/-\\")
)

// Canvas is the cell surface the renderer paints, satisfied by tcell.Screen
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Sprite layers, background always paints under entities
const (
	layerScene = iota
	layerEntity
)

type sprite struct {
	x, y  int
	layer int
	depth float64
	ch    rune
	color RGB
}

// Renderer paints a session snapshot as a perspective view with HUD
// Reuses its sprite buffer between frames, not safe for concurrent Draw calls
type Renderer struct {
	sprites []sprite
	pr      *Projector
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{sprites: make([]sprite, 0, 2048)}
}

// Draw paints one frame, the caller calls Show
func (r *Renderer) Draw(c Canvas, snap game.Snapshot, cam *camera.Orbit) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}

	bg := styleFg(colorWater)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, ' ', nil, bg)
		}
	}

	if viewH := h - hudRows; viewH > 0 {
		r.pr = NewProjector(cam, 0, 1, w, viewH)
		r.sprites = r.sprites[:0]

		r.addFloor()
		r.addWalls(snap.WallPhase)
		for _, p := range snap.Props {
			r.addProp(p)
		}
		r.addGoals(snap.Goals, snap.GoalSpin)
		r.addPlayer(snap.Player)

		// Painter's algorithm: layer, then far to near
		sort.SliceStable(r.sprites, func(i, j int) bool {
			a, b := r.sprites[i], r.sprites[j]
			if a.layer != b.layer {
				return a.layer < b.layer
			}
			return a.depth > b.depth
		})
		for _, s := range r.sprites {
			c.SetContent(s.x, s.y, s.ch, nil, styleFg(s.color))
		}
	}

	r.drawHUD(c, snap, cam, w, h)
	if snap.Outcome != game.OutcomePlaying {
		drawOverlay(c, snap.Outcome, w, h)
	}
}

func (r *Renderer) addLayer(layer int, p vmath.Vec3F, ch rune, color RGB) {
	x, y, depth, ok := r.pr.Cell(p)
	if !ok {
		return
	}
	r.sprites = append(r.sprites, sprite{x: x, y: y, layer: layer, depth: depth, ch: ch, color: color})
}

func (r *Renderer) addScene(p vmath.Vec3F, ch rune, color RGB) {
	r.addLayer(layerScene, p, ch, color)
}

func (r *Renderer) add(p vmath.Vec3F, ch rune, color RGB) {
	r.addLayer(layerEntity, p, ch, color)
}

func (r *Renderer) addFloor() {
	const step = 0.2
	const sample = 0.05
	half := parameter.FieldHalf

	for line := -half; line <= half+1e-9; line += step {
		for s := -half; s <= half+1e-9; s += sample {
			r.addScene(vmath.V3F(line, parameter.GroundY, s), '·', colorFloor)
			r.addScene(vmath.V3F(s, parameter.GroundY, line), '·', colorFloor)
		}
	}
}

// addWalls draws the four walls, cutting away any wall whose outer face the eye can see
func (r *Renderer) addWalls(phase float64) {
	const step = 0.1
	half := parameter.FieldHalf
	top := parameter.MaxHeight + 0.15
	base := WallColor(phase)
	eye := r.pr.eye

	back := eye.Z > -half
	front := eye.Z < half
	left := eye.X > -half
	right := eye.X < half

	for y := parameter.GroundY; y <= top+1e-9; y += step {
		shade := base.Scale(0.8 + 0.4*(y/top))
		for s := -half; s <= half+1e-9; s += step {
			if back {
				r.addScene(vmath.V3F(s, y, -half), '░', shade)
			}
			if front {
				r.addScene(vmath.V3F(s, y, half), '░', shade)
			}
			if left {
				r.addScene(vmath.V3F(-half, y, s), '░', shade)
			}
			if right {
				r.addScene(vmath.V3F(half, y, s), '░', shade)
			}
		}
	}
}

func (r *Renderer) addProp(p game.PropView) {
	color, ok := propColors[p.Kind]
	if !ok {
		color = colorInactive
	}
	if !p.Active {
		color = Lerp(color, colorInactive, 0.6)
	}
	pos := p.Position

	switch p.Kind {
	case scene.PropFloodlight:
		angle := vmath.DegToRad(p.Phase * 60)
		r.add(vmath.V3FAdd(pos, vmath.V3F(0, 0.12, 0)), '|', colorInactive)
		head := vmath.V3FAdd(pos, vmath.V3F(0, 0.25, 0))
		r.add(head, beamGlyphs[int(wrap(vmath.RadToDeg(angle), 180)/45)%len(beamGlyphs)], color)
		beam := vmath.V3FAdd(head, vmath.V3F(math.Cos(angle)*0.15, 0, math.Sin(angle)*0.15))
		r.add(beam, '*', color)

	case scene.PropAirlock:
		gap := 0.16 * (0.5 + 0.5*math.Sin(p.Phase))
		for y := 0.05; y <= 0.45; y += 0.1 {
			r.add(vmath.V3FAdd(pos, vmath.V3F(-0.08-gap/2, y, 0)), '█', color)
			r.add(vmath.V3FAdd(pos, vmath.V3F(0.08+gap/2, y, 0)), '█', color)
		}

	case scene.PropCoral:
		sway := vmath.DegToRad(8 * math.Sin(p.Phase))
		for i := 0; i < 4; i++ {
			t := float64(i) * 0.06
			ch := '|'
			if i == 3 {
				ch = '♣'
			}
			r.add(vmath.V3FAdd(pos, vmath.V3F(math.Sin(sway)*t, t, 0)), ch, color)
		}

	case scene.PropConsole:
		pulse := 1 + 0.1*math.Sin(p.Phase)
		r.add(vmath.V3FAdd(pos, vmath.V3F(0, 0.08, 0)), '▣', color.Scale(pulse))
		r.add(vmath.V3FAdd(pos, vmath.V3F(0, 0.16, 0)), '▀', color.Scale(pulse*0.8))

	case scene.PropDrone:
		bob := 0.07 * math.Sin(p.Phase)
		r.add(vmath.V3FAdd(pos, vmath.V3F(0, 0.45+bob, 0)), '◊', color)
		r.add(vmath.V3F(pos.X, parameter.GroundY, pos.Z), '.', colorShadow)
	}
}

func (r *Renderer) addGoals(goals []game.Goal, spin float64) {
	glyph := goalGlyphs[int(wrap(spin, 360)/90)%len(goalGlyphs)]
	for _, g := range goals {
		if g.Collected {
			continue
		}
		r.add(vmath.V3F(g.Position.X, parameter.GroundY, g.Position.Z), '.', colorShadow)
		r.add(g.Position, glyph, colorGoal)
	}
}

func (r *Renderer) addPlayer(p game.Player) {
	if p.Airborne {
		r.add(vmath.V3F(p.Position.X, parameter.GroundY, p.Position.Z), '○', colorShadow)
		r.add(vmath.V3FAdd(p.Position, vmath.V3F(0, parameter.PlayerRadius*1.5, 0)), '^', colorPlayer)
	}
	r.add(p.Position, HeadingGlyph(p.Yaw), colorPlayer)
}

// HeadingGlyph picks an arrow for a yaw in degrees, 0 is up
func HeadingGlyph(yaw float64) rune {
	i := int(math.Round(wrap(yaw, 360)/45)) % len(headingGlyphs)
	return headingGlyphs[i]
}

func (r *Renderer) drawHUD(c Canvas, snap game.Snapshot, cam *camera.Orbit, w, h int) {
	status := fmt.Sprintf("Goals: %d  Time: %02d  View: %s  Props: %s",
		snap.GoalsRemaining, int(math.Ceil(snap.Remaining)), cam.Preset, propStates(snap.Props))
	writeStr(c, 1, 0, status, colorHUD, w)

	if h > 1 {
		writeStr(c, 1, h-1, controlsLine, colorDim, w)
	}
}

// propKeyCount is the number of props with a toggle key, 5 through 9
const propKeyCount = 5

// propStates shows each prop's key when active, unkeyed props show a bullet
func propStates(props []game.PropView) string {
	var sb strings.Builder
	for i, p := range props {
		switch {
		case p.Active && i < propKeyCount:
			sb.WriteRune(rune('5' + i))
		case p.Active:
			sb.WriteRune('•')
		default:
			sb.WriteRune('·')
		}
	}
	return sb.String()
}

func drawOverlay(c Canvas, o game.Outcome, w, h int) {
	title, color := "GAME WIN", colorWin
	if o == game.OutcomeLost {
		title, color = "GAME LOSE", colorLose
	}
	hint := "Press P to restart"

	y := h / 2
	writeStr(c, (w-len(title))/2, y-1, title, color, w)
	writeStr(c, (w-len(hint))/2, y+1, hint, colorHUD, w)
}

func writeStr(c Canvas, x, y int, s string, fg RGB, w int) {
	if y < 0 {
		return
	}
	style := styleFg(fg)
	for _, ch := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			c.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func wrap(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
