package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/camera"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/game"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/vmath"
)

// gridCanvas records painted runes for assertions
type gridCanvas struct {
	w, h  int
	cells [][]rune
}

func newGridCanvas(w, h int) *gridCanvas {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
	}
	return &gridCanvas{w: w, h: h, cells: cells}
}

func (g *gridCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = primary
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func (g *gridCanvas) row(y int) string {
	return string(g.cells[y])
}

func (g *gridCanvas) contains(s string) bool {
	for y := 0; y < g.h; y++ {
		if strings.Contains(g.row(y), s) {
			return true
		}
	}
	return false
}

func (g *gridCanvas) count(ch rune) int {
	n := 0
	for y := 0; y < g.h; y++ {
		for _, c := range g.cells[y] {
			if c == ch {
				n++
			}
		}
	}
	return n
}

// TestDrawHUDInitial shows full goals and time on a fresh session
func TestDrawHUDInitial(t *testing.T) {
	c := newGridCanvas(100, 30)
	NewRenderer().Draw(c, game.New(nil).Snapshot(), camera.New())

	status := c.row(0)
	if !strings.Contains(status, "Goals: 3") {
		t.Errorf("Expected goal count in status, got %q", status)
	}
	if !strings.Contains(status, "Time: 120") {
		t.Errorf("Expected full time in status, got %q", status)
	}
	if !strings.Contains(status, "View: free") {
		t.Errorf("Expected camera preset in status, got %q", status)
	}
	if c.contains("GAME WIN") || c.contains("GAME LOSE") {
		t.Error("Overlay drawn while playing")
	}
}

// TestDrawHUDTimeRoundsUp uses the ceiling of remaining seconds
func TestDrawHUDTimeRoundsUp(t *testing.T) {
	s := game.New(nil)
	s.Step(112.5, game.InputIntent{})

	c := newGridCanvas(100, 30)
	NewRenderer().Draw(c, s.Snapshot(), camera.New())

	if status := c.row(0); !strings.Contains(status, "Time: 08") {
		t.Errorf("Expected zero-padded ceiling, got %q", status)
	}
}

// TestPropStatesBeyondKeys shows a bullet for active props without a toggle key
func TestPropStatesBeyondKeys(t *testing.T) {
	props := make([]game.PropView, 7)
	for i := range props {
		props[i].Active = true
	}
	props[1].Active = false

	if got, want := propStates(props), "5·789••"; got != want {
		t.Errorf("propStates = %q, want %q", got, want)
	}
}

// TestDrawOverlayLost shows the loss banner and restart hint
func TestDrawOverlayLost(t *testing.T) {
	s := game.New(nil)
	s.Step(500, game.InputIntent{})

	c := newGridCanvas(80, 24)
	NewRenderer().Draw(c, s.Snapshot(), camera.New())

	if !c.contains("GAME LOSE") {
		t.Error("Expected GAME LOSE overlay")
	}
	if !c.contains("Press P to restart") {
		t.Error("Expected restart hint")
	}
	if !strings.Contains(c.row(0), "Time: 00") {
		t.Errorf("Expected zero time, got %q", c.row(0))
	}
}

// TestDrawOverlayWon shows the win banner
func TestDrawOverlayWon(t *testing.T) {
	snap := game.New(nil).Snapshot()
	snap.Outcome = game.OutcomeWon
	snap.GoalsRemaining = 0

	c := newGridCanvas(80, 24)
	NewRenderer().Draw(c, snap, camera.New())

	if !c.contains("GAME WIN") {
		t.Error("Expected GAME WIN overlay")
	}
}

// TestDrawSceneContent paints goals and the player from the free view
func TestDrawSceneContent(t *testing.T) {
	c := newGridCanvas(120, 40)
	NewRenderer().Draw(c, game.New(nil).Snapshot(), camera.New())

	if n := c.count(goalGlyphs[0]); n == 0 {
		t.Error("Expected goal markers")
	}
	if c.count(HeadingGlyph(0)) == 0 {
		t.Error("Expected player glyph")
	}
	if c.count('░') == 0 {
		t.Error("Expected wall cells")
	}
}

// TestDrawCollectedGoalsHidden removes collected markers
func TestDrawCollectedGoalsHidden(t *testing.T) {
	snap := game.New(nil).Snapshot()
	for i := range snap.Goals {
		snap.Goals[i].Collected = true
	}

	c := newGridCanvas(120, 40)
	NewRenderer().Draw(c, snap, camera.New())

	for _, g := range goalGlyphs {
		if c.count(g) != 0 {
			t.Errorf("Collected goal glyph %q still drawn", g)
		}
	}
}

// TestDrawSimulationScreen runs against a real tcell screen without panicking
func TestDrawSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := game.New(nil)
	s.ActivateAll()
	s.Step(0.5, game.InputIntent{Ascend: true, Right: true})

	NewRenderer().Draw(screen, s.Snapshot(), camera.New())
	screen.Show()
}

// TestDrawTinyCanvas tolerates screens smaller than the HUD
func TestDrawTinyCanvas(t *testing.T) {
	r := NewRenderer()
	snap := game.New(nil).Snapshot()
	snap.Outcome = game.OutcomeLost

	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 2}, {12, 3}} {
		r.Draw(newGridCanvas(size[0], size[1]), snap, camera.New())
	}
}

// TestDrawWallCutaway hides walls between an outside eye and the room
func TestDrawWallCutaway(t *testing.T) {
	cam := camera.New()
	cam.Apply(camera.PresetTop)
	inside := newGridCanvas(120, 40)
	r := NewRenderer()
	r.Draw(inside, game.New(nil).Snapshot(), cam)
	all := inside.count('░')

	cam.Apply(camera.PresetFree)
	outside := newGridCanvas(120, 40)
	r.Draw(outside, game.New(nil).Snapshot(), cam)

	if all == 0 {
		t.Fatal("Expected walls from the top view")
	}
	if len(r.sprites) == 0 {
		t.Fatal("Expected sprites from the free view")
	}
	for _, s := range r.sprites {
		if s.ch == '░' && s.depth < 1.5 {
			t.Errorf("Near wall sample drawn at depth %v", s.depth)
		}
	}
}

// TestProjectCenter maps the look-at point to the viewport center
func TestProjectCenter(t *testing.T) {
	cam := camera.New()
	cam.Apply(camera.PresetFront)
	pr := NewProjector(cam, 0, 1, 80, 22)

	sx, sy, depth, ok := pr.Project(cam.Center)
	if !ok {
		t.Fatal("Center should be in front of the camera")
	}
	if !vmath.NearlyEqual(sx, 40, 1e-9) || !vmath.NearlyEqual(sy, 12, 1e-9) {
		t.Errorf("Expected (40, 12), got (%v, %v)", sx, sy)
	}
	want := vmath.V3FDist(cam.Eye, cam.Center)
	if !vmath.NearlyEqual(depth, want, 1e-9) {
		t.Errorf("Expected depth %v, got %v", want, depth)
	}
}

// TestProjectOrientation keeps world right on screen right and world up on screen up
func TestProjectOrientation(t *testing.T) {
	cam := camera.New()
	cam.Apply(camera.PresetFront)
	pr := NewProjector(cam, 0, 0, 80, 24)

	cx, cy, _, _ := pr.Project(cam.Center)
	rx, _, _, _ := pr.Project(vmath.V3FAdd(cam.Center, vmath.V3F(0.3, 0, 0)))
	_, uy, _, _ := pr.Project(vmath.V3FAdd(cam.Center, vmath.V3F(0, 0.3, 0)))

	if rx <= cx {
		t.Errorf("+X should project right of center: %v <= %v", rx, cx)
	}
	if uy >= cy {
		t.Errorf("+Y should project above center: %v >= %v", uy, cy)
	}
}

// TestProjectBehindCamera rejects points behind the near plane
func TestProjectBehindCamera(t *testing.T) {
	cam := camera.New()
	cam.Apply(camera.PresetFront)
	pr := NewProjector(cam, 0, 0, 80, 24)

	behind := vmath.V3FAdd(cam.Eye, vmath.V3F(0, 0, 1))
	if _, _, _, ok := pr.Project(behind); ok {
		t.Error("Point behind the eye should not project")
	}
	if _, _, _, ok := pr.Cell(cam.Eye); ok {
		t.Error("Eye itself should not project")
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '↑'},
		{45, '↗'},
		{90, '→'},
		{180, '↓'},
		{-90, '←'},
		{-45, '↖'},
		{359, '↑'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.yaw); got != tt.want {
			t.Errorf("HeadingGlyph(%v) = %q, want %q", tt.yaw, got, tt.want)
		}
	}
}

// TestWallColorCycle stays in range and changes with phase
func TestWallColorCycle(t *testing.T) {
	a := WallColor(0)
	b := WallColor(1.5)
	if a == b {
		t.Error("Wall color should change with phase")
	}
	if want := (RGB{R: 45, G: 136, B: 92}); a != want {
		t.Errorf("WallColor(0) = %+v, want %+v", a, want)
	}
}
