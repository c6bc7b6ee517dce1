package render

import (
	"math"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/camera"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/vmath"
)

// Projector maps world points to terminal cells through a look-at camera
type Projector struct {
	eye               vmath.Vec3F
	side, up, forward vmath.Vec3F

	focal  float64
	aspect float64

	// Viewport in cells
	left, top     int
	width, height int
}

// NewProjector snapshots the camera basis for one frame
// The viewport origin is (left, top) with the given size in cells
func NewProjector(cam *camera.Orbit, left, top, width, height int) *Projector {
	side, up, forward := cam.Basis()

	aspect := 1.0
	if height > 0 {
		// Cells are twice as tall as wide
		aspect = float64(width) / (float64(height) * parameter.CellAspect)
	}

	return &Projector{
		eye:     cam.Eye,
		side:    side,
		up:      up,
		forward: forward,
		focal:   1 / math.Tan(vmath.DegToRad(parameter.CameraFOVDegrees)/2),
		aspect:  aspect,
		left:    left,
		top:     top,
		width:   width,
		height:  height,
	}
}

// Project returns the cell position and view depth of p
// ok is false behind the near plane
func (pr *Projector) Project(p vmath.Vec3F) (sx, sy, depth float64, ok bool) {
	rel := vmath.V3FSub(p, pr.eye)
	z := vmath.V3FDot(rel, pr.forward)
	if z < parameter.CameraNear {
		return 0, 0, z, false
	}

	ndcX := vmath.V3FDot(rel, pr.side) * pr.focal / (pr.aspect * z)
	ndcY := vmath.V3FDot(rel, pr.up) * pr.focal / z

	sx = float64(pr.left) + (ndcX+1)/2*float64(pr.width)
	sy = float64(pr.top) + (1-ndcY)/2*float64(pr.height)
	return sx, sy, z, true
}

// Cell rounds a projected point and reports whether it lies in the viewport
func (pr *Projector) Cell(p vmath.Vec3F) (x, y int, depth float64, ok bool) {
	sx, sy, depth, ok := pr.Project(p)
	if !ok {
		return 0, 0, depth, false
	}
	x = int(math.Floor(sx))
	y = int(math.Floor(sy))
	if x < pr.left || x >= pr.left+pr.width || y < pr.top || y >= pr.top+pr.height {
		return x, y, depth, false
	}
	return x, y, depth, true
}
