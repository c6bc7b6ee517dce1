package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/vmath"
)

//go:embed reference.yaml
var referenceYAML []byte

// ErrInvalidCatalog is wrapped by every validation failure
var ErrInvalidCatalog = errors.New("invalid scene catalog")

// PropKind names the decorative model a prop animator drives
type PropKind string

const (
	PropFloodlight PropKind = "floodlight"
	PropAirlock    PropKind = "airlock"
	PropCoral      PropKind = "coral"
	PropConsole    PropKind = "console"
	PropDrone      PropKind = "drone"
)

// Point is the YAML form of a world position
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts to a vector
func (p Point) Vec() vmath.Vec3F {
	return vmath.V3F(p.X, p.Y, p.Z)
}

// PropSpec places one animated prop
type PropSpec struct {
	Kind     PropKind `yaml:"kind"`
	Position Point    `yaml:"position"`

	// Speed is the phase advance in radians per second while active
	Speed float64 `yaml:"speed"`
}

// Catalog is the static room layout used to initialize a session
type Catalog struct {
	Spawn Point      `yaml:"spawn"`
	Goals []Point    `yaml:"goals"`
	Props []PropSpec `yaml:"props"`
}

var reference Catalog

func init() {
	c, err := Parse(referenceYAML)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded reference catalog: %v", err))
	}
	reference = *c
}

// Default returns a copy of the reference room
func Default() *Catalog {
	return reference.Clone()
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a catalog file from disk
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Clone returns a deep copy
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Spawn: c.Spawn,
		Goals: make([]Point, len(c.Goals)),
		Props: make([]PropSpec, len(c.Props)),
	}
	copy(out.Goals, c.Goals)
	copy(out.Props, c.Props)
	return out
}

// Validate checks the layout is playable
// Every goal must lie within pickup range of a point the player can reach
func (c *Catalog) Validate() error {
	if len(c.Goals) == 0 {
		return fmt.Errorf("%w: no goals", ErrInvalidCatalog)
	}

	if !inPlayerBounds(c.Spawn) {
		return fmt.Errorf("%w: spawn %+v outside play field", ErrInvalidCatalog, c.Spawn)
	}

	for i, g := range c.Goals {
		if g.X < -parameter.FieldHalf || g.X > parameter.FieldHalf ||
			g.Z < -parameter.FieldHalf || g.Z > parameter.FieldHalf ||
			g.Y < parameter.GroundY || g.Y > parameter.MaxHeight+parameter.GoalRadius {
			return fmt.Errorf("%w: goal %d at %+v outside room", ErrInvalidCatalog, i, g)
		}
		if d := reachDistance(g); d >= parameter.GoalRadius {
			return fmt.Errorf("%w: goal %d at %+v is %.3f from the nearest reachable point", ErrInvalidCatalog, i, g, d)
		}
	}

	for i, p := range c.Props {
		switch p.Kind {
		case PropFloodlight, PropAirlock, PropCoral, PropConsole, PropDrone:
		default:
			return fmt.Errorf("%w: prop %d has unknown kind %q", ErrInvalidCatalog, i, p.Kind)
		}
		if p.Speed <= 0 {
			return fmt.Errorf("%w: prop %d speed %v must be positive", ErrInvalidCatalog, i, p.Speed)
		}
	}

	return nil
}

// reachDistance is the gap between p and the closest point the player center can occupy
func reachDistance(p Point) float64 {
	nearest := vmath.V3F(
		vmath.ClampF(p.X, parameter.PlayerMinXZ, parameter.PlayerMaxXZ),
		vmath.ClampF(p.Y, parameter.PlayerMinY, parameter.PlayerMaxY),
		vmath.ClampF(p.Z, parameter.PlayerMinXZ, parameter.PlayerMaxXZ),
	)
	return vmath.V3FDist(p.Vec(), nearest)
}

func inPlayerBounds(p Point) bool {
	return p.X >= parameter.PlayerMinXZ && p.X <= parameter.PlayerMaxXZ &&
		p.Z >= parameter.PlayerMinXZ && p.Z <= parameter.PlayerMaxXZ &&
		p.Y >= parameter.PlayerMinY && p.Y <= parameter.PlayerMaxY
}
