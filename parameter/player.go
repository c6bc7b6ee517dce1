package parameter

// Player Kinematics
const (
	// PlayerRadius is the avatar half-extent, used for wall and floor clamps
	PlayerRadius = 0.05

	// PlayerSpeed is the planar speed in units per second
	PlayerSpeed = 0.65

	// PlayerAscendSpeed is the vertical speed in units per second
	PlayerAscendSpeed = 0.5

	// TiltAirborne is the body pitch in degrees while off the floor
	TiltAirborne = -20.0

	// GroundEpsilon is the tolerance for the on-floor test
	GroundEpsilon = 0.002
)

// Derived clamp bounds for the player center
const (
	PlayerMinXZ = -FieldHalf + PlayerRadius + WallMargin
	PlayerMaxXZ = FieldHalf - PlayerRadius - WallMargin
	PlayerMinY  = GroundY + PlayerRadius
	PlayerMaxY  = MaxHeight
)
