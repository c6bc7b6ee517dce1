package game

import (
	"math"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/event"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/parameter"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/vmath"
)

// Step advances the session by dt seconds using the held intent
// Phase order is fixed, later phases read the results of earlier ones
// No-op once the outcome is terminal. dt is not validated
func (s *Session) Step(dt float64, in InputIntent) {
	if s.outcome != OutcomePlaying {
		return
	}

	s.tick++
	s.intent = in

	expired := s.advanceTimer(dt)

	s.goalSpin += parameter.GoalSpinRate * dt
	s.wallPhase += parameter.WallColorRate * dt

	s.movePlayer(dt)
	s.clampPlayer()
	s.updatePosture()

	s.collectGoals()
	s.resolveOutcome(expired)

	s.advanceProps(dt)
}

// advanceTimer counts down and reports expiry
// A session whose goals are already gone wins on expiry immediately
func (s *Session) advanceTimer(dt float64) bool {
	s.remaining -= dt

	if !s.lowTimeWarned && s.remaining <= parameter.LowTimeThreshold {
		s.lowTimeWarned = true
		s.emit(event.EventLowTimeWarning, 0)
	}

	if s.remaining > 0 {
		return false
	}

	s.remaining = 0
	if s.GoalsRemaining() == 0 {
		s.setOutcome(OutcomeWon)
	}
	return true
}

func (s *Session) movePlayer(dt float64) {
	var dir vmath.Vec3F
	if s.intent.Forward {
		dir.Z -= 1
	}
	if s.intent.Backward {
		dir.Z += 1
	}
	if s.intent.Left {
		dir.X -= 1
	}
	if s.intent.Right {
		dir.X += 1
	}

	if vmath.V3FMag(dir) > 0 {
		unit := vmath.V3FNormalize(dir)
		s.player.Position = vmath.V3FAdd(s.player.Position, vmath.V3FScale(unit, parameter.PlayerSpeed*dt))
		s.player.Yaw = vmath.RadToDeg(math.Atan2(unit.X, -unit.Z))
	}

	if s.intent.Ascend {
		s.player.Position.Y += parameter.PlayerAscendSpeed * dt
	}
	if s.intent.Descend {
		s.player.Position.Y -= parameter.PlayerAscendSpeed * dt
	}
}

// clampPlayer applies the axis-aligned room bounds
func (s *Session) clampPlayer() {
	p := &s.player.Position
	p.X = vmath.ClampF(p.X, parameter.PlayerMinXZ, parameter.PlayerMaxXZ)
	p.Z = vmath.ClampF(p.Z, parameter.PlayerMinXZ, parameter.PlayerMaxXZ)
	p.Y = vmath.ClampF(p.Y, parameter.PlayerMinY, parameter.PlayerMaxY)
}

func (s *Session) updatePosture() {
	onGround := vmath.NearlyEqual(s.player.Position.Y, parameter.PlayerMinY, parameter.GroundEpsilon)
	s.player.Airborne = !onGround
	if s.player.Airborne {
		s.player.Tilt = parameter.TiltAirborne
	} else {
		s.player.Tilt = 0
	}
}

// collectGoals marks every uncollected goal within pickup range
// Runs after expiry so a last-tick pickup still counts
func (s *Session) collectGoals() {
	for i := range s.goals {
		g := &s.goals[i]
		if g.Collected {
			continue
		}
		if vmath.V3FDist(s.player.Position, g.Position) < parameter.GoalRadius {
			g.Collected = true
			s.emit(event.EventGoalCollected, i)
		}
	}
}

// resolveOutcome settles the tick: clearing the room wins, expiry otherwise loses
func (s *Session) resolveOutcome(expired bool) {
	if s.outcome != OutcomePlaying {
		return
	}
	if s.GoalsRemaining() == 0 {
		s.setOutcome(OutcomeWon)
		return
	}
	if expired {
		s.setOutcome(OutcomeLost)
	}
}

func (s *Session) setOutcome(o Outcome) {
	if s.outcome == o {
		return
	}
	s.outcome = o
	switch o {
	case OutcomeWon:
		s.emit(event.EventSessionWon, 0)
	case OutcomeLost:
		s.emit(event.EventSessionLost, 0)
	}
}

func (s *Session) advanceProps(dt float64) {
	for i := range s.props {
		if s.props[i].Active {
			s.props[i].Phase += s.props[i].Speed * dt
		}
	}
}
