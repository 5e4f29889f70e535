package systems

import (
	"math"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/shared/collision"
	"github.com/automoto/ratchase/shared/gamemath"
	"github.com/automoto/ratchase/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// MoveKeys is the held state of the four movement directions.
type MoveKeys struct {
	Forward, Back, Left, Right bool
}

// PlayerStep reports what happened during one movement step.
type PlayerStep struct {
	Blocked         bool // the tentative move hit an obstacle
	HitBoundary     bool // the predator is against the edge this frame
	EnteredBoundary bool // HitBoundary went from false to true
}

// UpdatePlayer turns held keys into a camera-relative intent and moves the predator.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	actor := components.Actor.Get(entry)
	player := components.Player.Get(entry)
	input := getOrCreateInput(ecs)
	clock := getOrCreateClock(ecs)

	forward, right := mgl64.Vec3{0, 0, -1}, mgl64.Vec3{1, 0, 0}
	if camera := getCamera(ecs); camera != nil {
		forward, right = CameraBasis(camera)
	}

	keys := MoveKeys{
		Forward: GetAction(input, cfg.ActionMoveForward).Pressed,
		Back:    GetAction(input, cfg.ActionMoveBack).Pressed,
		Left:    GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right:   GetAction(input, cfg.ActionMoveRight).Pressed,
	}
	ApplyMovementIntent(player, keys, GetAction(input, cfg.ActionSprint).Pressed, forward, right)

	step := StepPlayer(actor, player, getCollisionIndex(ecs), clock.Delta, clock.Now)

	if step.Blocked && getRandom(ecs).Float64() < cfg.Player.ObstacleNotice {
		Notify(ecs, cfg.Notice.ObstacleHit, cfg.Notice.ObstacleTime)
	}
	if step.EnteredBoundary {
		Notify(ecs, cfg.Notice.BoundaryHit, cfg.Notice.BoundaryTime)
	}
}

// ResolveMovementIntent sums the held directions along the camera basis.
// A diagonal sum longer than the max input magnitude is rescaled.
func ResolveMovementIntent(keys MoveKeys, forward, right mgl64.Vec3) (mgl64.Vec3, bool) {
	var dir mgl64.Vec3
	if keys.Forward {
		dir = dir.Add(forward)
	}
	if keys.Back {
		dir = dir.Sub(forward)
	}
	if keys.Left {
		dir = dir.Sub(right)
	}
	if keys.Right {
		dir = dir.Add(right)
	}

	length := dir.Len()
	if length == 0 {
		return mgl64.Vec3{}, false
	}
	if length > cfg.Player.MaxInputMagnitude {
		dir = dir.Mul(cfg.Player.InputRescale / length)
	}
	return dir, true
}

// ApplyMovementIntent stores the desired direction on the player. The target
// facing only changes while there is input.
func ApplyMovementIntent(player *components.PlayerData, keys MoveKeys, boost bool, forward, right mgl64.Vec3) {
	dir, moving := ResolveMovementIntent(keys, forward, right)
	player.Direction = dir
	player.Moving = moving
	player.Boost = boost
	if moving {
		player.TargetFacing = math.Atan2(dir.X(), dir.Z())
	}
}

// StepPlayer integrates one frame of predator movement. index may be nil.
// now drives the bobbing while moving.
func StepPlayer(actor *components.ActorData, player *components.PlayerData, index *collision.Index, dt, now float64) PlayerStep {
	dt = gamemath.ClampDelta(dt, cfg.World.MaxStep)
	frames := gamemath.FrameFactor(dt)

	if player.Moving {
		actor.Facing = gamemath.TurnToward(actor.Facing, player.TargetFacing, cfg.Player.TurnSpeed*cfg.Player.TurnBoost*dt)
	}

	actor.Velocity = actor.Velocity.Mul(math.Pow(cfg.Player.Friction, frames))

	if player.Moving {
		actor.Position[1] = math.Sin(now*cfg.Player.BobFrequency) * cfg.Player.BobAmplitude
	} else {
		actor.Position[1] = 0
	}

	if player.Moving {
		speed, maxSpeed := cfg.Player.Speed, cfg.Player.MaxSpeed
		if player.Boost {
			speed = cfg.Player.MaxSpeed * cfg.Player.BoostMultiplier
			maxSpeed = cfg.Player.MaxSpeed * cfg.Player.BoostMultiplier
		}
		actor.Velocity = actor.Velocity.Add(player.Direction.Mul(speed * frames * cfg.Player.AccelerationScale))
		actor.Velocity = actor.Velocity.Mul(gamemath.SoftCap(actor.Velocity.Len(), maxSpeed, dt, cfg.Player.SoftCapStiffness))
	} else {
		actor.Velocity = actor.Velocity.Mul(math.Pow(cfg.Player.IdleDecay, frames))
		if actor.Velocity.Len() < cfg.Player.StopThreshold {
			actor.Velocity = mgl64.Vec3{}
		}
	}

	var step PlayerStep

	tentative := actor.Position.Add(actor.Velocity.Mul(1 + dt*cfg.Player.Prediction))
	if index == nil || !index.Overlaps(tentative, actor.Radius) {
		y := actor.Position.Y()
		actor.Position = actor.Position.Add(actor.Velocity)
		actor.Position[1] = y
	} else {
		actor.Velocity = actor.Velocity.Mul(-cfg.Player.ObstacleRebound)
		step.Blocked = true
	}

	limit := cfg.World.HalfExtent() - cfg.Player.Size
	step.HitBoundary = ClampToBoundary(&actor.Position, &actor.Velocity, limit, cfg.Player.BoundaryRebound)
	step.EnteredBoundary = step.HitBoundary && !player.HitBoundary
	player.HitBoundary = step.HitBoundary

	return step
}

// ClampToBoundary keeps position inside ±limit on X and Z. Any clamped axis
// has its velocity reversed and scaled by rebound.
func ClampToBoundary(position, velocity *mgl64.Vec3, limit, rebound float64) bool {
	hit := false
	for _, axis := range [...]int{0, 2} {
		v, clamped := gamemath.ClampAxis(position[axis], limit)
		if clamped {
			position[axis] = v
			velocity[axis] *= -rebound
			hit = true
		}
	}
	return hit
}
