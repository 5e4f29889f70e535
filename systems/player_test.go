package systems

import (
	"math"
	"testing"

	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/shared/collision"
	"github.com/automoto/ratchase/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	testForward = mgl64.Vec3{0, 0, -1}
	testRight   = mgl64.Vec3{1, 0, 0}
)

func TestStepPlayerWithoutInputDoesNotDrift(t *testing.T) {
	actor := &components.ActorData{Radius: 0.5}
	player := &components.PlayerData{}

	for i := 0; i < 600; i++ {
		StepPlayer(actor, player, nil, frame, float64(i)*frame)
	}
	if actor.Position != (mgl64.Vec3{}) || actor.Velocity != (mgl64.Vec3{}) {
		t.Fatalf("idle predator drifted: pos=%v vel=%v", actor.Position, actor.Velocity)
	}
}

func TestStepPlayerIdleDecayIsMonotonic(t *testing.T) {
	actor := &components.ActorData{Radius: 0.5, Velocity: mgl64.Vec3{0.2, 0, -0.1}}
	player := &components.PlayerData{}

	prev := actor.Velocity.Len()
	for i := 0; i < 60; i++ {
		StepPlayer(actor, player, nil, frame, 0)
		speed := actor.Velocity.Len()
		if speed > prev {
			t.Fatalf("frame %d: speed grew from %f to %f", i, prev, speed)
		}
		prev = speed
	}
	if actor.Velocity != (mgl64.Vec3{}) {
		t.Fatalf("velocity not snapped to zero after a second idle: %v", actor.Velocity)
	}
}

func TestStepPlayerAcceleratesTowardIntent(t *testing.T) {
	actor := &components.ActorData{Radius: 0.5}
	player := &components.PlayerData{}
	ApplyMovementIntent(player, MoveKeys{Forward: true}, false, testForward, testRight)

	for i := 0; i < 30; i++ {
		StepPlayer(actor, player, nil, frame, 0)
	}
	if actor.Position.Z() >= -1 {
		t.Fatalf("expected predator to move along -Z, got %v", actor.Position)
	}
	if math.Abs(actor.Position.X()) > 1e-9 {
		t.Fatalf("unexpected sideways motion: %v", actor.Position)
	}
	if !almostEqual(player.TargetFacing, math.Pi) {
		t.Fatalf("TargetFacing = %f, want π", player.TargetFacing)
	}
}

func TestStepPlayerClampsAndReboundsAtBoundary(t *testing.T) {
	actor := &components.ActorData{Radius: 0.5, Position: mgl64.Vec3{48.9, 0, 0}, Velocity: mgl64.Vec3{0.3, 0, 0}}
	player := &components.PlayerData{}

	step := StepPlayer(actor, player, nil, frame, 0)

	limit := cfg.World.HalfExtent() - cfg.Player.Size
	if actor.Position.X() != limit {
		t.Fatalf("x = %f, want clamped to %f", actor.Position.X(), limit)
	}
	// 0.3 after friction and idle decay, then reversed at 30%.
	want := -0.3 * cfg.Player.Friction * cfg.Player.IdleDecay * cfg.Player.BoundaryRebound
	if !almostEqual(actor.Velocity.X(), want) {
		t.Fatalf("vx = %f, want %f", actor.Velocity.X(), want)
	}
	if !step.HitBoundary || !step.EnteredBoundary {
		t.Fatalf("expected boundary hit and entry, got %+v", step)
	}
}

func TestClampToBoundaryScenario(t *testing.T) {
	pos := mgl64.Vec3{49.2, 0, -3}
	vel := mgl64.Vec3{0.1, 0, -0.2}

	if !ClampToBoundary(&pos, &vel, 49, 0.3) {
		t.Fatalf("expected a hit")
	}
	if pos.X() != 49 || pos.Z() != -3 {
		t.Fatalf("pos = %v, want x=49 z=-3", pos)
	}
	if !almostEqual(vel.X(), -0.03) || vel.Z() != -0.2 {
		t.Fatalf("vel = %v, want (-0.03, 0, -0.2)", vel)
	}
}

func TestStepPlayerBoundaryEntryIsEdgeTriggered(t *testing.T) {
	actor := &components.ActorData{Radius: 0.5, Position: mgl64.Vec3{48.5, 0, 0}}
	player := &components.PlayerData{}
	ApplyMovementIntent(player, MoveKeys{Right: true}, false, testForward, testRight)

	entries := 0
	var last PlayerStep
	for i := 0; i < 40; i++ {
		last = StepPlayer(actor, player, nil, frame, 0)
		if last.EnteredBoundary {
			entries++
		}
	}
	if entries != 1 {
		t.Fatalf("boundary entered %d times while pressing into the edge, want 1", entries)
	}
	if !last.HitBoundary {
		t.Fatalf("expected predator to still be against the edge")
	}
}

func TestStepPlayerBlockedByObstacle(t *testing.T) {
	index := collision.NewIndex(50, 49, 8, 32)
	index.Add(collision.Obstacle{Kind: collision.Rock, Position: mgl64.Vec3{2.5, 0, 0}, Radius: 1})

	actor := &components.ActorData{Radius: 0.5, Position: mgl64.Vec3{0.8, 0, 0}, Velocity: mgl64.Vec3{0.5, 0, 0}}
	player := &components.PlayerData{}

	step := StepPlayer(actor, player, index, frame, 0)
	if !step.Blocked {
		t.Fatalf("expected the tentative move to be blocked")
	}
	if actor.Position.X() != 0.8 {
		t.Fatalf("position moved to %v despite the block", actor.Position)
	}
	want := -0.5 * cfg.Player.Friction * cfg.Player.IdleDecay * cfg.Player.ObstacleRebound
	if !almostEqual(actor.Velocity.X(), want) {
		t.Fatalf("vx = %f, want %f", actor.Velocity.X(), want)
	}
}

func TestResolveMovementIntent(t *testing.T) {
	tests := []struct {
		name    string
		keys    MoveKeys
		forward mgl64.Vec3
		want    mgl64.Vec3
		moving  bool
	}{
		{"none", MoveKeys{}, testForward, mgl64.Vec3{}, false},
		{"opposite keys cancel", MoveKeys{Forward: true, Back: true}, testForward, mgl64.Vec3{}, false},
		{"diagonal kept", MoveKeys{Forward: true, Right: true}, testForward, mgl64.Vec3{1, 0, -1}, true},
		{"long sum rescaled", MoveKeys{Forward: true}, mgl64.Vec3{0, 0, -2}, mgl64.Vec3{0, 0, -1.2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moving := ResolveMovementIntent(tt.keys, tt.forward, testRight)
			if moving != tt.moving || !vecAlmostEqual(got, tt.want) {
				t.Fatalf("got %v moving=%v, want %v moving=%v", got, moving, tt.want, tt.moving)
			}
		})
	}
}

func TestApplyMovementIntentKeepsFacingWhenIdle(t *testing.T) {
	player := &components.PlayerData{}
	ApplyMovementIntent(player, MoveKeys{Right: true}, false, testForward, testRight)
	if !almostEqual(player.TargetFacing, math.Pi/2) {
		t.Fatalf("TargetFacing = %f, want π/2", player.TargetFacing)
	}
	ApplyMovementIntent(player, MoveKeys{}, false, testForward, testRight)
	if player.Moving || !almostEqual(player.TargetFacing, math.Pi/2) {
		t.Fatalf("idle input changed facing: %+v", player)
	}
}

func TestUpdatePlayerNotifiesOnceAtBoundary(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e, mgl64.Vec3{48.5, 0, 0})
	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveRight] = true

	for i := 0; i < 40; i++ {
		tick(e, frame, UpdatePlayer)
	}

	if got := CurrentNotice(e); got != cfg.Notice.BoundaryHit {
		t.Fatalf("notice = %q, want %q", got, cfg.Notice.BoundaryHit)
	}
	if n := PendingEvents(e); n != 1 {
		t.Fatalf("pending events = %d, want a single revert", n)
	}
	if x := components.Actor.Get(player).Position.X(); x > 49 {
		t.Fatalf("predator escaped the field: x=%f", x)
	}
}

// settleSpeed holds the current intent for n frames at the origin and returns
// the speed of the last two frames.
func settleSpeed(actor *components.ActorData, player *components.PlayerData, n int) (prev, last float64) {
	for i := 0; i < n; i++ {
		// Stay clear of the boundary so only the velocity model is measured.
		actor.Position = mgl64.Vec3{}
		prev = actor.Velocity.Len()
		StepPlayer(actor, player, nil, frame, 0)
		last = actor.Velocity.Len()
	}
	return prev, last
}

func TestStepPlayerBoostRaisesSettledSpeed(t *testing.T) {
	walker := &components.ActorData{Radius: 0.5}
	walking := &components.PlayerData{}
	ApplyMovementIntent(walking, MoveKeys{Forward: true}, false, testForward, testRight)
	_, walkSpeed := settleSpeed(walker, walking, 600)

	sprinter := &components.ActorData{Radius: 0.5}
	sprinting := &components.PlayerData{}
	ApplyMovementIntent(sprinting, MoveKeys{Forward: true}, true, testForward, testRight)
	prev, sprintSpeed := settleSpeed(sprinter, sprinting, 600)

	boostedMax := cfg.Player.MaxSpeed * cfg.Player.BoostMultiplier
	if sprintSpeed <= boostedMax {
		t.Fatalf("sprint speed = %f, want above %f", sprintSpeed, boostedMax)
	}
	if sprintSpeed <= walkSpeed {
		t.Fatalf("sprint speed %f not above walking speed %f", sprintSpeed, walkSpeed)
	}
	if math.Abs(sprintSpeed-prev) > 1e-9 {
		t.Fatalf("sprint speed still changing: %f -> %f", prev, sprintSpeed)
	}

	// Without the soft cap the speed would settle at accel / (1 - friction).
	uncapped := boostedMax * cfg.Player.AccelerationScale / (1 - cfg.Player.Friction)
	if sprintSpeed >= uncapped {
		t.Fatalf("sprint speed %f not held under the uncapped limit %f", sprintSpeed, uncapped)
	}
}

func TestStepPlayerReleasingBoostSlowsDown(t *testing.T) {
	walker := &components.ActorData{Radius: 0.5}
	walking := &components.PlayerData{}
	ApplyMovementIntent(walking, MoveKeys{Forward: true}, false, testForward, testRight)
	_, walkSpeed := settleSpeed(walker, walking, 600)

	actor := &components.ActorData{Radius: 0.5}
	player := &components.PlayerData{}
	ApplyMovementIntent(player, MoveKeys{Forward: true}, true, testForward, testRight)
	_, sprintSpeed := settleSpeed(actor, player, 600)

	// Shift released, direction still held.
	ApplyMovementIntent(player, MoveKeys{Forward: true}, false, testForward, testRight)
	_, speed := settleSpeed(actor, player, 1)
	if speed >= sprintSpeed {
		t.Fatalf("speed %f did not drop after releasing sprint (was %f)", speed, sprintSpeed)
	}
	_, speed = settleSpeed(actor, player, 600)
	if math.Abs(speed-walkSpeed) > 1e-6 {
		t.Fatalf("speed = %f after releasing sprint, want walking speed %f", speed, walkSpeed)
	}

	// All keys released.
	ApplyMovementIntent(player, MoveKeys{}, false, testForward, testRight)
	_, speed = settleSpeed(actor, player, 3)
	if speed >= cfg.Player.MaxSpeed {
		t.Fatalf("speed = %f shortly after stopping, want under %f", speed, cfg.Player.MaxSpeed)
	}
	if _, speed = settleSpeed(actor, player, 60); speed != 0 {
		t.Fatalf("speed = %f after a second idle, want 0", speed)
	}
}

func TestStepPlayerBobsWhileMoving(t *testing.T) {
	index := collision.NewIndex(50, 49, 8, 32)
	index.Add(collision.Obstacle{Kind: collision.Rock, Position: mgl64.Vec3{30, 0, 30}, Radius: 1})
	actor := &components.ActorData{Radius: 0.5}
	player := &components.PlayerData{}
	ApplyMovementIntent(player, MoveKeys{Forward: true}, false, testForward, testRight)

	now := 0.3
	step := StepPlayer(actor, player, index, frame, now)
	if step.Blocked {
		t.Fatalf("move was blocked")
	}
	if actor.Position.Z() >= 0 {
		t.Fatalf("move not committed: %v", actor.Position)
	}
	want := math.Sin(now*cfg.Player.BobFrequency) * cfg.Player.BobAmplitude
	if !almostEqual(actor.Position.Y(), want) {
		t.Fatalf("y = %f after a committed move, want bob %f", actor.Position.Y(), want)
	}

	ApplyMovementIntent(player, MoveKeys{}, false, testForward, testRight)
	StepPlayer(actor, player, index, frame, now+frame)
	if actor.Position.Y() != 0 {
		t.Fatalf("y = %f after input stopped, want 0", actor.Position.Y())
	}
}
