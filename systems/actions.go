package systems

import (
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActions handles the one-shot commands: camera toggle, teleport,
// rescue, and camera drag/zoom.
// This system should run AFTER UpdateInput but BEFORE UpdatePlayer.
func UpdateActions(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if camera := getCamera(ecs); camera != nil {
		if GetAction(input, cfg.ActionToggleCamera).JustPressed {
			if ToggleCameraMode(camera) {
				Notify(ecs, cfg.Notice.CameraFree, cfg.Notice.ActionTime)
			} else {
				Notify(ecs, cfg.Notice.CameraChase, cfg.Notice.ActionTime)
			}
		}
		if input.DragX != 0 || input.DragY != 0 {
			ApplyCameraDrag(camera, input.DragX, input.DragY)
		}
		if input.Wheel != 0 {
			ApplyCameraZoom(camera, input.Wheel)
		}
	}

	if GetAction(input, cfg.ActionTeleport).JustPressed {
		TeleportNearRat(ecs)
	}
	if GetAction(input, cfg.ActionRescue).JustPressed {
		RescuePlayerIfStuck(ecs)
	}
}

// TeleportNearRat drops the predator next to the rat, or on the nearest clear
// spot around the rat when that is blocked. It reports whether it moved.
func TeleportNearRat(ecs *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	ratEntry, ok := tags.Rat.First(ecs.World)
	if !ok {
		return false
	}
	actor := components.Actor.Get(playerEntry)
	rat := components.Actor.Get(ratEntry).Position

	target := mgl64.Vec3{rat.X() + 5, 0, rat.Z() + 5}
	if index := getCollisionIndex(ecs); index != nil && index.Overlaps(target, actor.Radius) {
		target = index.FindClearPosition(rat, actor.Radius)
	}

	actor.Position = target
	Notify(ecs, cfg.Notice.Teleported, cfg.Notice.ActionTime)
	return true
}

// RescuePlayerIfStuck moves the predator out of an obstacle it overlaps.
// It reports whether a rescue happened.
func RescuePlayerIfStuck(ecs *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	index := getCollisionIndex(ecs)
	if index == nil {
		return false
	}
	actor := components.Actor.Get(playerEntry)
	if !index.Overlaps(actor.Position, actor.Radius) {
		return false
	}

	log.Debug("Predator stuck in an obstacle, relocating", "x", actor.Position.X(), "z", actor.Position.Z())
	actor.Position = index.FindClearPosition(actor.Position, actor.Radius)
	Notify(ecs, cfg.Notice.Rescued, cfg.Notice.ActionTime)
	return true
}
