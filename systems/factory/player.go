package factory

import (
	"github.com/automoto/ratchase/archetypes"
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, position mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Actor.SetValue(player, components.ActorData{
		Position: position,
		Radius:   cfg.Player.CollisionRadius(),
	})
	components.Player.SetValue(player, components.PlayerData{})

	return player
}
