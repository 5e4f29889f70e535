package archetypes

import (
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/automoto/ratchase/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Actor,
	)
	Rat = newArchetype(
		tags.Rat,
		components.Rat,
		components.Actor,
	)
	Tree = newArchetype(
		tags.Tree,
		components.Obstacle,
	)
	Rock = newArchetype(
		tags.Rock,
		components.Obstacle,
	)
	Collision = newArchetype(
		components.Collision,
	)
	Camera = newArchetype(
		components.Camera,
	)
	GameState = newArchetype(
		components.GameState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
