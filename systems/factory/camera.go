package factory

import (
	"github.com/automoto/ratchase/archetypes"
	"github.com/automoto/ratchase/components"
	cfg "github.com/automoto/ratchase/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera rig in chase mode, looking at target.
func CreateCamera(ecs *ecs.ECS, target mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, NewCameraData(target))
	return camera
}

// NewCameraData returns a chase camera already placed behind target.
func NewCameraData(target mgl64.Vec3) components.CameraData {
	return components.CameraData{
		Position:        target.Add(mgl64.Vec3{0, cfg.Camera.ChaseHeight, cfg.Camera.ChaseDistance}),
		Target:          target,
		Distance:        cfg.Camera.Distance,
		MinDistance:     cfg.Camera.MinDistance,
		MaxDistance:     cfg.Camera.MaxDistance,
		ChaseDistance:   cfg.Camera.ChaseDistance,
		ChaseHeight:     cfg.Camera.ChaseHeight,
		MinRotationY:    cfg.Camera.MinRotationY,
		MaxRotationY:    cfg.Camera.MaxRotationY,
		Sensitivity:     cfg.Camera.Sensitivity,
		ZoomSensitivity: cfg.Camera.ZoomSensitivity,
		Smoothing:       cfg.Camera.Smoothing,
	}
}
