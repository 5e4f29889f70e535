package systems

import (
	"math"

	"github.com/automoto/ratchase/components"
	"github.com/automoto/ratchase/shared/gamemath"
	"github.com/automoto/ratchase/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the rig toward its ideal spot around the predator.
// This system should run AFTER UpdatePlayer.
func UpdateCamera(ecs *ecs.ECS) {
	camera := getCamera(ecs)
	if camera == nil {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return // no predator yet, keep the last view
	}
	StepCamera(camera, components.Actor.Get(playerEntry).Position)
}

// CameraOffset returns the ideal camera position relative to its target.
// The chase rig sits behind and above, swung around by RotationX. The free
// rig orbits on a sphere of radius Distance.
func CameraOffset(camera *components.CameraData) mgl64.Vec3 {
	if camera.FreeMode {
		d := camera.Distance
		return mgl64.Vec3{
			math.Sin(camera.RotationX) * math.Cos(camera.RotationY) * d,
			math.Sin(camera.RotationY) * d,
			math.Cos(camera.RotationX) * math.Cos(camera.RotationY) * d,
		}
	}
	chase := mgl64.Vec3{0, camera.ChaseHeight, camera.ChaseDistance}
	return mgl64.Rotate3DY(camera.RotationX).Mul3x1(chase)
}

// StepCamera closes Smoothing of the gap to the ideal position and looks at target.
func StepCamera(camera *components.CameraData, target mgl64.Vec3) {
	desired := target.Add(CameraOffset(camera))
	camera.Position = camera.Position.Add(desired.Sub(camera.Position).Mul(camera.Smoothing))
	camera.Target = target
}

// ApplyCameraDrag turns pointer movement into rotation. Pitch only changes
// in free mode and stays within its limits.
func ApplyCameraDrag(camera *components.CameraData, dx, dy float64) {
	if camera.FreeMode {
		camera.RotationY -= dy * camera.Sensitivity
		camera.RotationY = gamemath.Clamp(camera.RotationY, camera.MinRotationY, camera.MaxRotationY)
	}
	camera.RotationX -= dx * camera.Sensitivity
}

// ApplyCameraZoom changes the orbit distance. The chase rig ignores it.
func ApplyCameraZoom(camera *components.CameraData, delta float64) {
	if !camera.FreeMode {
		return
	}
	camera.Distance += delta * camera.ZoomSensitivity
	camera.Distance = gamemath.Clamp(camera.Distance, camera.MinDistance, camera.MaxDistance)
}

// ToggleCameraMode switches between chase and free orbit and returns the new mode.
func ToggleCameraMode(camera *components.CameraData) bool {
	camera.FreeMode = !camera.FreeMode
	return camera.FreeMode
}

// CameraBasis returns the camera's horizontal forward and right vectors.
func CameraBasis(camera *components.CameraData) (forward, right mgl64.Vec3) {
	look := camera.Target.Sub(camera.Position)
	look[1] = 0
	if look.Len() > 1e-9 {
		forward = look.Normalize()
	} else {
		forward = mgl64.Vec3{-math.Sin(camera.RotationX), 0, -math.Cos(camera.RotationX)}
	}
	right = mgl64.Vec3{-forward.Z(), 0, forward.X()}
	return forward, right
}

func getCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}
