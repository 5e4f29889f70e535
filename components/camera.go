package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3 // point the camera looks at

	Distance      float64 // free-orbit distance
	MinDistance   float64
	MaxDistance   float64
	ChaseDistance float64
	ChaseHeight   float64

	RotationX    float64 // yaw around the target
	RotationY    float64 // pitch, free mode only
	MinRotationY float64
	MaxRotationY float64

	Sensitivity     float64
	ZoomSensitivity float64
	Smoothing       float64
	FreeMode        bool
}

var Camera = donburi.NewComponentType[CameraData]()
