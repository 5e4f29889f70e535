package config

import (
	"image/color"
	"math"
)

// WorldConfig describes the square play area.
type WorldConfig struct {
	GroundSize float64 // side length of the terrain
	MaxStep    float64 // longest frame delta fed to the simulation, seconds
	Seed       uint64  // 0 = seed from the wall clock

	// Obstacle placement
	TreeCount      int
	TreeSpread     float64 // trees land in ±(GroundSize-TreeSpread)/2
	TreeMinScale   float64
	TreeScaleRange float64
	TreeRadius     float64 // collision radius at scale 1
	RockCount      int
	RockSpread     float64
	RockMinScale   float64
	RockScaleRange float64
	RockRadius     float64

	// Broadphase
	SpaceScale    float64 // resolv units per world unit
	SpaceCellSize int     // resolv cell size in resolv units
}

// HalfExtent returns the distance from the origin to each boundary edge.
func (w WorldConfig) HalfExtent() float64 {
	return w.GroundSize / 2
}

// PlayerConfig contains all predator movement tuning. Rates are per frame at 60fps.
type PlayerConfig struct {
	Size float64 // boundary margin; collision radius is half of it

	// Movement
	Speed             float64
	MaxSpeed          float64
	BoostMultiplier   float64
	AccelerationScale float64
	SoftCapStiffness  float64 // how hard overshoot above MaxSpeed is pulled back
	TurnSpeed         float64
	TurnBoost         float64

	// Damping
	Friction      float64
	IdleDecay     float64
	StopThreshold float64

	// Input shaping
	MaxInputMagnitude float64 // above this the summed key vector is renormalised
	InputRescale      float64

	// Collision
	Prediction      float64 // tentative position looks ahead by 1+dt*Prediction frames
	ObstacleRebound float64
	BoundaryRebound float64
	ObstacleNotice  float64 // chance of a notice per blocked frame

	// Idle bobbing while moving
	BobAmplitude float64
	BobFrequency float64
}

// CollisionRadius returns the radius used against obstacles.
func (p PlayerConfig) CollisionRadius() float64 {
	return p.Size / 2
}

// RatConfig contains rat wandering and spawning values
type RatConfig struct {
	StartSpeed          float64
	LevelSpeedIncrement float64
	BoundaryMargin      float64 // the rat turns back this far from the edge
	MinInterval         float64 // seconds between direction changes
	MaxInterval         float64
	InitialInterval     float64
	Radius              float64

	// Spawning
	SpawnMargin      float64
	SpawnAttempts    int
	SpawnMinDistance float64 // minimum planar distance from the player
	SpawnClearance   float64 // radius checked against obstacles
	SpawnFallbackX   float64
	SpawnFallbackZ   float64
}

// CameraConfig contains camera rig configuration
type CameraConfig struct {
	ChaseDistance   float64
	ChaseHeight     float64
	Distance        float64 // free-orbit starting distance
	MinDistance     float64
	MaxDistance     float64
	MinRotationY    float64
	MaxRotationY    float64
	Sensitivity     float64 // radians per dragged pixel
	ZoomSensitivity float64 // distance per wheel unit
	WheelScale      float64 // wheel units per notch
	Smoothing       float64 // fraction of the gap closed each frame (0.0-1.0)
	FieldOfView     float64 // vertical, degrees
	Near, Far       float64
}

// CaptureConfig contains scoring and level progression values
type CaptureConfig struct {
	Distance     float64 // planar distance at which the rat is caught
	RatsPerLevel int
	StartLevel   int
	RespawnDelay float64 // seconds
	RescueDelay  float64 // seconds after start before the stuck check runs
	LevelUpFade  float64 // seconds
}

// NoticeConfig contains status line texts and timings
type NoticeConfig struct {
	Default      string
	FadeIn       float64 // seconds
	BoundaryHit  string
	BoundaryTime float64
	ObstacleHit  string
	ObstacleTime float64
	RatCaught    string
	NewRat       string
	NewRatTime   float64
	LevelUp      string
	Teleported   string
	Rescued      string
	ActionTime   float64
	CameraFree   string
	CameraChase  string
	Paused       string
}

// HUDConfig contains HUD and overlay styling
type HUDConfig struct {
	Margin       float64
	Padding      float64
	LineHeight   float64
	PanelColor   color.RGBA
	TextColor    color.RGBA
	OverlayColor color.RGBA
	NoticeBottom float64
}

// PaletteConfig holds world colors for the renderer
type PaletteConfig struct {
	Sky      color.RGBA
	Ground   color.RGBA
	Boundary color.RGBA
	Tree     color.RGBA
	Rock     color.RGBA
	Rat      color.RGBA
	Player   color.RGBA
	Facing   color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	AppName  string
	LogLevel string
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Rat RatConfig
var Camera CameraConfig
var Capture CaptureConfig
var Notice NoticeConfig
var HUD HUDConfig
var Palette PaletteConfig
var Pause PauseConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	HalfBlack    = color.RGBA{R: 0, G: 0, B: 0, A: 128}
)

func init() {
	C = &Config{
		Width:    1280,
		Height:   720,
		AppName:  "ratchase",
		LogLevel: "info",
	}

	World = WorldConfig{
		GroundSize: 100,
		MaxStep:    0.05, // 1/20s
		Seed:       0,

		TreeCount:      15,
		TreeSpread:     10,
		TreeMinScale:   0.7,
		TreeScaleRange: 0.6,
		TreeRadius:     1.5,
		RockCount:      20,
		RockSpread:     5,
		RockMinScale:   0.5,
		RockScaleRange: 1.5,
		RockRadius:     1.0,

		SpaceScale:    8,
		SpaceCellSize: 32, // 4 world units
	}

	Player = PlayerConfig{
		Size: 1.0,

		Speed:             0.065,
		MaxSpeed:          0.25,
		BoostMultiplier:   1.8,
		AccelerationScale: 1.5,
		SoftCapStiffness:  10,
		TurnSpeed:         0.15,
		TurnBoost:         20,

		Friction:      0.85,
		IdleDecay:     0.6,
		StopThreshold: 0.001,

		MaxInputMagnitude: 1.5,
		InputRescale:      1.2,

		Prediction:      15,
		ObstacleRebound: 0.5,
		BoundaryRebound: 0.3,
		ObstacleNotice:  0.05,

		BobAmplitude: 0.05,
		BobFrequency: 5,
	}

	Rat = RatConfig{
		StartSpeed:          0.15,
		LevelSpeedIncrement: 0.04,
		BoundaryMargin:      5,
		MinInterval:         2,
		MaxInterval:         5,
		InitialInterval:     3,
		Radius:              0.5,

		SpawnMargin:      10,
		SpawnAttempts:    50,
		SpawnMinDistance: 15,
		SpawnClearance:   1.0,
		SpawnFallbackX:   20,
		SpawnFallbackZ:   20,
	}

	Camera = CameraConfig{
		ChaseDistance:   15,
		ChaseHeight:     8,
		Distance:        15,
		MinDistance:     5,
		MaxDistance:     30,
		MinRotationY:    -math.Pi / 4,
		MaxRotationY:    math.Pi / 4,
		Sensitivity:     0.005,
		ZoomSensitivity: 0.1,
		WheelScale:      10,
		Smoothing:       0.1,
		FieldOfView:     75,
		Near:            0.1,
		Far:             1000,
	}

	Capture = CaptureConfig{
		Distance:     2.0,
		RatsPerLevel: 5,
		StartLevel:   2, // the chase starts at level 2 so the rat is already quick
		RespawnDelay: 1.0,
		RescueDelay:  1.0,
		LevelUpFade:  1.0,
	}

	Notice = NoticeConfig{
		Default:      "WASD to move, C to toggle camera",
		FadeIn:       0.25,
		BoundaryHit:  "You reached the edge of the area!",
		BoundaryTime: 2.0,
		ObstacleHit:  "Obstacle ahead",
		ObstacleTime: 1.5,
		RatCaught:    "Rat caught! A new rat appears...",
		NewRat:       "A new rat is on the loose!",
		NewRatTime:   2.0,
		LevelUp:      "Level %d!",
		Teleported:   "Teleported next to the rat!",
		Rescued:      "You were moved to a safe spot",
		ActionTime:   2.0,
		CameraFree:   "Free camera (drag to orbit, wheel to zoom)",
		CameraChase:  "Chase camera",
		Paused:       "Paused",
	}

	HUD = HUDConfig{
		Margin:       10,
		Padding:      10,
		LineHeight:   24,
		PanelColor:   HalfBlack,
		TextColor:    White,
		OverlayColor: Gold,
		NoticeBottom: 40,
	}

	Palette = PaletteConfig{
		Sky:      color.RGBA{R: 135, G: 190, B: 235, A: 255},
		Ground:   color.RGBA{R: 76, G: 175, B: 80, A: 255},
		Boundary: color.RGBA{R: 139, G: 69, B: 19, A: 255},
		Tree:     color.RGBA{R: 34, G: 139, B: 34, A: 255},
		Rock:     color.RGBA{R: 136, G: 136, B: 136, A: 255},
		Rat:      color.RGBA{R: 139, G: 69, B: 19, A: 255},
		Player:   color.RGBA{R: 120, G: 30, B: 30, A: 255},
		Facing:   White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Exit"},
	}
}
