package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PhysicsConfig contains the global gravity step values
type PhysicsConfig struct {
	Gravity float64 // pixels per second squared
	Floor   float64 // y coordinate actors come to rest on
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	FrameWidth  int
	FrameHeight int
	Scale       int

	// Movement
	Speed     float64 // pixels per frame
	JumpForce float64 // initial vertical velocity, negative is up

	// LeftBoundScale multiplies FrameWidth to get how far the player may walk
	// past the left screen edge. The sprite has transparent padding on both
	// sides so the visible body stays on screen.
	LeftBoundScale int

	// Hitbox
	HitboxWidthScale int
	HitboxHeightTrim float64
}

// SkeletonConfig contains skeleton patrol configuration
type SkeletonConfig struct {
	// Dimensions
	FrameWidth  int
	FrameHeight int
	Scale       int

	PatrolSpeed float64 // pixels per frame, not scaled by frame time

	// Hitbox
	HitboxWidthScale  int
	HitboxHeightTrim  float64
	FacingLeftOffsetX float64 // hitbox shift when the sprite is mirrored
}

// AnimationConfig contains animation timing values
type AnimationConfig struct {
	FrameDuration float64 // seconds per sprite sheet frame
}

// UIConfig contains drawing configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	PlatformColor   color.RGBA
	TextColor       color.RGBA
	HitboxColor     color.RGBA

	FontPath          string
	FontSize          float64
	LabelFontScale    float64
	TextMargin        float64
	LineHeight        float64
	HitboxLabelOffset float64
}

// MessageConfig contains the collision annotation configuration
type MessageConfig struct {
	Text         string
	X, Y         float64
	FadeDuration float32 // seconds
}

// AssetConfig contains on-disk asset locations
type AssetConfig struct {
	Root      string // directory sprite sheet paths in the manifest are relative to
	StageName string // embedded stage map
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Skeleton SkeletonConfig
var Animation AnimationConfig
var UI UIConfig
var Message MessageConfig
var Assets AssetConfig

// Shared RGBA color constants
var (
	RayWhite = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red      = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Magenta  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Doodle Jump Animation",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity: 600.0,
		Floor:   458.0,
	}

	Player = PlayerConfig{
		FrameWidth:  32,
		FrameHeight: 32,
		Scale:       6,

		Speed:     7.0,
		JumpForce: -350.0,

		LeftBoundScale: 2,

		HitboxWidthScale: 2,
		HitboxHeightTrim: 50.0,
	}

	// 64px frames at scale 3 render at the same 192px as the player.
	Skeleton = SkeletonConfig{
		FrameWidth:  64,
		FrameHeight: 64,
		Scale:       3,

		PatrolSpeed: 1.0,

		HitboxWidthScale:  2,
		HitboxHeightTrim:  50.0,
		FacingLeftOffsetX: 50.0,
	}

	Animation = AnimationConfig{
		FrameDuration: 0.1,
	}

	UI = UIConfig{
		BackgroundColor: RayWhite,
		PlatformColor:   Black,
		TextColor:       Black,
		HitboxColor:     Red,

		FontPath:          "assets/fonts/BreatheFire-65pg.ttf",
		FontSize:          20,
		LabelFontScale:    0.9,
		TextMargin:        10,
		LineHeight:        20,
		HitboxLabelOffset: 20,
	}

	Message = MessageConfig{
		Text:         "COLLISION",
		X:            10,
		Y:            50,
		FadeDuration: 0.5,
	}

	Assets = AssetConfig{
		Root:      "assets",
		StageName: "stage.tmx",
	}
}
