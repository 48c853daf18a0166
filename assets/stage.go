package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// Spawn is where an actor starts and what it starts doing.
type Spawn struct {
	X, Y      float64
	Animation config.AnimationID
	Direction config.Direction
}

// Stage is the static layout of the scene.
type Stage struct {
	Name          string
	Width         int
	Height        int
	Platforms     []gamemath.Rect // drawn only, nothing collides with them
	PlayerSpawn   Spawn
	SkeletonSpawn Spawn
}

// LoadStage reads a Tiled map from fsys. The map needs a "Spawns" object
// group with objects named "player" and "skeleton"; a "Platforms" group is
// optional.
func LoadStage(fsys fs.FS, name string) (*Stage, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load stage %s: %w", name, err)
	}

	stage := &Stage{
		Name:   name,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	var havePlayer, haveSkeleton bool
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				stage.Platforms = append(stage.Platforms, gamemath.Rect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case "Spawns":
			for _, o := range og.Objects {
				spawn, err := parseSpawn(o)
				if err != nil {
					return nil, fmt.Errorf("stage %s: %w", name, err)
				}
				switch o.Name {
				case config.CharacterPlayer:
					stage.PlayerSpawn = spawn
					havePlayer = true
				case config.CharacterSkeleton:
					stage.SkeletonSpawn = spawn
					haveSkeleton = true
				}
			}
		}
	}

	if !havePlayer || !haveSkeleton {
		return nil, fmt.Errorf("stage %s: missing player or skeleton spawn", name)
	}

	return stage, nil
}

func parseSpawn(o *tiled.Object) (Spawn, error) {
	spawn := Spawn{
		X:         o.X,
		Y:         o.Y,
		Animation: config.Idle,
		Direction: config.Right,
	}

	if name := o.Properties.GetString("animation"); name != "" {
		id, err := config.ParseAnimationID(name)
		if err != nil {
			return Spawn{}, fmt.Errorf("spawn %q: %w", o.Name, err)
		}
		spawn.Animation = id
	}

	switch dir := o.Properties.GetString("direction"); dir {
	case "", "right":
	case "left":
		spawn.Direction = config.Left
	default:
		return Spawn{}, fmt.Errorf("spawn %q: unknown direction %q", o.Name, dir)
	}

	return spawn, nil
}

// MustLoadStage loads an embedded stage from the levels directory.
func MustLoadStage(name string) *Stage {
	stage, err := LoadStage(levelFS, path.Join("levels", name))
	if err != nil {
		panic(err)
	}
	return stage
}
