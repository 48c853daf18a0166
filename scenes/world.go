package scenes

import (
	"sync"

	"github.com/automoto/doodle-anim/assets"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/automoto/doodle-anim/systems"
	"github.com/automoto/doodle-anim/systems/factory"

	"github.com/automoto/doodle-anim/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StageScene owns the world: the stage, the player and the skeleton.
type StageScene struct {
	ecs     *ecs.ECS
	library *assets.Library
	once    sync.Once
}

func NewStageScene() *StageScene {
	return &StageScene{}
}

func (ss *StageScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *StageScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

// Close releases the sprite sheets. Safe to call before the scene was
// configured.
func (ss *StageScene) Close() {
	if ss.library != nil {
		ss.library.Unload()
	}
}

func (ss *StageScene) configure() {
	manifest := assets.MustLoadManifest()
	stage := assets.MustLoadStage(cfg.Assets.StageName)
	ss.library = assets.NewLibrary(cfg.Assets.Root)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateSkeletons)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateMessage)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)

	ss.ecs = ecs

	factory.CreateLevel(ss.ecs, stage)

	spaceEntry := factory.CreateSpace(ss.ecs, stage.Width, stage.Height, 16, 16)
	space := components.Space.Get(spaceEntry)

	player := factory.CreatePlayer(ss.ecs, ss.library, manifest, stage.PlayerSpawn)
	skeleton := factory.CreateSkeleton(ss.ecs, ss.library, manifest, stage.SkeletonSpawn)

	space.Add(components.Object.Get(player).Object, components.Object.Get(skeleton).Object)
}
