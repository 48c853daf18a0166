package systems

import (
	"log"

	"github.com/automoto/doodle-anim/components"
	cfg "github.com/automoto/doodle-anim/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings flips debug mode on the toggle key's press edge.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Printf("Debug mode: %v", settings.Debug)
	}
}

// GetOrCreateSettings returns the singleton Settings component
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}
