package assets

import (
	_ "embed"
	"fmt"

	"github.com/automoto/doodle-anim/config"
	"gopkg.in/yaml.v3"
)

//go:embed data/animations.yaml
var manifestYAML []byte

// Manifest maps a character key to its animation table.
type Manifest map[string]config.CharacterDef

// ParseManifest decodes and validates an animation manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse animation manifest: %w", err)
	}

	for key, character := range m {
		if len(character.Animations) == 0 {
			return nil, fmt.Errorf("character %q has no animations", key)
		}
		for name, def := range character.Animations {
			if _, err := config.ParseAnimationID(name); err != nil {
				return nil, fmt.Errorf("character %q: %w", key, err)
			}
			if def.File == "" {
				return nil, fmt.Errorf("character %q animation %q has no file", key, name)
			}
			if def.Frames < 1 {
				return nil, fmt.Errorf("character %q animation %q needs at least one frame, got %d", key, name, def.Frames)
			}
		}
	}

	return m, nil
}

// MustLoadManifest parses the embedded manifest.
func MustLoadManifest() Manifest {
	m, err := ParseManifest(manifestYAML)
	if err != nil {
		panic(err)
	}
	return m
}

// Character returns the definition for key or panics, catching typos in
// factory code early.
func (m Manifest) Character(key string) config.CharacterDef {
	def, ok := m[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}
	return def
}
