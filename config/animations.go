package config

// Character keys used in the animation manifest.
const (
	CharacterPlayer   = "player"
	CharacterSkeleton = "skeleton"
)

// AnimationDef describes one sprite sheet: a single row of equally wide
// frames laid out horizontally.
type AnimationDef struct {
	File   string `yaml:"file"`
	Frames int    `yaml:"frames"`
}

// CharacterDef maps a character's animation tags to their sheets.
// Sheet files are resolved relative to Dir.
type CharacterDef struct {
	Dir        string                  `yaml:"dir"`
	Animations map[string]AnimationDef `yaml:"animations"`
}
