package assets

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/automoto/doodle-anim/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Library owns every sprite sheet the scene loaded. Sheets are read from
// disk once and released together by Unload.
type Library struct {
	root  string
	cache map[string]*ebiten.Image
}

func NewLibrary(root string) *Library {
	return &Library{
		root:  root,
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage reads a PNG from disk.
func LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

// Sheet returns the sheet at dir/file. A sheet that cannot be read is
// replaced by a solid placeholder wide enough for frames frames of
// frameWidth, so animation keeps stepping.
func (l *Library) Sheet(dir, file string, frames, frameWidth, frameHeight int) *ebiten.Image {
	path := filepath.Join(l.root, dir, file)
	if img, ok := l.cache[path]; ok {
		return img
	}

	img, err := LoadImage(path)
	if err != nil {
		log.Printf("Warning: %v, using placeholder", err)
		img = placeholder(frames*frameWidth, frameHeight)
	}

	l.cache[path] = img
	return img
}

// Unload frees the GPU memory of every sheet. The library is empty
// afterwards.
func (l *Library) Unload() {
	for path, img := range l.cache {
		img.Deallocate()
		delete(l.cache, path)
	}
}

func placeholder(width, height int) *ebiten.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := ebiten.NewImage(width, height)
	img.Fill(config.Magenta)
	return img
}
