package fonts

import (
	"fmt"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Label   FontName = "label"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// ReadTTF reads a font file from disk, falling back to Go Regular when the
// file is missing or unreadable.
func ReadTTF(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: could not read font %s: %v, using Go Regular", path, err)
		return goregular.TTF
	}
	return data
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Close releases every loaded face.
func Close() {
	for name, face := range fonts {
		_ = face.Close()
		delete(fonts, name)
	}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
