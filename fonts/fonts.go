// Package fonts keeps the font faces used by the viewer's HUD.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Mono    FontName = "mono"
)

// Get returns a loaded face. It panics if the face was never loaded.
func (f FontName) Get() font.Face {
	return getFont(f)
}

var fonts = map[FontName]font.Face{}

// LoadFontWithSize parses ttf and registers it under name at size points.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadDefaults registers the Go fonts under every FontName.
func LoadDefaults() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, 12); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, goregular.TTF, 28); err != nil {
		return err
	}
	return LoadFontWithSize(Mono, gomono.TTF, 11)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
