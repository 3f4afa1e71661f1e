// SPDX-License-Identifier: Unlicense OR MIT

package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gioui.org/font"
	"gioui.org/font/opentype"
	"gioui.org/text"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed font file.
type Font struct {
	// Path is the file the font was loaded from.
	Path string
	// Family is the family name recorded in the font's name table.
	Family string
	// Faces are the typefaces in the file.
	Faces []font.FontFace
}

// LoadFont reads and parses the font file at path. A missing file is
// reported as ErrNotFound.
func LoadFont(path string) (*Font, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: font %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("assets: font %s: %w", path, err)
	}
	return ParseFont(path, src)
}

// ParseFont parses src, labelling the result with path.
func ParseFont(path string, src []byte) (*Font, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("assets: font %s: %w", path, err)
	}
	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return nil, fmt.Errorf("assets: font %s: family name: %w", path, err)
	}
	faces, err := opentype.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("assets: font %s: %w", path, err)
	}
	return &Font{Path: path, Family: family, Faces: faces}, nil
}

// Shaper returns a text shaper that knows only this font.
func (f *Font) Shaper() *text.Shaper {
	return text.NewShaper(text.NoSystemFonts(), text.WithCollection(f.Faces))
}
